package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/davesmith10/recolor/internal/codec"
	"github.com/davesmith10/recolor/internal/color"
	"github.com/davesmith10/recolor/internal/pipeline"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image, its mask coverage and dominant colors",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().Int("colors", 5, "Number of dominant colors to report (0 to skip)")
	identifyCmd.Flags().String("method", "dominant", "Palette method (dominant, kmeans)")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	path := args[0]
	numColors := cfg.GetInt("colors")
	method, err := color.ParsePaletteMethod(cfg.GetString("method"))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := codec.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	mask, _, err := pipeline.Classify(data)
	if err != nil {
		return fmt.Errorf("classify %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Color model: %s\n", info.ColorModel)
	fmt.Fprintf(out, "File size:   %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))
	fmt.Fprintf(out, "Bluish:      %d pixels (%.1f%%)\n", mask.Count(), mask.Coverage()*100)

	if numColors <= 0 {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	swatches, err := color.ExtractPalette(img, numColors, method)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	fmt.Fprintf(out, "Palette (%s):\n", method)
	for _, s := range swatches {
		fmt.Fprintf(out, "  %s  %5.1f%%\n", color.Hex(s.Color), s.Weight*100)
	}
	return nil
}
