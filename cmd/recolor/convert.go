package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/recolor/internal/codec"
	"github.com/davesmith10/recolor/internal/color"
	"github.com/davesmith10/recolor/internal/pipeline"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Recolor an image into a teal/white PNG",
	Args:  cobra.NoArgs,
	RunE:  runConvert,
}

func init() {
	addConvertFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", defaultInput, "Input image file")
	cmd.Flags().StringP("output", "o", defaultOutput, "Output PNG file")
	cmd.Flags().String("match-color", color.Hex(color.Teal), "Color for bluish pixels (name or #rrggbb)")
	cmd.Flags().String("fill-color", color.Hex(color.White), "Color for all other pixels (name or #rrggbb)")
	cmd.Flags().String("compression", "default", "PNG compression (default, none, speed, best)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	inputPath := cfg.GetString("input")
	outputPath := cfg.GetString("output")

	match, err := color.ParseColor(cfg.GetString("match-color"))
	if err != nil {
		return fmt.Errorf("match color: %w", err)
	}
	fill, err := color.ParseColor(cfg.GetString("fill-color"))
	if err != nil {
		return fmt.Errorf("fill color: %w", err)
	}
	compression, err := codec.ParseCompression(cfg.GetString("compression"))
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w: %w", codec.ErrDecode, err)
	}

	opts := pipeline.Options{
		Match:   match,
		Fill:    fill,
		Encoder: codec.EncoderOptions{Compression: compression},
	}

	result, err := pipeline.Run(inputData, opts)
	if err != nil {
		return fmt.Errorf("recolor %s: %w", inputPath, err)
	}

	if err := codec.WriteFile(outputPath, result.Data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recolored %dx%d %s → PNG\n", result.Width, result.Height, result.Format)
	fmt.Fprintf(out, "Matched: %d pixels (%.1f%%) → %s, rest → %s\n",
		result.Matched, result.Mask.Coverage()*100, color.ColorName(match), color.ColorName(fill))
	fmt.Fprintf(out, "Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Fprintf(out, "Output: %s (%d bytes)\n", outputPath, len(result.Data))

	return nil
}
