package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/recolor/internal/codec"
	"github.com/davesmith10/recolor/internal/pipeline"
	"github.com/spf13/cobra"
)

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Write the bluish-pixel mask as a grayscale PNG",
	Args:  cobra.NoArgs,
	RunE:  runMask,
}

func init() {
	maskCmd.Flags().StringP("input", "i", defaultInput, "Input image file")
	maskCmd.Flags().StringP("output", "o", "mask.png", "Output grayscale PNG file (env RECOLOR_MASK_OUTPUT)")
	rootCmd.AddCommand(maskCmd)
}

func runMask(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{"output": "mask-output"})
	if err != nil {
		return err
	}
	inputPath := cfg.GetString("input")
	outputPath := cfg.GetString("mask-output")

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w: %w", codec.ErrDecode, err)
	}

	mask, _, err := pipeline.Classify(inputData)
	if err != nil {
		return fmt.Errorf("classify %s: %w", inputPath, err)
	}

	encoded, err := codec.EncodeGray(mask, codec.EncoderOptions{})
	if err != nil {
		return fmt.Errorf("encoding mask: %w", err)
	}
	if err := codec.WriteFile(outputPath, encoded); err != nil {
		return fmt.Errorf("writing mask: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mask %dx%d: %d set (%.1f%%) → %s\n",
		mask.Width, mask.Height, mask.Count(), mask.Coverage()*100, outputPath)
	return nil
}
