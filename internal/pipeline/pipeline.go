package pipeline

import (
	"fmt"
	imgcolor "image/color"

	"github.com/davesmith10/recolor/internal/codec"
	"github.com/davesmith10/recolor/internal/color"
	"github.com/davesmith10/recolor/internal/ir"
)

// Options controls the full recolor pipeline. Zero-value colors fall back to
// teal and white.
type Options struct {
	Match   imgcolor.RGBA        // color for bluish pixels
	Fill    imgcolor.RGBA        // color for everything else
	Encoder codec.EncoderOptions // PNG output settings
}

// DefaultOptions returns teal-on-white with default PNG compression.
func DefaultOptions() Options {
	return Options{
		Match: color.Teal,
		Fill:  color.White,
	}
}

// Result holds the output of a pipeline run.
type Result struct {
	Data    []byte   // encoded PNG
	Mask    *ir.Mask // per-pixel classification
	Width   int
	Height  int
	Matched int // pixels painted with the match color
	Format  string
}

func (o Options) transform() *color.Transform {
	match, fill := o.Match, o.Fill
	if match == (imgcolor.RGBA{}) {
		match = color.Teal
	}
	if fill == (imgcolor.RGBA{}) {
		fill = color.White
	}
	return color.NewTransform(match, fill)
}

// Classify decodes an image and computes its mask without composing output.
func Classify(data []byte) (*ir.Mask, *codec.DecodedRGB, error) {
	decoded, err := codec.DecodeRGB(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	mask, err := color.DefaultTransform().Classify(decoded.Pixels, decoded.Width, decoded.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("classify: %w", err)
	}
	return mask, decoded, nil
}

// Run executes the full pipeline: decode → classify → compose → encode.
func Run(data []byte, opts Options) (*Result, error) {
	// 1. Decode to RGB
	decoded, err := codec.DecodeRGB(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Classify and compose
	rgb, mask, err := opts.transform().TransformPixels(decoded.Pixels, decoded.Width, decoded.Height)
	if err != nil {
		return nil, fmt.Errorf("recolor: %w", err)
	}

	// 3. Encode PNG
	encoded, err := codec.EncodeRGB(rgb, decoded.Width, decoded.Height, opts.Encoder)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:    encoded,
		Mask:    mask,
		Width:   decoded.Width,
		Height:  decoded.Height,
		Matched: mask.Count(),
		Format:  decoded.Format,
	}, nil
}
