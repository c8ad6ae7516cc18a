package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/davesmith10/recolor/internal/ir"
)

// ErrEncode marks failures to encode or publish the output image.
var ErrEncode = errors.New("encode error")

// EncoderOptions controls PNG output.
type EncoderOptions struct {
	Compression png.CompressionLevel
}

// ParseCompression converts a compression name to a png.CompressionLevel.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch s {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression level: %q", s)
	}
}

// EncodeRGB encodes interleaved RGB pixels as an 8-bit truecolor PNG.
// pixels must be width*height*3 bytes.
func EncodeRGB(pixels []byte, width, height int, opts EncoderOptions) ([]byte, error) {
	expected := width * height * 3
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrEncode, width, height)
	}
	if len(pixels) != expected {
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%d RGB, got %d", ErrEncode, expected, width, height, len(pixels))
	}

	// An opaque *image.RGBA is written by image/png as color type 2 (RGB).
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pixels); i, j = i+3, j+4 {
		img.Pix[j] = pixels[i]
		img.Pix[j+1] = pixels[i+1]
		img.Pix[j+2] = pixels[i+2]
		img.Pix[j+3] = 0xff
	}
	return encodePNG(img, opts)
}

// EncodeGray encodes a mask as an 8-bit grayscale PNG, white where set.
func EncodeGray(mask *ir.Mask, opts EncoderOptions) ([]byte, error) {
	if mask.Width <= 0 || mask.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrEncode, mask.Width, mask.Height)
	}
	img := image.NewGray(image.Rect(0, 0, mask.Width, mask.Height))
	for i, set := range mask.Bits {
		if set {
			img.Pix[i] = 0xff
		}
	}
	return encodePNG(img, opts)
}

func encodePNG(img image.Image, opts EncoderOptions) ([]byte, error) {
	enc := png.Encoder{CompressionLevel: opts.Compression}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
