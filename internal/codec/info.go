package codec

import (
	"bytes"
	"fmt"
	"image"
	imgcolor "image/color"
)

// colorModelName returns a short name for the stdlib color models.
func colorModelName(m imgcolor.Model) string {
	if _, ok := m.(imgcolor.Palette); ok {
		return "Paletted"
	}
	switch m {
	case imgcolor.RGBAModel:
		return "RGBA"
	case imgcolor.RGBA64Model:
		return "RGBA64"
	case imgcolor.NRGBAModel:
		return "NRGBA"
	case imgcolor.NRGBA64Model:
		return "NRGBA64"
	case imgcolor.AlphaModel, imgcolor.Alpha16Model:
		return "Alpha"
	case imgcolor.GrayModel:
		return "Grayscale"
	case imgcolor.Gray16Model:
		return "Grayscale16"
	case imgcolor.YCbCrModel:
		return "YCbCr"
	case imgcolor.NYCbCrAModel:
		return "NYCbCrA"
	case imgcolor.CMYKModel:
		return "CMYK"
	}
	return fmt.Sprintf("%T", m)
}

// ImageInfo contains metadata about an encoded image.
type ImageInfo struct {
	Width      int
	Height     int
	Format     string
	ColorModel string
}

// GetInfo reads image metadata without fully decoding the image.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}
