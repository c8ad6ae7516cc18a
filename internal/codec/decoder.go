package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	imgcolor "image/color"

	// Formats accepted as input.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode marks failures to read or decode the input image.
var ErrDecode = errors.New("decode error")

// DecodedRGB holds the result of decoding an image into RGB.
type DecodedRGB struct {
	Width  int
	Height int
	Pixels []byte // RGB interleaved, len = Width * Height * 3
	Format string // registered format name, e.g. "jpeg"
}

// DecodeRGB decodes an image from memory, outputting RGB pixels.
// Alpha is dropped; channel values are read unpremultiplied.
func DecodeRGB(data []byte) (*DecodedRGB, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	width, height, pixels := toRGB(img)
	return &DecodedRGB{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Format: format,
	}, nil
}

func toRGB(img image.Image) (int, int, []byte) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	pixels := make([]byte, width*height*3)

	// Fast path for the layouts the stdlib decoders produce most often.
	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			start := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := src.Pix[start : start+width*4]
			dst := pixels[y*width*3:]
			for x := 0; x < width; x++ {
				dst[x*3] = row[x*4]
				dst[x*3+1] = row[x*4+1]
				dst[x*3+2] = row[x*4+2]
			}
		}
		return width, height, pixels
	case *image.RGBA:
		if src.Opaque() {
			for y := 0; y < height; y++ {
				start := src.PixOffset(b.Min.X, b.Min.Y+y)
				row := src.Pix[start : start+width*4]
				dst := pixels[y*width*3:]
				for x := 0; x < width; x++ {
					dst[x*3] = row[x*4]
					dst[x*3+1] = row[x*4+1]
					dst[x*3+2] = row[x*4+2]
				}
			}
			return width, height, pixels
		}
	case *image.NRGBA64:
		// Big-endian 16-bit channels; keep the high byte.
		for y := 0; y < height; y++ {
			start := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := src.Pix[start : start+width*8]
			dst := pixels[y*width*3:]
			for x := 0; x < width; x++ {
				dst[x*3] = row[x*8]
				dst[x*3+1] = row[x*8+2]
				dst[x*3+2] = row[x*8+4]
			}
		}
		return width, height, pixels
	case *image.NYCbCrA:
		ycbcrToRGB(&src.YCbCr, b, pixels)
		return width, height, pixels
	case *image.YCbCr:
		ycbcrToRGB(src, b, pixels)
		return width, height, pixels
	}

	off := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := imgcolor.NRGBAModel.Convert(img.At(x, y)).(imgcolor.NRGBA)
			pixels[off] = c.R
			pixels[off+1] = c.G
			pixels[off+2] = c.B
			off += 3
		}
	}
	return width, height, pixels
}

// ycbcrToRGB converts the Y'CbCr planes of src within b to interleaved RGB.
// Alpha, if any, lives in a separate plane and is not consulted.
func ycbcrToRGB(src *image.YCbCr, b image.Rectangle, pixels []byte) {
	off := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			yi := src.YOffset(x, y)
			ci := src.COffset(x, y)
			pixels[off], pixels[off+1], pixels[off+2] = imgcolor.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
			off += 3
		}
	}
}
