package color

import (
	"fmt"
	imgcolor "image/color"

	"github.com/davesmith10/recolor/internal/ir"
)

// Bluish reports whether a pixel's blue channel exceeds twice its red channel
// and also exceeds its green channel. Arithmetic is done in int so 2*r cannot
// wrap.
func Bluish(r, g, b uint8) bool {
	bi := int(b)
	return bi > 2*int(r) && bi > int(g)
}

// Transform maps classified pixels onto two flat colors.
type Transform struct {
	Match imgcolor.RGBA // written where the pixel is bluish
	Fill  imgcolor.RGBA // written everywhere else
}

// NewTransform creates a transform with the given match and fill colors.
func NewTransform(match, fill imgcolor.RGBA) *Transform {
	return &Transform{Match: match, Fill: fill}
}

// DefaultTransform returns the teal-on-white transform.
func DefaultTransform() *Transform {
	return NewTransform(Teal, White)
}

// Classify builds the mask for interleaved RGB pixels.
// src must be width*height*3 bytes.
func (t *Transform) Classify(src []byte, width, height int) (*ir.Mask, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	expected := width * height * 3
	if len(src) != expected {
		return nil, fmt.Errorf("expected %d RGB bytes, got %d", expected, len(src))
	}

	mask := ir.NewMask(width, height)
	for i := range mask.Bits {
		off := i * 3
		mask.Bits[i] = Bluish(src[off], src[off+1], src[off+2])
	}
	return mask, nil
}

// Compose renders the mask as interleaved RGB bytes, width*height*3 long.
func (t *Transform) Compose(mask *ir.Mask) []byte {
	dst := make([]byte, len(mask.Bits)*3)
	for i, set := range mask.Bits {
		c := t.Fill
		if set {
			c = t.Match
		}
		off := i * 3
		dst[off] = c.R
		dst[off+1] = c.G
		dst[off+2] = c.B
	}
	return dst
}

// TransformPixels classifies src and composes the recolored output.
// It returns the RGB output together with the mask it was built from.
func (t *Transform) TransformPixels(src []byte, width, height int) ([]byte, *ir.Mask, error) {
	mask, err := t.Classify(src, width, height)
	if err != nil {
		return nil, nil, err
	}
	return t.Compose(mask), mask, nil
}
