package color

import (
	"fmt"
	imgcolor "image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Output colors substituted according to the mask.
var (
	Teal  = imgcolor.RGBA{R: 0x0a, G: 0xba, B: 0xb5, A: 0xff}
	White = imgcolor.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var namedColors = map[string]imgcolor.RGBA{
	"teal":  Teal,
	"white": White,
}

// ParseColor converts a color name or a #rrggbb hex string to an opaque RGBA.
func ParseColor(s string) (imgcolor.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return imgcolor.RGBA{}, fmt.Errorf("unknown color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return imgcolor.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex returns the #rrggbb form of c, ignoring alpha.
func Hex(c imgcolor.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorName returns the registered name for c, or its hex form.
func ColorName(c imgcolor.RGBA) string {
	for name, v := range namedColors {
		if v == c {
			return name
		}
	}
	return Hex(c)
}
