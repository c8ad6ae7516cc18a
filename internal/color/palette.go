package color

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// PaletteMethod selects how dominant colors are extracted from an image.
type PaletteMethod int

const (
	PaletteDominant PaletteMethod = iota
	PaletteKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteKMeans:
		return "kmeans"
	default:
		return "dominant"
	}
}

// ParsePaletteMethod converts a method name to a PaletteMethod.
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch s {
	case "dominant", "dominantcolor":
		return PaletteDominant, nil
	case "kmeans":
		return PaletteKMeans, nil
	default:
		return 0, fmt.Errorf("unknown palette method: %q", s)
	}
}

// Swatch is one extracted palette entry.
type Swatch struct {
	Color  imgcolor.RGBA
	Weight float64 // share of the sampled pixels, 0..1
}

// maxSamples bounds the number of pixels fed to kmeans.
const maxSamples = 12000

// ExtractPalette returns up to k swatches ordered by weight, heaviest first.
func ExtractPalette(img image.Image, k int, method PaletteMethod) ([]Swatch, error) {
	if k <= 0 {
		return nil, fmt.Errorf("palette size must be positive, got %d", k)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, nil
	}

	var swatches []Swatch
	var err error
	switch method {
	case PaletteKMeans:
		swatches, err = kmeansPalette(img, k)
	default:
		swatches = dominantPalette(img, k)
	}
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(swatches, func(a, b Swatch) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return 0
	})
	return swatches, nil
}

func dominantPalette(img image.Image, k int) []Swatch {
	found := dominantcolor.FindWeight(img, k)
	out := make([]Swatch, 0, len(found))
	for _, c := range found {
		out = append(out, Swatch{Color: c.RGBA, Weight: c.Weight})
	}
	return out
}

func kmeansPalette(img image.Image, k int) ([]Swatch, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	// Subsample to keep kmeans tractable on large images.
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, nil
	}

	cc, err := kmeans.New().Partition(dataset, min(k, len(dataset)))
	if err != nil {
		return nil, fmt.Errorf("kmeans: %w", err)
	}

	out := make([]Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		r, g, bl := col.RGB255()
		out = append(out, Swatch{
			Color:  imgcolor.RGBA{R: r, G: g, B: bl, A: 0xff},
			Weight: float64(len(c.Observations)) / float64(len(dataset)),
		})
	}
	return out, nil
}
