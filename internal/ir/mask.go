package ir

// Mask is the intermediate representation passed between the classifier and
// the compositor. Bits holds one entry per pixel in row-major order.
type Mask struct {
	Width  int
	Height int
	Bits   []bool // len = Width * Height
}

// NewMask allocates an all-false mask of the given size.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Bits:   make([]bool, width*height),
	}
}

// At reports the classification of pixel (x, y).
func (m *Mask) At(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Set records the classification of pixel (x, y).
func (m *Mask) Set(x, y int, v bool) {
	m.Bits[y*m.Width+x] = v
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Coverage returns the fraction of set pixels, 0 for an empty mask.
func (m *Mask) Coverage() float64 {
	if len(m.Bits) == 0 {
		return 0
	}
	return float64(m.Count()) / float64(len(m.Bits))
}
