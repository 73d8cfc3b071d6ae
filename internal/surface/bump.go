package surface

import "math"

// Bump is the Gaussian bump height function h(x, y) = A exp(-(x^2+y^2)/(2w^2)).
type Bump struct {
	Amplitude float64
	Width     float64
}

func NewBump() *Bump {
	return &Bump{Amplitude: 1.0, Width: 1.0}
}

func (b *Bump) Eval(x, y float64) float64 {
	w2 := b.Width * b.Width
	return b.Amplitude * math.Exp(-(x*x+y*y)/(2*w2))
}

func (b *Bump) Grad(x, y float64) (float64, float64) {
	h := b.Eval(x, y)
	w2 := b.Width * b.Width
	return -x / w2 * h, -y / w2 * h
}

func (b *Bump) Hess(x, y float64) (float64, float64, float64) {
	h := b.Eval(x, y)
	w2 := b.Width * b.Width
	fxx := (x*x/w2 - 1) / w2 * h
	fxy := x * y / (w2 * w2) * h
	fyy := (y*y/w2 - 1) / w2 * h
	return fxx, fxy, fyy
}

// Surface embeds the bump as a height field.
func (b *Bump) Surface() *HeightField {
	return NewHeightField("bump", b)
}
