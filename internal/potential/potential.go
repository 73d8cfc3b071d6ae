// Package potential models the effective potential of the circular
// restricted three-body problem in co-rotating coordinates, and locates
// its five equilibria (the Lagrange points).
package potential

import "math"

// RotatingFrame is the rotating-frame effective potential
//
//	Phi(x, y) = -(1-mu)/r1 - mu/r2 - (x^2+y^2)/2
//
// in units where the mass separation and angular velocity are 1. The
// primary (mass 1-mu) sits at (-mu, 0), the secondary (mass mu) at
// (1-mu, 0). Phi diverges at both mass points; grid sampling excludes a
// small disk around each.
type RotatingFrame struct {
	Mu float64
}

func NewRotatingFrame(mu float64) *RotatingFrame {
	return &RotatingFrame{Mu: mu}
}

// Primary returns the position of the larger mass.
func (p *RotatingFrame) Primary() (float64, float64) { return -p.Mu, 0 }

// Secondary returns the position of the smaller mass.
func (p *RotatingFrame) Secondary() (float64, float64) { return 1 - p.Mu, 0 }

func (p *RotatingFrame) radii(x, y float64) (float64, float64) {
	dx1 := x + p.Mu
	dx2 := x - 1 + p.Mu
	return math.Hypot(dx1, y), math.Hypot(dx2, y)
}

func (p *RotatingFrame) Eval(x, y float64) float64 {
	r1, r2 := p.radii(x, y)
	return -(1-p.Mu)/r1 - p.Mu/r2 - (x*x+y*y)/2
}

func (p *RotatingFrame) Grad(x, y float64) (float64, float64) {
	r1, r2 := p.radii(x, y)
	c1 := (1 - p.Mu) / (r1 * r1 * r1)
	c2 := p.Mu / (r2 * r2 * r2)
	fx := c1*(x+p.Mu) + c2*(x-1+p.Mu) - x
	fy := c1*y + c2*y - y
	return fx, fy
}

func (p *RotatingFrame) Hess(x, y float64) (float64, float64, float64) {
	r1, r2 := p.radii(x, y)
	dx1 := x + p.Mu
	dx2 := x - 1 + p.Mu
	c1 := (1 - p.Mu) / (r1 * r1 * r1)
	c2 := p.Mu / (r2 * r2 * r2)
	q1 := 3 * (1 - p.Mu) / (r1 * r1 * r1 * r1 * r1)
	q2 := 3 * p.Mu / (r2 * r2 * r2 * r2 * r2)
	fxx := c1 + c2 - q1*dx1*dx1 - q2*dx2*dx2 - 1
	fxy := -q1*dx1*y - q2*dx2*y
	fyy := c1 + c2 - q1*y*y - q2*y*y - 1
	return fxx, fxy, fyy
}
