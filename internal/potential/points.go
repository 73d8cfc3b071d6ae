package potential

import (
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/rootfind"
)

// LagrangePoint is a labeled equilibrium of the effective potential.
// Collinear points carry the Newton iteration record; triangular points
// come from the equilateral closed form and need zero iterations.
type LagrangePoint struct {
	Label      string
	X, Y       float64
	Iterations int
	Converged  bool
}

// Collinear locates one of L1-L3 by Newton iteration on the on-axis
// gradient dPhi/dx from the given seed.
func (p *RotatingFrame) Collinear(label string, x0 float64) LagrangePoint {
	f := func(x float64) float64 {
		fx, _ := p.Grad(x, 0)
		return fx
	}
	fp := func(x float64) float64 {
		fxx, _, _ := p.Hess(x, 0)
		return fxx
	}
	res := rootfind.Newton(f, fp, x0, rootfind.DefaultTol, rootfind.DefaultMaxIter)
	return LagrangePoint{
		Label:      label,
		X:          res.Root,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}
}

// Triangular returns L4 and L5, which sit at the equilateral-triangle
// configuration (1/2 - mu, +-sqrt(3)/2) relative to the two masses.
func (p *RotatingFrame) Triangular() (LagrangePoint, LagrangePoint) {
	x := 0.5 - p.Mu
	y := math.Sqrt(3) / 2
	l4 := LagrangePoint{Label: "L4", X: x, Y: y, Converged: true}
	l5 := LagrangePoint{Label: "L5", X: x, Y: -y, Converged: true}
	return l4, l5
}

// Points returns all five equilibria. l1Seed starts the L1 iteration;
// the L2 and L3 seeds come from the standard Hill-radius estimates.
func (p *RotatingFrame) Points(l1Seed float64) []LagrangePoint {
	hill := math.Cbrt(p.Mu / 3)
	l1 := p.Collinear("L1", l1Seed)
	l2 := p.Collinear("L2", 1+hill)
	l3 := p.Collinear("L3", -1-5*p.Mu/12)
	l4, l5 := p.Triangular()
	return []LagrangePoint{l1, l2, l3, l4, l5}
}
