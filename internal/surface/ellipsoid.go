package surface

import (
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/geom"
)

// Ellipsoid is the triaxial ellipsoid chart
//
//	X(theta, phi) = (a sin(theta) cos(phi), b sin(theta) sin(phi), c cos(theta))
//
// with theta in (0, pi) and phi periodic. The poles theta = 0, pi are chart
// singularities where the metric degenerates.
type Ellipsoid struct {
	A, B, C float64
}

func NewEllipsoid(a, b, c float64) *Ellipsoid {
	return &Ellipsoid{A: a, B: b, C: c}
}

func (e *Ellipsoid) Name() string { return "ellipsoid" }

func (e *Ellipsoid) Embed(p geom.Point) geom.Vec3 {
	st, ct := math.Sincos(p[0])
	sp, cp := math.Sincos(p[1])
	return geom.Vec3{e.A * st * cp, e.B * st * sp, e.C * ct}
}

func (e *Ellipsoid) Jacobian(p geom.Point) [2]geom.Vec3 {
	st, ct := math.Sincos(p[0])
	sp, cp := math.Sincos(p[1])
	return [2]geom.Vec3{
		{e.A * ct * cp, e.B * ct * sp, -e.C * st},
		{-e.A * st * sp, e.B * st * cp, 0},
	}
}

func (e *Ellipsoid) Hessian(p geom.Point) [2][2]geom.Vec3 {
	st, ct := math.Sincos(p[0])
	sp, cp := math.Sincos(p[1])
	tt := geom.Vec3{-e.A * st * cp, -e.B * st * sp, -e.C * ct}
	tp := geom.Vec3{-e.A * ct * sp, e.B * ct * cp, 0}
	pp := geom.Vec3{-e.A * st * cp, -e.B * st * sp, 0}
	return [2][2]geom.Vec3{
		{tt, tp},
		{tp, pp},
	}
}
