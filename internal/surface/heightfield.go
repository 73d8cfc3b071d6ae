package surface

import "github.com/tobiasosborne/generalrelativity/internal/geom"

// HeightField embeds the graph z = f(x, y) of a scalar field as a surface.
// The chart coordinates are the plane coordinates themselves, so the chart
// is globally non-singular wherever f is finite.
type HeightField struct {
	name string
	f    Field
}

func NewHeightField(name string, f Field) *HeightField {
	return &HeightField{name: name, f: f}
}

func (h *HeightField) Name() string { return h.name }

// Field returns the underlying scalar field.
func (h *HeightField) Field() Field { return h.f }

func (h *HeightField) Embed(p geom.Point) geom.Vec3 {
	return geom.Vec3{p[0], p[1], h.f.Eval(p[0], p[1])}
}

func (h *HeightField) Jacobian(p geom.Point) [2]geom.Vec3 {
	fx, fy := h.f.Grad(p[0], p[1])
	return [2]geom.Vec3{
		{1, 0, fx},
		{0, 1, fy},
	}
}

func (h *HeightField) Hessian(p geom.Point) [2][2]geom.Vec3 {
	fxx, fxy, fyy := h.f.Hess(p[0], p[1])
	xy := geom.Vec3{0, 0, fxy}
	return [2][2]geom.Vec3{
		{{0, 0, fxx}, xy},
		{xy, {0, 0, fyy}},
	}
}
