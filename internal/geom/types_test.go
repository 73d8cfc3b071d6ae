package geom

import (
	"math"
	"testing"
)

func TestMetricDet(t *testing.T) {
	g := Metric{{2, 1}, {1, 2}}
	if got := g.Det(); got != 3 {
		t.Errorf("expected det 3, got %f", got)
	}
}

func TestMetricInner(t *testing.T) {
	g := Metric{{2, 0}, {0, 3}}
	v := Vec2{1, 2}
	if got := g.Inner(v, v); got != 14 {
		t.Errorf("expected g(v,v)=14, got %f", got)
	}

	// Symmetric metric gives a symmetric bilinear form.
	g = Metric{{2, 1}, {1, 3}}
	a := Vec2{1, -2}
	b := Vec2{0.5, 4}
	if math.Abs(g.Inner(a, b)-g.Inner(b, a)) > 1e-15 {
		t.Errorf("inner product not symmetric: %f vs %f", g.Inner(a, b), g.Inner(b, a))
	}
}

func TestMetricEigenvalues(t *testing.T) {
	g := Metric{{2, 0}, {0, 3}}
	hi, lo := g.Eigenvalues()
	if hi != 3 || lo != 2 {
		t.Errorf("expected eigenvalues (3, 2), got (%f, %f)", hi, lo)
	}

	g = Metric{{2, 1}, {1, 2}}
	hi, lo = g.Eigenvalues()
	if math.Abs(hi-3) > 1e-12 || math.Abs(lo-1) > 1e-12 {
		t.Errorf("expected eigenvalues (3, 1), got (%f, %f)", hi, lo)
	}
}

func TestVec3Ops(t *testing.T) {
	v := Vec3{1, 2, 2}
	if v.Norm() != 3 {
		t.Errorf("expected norm 3, got %f", v.Norm())
	}
	if got := v.Dot(Vec3{1, 0, 1}); got != 3 {
		t.Errorf("expected dot 3, got %f", got)
	}
	if got := v.Scale(2).Add(Vec3{0, 0, 1}); got != (Vec3{2, 4, 5}) {
		t.Errorf("unexpected scale/add result: %v", got)
	}
}

func TestTrajectoryErrorUnwrap(t *testing.T) {
	err := &TrajectoryError{S: 1.5, Step: 42, Wrapped: ErrStepTooSmall}
	if err.Unwrap() != ErrStepTooSmall {
		t.Error("Unwrap did not return the wrapped sentinel")
	}
}
