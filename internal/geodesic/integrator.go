// Package geodesic integrates the geodesic equation, and optionally a
// coupled parallel-transport equation, over a parametrized surface using
// adaptive Dormand-Prince stepping.
package geodesic

import (
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/metric"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

// State is the flattened phase vector [u1, u2, v1, v2] or, when a vector
// is transported, [u1, u2, v1, v2, w1, w2].
type State []float64

func (y State) Clone() State {
	c := make(State, len(y))
	copy(c, y)
	return c
}

func (y State) IsValid() bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is a first-order ODE right-hand side dy/ds = f(y, s).
type System interface {
	Derive(y State, s float64) State
	Dim() int
}

// system couples du/ds = v, dv^l/ds = -Gamma^l_mn v^m v^n and, when
// transporting, dw^l/ds = -Gamma^l_mn v^m w^n. A degenerate metric query
// poisons the derivative with NaN, which the driver detects and reports;
// boundary predicates are expected to keep trajectories out of such
// regions in the first place.
type system struct {
	surf      surface.Surface
	transport bool
}

func (g *system) Dim() int {
	if g.transport {
		return 6
	}
	return 4
}

func (g *system) Derive(y State, _ float64) State {
	p := geom.Point{y[0], y[1]}
	gamma, err := metric.At(g.surf, p)
	out := make(State, g.Dim())
	if err != nil {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	v := geom.Vec2{y[2], y[3]}
	out[0], out[1] = v[0], v[1]
	for l := 0; l < 2; l++ {
		acc := 0.0
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				acc += gamma[l][m][n] * v[m] * v[n]
			}
		}
		out[2+l] = -acc
	}
	if g.transport {
		w := geom.Vec2{y[4], y[5]}
		for l := 0; l < 2; l++ {
			acc := 0.0
			for m := 0; m < 2; m++ {
				for n := 0; n < 2; n++ {
					acc += gamma[l][m][n] * v[m] * w[n]
				}
			}
			out[4+l] = -acc
		}
	}
	return out
}

// Config controls one integration run. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	SMax        float64
	InitialStep float64
	AbsTol      float64
	RelTol      float64
	MinStep     float64
	MaxStep     float64
	MaxSteps    int

	// Boundary, when non-nil, stops the run as soon as an accepted sample
	// satisfies it. Samples already produced are kept.
	Boundary func(p geom.Point) bool
}

func DefaultConfig() Config {
	return Config{
		SMax:        8.0,
		InitialStep: 1e-3,
		AbsTol:      1e-10,
		RelTol:      1e-10,
		MinStep:     1e-13,
		MaxStep:     0.1,
		MaxSteps:    500000,
	}
}

// Sample is one point of a trajectory, indexed by affine parameter.
type Sample struct {
	S         float64
	Point     geom.Point
	Velocity  geom.Vec2
	Transport geom.Vec2 // meaningful only when the run carried a vector
}

// Trajectory is the immutable result of one integration call. Err, when
// non-nil, marks a divergent run whose partial samples are still valid.
type Trajectory struct {
	Samples     []Sample
	Transported bool
	Terminated  bool // boundary predicate fired
	Err         error

	// Conservation residuals at the final sample, relative to the initial
	// values. Correctness probes: they flag output, never gate it.
	SpeedResidual     float64 // |g(v,v) - g(v,v)_0|
	OrthoResidual     float64 // |g(v,w) - g(v,w)_0|
	TransportResidual float64 // |g(w,w) - g(w,w)_0|
}

// Normalize rescales v to unit metric norm at p.
func Normalize(s surface.Surface, p geom.Point, v geom.Vec2) geom.Vec2 {
	g := metric.Induced(s, p)
	return v.Scale(1 / math.Sqrt(g.Inner(v, v)))
}

// OrthogonalUnit returns a unit vector metric-orthogonal to v at p,
// solving g(v, w) = 0 for one component with the other fixed.
func OrthogonalUnit(s surface.Surface, p geom.Point, v geom.Vec2) geom.Vec2 {
	g := metric.Induced(s, p)
	a := g[0][0]*v[0] + g[1][0]*v[1]
	b := g[0][1]*v[0] + g[1][1]*v[1]
	var w geom.Vec2
	if math.Abs(b) > math.Abs(a) {
		w = geom.Vec2{1, -a / b}
	} else {
		w = geom.Vec2{-b / a, 1}
	}
	return Normalize(s, p, w)
}

// Integrate solves the geodesic equation from p0. The initial velocity is
// rescaled to unit speed; when withTransport is set, a metric-orthogonal
// unit vector is carried along by parallel transport.
func Integrate(surf surface.Surface, p0 geom.Point, v0 geom.Vec2, withTransport bool, cfg Config) *Trajectory {
	v := Normalize(surf, p0, v0)
	y := State{p0[0], p0[1], v[0], v[1]}
	if withTransport {
		w := OrthogonalUnit(surf, p0, v)
		y = append(y, w[0], w[1])
	}

	sys := &system{surf: surf, transport: withTransport}
	stepper := NewRK45()
	traj := &Trajectory{Transported: withTransport}
	traj.Samples = append(traj.Samples, toSample(0, y))

	s := 0.0
	ds := cfg.InitialStep
	for step := 0; s < cfg.SMax && step < cfg.MaxSteps; step++ {
		if ds > cfg.SMax-s {
			ds = cfg.SMax - s
		}

		yNew, errRatio, dsNext := stepper.StepAdaptive(sys, y, s, ds, cfg.AbsTol, cfg.RelTol)
		if !yNew.IsValid() {
			traj.Err = &geom.TrajectoryError{S: s, Step: step, Wrapped: geom.ErrDiverged}
			break
		}
		if errRatio > 1 {
			if dsNext < cfg.MinStep {
				traj.Err = &geom.TrajectoryError{S: s, Step: step, Wrapped: geom.ErrStepTooSmall}
				break
			}
			ds = dsNext
			continue
		}

		s += ds
		y = yNew
		ds = math.Min(dsNext, cfg.MaxStep)
		traj.Samples = append(traj.Samples, toSample(s, y))

		if cfg.Boundary != nil && cfg.Boundary(geom.Point{y[0], y[1]}) {
			traj.Terminated = true
			break
		}
	}

	traj.measureResiduals(surf)
	return traj
}

func toSample(s float64, y State) Sample {
	smp := Sample{
		S:        s,
		Point:    geom.Point{y[0], y[1]},
		Velocity: geom.Vec2{y[2], y[3]},
	}
	if len(y) == 6 {
		smp.Transport = geom.Vec2{y[4], y[5]}
	}
	return smp
}

func (t *Trajectory) measureResiduals(surf surface.Surface) {
	if len(t.Samples) < 2 {
		return
	}
	first := t.Samples[0]
	last := t.Samples[len(t.Samples)-1]
	g0 := metric.Induced(surf, first.Point)
	g1 := metric.Induced(surf, last.Point)
	t.SpeedResidual = math.Abs(g1.Inner(last.Velocity, last.Velocity) - g0.Inner(first.Velocity, first.Velocity))
	if t.Transported {
		t.OrthoResidual = math.Abs(g1.Inner(last.Velocity, last.Transport) - g0.Inner(first.Velocity, first.Transport))
		t.TransportResidual = math.Abs(g1.Inner(last.Transport, last.Transport) - g0.Inner(first.Transport, first.Transport))
	}
}

// SpeedDrift returns the worst deviation of g(v,v) from its initial value
// over the whole trajectory.
func (t *Trajectory) SpeedDrift(surf surface.Surface) float64 {
	if len(t.Samples) == 0 {
		return 0
	}
	first := t.Samples[0]
	initial := metric.Induced(surf, first.Point).Inner(first.Velocity, first.Velocity)
	worst := 0.0
	for _, smp := range t.Samples {
		g := metric.Induced(surf, smp.Point)
		worst = math.Max(worst, math.Abs(g.Inner(smp.Velocity, smp.Velocity)-initial))
	}
	return worst
}

// TransportDrift returns the worst deviations of g(v,w) and g(w,w) from
// their initial values. Zero for runs without a transported vector.
func (t *Trajectory) TransportDrift(surf surface.Surface) (ortho, norm float64) {
	if !t.Transported || len(t.Samples) == 0 {
		return 0, 0
	}
	first := t.Samples[0]
	g0 := metric.Induced(surf, first.Point)
	ortho0 := g0.Inner(first.Velocity, first.Transport)
	norm0 := g0.Inner(first.Transport, first.Transport)
	for _, smp := range t.Samples {
		g := metric.Induced(surf, smp.Point)
		ortho = math.Max(ortho, math.Abs(g.Inner(smp.Velocity, smp.Transport)-ortho0))
		norm = math.Max(norm, math.Abs(g.Inner(smp.Transport, smp.Transport)-norm0))
	}
	return ortho, norm
}
