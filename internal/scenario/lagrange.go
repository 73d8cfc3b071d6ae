package scenario

import (
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/config"
	"github.com/tobiasosborne/generalrelativity/internal/emit"
	"github.com/tobiasosborne/generalrelativity/internal/geodesic"
	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/metric"
	"github.com/tobiasosborne/generalrelativity/internal/potential"
	"github.com/tobiasosborne/generalrelativity/internal/report"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

// Lagrange samples the rotating-frame effective potential, locates its
// five equilibria (Newton for the collinear points, closed form for the
// triangular pair), and integrates one geodesic over the potential graph.
type Lagrange struct{}

func (l *Lagrange) Name() string { return "lagrange" }

func (l *Lagrange) Surface(cfg *config.Config) (surface.Surface, []geom.Point) {
	pot := potential.NewRotatingFrame(cfg.Lagrange.Mu)
	surf := surface.NewHeightField("effective-potential", pot)
	// Probes stay off the x axis, clear of both mass points.
	probes := metric.GridPoints(-1.2, 1.2, 0.3, 1.2, 8)
	return surf, probes
}

func (l *Lagrange) Run(cfg *config.Config, em *emit.Emitter) error {
	p := cfg.Lagrange
	surf, err := startupCheck(l, cfg)
	if err != nil {
		return err
	}
	pot := surf.(*surface.HeightField).Field().(*potential.RotatingFrame)

	points := pot.Points(p.L1Seed)
	for _, lp := range points {
		report.CriticalPoint(lp.Label, lp.X, lp.Y, lp.Iterations, lp.Converged)
	}

	if err := em.WriteGrid("lagrange_potential.dat", []string{"x", "y", "phi"}, potentialGrid(pot, p)); err != nil {
		return err
	}

	list := make([]emit.LabeledPoint, 0, len(points)+2)
	px, py := pot.Primary()
	sx, sy := pot.Secondary()
	list = append(list,
		emit.LabeledPoint{X: px, Y: py, Label: "M1"},
		emit.LabeledPoint{X: sx, Y: sy, Label: "M2"},
	)
	for _, lp := range points {
		list = append(list, emit.LabeledPoint{X: lp.X, Y: lp.Y, Label: lp.Label})
	}
	if err := em.WritePoints("lagrange_points.dat", []string{"x", "y", "label"}, list); err != nil {
		return err
	}

	outside := func(pt geom.Point) bool {
		if math.Abs(pt[0]) > p.Box || math.Abs(pt[1]) > p.Box {
			return true
		}
		return nearMass(pot, pt[0], pt[1], p.ExclusionRadius)
	}
	gcfg := integratorConfig(cfg, p.SMax, outside)
	traj := geodesic.Integrate(surf, geom.Point{0, 1.2}, geom.Vec2{1, 0}, false, gcfg)
	if traj.Err != nil {
		report.Warnf("geodesic aborted, keeping %d samples: %v", len(traj.Samples), traj.Err)
	}
	report.Conservation("geodesic", traj.SpeedResidual, 0, 0, false)

	curve := make([][]float64, 0, len(traj.Samples))
	for _, smp := range traj.Samples {
		curve = append(curve, []float64{smp.Point[0], smp.Point[1], pot.Eval(smp.Point[0], smp.Point[1])})
	}
	return em.WriteCurve("lagrange_geodesic.dat", []string{"x", "y", "phi"}, curve)
}

// potentialGrid samples Phi on a square grid, writing NaN inside the
// exclusion disk around each mass so contouring sees a rectangular field.
func potentialGrid(pot *potential.RotatingFrame, p config.LagrangeConfig) *emit.Grid {
	grid := &emit.Grid{
		U1: linspace(-p.Box, p.Box, p.GridRes),
		U2: linspace(-p.Box, p.Box, p.GridRes),
	}
	for _, x := range grid.U1 {
		row := make([]float64, 0, len(grid.U2))
		for _, y := range grid.U2 {
			if nearMass(pot, x, y, p.ExclusionRadius) {
				row = append(row, math.NaN())
			} else {
				row = append(row, pot.Eval(x, y))
			}
		}
		grid.Values = append(grid.Values, row)
	}
	return grid
}

func nearMass(pot *potential.RotatingFrame, x, y, radius float64) bool {
	px, py := pot.Primary()
	sx, sy := pot.Secondary()
	return math.Hypot(x-px, y-py) < radius || math.Hypot(x-sx, y-sy) < radius
}
