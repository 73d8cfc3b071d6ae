package scenario

import (
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/config"
	"github.com/tobiasosborne/generalrelativity/internal/emit"
	"github.com/tobiasosborne/generalrelativity/internal/geodesic"
	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/metric"
	"github.com/tobiasosborne/generalrelativity/internal/report"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

// Ellipsoid integrates a geodesic with a parallel-transported vector over
// a triaxial ellipsoid, terminating early near the chart poles, and
// samples the chart's area element for the surface figure.
type Ellipsoid struct{}

func (e *Ellipsoid) Name() string { return "ellipsoid" }

func (e *Ellipsoid) Surface(cfg *config.Config) (surface.Surface, []geom.Point) {
	p := cfg.Ellipsoid
	surf := surface.NewEllipsoid(p.A, p.B, p.C)
	probes := metric.GridPoints(0.4, math.Pi-0.4, 0.2, 2*math.Pi-0.2, 9)
	return surf, probes
}

func (e *Ellipsoid) Run(cfg *config.Config, em *emit.Emitter) error {
	p := cfg.Ellipsoid
	surf, err := startupCheck(e, cfg)
	if err != nil {
		return err
	}

	grid := areaElementGrid(surf, p)
	if err := em.WriteGrid("ellipsoid_area.dat", []string{"theta", "phi", "sqrt_det_g"}, grid); err != nil {
		return err
	}

	nearPole := func(pt geom.Point) bool {
		return pt[0] < p.PoleMargin || pt[0] > math.Pi-p.PoleMargin
	}
	gcfg := integratorConfig(cfg, p.SMax, nearPole)
	traj := geodesic.Integrate(surf, geom.Point{math.Pi / 3, 0}, geom.Vec2{0.3, 1.0}, true, gcfg)
	if traj.Err != nil {
		report.Warnf("geodesic aborted, keeping %d samples: %v", len(traj.Samples), traj.Err)
	}
	report.Conservation("geodesic", traj.SpeedResidual, traj.OrthoResidual, traj.TransportResidual, true)

	curve := make([][]float64, 0, len(traj.Samples))
	for _, smp := range traj.Samples {
		x := surf.Embed(smp.Point)
		curve = append(curve, []float64{x[0], x[1], x[2]})
	}
	if err := em.WriteCurve("ellipsoid_geodesic.dat", []string{"x", "y", "z"}, curve); err != nil {
		return err
	}

	return em.WriteGlyphs("ellipsoid_transport.dat", transportGlyphs(surf, traj, p.GlyphCount))
}

func areaElementGrid(surf surface.Surface, p config.EllipsoidConfig) *emit.Grid {
	grid := &emit.Grid{
		U1: linspace(p.PoleMargin, math.Pi-p.PoleMargin, p.GridRes),
		U2: linspace(0, 2*math.Pi, p.GridRes),
	}
	for _, theta := range grid.U1 {
		row := make([]float64, 0, len(grid.U2))
		for _, phi := range grid.U2 {
			g := metric.Induced(surf, geom.Point{theta, phi})
			row = append(row, math.Sqrt(g.Det()))
		}
		grid.Values = append(grid.Values, row)
	}
	return grid
}

// transportGlyphs subsamples a trajectory and pushes the transported
// vector forward into the ambient space for rendering as arrows.
func transportGlyphs(surf surface.Surface, traj *geodesic.Trajectory, count int) [][]float64 {
	if len(traj.Samples) == 0 || count < 1 {
		return nil
	}
	stride := len(traj.Samples) / count
	if stride < 1 {
		stride = 1
	}
	rows := make([][]float64, 0, count)
	for i := 0; i < len(traj.Samples); i += stride {
		smp := traj.Samples[i]
		x := surf.Embed(smp.Point)
		jac := surf.Jacobian(smp.Point)
		w := jac[0].Scale(smp.Transport[0]).Add(jac[1].Scale(smp.Transport[1]))
		rows = append(rows, []float64{x[0], x[1], x[2], w[0], w[1], w[2]})
	}
	return rows
}
