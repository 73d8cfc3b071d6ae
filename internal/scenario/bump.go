package scenario

import (
	"fmt"
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/config"
	"github.com/tobiasosborne/generalrelativity/internal/emit"
	"github.com/tobiasosborne/generalrelativity/internal/geodesic"
	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/metric"
	"github.com/tobiasosborne/generalrelativity/internal/report"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

// Bump launches a fan of initially parallel geodesics across a Gaussian
// bump. The bump's curvature focuses the fan; the deflection pattern is
// symmetric under reflection of the launch offsets.
type Bump struct{}

func (b *Bump) Name() string { return "bump" }

func (b *Bump) Surface(cfg *config.Config) (surface.Surface, []geom.Point) {
	bump := &surface.Bump{Amplitude: cfg.Bump.Amplitude, Width: cfg.Bump.Width}
	return bump.Surface(), metric.GridPoints(-2, 2, -2, 2, 9)
}

func (b *Bump) Run(cfg *config.Config, em *emit.Emitter) error {
	p := cfg.Bump
	surf, err := startupCheck(b, cfg)
	if err != nil {
		return err
	}
	field := surf.(*surface.HeightField).Field()

	if err := em.WriteGrid("bump_height.dat", []string{"x", "y", "h"}, heightGrid(field, p)); err != nil {
		return err
	}

	outside := func(pt geom.Point) bool {
		return math.Abs(pt[0]) > p.Box || math.Abs(pt[1]) > p.Box
	}

	offsets := linspace(-p.FanHalf, p.FanHalf, p.FanCount)
	mid := p.FanCount / 2
	for k, y0 := range offsets {
		withTransport := k == mid
		gcfg := integratorConfig(cfg, p.SMax, outside)
		traj := geodesic.Integrate(surf, geom.Point{p.LaunchX, y0}, geom.Vec2{1, 0}, withTransport, gcfg)
		if traj.Err != nil {
			report.Warnf("geodesic %d aborted, keeping %d samples: %v", k+1, len(traj.Samples), traj.Err)
		}
		name := fmt.Sprintf("geodesic %d (y0=%+.3f)", k+1, y0)
		report.Conservation(name, traj.SpeedResidual, traj.OrthoResidual, traj.TransportResidual, withTransport)

		curve := make([][]float64, 0, len(traj.Samples))
		for _, smp := range traj.Samples {
			curve = append(curve, []float64{smp.Point[0], smp.Point[1], field.Eval(smp.Point[0], smp.Point[1])})
		}
		if err := em.WriteCurve(fmt.Sprintf("bump_geodesic_%d.dat", k+1), []string{"x", "y", "h"}, curve); err != nil {
			return err
		}
		if withTransport {
			if err := em.WriteGlyphs("bump_transport.dat", transportGlyphs(surf, traj, p.GlyphCount)); err != nil {
				return err
			}
		}
	}
	return nil
}

func heightGrid(field surface.Field, p config.BumpConfig) *emit.Grid {
	grid := &emit.Grid{
		U1: linspace(-p.Box, p.Box, p.GridRes),
		U2: linspace(-p.Box, p.Box, p.GridRes),
	}
	for _, x := range grid.U1 {
		row := make([]float64, 0, len(grid.U2))
		for _, y := range grid.U2 {
			row = append(row, field.Eval(x, y))
		}
		grid.Values = append(grid.Values, row)
	}
	return grid
}
