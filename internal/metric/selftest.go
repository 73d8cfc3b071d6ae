package metric

import (
	"fmt"
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

// SelfTestTol bounds the relative disagreement between connection
// coefficients computed from analytic and finite-difference metric
// derivatives. A residual above it indicates a defect in the surface
// formulas, not a runtime condition, so it aborts the scenario run.
const SelfTestTol = 1e-5

// SelfTest cross-checks the two derivative paths at the given probe points
// and returns the worst relative residual. Every scenario must run this,
// and pass, before any sampling or integration.
func SelfTest(s surface.Surface, points []geom.Point) (float64, error) {
	worst := 0.0
	for _, p := range points {
		inv, err := Inverse(Induced(s, p))
		if err != nil {
			return 0, fmt.Errorf("self-test probe (%.4f, %.4f): %w", p[0], p[1], err)
		}
		ca := Christoffel(inv, Derivatives(s, p))
		cf := Christoffel(inv, DerivativesFD(s, p))
		for l := 0; l < 2; l++ {
			for m := 0; m < 2; m++ {
				for n := 0; n < 2; n++ {
					scale := math.Max(1, math.Abs(ca[l][m][n]))
					rel := math.Abs(ca[l][m][n]-cf[l][m][n]) / scale
					if rel > worst {
						worst = rel
					}
				}
			}
		}
	}
	if worst > SelfTestTol {
		return worst, fmt.Errorf("residual %.3e exceeds %.0e on %s: %w",
			worst, SelfTestTol, s.Name(), geom.ErrSelfTest)
	}
	return worst, nil
}

// GridPoints returns an n-by-n rectangular probe grid over the given
// closed chart rectangle, for self-tests and property tests.
func GridPoints(u1min, u1max, u2min, u2max float64, n int) []geom.Point {
	pts := make([]geom.Point, 0, n*n)
	for i := 0; i < n; i++ {
		u1 := u1min + (u1max-u1min)*float64(i)/float64(n-1)
		for j := 0; j < n; j++ {
			u2 := u2min + (u2max-u2min)*float64(j)/float64(n-1)
			pts = append(pts, geom.Point{u1, u2})
		}
	}
	return pts
}
