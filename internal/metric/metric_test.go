package metric

import (
	"errors"
	"math"
	"testing"

	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/potential"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

func interiorGrids() map[string]struct {
	surf surface.Surface
	pts  []geom.Point
} {
	return map[string]struct {
		surf surface.Surface
		pts  []geom.Point
	}{
		"ellipsoid": {
			surf: surface.NewEllipsoid(1.5, 1.0, 0.7),
			pts:  GridPoints(0.3, math.Pi-0.3, 0.1, 2*math.Pi-0.1, 15),
		},
		"bump": {
			surf: surface.NewBump().Surface(),
			pts:  GridPoints(-2.5, 2.5, -2.5, 2.5, 15),
		},
		"potential": {
			surf: surface.NewHeightField("potential", potential.NewRotatingFrame(0.01)),
			pts:  GridPoints(-1.2, 1.2, 0.3, 1.2, 15),
		},
	}
}

func TestMetricSymmetricPositiveDefinite(t *testing.T) {
	for name, tc := range interiorGrids() {
		t.Run(name, func(t *testing.T) {
			for _, p := range tc.pts {
				g := Induced(tc.surf, p)
				if g[0][1] != g[1][0] {
					t.Fatalf("metric not symmetric at %v: %v", p, g)
				}
				hi, lo := g.Eigenvalues()
				if lo <= 0 || hi <= 0 {
					t.Fatalf("non-positive eigenvalue at %v: (%g, %g)", p, hi, lo)
				}
			}
		})
	}
}

func TestDerivativesMatchFiniteDifference(t *testing.T) {
	for name, tc := range interiorGrids() {
		t.Run(name, func(t *testing.T) {
			for _, p := range tc.pts {
				da := Derivatives(tc.surf, p)
				df := DerivativesFD(tc.surf, p)
				for k := 0; k < 2; k++ {
					for i := 0; i < 2; i++ {
						for j := 0; j < 2; j++ {
							scale := math.Max(1, math.Abs(da[k][i][j]))
							if math.Abs(da[k][i][j]-df[k][i][j])/scale > 1e-5 {
								t.Fatalf("derivative mismatch at %v [%d][%d][%d]: %g vs %g",
									p, k, i, j, da[k][i][j], df[k][i][j])
							}
						}
					}
				}
			}
		})
	}
}

func TestSelfTestPasses(t *testing.T) {
	for name, tc := range interiorGrids() {
		t.Run(name, func(t *testing.T) {
			residual, err := SelfTest(tc.surf, tc.pts)
			if err != nil {
				t.Fatalf("self-test failed: %v", err)
			}
			if residual > SelfTestTol {
				t.Errorf("residual %g above tolerance", residual)
			}
		})
	}
}

func TestInverseDegenerateAtPole(t *testing.T) {
	e := surface.NewEllipsoid(1.5, 1.0, 0.7)
	g := Induced(e, geom.Point{0, 0})
	_, err := Inverse(g)
	if !errors.Is(err, geom.ErrDegenerateMetric) {
		t.Fatalf("expected ErrDegenerateMetric at pole, got %v", err)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	e := surface.NewEllipsoid(1.5, 1.0, 0.7)
	g := Induced(e, geom.Point{1.1, 0.7})
	inv, err := Inverse(g)
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			prod := g[i][0]*inv[0][j] + g[i][1]*inv[1][j]
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod-want) > 1e-12 {
				t.Errorf("g g^-1 [%d][%d] = %g, want %g", i, j, prod, want)
			}
		}
	}
}
