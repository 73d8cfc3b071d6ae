package metric

import (
	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

// Christoffel assembles the connection coefficients
//
//	Gamma^l_mn = 1/2 g^ls (d_n g_sm + d_m g_sn - d_s g_mn)
//
// from an inverse metric and a metric derivative tensor. The result is
// symmetric in the last two indices.
func Christoffel(inv geom.Metric, d geom.MetricDeriv) geom.Christoffel {
	var c geom.Christoffel
	for l := 0; l < 2; l++ {
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				sum := 0.0
				for s := 0; s < 2; s++ {
					sum += inv[l][s] * (d[n][s][m] + d[m][s][n] - d[s][m][n])
				}
				c[l][m][n] = 0.5 * sum
			}
		}
	}
	return c
}

// At evaluates the connection at a chart point using analytic metric
// derivatives. This is the per-step kernel of the geodesic integrator.
func At(s surface.Surface, p geom.Point) (geom.Christoffel, error) {
	inv, err := Inverse(Induced(s, p))
	if err != nil {
		return geom.Christoffel{}, err
	}
	return Christoffel(inv, Derivatives(s, p)), nil
}
