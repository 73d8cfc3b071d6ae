// Package metric computes induced metrics, their derivatives and the
// Christoffel symbols of a parametrized surface. Everything here is a pure
// function of a [surface.Surface] and a chart point; the geodesic package
// queries it at every integration step.
package metric

import (
	"fmt"
	"math"

	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

const (
	// DetTol is the determinant floor below which a metric is treated as
	// degenerate (a parametrization singularity).
	DetTol = 1e-12

	// FDStep is the step for central-difference metric derivatives.
	FDStep = 1e-6
)

// Induced returns the metric g_ij = J_i . J_j, the Gram matrix of the
// embedding Jacobian.
func Induced(s surface.Surface, p geom.Point) geom.Metric {
	jac := s.Jacobian(p)
	var g geom.Metric
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			g[i][j] = jac[i].Dot(jac[j])
		}
	}
	return g
}

// Inverse inverts the metric, failing with ErrDegenerateMetric when the
// determinant falls below DetTol.
func Inverse(g geom.Metric) (geom.Metric, error) {
	det := g.Det()
	if math.Abs(det) < DetTol {
		return geom.Metric{}, fmt.Errorf("det=%.3e: %w", det, geom.ErrDegenerateMetric)
	}
	return geom.Metric{
		{g[1][1] / det, -g[0][1] / det},
		{-g[1][0] / det, g[0][0] / det},
	}, nil
}

// Derivatives returns dg_ij/du^k from the closed-form Jacobian and Hessian:
// d_k g_ij = H_ik . J_j + J_i . H_jk.
func Derivatives(s surface.Surface, p geom.Point) geom.MetricDeriv {
	jac := s.Jacobian(p)
	hes := s.Hessian(p)
	var d geom.MetricDeriv
	for k := 0; k < 2; k++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				d[k][i][j] = hes[i][k].Dot(jac[j]) + jac[i].Dot(hes[j][k])
			}
		}
	}
	return d
}

// DerivativesFD returns dg_ij/du^k by symmetric central differences of the
// induced metric. Used only to cross-check Derivatives in the self-test.
func DerivativesFD(s surface.Surface, p geom.Point) geom.MetricDeriv {
	var d geom.MetricDeriv
	for k := 0; k < 2; k++ {
		plus, minus := p, p
		plus[k] += FDStep
		minus[k] -= FDStep
		gp := Induced(s, plus)
		gm := Induced(s, minus)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				d[k][i][j] = (gp[i][j] - gm[i][j]) / (2 * FDStep)
			}
		}
	}
	return d
}
