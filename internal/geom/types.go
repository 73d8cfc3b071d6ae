package geom

import "math"

// Point is a position u = (u1, u2) in a chart domain.
type Point [2]float64

// Vec2 is a tangent vector in chart coordinates.
type Vec2 [2]float64

// Vec3 is a point or direction in the ambient 3-space.
type Vec3 [3]float64

// Metric is the induced metric tensor g_ij at one chart point.
// It is symmetric and positive-definite away from chart singularities.
type Metric [2][2]float64

// MetricDeriv holds the coordinate partials of the metric: D[k][i][j] = dg_ij/du^k.
type MetricDeriv [2][2][2]float64

// Christoffel holds connection coefficients: C[l][m][n] = Gamma^l_mn.
// Symmetric in the last two indices.
type Christoffel [2][2][2]float64

func (v Vec2) Scale(f float64) Vec2 { return Vec2{f * v[0], f * v[1]} }

func (v Vec3) Dot(o Vec3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

func (v Vec3) Scale(f float64) Vec3 { return Vec3{f * v[0], f * v[1], f * v[2]} }

func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Det returns the determinant of the metric.
func (g Metric) Det() float64 { return g[0][0]*g[1][1] - g[0][1]*g[1][0] }

// Inner returns the metric inner product a^i g_ij b^j.
func (g Metric) Inner(a, b Vec2) float64 {
	return a[0]*(g[0][0]*b[0]+g[0][1]*b[1]) + a[1]*(g[1][0]*b[0]+g[1][1]*b[1])
}

// Trace returns g_00 + g_11.
func (g Metric) Trace() float64 { return g[0][0] + g[1][1] }

// Eigenvalues returns the two real eigenvalues of the symmetric metric,
// largest first. Both must be positive on the admissible domain.
func (g Metric) Eigenvalues() (float64, float64) {
	tr := g.Trace()
	disc := math.Sqrt(tr*tr/4 - g.Det())
	return tr/2 + disc, tr/2 - disc
}
