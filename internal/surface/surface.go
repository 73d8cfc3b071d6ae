// Package surface provides parametrized 2-surfaces embedded in 3-space.
//
// Each surface supplies its embedding and closed-form first and second
// partial derivatives. The metric and geodesic packages are generic over
// the [Surface] interface; the variants here are:
//
//   - [Ellipsoid]: triaxial ellipsoid in a polar chart
//   - [Bump]: Gaussian bump height function, embedded via [HeightField]
//   - [HeightField]: graph z = f(x, y) of any scalar [Field]
//
// Singular loci (ellipsoid poles, point-mass centers of a potential field)
// are not handled here; callers bound trajectories and grids away from them.
package surface

import "github.com/tobiasosborne/generalrelativity/internal/geom"

// Surface is a chart with analytic derivatives up to second order.
type Surface interface {
	Name() string

	// Embed maps a chart point to the ambient 3-space.
	Embed(p geom.Point) geom.Vec3

	// Jacobian returns the first partials dX/du^i of the embedding.
	Jacobian(p geom.Point) [2]geom.Vec3

	// Hessian returns the second partials d^2X/du^i du^j, symmetric in (i, j).
	Hessian(p geom.Point) [2][2]geom.Vec3
}

// Field is a scalar function on the plane with derivatives up to second order.
type Field interface {
	Eval(x, y float64) float64
	Grad(x, y float64) (fx, fy float64)
	Hess(x, y float64) (fxx, fxy, fyy float64)
}
