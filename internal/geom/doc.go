// Package geom provides the fixed-dimension tensor types shared by the
// surface, metric and geodesic packages:
//
//   - [Point]: position in a 2-D chart domain
//   - [Vec2]: tangent vector in chart coordinates
//   - [Vec3]: position or direction in the ambient embedding space
//   - [Metric]: induced metric tensor g_ij
//   - [Christoffel]: connection coefficients of the metric
//
// All types are stack-allocated arrays. The innermost integration loop
// recomputes the connection at every step, so these types must not allocate.
package geom
