// Package rootfind provides one-dimensional Newton-Raphson iteration.
package rootfind

import "math"

const (
	// DefaultTol is the step-size convergence threshold.
	DefaultTol = 1e-12

	// DefaultMaxIter caps the iteration count.
	DefaultMaxIter = 50
)

// Result holds the final iterate of a Newton run. When Converged is false
// the Root field still carries the last iterate so callers can report it.
type Result struct {
	Root       float64
	Residual   float64 // f evaluated at Root
	Iterations int
	Converged  bool
}

// Newton iterates x -= f(x)/fprime(x) from x0 until the step magnitude
// falls below tol or maxIter is reached. A vanishing derivative stops the
// iteration immediately with Converged false.
func Newton(f, fprime func(float64) float64, x0, tol float64, maxIter int) Result {
	x := x0
	for i := 1; i <= maxIter; i++ {
		fx := f(x)
		d := fprime(x)
		if d == 0 {
			return Result{Root: x, Residual: fx, Iterations: i, Converged: false}
		}
		step := fx / d
		x -= step
		if math.Abs(step) < tol {
			return Result{Root: x, Residual: f(x), Iterations: i, Converged: true}
		}
	}
	return Result{Root: x, Residual: f(x), Iterations: maxIter, Converged: false}
}
