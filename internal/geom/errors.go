package geom

import (
	"errors"
	"fmt"
)

// Domain errors for the geometry kernel.
var (
	// ErrDegenerateMetric indicates a metric determinant below tolerance,
	// i.e. a parametrization singularity at the query point.
	ErrDegenerateMetric = errors.New("geom: degenerate metric (determinant below tolerance)")

	// ErrSelfTest indicates the analytic and finite-difference connection
	// coefficients disagree beyond tolerance. Fatal for the scenario run.
	ErrSelfTest = errors.New("geom: analytic vs finite-difference self-test failed")

	// ErrStepTooSmall indicates the adaptive step collapsed below minimum.
	ErrStepTooSmall = errors.New("geom: adaptive step below minimum")

	// ErrDiverged indicates NaN or Inf propagated into the integrator state.
	ErrDiverged = errors.New("geom: non-finite integrator state")

	// ErrNoConvergence indicates the root iteration cap was exceeded.
	ErrNoConvergence = errors.New("geom: root finding did not converge")
)

// TrajectoryError wraps an integration failure with the affine parameter
// and step index at which it occurred.
type TrajectoryError struct {
	S       float64
	Step    int
	Wrapped error
}

func (e *TrajectoryError) Error() string {
	return fmt.Sprintf("step %d (s=%.6f): %v", e.Step, e.S, e.Wrapped)
}

func (e *TrajectoryError) Unwrap() error {
	return e.Wrapped
}
