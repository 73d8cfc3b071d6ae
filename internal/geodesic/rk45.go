package geodesic

import "math"

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

// RK45 is an adaptive Dormand-Prince Runge-Kutta stepper. The attempted
// step is accepted only when the embedded error estimate stays within the
// combined absolute/relative tolerance.
type RK45 struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewRK45() *RK45 {
	return &RK45{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

// StepAdaptive attempts one step of size ds. It returns the candidate
// state, the error ratio (accept when <= 1) and the suggested next step.
// On rejection the caller retries with the suggested, smaller step.
func (r *RK45) StepAdaptive(sys System, y State, s, ds, atol, rtol float64) (State, float64, float64) {
	n := len(y)

	k1 := sys.Derive(y, s)

	y2 := make(State, n)
	for i := 0; i < n; i++ {
		y2[i] = y[i] + ds*b21*k1[i]
	}
	k2 := sys.Derive(y2, s+a2*ds)

	y3 := make(State, n)
	for i := 0; i < n; i++ {
		y3[i] = y[i] + ds*(b31*k1[i]+b32*k2[i])
	}
	k3 := sys.Derive(y3, s+a3*ds)

	y4 := make(State, n)
	for i := 0; i < n; i++ {
		y4[i] = y[i] + ds*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := sys.Derive(y4, s+a4*ds)

	y5 := make(State, n)
	for i := 0; i < n; i++ {
		y5[i] = y[i] + ds*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := sys.Derive(y5, s+a5*ds)

	y6 := make(State, n)
	for i := 0; i < n; i++ {
		y6[i] = y[i] + ds*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := sys.Derive(y6, s+ds)

	yNew := make(State, n)
	for i := 0; i < n; i++ {
		yNew[i] = y[i] + ds*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}

	k7 := sys.Derive(yNew, s+ds)

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := ds * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		scale := atol + rtol*(math.Abs(y[i])+math.Abs(ds*k1[i]))
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	var dsNext float64
	if errMax > 1 {
		dsNext = ds * math.Max(r.minScale, r.safety*math.Pow(errMax, -0.25))
	} else if errMax > 0 {
		dsNext = ds * math.Min(r.maxScale, r.safety*math.Pow(errMax, -0.2))
	} else {
		dsNext = ds * r.maxScale
	}

	return yNew, errMax, dsNext
}
