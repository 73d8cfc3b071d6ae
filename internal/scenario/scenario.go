// Package scenario wires the geometry kernel into the three batch figure
// jobs: the Gaussian bump geodesic fan, the ellipsoid geodesic with
// parallel transport, and the rotating-frame effective potential with its
// Lagrange points.
//
// Each job runs the same pipeline: metric self-test (fatal on failure),
// optional root finding, grid sampling, trajectory integration, emission.
// Jobs are independent and write disjoint files under one output
// directory; reruns with identical configuration reproduce identical
// output.
package scenario

import (
	"fmt"
	"sort"

	"github.com/tobiasosborne/generalrelativity/internal/config"
	"github.com/tobiasosborne/generalrelativity/internal/emit"
	"github.com/tobiasosborne/generalrelativity/internal/geodesic"
	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/metric"
	"github.com/tobiasosborne/generalrelativity/internal/report"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

// Scenario is one batch figure job.
type Scenario interface {
	Name() string

	// Surface returns the scenario's surface and its self-test probe grid.
	Surface(cfg *config.Config) (surface.Surface, []geom.Point)

	Run(cfg *config.Config, em *emit.Emitter) error
}

// Registry maps scenario names to drivers, preserving run order.
type Registry struct {
	order  []string
	byName map[string]Scenario
}

func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Scenario)}
	r.register(&Bump{})
	r.register(&Ellipsoid{})
	r.register(&Lagrange{})
	return r
}

func (r *Registry) register(s Scenario) {
	r.order = append(r.order, s.Name())
	r.byName[s.Name()] = s
}

func (r *Registry) Get(name string) (Scenario, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", name, r.List())
	}
	return s, nil
}

func (r *Registry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Run executes the named scenarios in registration order, each with its
// own emitter over the shared output directory. A self-test failure in one
// scenario aborts only that scenario's run.
func (r *Registry) Run(cfg *config.Config, names []string) error {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, err := r.Get(n); err != nil {
			return err
		}
		want[n] = true
	}
	for _, n := range r.order {
		if !want[n] {
			continue
		}
		s := r.byName[n]
		report.Scenario(s.Name())
		em := emit.New(cfg.OutputDir)
		if err := em.Init(); err != nil {
			return err
		}
		if err := s.Run(cfg, em); err != nil {
			return fmt.Errorf("scenario %s: %w", n, err)
		}
		report.Files(em.Written())
	}
	return nil
}

// SelfTest runs only the analytic vs finite-difference cross-check for one
// scenario, over a denser probe grid than the startup gate uses.
func (r *Registry) SelfTest(cfg *config.Config, name string) (float64, error) {
	s, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	surf, probes := s.Surface(cfg)
	return metric.SelfTest(surf, probes)
}

// startupCheck gates a scenario run on the self-test.
func startupCheck(s Scenario, cfg *config.Config) (surface.Surface, error) {
	surf, probes := s.Surface(cfg)
	residual, err := metric.SelfTest(surf, probes)
	if err != nil {
		return nil, err
	}
	report.SelfTest(residual)
	return surf, nil
}

func integratorConfig(cfg *config.Config, sMax float64, boundary func(geom.Point) bool) geodesic.Config {
	return geodesic.Config{
		SMax:        sMax,
		InitialStep: cfg.Integrator.InitialStep,
		AbsTol:      cfg.Integrator.AbsTol,
		RelTol:      cfg.Integrator.RelTol,
		MinStep:     cfg.Integrator.MinStep,
		MaxStep:     cfg.Integrator.MaxStep,
		MaxSteps:    cfg.Integrator.MaxSteps,
		Boundary:    boundary,
	}
}

// linspace returns n evenly spaced values spanning [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}
