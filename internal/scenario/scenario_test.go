package scenario

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tobiasosborne/generalrelativity/internal/config"
	"github.com/tobiasosborne/generalrelativity/internal/geodesic"
	"github.com/tobiasosborne/generalrelativity/internal/geom"
	"github.com/tobiasosborne/generalrelativity/internal/surface"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.List()
	want := []string{"bump", "ellipsoid", "lagrange"}
	if len(names) != len(want) {
		t.Fatalf("expected %d scenarios, got %v", len(want), names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("List()[%d] = %s, want %s", i, names[i], n)
		}
	}

	if _, err := r.Get("ellipsoid"); err != nil {
		t.Errorf("Get(ellipsoid) failed: %v", err)
	}
	if _, err := r.Get("torus"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestSelfTestAllScenarios(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	for _, name := range r.List() {
		residual, err := r.SelfTest(cfg, name)
		if err != nil {
			t.Errorf("%s self-test failed: %v", name, err)
		}
		if residual > 1e-5 {
			t.Errorf("%s residual %g above tolerance", name, residual)
		}
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	// Coarser grids keep the smoke runs quick without changing semantics.
	cfg.Ellipsoid.GridRes = 16
	cfg.Lagrange.GridRes = 21
	cfg.Bump.GridRes = 16
	return cfg
}

func TestRunAllWritesExpectedFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("full scenario run")
	}
	cfg := testConfig(t)
	r := NewRegistry()
	if err := r.Run(cfg, r.List()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expected := []string{
		"bump_height.dat",
		"bump_geodesic_1.dat",
		"bump_geodesic_5.dat",
		"bump_geodesic_9.dat",
		"bump_transport.dat",
		"ellipsoid_area.dat",
		"ellipsoid_geodesic.dat",
		"ellipsoid_transport.dat",
		"lagrange_potential.dat",
		"lagrange_points.dat",
		"lagrange_geodesic.dat",
	}
	for _, name := range expected {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("full scenario run")
	}
	cfg := testConfig(t)
	r := NewRegistry()

	if err := r.Run(cfg, []string{"lagrange"}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	path := filepath.Join(cfg.OutputDir, "lagrange_potential.dat")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Run(cfg, []string{"lagrange"}); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("rerun produced different bytes")
	}
}

// The bump is symmetric under y -> -y, so geodesics launched at mirrored
// offsets must deflect by opposite angles.
func TestBumpDeflectionSymmetry(t *testing.T) {
	surf := surface.NewBump().Surface()
	box := 3.0
	gcfg := geodesic.DefaultConfig()
	gcfg.SMax = 8
	gcfg.Boundary = func(p geom.Point) bool {
		return math.Abs(p[0]) > box || math.Abs(p[1]) > box
	}
	launch := func(y0 float64) *geodesic.Trajectory {
		return geodesic.Integrate(surf, geom.Point{-2.5, y0}, geom.Vec2{1, 0}, false, gcfg)
	}

	for _, y0 := range []float64{1.2, 0.9, 0.6, 0.3} {
		up := launch(y0)
		down := launch(-y0)
		if up.Err != nil || down.Err != nil {
			t.Fatalf("integration failed: %v / %v", up.Err, down.Err)
		}
		if !up.Terminated || !down.Terminated {
			t.Fatalf("y0=%.1f: expected both geodesics to exit the box", y0)
		}

		lu := up.Samples[len(up.Samples)-1]
		ld := down.Samples[len(down.Samples)-1]
		angleUp := math.Atan2(lu.Velocity[1], lu.Velocity[0])
		angleDown := math.Atan2(ld.Velocity[1], ld.Velocity[0])
		if math.Abs(angleUp+angleDown) > 1e-4 {
			t.Errorf("y0=%.1f: deflection angles not mirrored: %g vs %g", y0, angleUp, angleDown)
		}
		if math.Abs(lu.Point[1]+ld.Point[1]) > 1e-2 {
			t.Errorf("y0=%.1f: exit offsets not mirrored: %g vs %g", y0, lu.Point[1], ld.Point[1])
		}
	}

	// The axial geodesic runs dead straight over the summit.
	axial := launch(0)
	last := axial.Samples[len(axial.Samples)-1]
	if math.Abs(last.Point[1]) > 1e-12 || math.Abs(last.Velocity[1]) > 1e-12 {
		t.Errorf("axial geodesic left the symmetry axis: y=%g, vy=%g", last.Point[1], last.Velocity[1])
	}
}
