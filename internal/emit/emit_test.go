package emit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmitter(t *testing.T) *Emitter {
	t.Helper()
	e := New(t.TempDir())
	require.NoError(t, e.Init())
	return e
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteGridGroupsAndSentinel(t *testing.T) {
	e := newTestEmitter(t)
	grid := &Grid{
		U1: []float64{0, 1},
		U2: []float64{0, 0.5},
		Values: [][]float64{
			{1.25, math.NaN()},
			{-2, 3},
		},
	}
	require.NoError(t, e.WriteGrid("field.dat", []string{"x", "y", "v"}, grid))

	content := readFile(t, e.Written()[0])
	lines := strings.Split(content, "\n")

	assert.Equal(t, "# x y v", lines[0])
	assert.Equal(t, "0.000000 0.000000 1.250000", lines[1])
	assert.Equal(t, "0.000000 0.500000 nan", lines[2])
	// Blank record between outer-coordinate groups.
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "1.000000 0.000000 -2.000000", lines[4])
	assert.Equal(t, "1.000000 0.500000 3.000000", lines[5])
}

func TestWritePoints(t *testing.T) {
	e := newTestEmitter(t)
	pts := []LabeledPoint{
		{X: 0.49, Y: math.Sqrt(3) / 2, Label: "L4"},
		{X: -0.01, Y: 0, Label: "M1"},
	}
	require.NoError(t, e.WritePoints("points.dat", []string{"x", "y", "label"}, pts))

	content := readFile(t, e.Written()[0])
	assert.Contains(t, content, "# x y label\n")
	assert.Contains(t, content, "0.490000 0.866025 L4\n")
	assert.Contains(t, content, "-0.010000 0.000000 M1\n")
}

func TestWriteCurveOrdering(t *testing.T) {
	e := newTestEmitter(t)
	rows := [][]float64{
		{0, 0, 1},
		{0.1, 0.05, 0.9},
		{0.2, 0.12, 0.7},
	}
	require.NoError(t, e.WriteCurve("curve.dat", []string{"x", "y", "h"}, rows))

	lines := strings.Split(strings.TrimRight(readFile(t, e.Written()[0]), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "0.100000 0.050000 0.900000", lines[2])
}

func TestWriteGlyphsHeader(t *testing.T) {
	e := newTestEmitter(t)
	require.NoError(t, e.WriteGlyphs("glyphs.dat", [][]float64{{1, 2, 3, 0.1, 0.2, 0.3}}))

	content := readFile(t, e.Written()[0])
	assert.True(t, strings.HasPrefix(content, "# x y z vx vy vz\n"))
	assert.Contains(t, content, "1.000000 2.000000 3.000000 0.100000 0.200000 0.300000\n")
}

func TestRewriteIsByteIdentical(t *testing.T) {
	e := newTestEmitter(t)
	grid := &Grid{
		U1:     []float64{0, 0.5, 1},
		U2:     []float64{0, 1},
		Values: [][]float64{{1, 2}, {3, math.NaN()}, {5, 6}},
	}
	require.NoError(t, e.WriteGrid("field.dat", []string{"x", "y", "v"}, grid))
	first := readFile(t, e.Written()[0])

	require.NoError(t, e.WriteGrid("field.dat", []string{"x", "y", "v"}, grid))
	second := readFile(t, e.Written()[0])

	assert.Equal(t, first, second)
}

func TestWrittenTracksPaths(t *testing.T) {
	e := newTestEmitter(t)
	require.NoError(t, e.WriteCurve("a.dat", []string{"x"}, nil))
	require.NoError(t, e.WriteCurve("b.dat", []string{"x"}, nil))
	require.Len(t, e.Written(), 2)
	assert.Equal(t, "a.dat", filepath.Base(e.Written()[0]))
	assert.Equal(t, "b.dat", filepath.Base(e.Written()[1]))
}
