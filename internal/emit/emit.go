// Package emit serializes sampled grids, point lists, curves and vector
// glyphs into the plain-text column format read by the plotting layer.
//
// Every file starts with a #-prefixed header naming the columns. Numeric
// fields use fixed-decimal formatting; excluded grid points are written as
// the literal sentinel "nan" rather than omitted, so downstream contouring
// always sees a rectangular grid.
package emit

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

const colFmt = "%.6f"

// Emitter writes data files into one output directory and remembers which
// paths it has written.
type Emitter struct {
	dir     string
	written []string
}

func New(dir string) *Emitter {
	return &Emitter{dir: dir}
}

// Init creates the output directory.
func (e *Emitter) Init() error {
	return os.MkdirAll(e.dir, 0755)
}

// Written returns the paths written so far, in order.
func (e *Emitter) Written() []string {
	return e.written
}

// Grid is a scalar field sampled on a rectangular chart grid. Values is
// indexed [i][j] with i over U1 and j over U2; NaN marks excluded points.
type Grid struct {
	U1, U2 []float64
	Values [][]float64
}

// LabeledPoint is one row of a point-list file.
type LabeledPoint struct {
	X, Y  float64
	Label string
}

// WriteGrid writes rows (u1, u2, value) grouped by fixed u1, separating
// groups with a blank line.
func (e *Emitter) WriteGrid(name string, header []string, grid *Grid) error {
	return e.write(name, func(w *bufio.Writer) error {
		writeHeader(w, header)
		for i, u1 := range grid.U1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			for j, u2 := range grid.U2 {
				fmt.Fprintf(w, colFmt+" "+colFmt+" %s\n", u1, u2, formatValue(grid.Values[i][j]))
			}
		}
		return nil
	})
}

// WritePoints writes labeled coordinate pairs, one per row.
func (e *Emitter) WritePoints(name string, header []string, pts []LabeledPoint) error {
	return e.write(name, func(w *bufio.Writer) error {
		writeHeader(w, header)
		for _, p := range pts {
			fmt.Fprintf(w, colFmt+" "+colFmt+" %s\n", p.X, p.Y, p.Label)
		}
		return nil
	})
}

// WriteCurve writes one row of numeric columns per sample, in order.
func (e *Emitter) WriteCurve(name string, header []string, rows [][]float64) error {
	return e.write(name, func(w *bufio.Writer) error {
		writeHeader(w, header)
		for _, row := range rows {
			for i, v := range row {
				if i > 0 {
					w.WriteByte(' ')
				}
				w.WriteString(formatValue(v))
			}
			w.WriteByte('\n')
		}
		return nil
	})
}

// WriteGlyphs writes a sparse set of base points with attached vectors,
// rows of (x, y, z, vx, vy, vz).
func (e *Emitter) WriteGlyphs(name string, rows [][]float64) error {
	return e.WriteCurve(name, []string{"x", "y", "z", "vx", "vy", "vz"}, rows)
}

func (e *Emitter) write(name string, fill func(*bufio.Writer) error) error {
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("emit %s: %w", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("emit %s: %w", name, err)
	}
	e.written = append(e.written, path)
	return nil
}

func writeHeader(w *bufio.Writer, cols []string) {
	fmt.Fprintf(w, "# %s\n", strings.Join(cols, " "))
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf(colFmt, v)
}
