// Package report prints scenario diagnostics to the console: self-test
// residuals, located critical points, conservation residuals and the list
// of written files. Diagnostics only; data goes through the emit package.
package report

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ff88"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))
)

// Scenario prints a scenario banner.
func Scenario(name string) {
	fmt.Println(headerStyle.Render("== " + name + " =="))
}

// SelfTest reports the worst analytic-vs-finite-difference residual.
func SelfTest(residual float64) {
	fmt.Printf("%s %s\n", subtle.Render("self-test residual:"), okStyle.Render(fmt.Sprintf("%.3e", residual)))
}

// CriticalPoint reports one located equilibrium.
func CriticalPoint(label string, x, y float64, iterations int, converged bool) {
	line := fmt.Sprintf("%-3s (%+.9f, %+.9f)  iterations=%d", label, x, y, iterations)
	if converged {
		fmt.Println(okStyle.Render(line))
	} else {
		fmt.Println(warnStyle.Render(line + "  NOT CONVERGED"))
	}
}

// Conservation reports per-trajectory conserved-quantity residuals.
func Conservation(name string, speed, ortho, norm float64, transported bool) {
	if transported {
		fmt.Printf("%s g(v,v) drift %.3e, g(v,w) drift %.3e, g(w,w) drift %.3e\n",
			subtle.Render(name+":"), speed, ortho, norm)
		return
	}
	fmt.Printf("%s g(v,v) drift %.3e\n", subtle.Render(name+":"), speed)
}

// Warnf prints a highlighted warning.
func Warnf(format string, args ...any) {
	fmt.Println(warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Files lists the output paths written by a scenario.
func Files(paths []string) {
	fmt.Println(subtle.Render("written:"))
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, p := range paths {
		fmt.Fprintf(w, "\t%s\n", p)
	}
	w.Flush()
}
