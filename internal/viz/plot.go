// Package viz renders sampled potential curves for the terminal.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/potlab/internal/scan"
)

// Plot renders a sampled curve with a styled caption naming the expression
// and its evaluation mode.
func Plot(series *scan.Series, expr, mode string, width, height int) string {
	graph := asciigraph.Plot(series.V,
		asciigraph.Width(width),
		asciigraph.Height(height),
	)

	header := Title.Render(mode) + "  " + Expr.Render(expr)
	footer := Subtle.Render(fmt.Sprintf("r ∈ [%.2f, %.2f], %d points",
		series.R[0], series.R[len(series.R)-1], len(series.R)))
	return header + "\n" + Panel.Render(graph) + "\n" + footer
}
