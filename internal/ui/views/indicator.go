package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PageIndicator renders one dot per page with the active one lit, centred in
// width. When the dots do not fit it falls back to "n / total". A width of
// zero or less means no constraint.
func (r *Renderer) PageIndicator(active, total, width int) string {
	if total <= 0 {
		return ""
	}

	var out string
	if width > 0 && 2*total-1 > width {
		out = r.styles.DotActive.Render(fmt.Sprintf("%d / %d", active+1, total))
	} else {
		dots := make([]string, total)
		for i := range dots {
			if i == active {
				dots[i] = r.styles.DotActive.Render("●")
			} else {
				dots[i] = r.styles.DotInactive.Render("○")
			}
		}
		out = strings.Join(dots, " ")
	}

	if width <= 0 {
		return out
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
}
