package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phobologic/nbquality/internal/layout"
)

// ansiWidth is the terminal column budget for the widest track.
const ansiWidth = 100

// colorTable maps the plan's CSS color names onto truecolor values
// lipgloss can render.
var colorTable = map[string]string{
	layout.MarkdownColor:   "#6495ED",
	layout.CodeColor:       "#FFC0CB",
	layout.DefaultGapColor: "#D3D3D3",
}

var labelStyle = lipgloss.NewStyle().Bold(true)

// ANSI renders a plan as colored terminal bars, one labeled row per track,
// all scaled against the same extent so proportions stay comparable.
func ANSI(plan *layout.Plan) string {
	extent := plan.Extent()
	if extent <= 0 {
		return ""
	}
	scale := float64(ansiWidth) / extent

	var sb strings.Builder
	for _, label := range plan.Order {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteByte('\n')

		var row strings.Builder
		for _, bar := range plan.Bars(label) {
			n := int(bar.Length*scale + 0.5)
			if n < 1 && !bar.IsGap {
				n = 1
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColor(bar.Color)))
			row.WriteString(style.Render(strings.Repeat("█", n)))
		}
		sb.WriteString(row.String())
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func ansiColor(name string) string {
	if hex, ok := colorTable[name]; ok {
		return hex
	}
	if strings.HasPrefix(name, "#") {
		return name
	}
	return "#888888"
}
