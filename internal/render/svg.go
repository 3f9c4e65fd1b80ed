// Package render turns layout plans into artifacts: SVG files or embedded
// payloads, ANSI terminal output, and HTML tables.
package render

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/phobologic/nbquality/internal/layout"
)

const (
	svgScale     = 4.0 // drawing units per plan length unit
	svgBarThick  = 14
	svgRowHeight = 40
	svgLabelPad  = 16
	svgMargin    = 10
)

// SVG renders a plan as a vector image. Colors are the CSS color names
// carried by the plan's segments.
func SVG(plan *layout.Plan) []byte {
	extent := plan.Extent()*svgScale + 2*svgMargin
	rows := len(plan.Order)

	var width, height float64
	if plan.Vertical {
		width = float64(rows*svgRowHeight) + 2*svgMargin
		height = extent + svgLabelPad + 2*svgMargin
	} else {
		width = extent + 2*svgMargin
		height = float64(rows*svgRowHeight) + 2*svgMargin
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, height, width, height)

	for i, label := range plan.Order {
		offset := float64(i * svgRowHeight)
		if plan.Vertical {
			fmt.Fprintf(&sb,
				`  <text x="%.1f" y="%.1f" font-size="11" font-family="sans-serif">%s</text>`+"\n",
				offset+svgMargin, float64(svgMargin), escapeText(label))
		} else {
			fmt.Fprintf(&sb,
				`  <text x="%.1f" y="%.1f" font-size="11" font-family="sans-serif">%s</text>`+"\n",
				float64(svgMargin), offset+svgMargin+svgLabelPad/2, escapeText(label))
		}

		for _, bar := range plan.Bars(label) {
			start := bar.Start*svgScale + svgMargin
			length := bar.Length * svgScale
			if plan.Vertical {
				fmt.Fprintf(&sb,
					`  <rect x="%.1f" y="%.1f" width="%d" height="%.1f" fill="%s"/>`+"\n",
					offset+svgMargin, start+svgLabelPad, svgBarThick, length, bar.Color)
			} else {
				fmt.Fprintf(&sb,
					`  <rect x="%.1f" y="%.1f" width="%.1f" height="%d" fill="%s"/>`+"\n",
					start, offset+svgMargin+svgLabelPad, length, svgBarThick, bar.Color)
			}
		}
	}

	sb.WriteString("</svg>\n")
	return []byte(sb.String())
}

// SVGBase64 returns the plan as a data URI payload suitable for embedding.
func SVGBase64(plan *layout.Plan) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(SVG(plan))
}

// WriteSVG renders the plan to a file.
func WriteSVG(path string, plan *layout.Plan) error {
	if err := os.WriteFile(path, SVG(plan), 0o644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
