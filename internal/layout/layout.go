// Package layout converts cell metric sequences into a geometric drawing
// plan: one colored segment track per document, with an adaptive inter-cell
// gap shared across the plan so tracks stay visually comparable.
package layout

import (
	"math"
	"sort"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/metrics"
	"github.com/phobologic/nbquality/internal/profile"
)

// Colors for cell types and the neutral bars between them.
const (
	MarkdownColor   = "cornflowerblue"
	CodeColor       = "pink"
	DefaultGapColor = "lightgrey"
)

// Segment is one cell's contribution to a track.
type Segment struct {
	Length float64
	Color  string
}

// Track is the ordered segment sequence for one document.
type Track []Segment

// Total is the sum of segment lengths.
func (t Track) Total() float64 {
	var sum float64
	for _, s := range t {
		sum += s.Length
	}
	return sum
}

// Options tunes plan construction.
type Options struct {
	// Gap overrides the computed gap when non-nil.
	Gap *float64
	// GapBoost scales the computed gap; zero means 1.
	GapBoost float64
	// GapColor colors the inter-cell bars; empty disables them.
	GapColor string
	// Vertical flips the drawing axis. Cosmetic only: the length and gap
	// math is identical in both orientations.
	Vertical bool
}

// Plan is the complete drawing plan for one or more tracks. Gap is computed
// once per plan from the longest track.
type Plan struct {
	Order    []string
	Tracks   map[string]Track
	Gap      float64
	GapColor string
	Vertical bool
}

// Bar is a single drawable run along a track's axis.
type Bar struct {
	Start  float64
	Length float64
	Color  string
	IsGap  bool
}

// Build constructs a plan from labeled tracks. order fixes the track
// ordering; labels missing from it are appended sorted.
func Build(tracks map[string]Track, order []string, opts Options) *Plan {
	boost := opts.GapBoost
	if boost <= 0 {
		boost = 1
	}

	gap := computeGap(tracks) * boost
	if opts.Gap != nil {
		gap = *opts.Gap
	}

	seen := make(map[string]bool, len(order))
	for _, label := range order {
		seen[label] = true
	}
	var rest []string
	for label := range tracks {
		if !seen[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)

	return &Plan{
		Order:    append(append([]string(nil), order...), rest...),
		Tracks:   tracks,
		Gap:      gap,
		GapColor: opts.GapColor,
		Vertical: opts.Vertical,
	}
}

// BuildSingle constructs a plan for a single track.
func BuildSingle(label string, track Track, opts Options) *Plan {
	return Build(map[string]Track{label: track}, []string{label}, opts)
}

// computeGap sets the gap at 1% of the longest track's total length,
// rounded up, so gaps scale with overall document size.
func computeGap(tracks map[string]Track) float64 {
	var maxTotal float64
	for _, track := range tracks {
		if total := track.Total(); total > maxTotal {
			maxTotal = total
		}
	}
	return math.Ceil(0.01 * maxTotal)
}

// Bars emits the drawable runs for one track: a neutral gap bar before
// each adjacent segment pair (never before the first), then the segment
// itself stretched by one unit so near-zero cells remain visible. With no
// gap color the gap is skipped entirely and segments sit adjacent.
func (p *Plan) Bars(label string) []Bar {
	track := p.Tracks[label]
	var bars []Bar
	pos := 0.0

	for i, segment := range track {
		if i > 0 && p.GapColor != "" {
			bars = append(bars, Bar{Start: pos, Length: p.Gap, Color: p.GapColor, IsGap: true})
			pos += p.Gap
		}
		length := segment.Length + 1
		bars = append(bars, Bar{Start: pos, Length: length, Color: segment.Color})
		pos += length
	}
	return bars
}

// Extent is the drawn length of the longest track including gaps and
// segment stretching.
func (p *Plan) Extent() float64 {
	var max float64
	for _, label := range p.Order {
		bars := p.Bars(label)
		if len(bars) == 0 {
			continue
		}
		last := bars[len(bars)-1]
		if end := last.Start + last.Length; end > max {
			max = end
		}
	}
	return max
}

// SizeBy selects which metric drives segment length.
type SizeBy string

const (
	// ByScreenLines sizes cells by their screen-line count.
	ByScreenLines SizeBy = "screen"
	// ByReadingTime sizes cells by estimated reading seconds.
	ByReadingTime SizeBy = "time"
)

// CellSegments maps a document report onto a colored track.
func CellSegments(report profile.DocumentReport, size SizeBy) Track {
	var track Track
	for _, m := range report.Cells {
		var color string
		switch m.Type {
		case cells.Markdown:
			color = MarkdownColor
		case cells.Code:
			color = CodeColor
		default:
			continue
		}
		track = append(track, Segment{Length: segmentLength(m, size), Color: color})
	}
	return track
}

func segmentLength(m metrics.CellMetric, size SizeBy) float64 {
	if size == ByReadingTime {
		return m.ReadingSeconds
	}
	return float64(m.ScreenLines)
}
