package metrics

import "github.com/phobologic/nbquality/internal/textflow"

// Config carries the tunable constants for metric computation. Zero-value
// fields are replaced with the documented defaults by normalize, so a
// partially populated Config is safe to use.
type Config struct {
	// ReadingRate is the prose reading rate in words per minute.
	// The default of 100 wpm suits medium-difficulty teaching material.
	ReadingRate float64

	// CodeLineSeconds is the time to read one line of code.
	CodeLineSeconds float64

	// LineWidth is the display width used for screen-line counting.
	LineWidth int
}

// DefaultConfig returns the documented default constants.
func DefaultConfig() Config {
	return Config{
		ReadingRate:     100,
		CodeLineSeconds: 1,
		LineWidth:       textflow.DefaultWidth,
	}
}

func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.ReadingRate <= 0 {
		c.ReadingRate = d.ReadingRate
	}
	if c.CodeLineSeconds <= 0 {
		c.CodeLineSeconds = d.CodeLineSeconds
	}
	if c.LineWidth <= 0 {
		c.LineWidth = d.LineWidth
	}
	return c
}
