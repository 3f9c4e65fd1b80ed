package textstats

import (
	"math"
	"strings"
	"testing"
)

func TestSyllables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"rhythm", 1},
		{"xyz", 1},
		{"QUEUE", 1},
	}

	for _, tt := range tests {
		if got := Syllables(tt.word); got != tt.want {
			t.Errorf("Syllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestAnalyzeCounts(t *testing.T) {
	t.Parallel()

	stats := Analyze("The cat sat. The cat ran!")

	if stats.Words != 6 {
		t.Errorf("Words = %d, want 6", stats.Words)
	}
	if stats.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", stats.Sentences)
	}
	if stats.UniqueWords != 4 {
		t.Errorf("UniqueWords = %d, want 4", stats.UniqueWords)
	}
	if stats.SentenceLengthMean != 3 {
		t.Errorf("SentenceLengthMean = %v, want 3", stats.SentenceLengthMean)
	}
	if stats.SentenceLengthMedian != 3 {
		t.Errorf("SentenceLengthMedian = %v, want 3", stats.SentenceLengthMedian)
	}
	if stats.SentenceLengthStdev != 0 {
		t.Errorf("SentenceLengthStdev = %v, want 0", stats.SentenceLengthStdev)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	stats := Analyze("")
	if stats.Words != 0 || stats.Sentences != 0 {
		t.Errorf("Analyze(\"\") = %+v, want zero counts", stats)
	}
	if stats.Readability != (Readability{}) {
		t.Errorf("empty text produced readability scores: %+v", stats.Readability)
	}
}

func TestAnalyzeStripsPunctuation(t *testing.T) {
	t.Parallel()

	stats := Analyze(`"Hello," she said (quietly).`)
	if stats.Words != 4 {
		t.Errorf("Words = %d, want 4", stats.Words)
	}
}

func TestReadabilityIndices(t *testing.T) {
	t.Parallel()

	// Plain prose should land in a sane grade range for each index.
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 10)
	r := Analyze(text).Readability

	if r.FleschReadingEase < 50 || r.FleschReadingEase > 120 {
		t.Errorf("FleschReadingEase = %v, out of expected range", r.FleschReadingEase)
	}
	if r.FleschKincaidGradeLevel > 8 {
		t.Errorf("FleschKincaidGradeLevel = %v, expected simple prose below grade 8", r.FleschKincaidGradeLevel)
	}
	if r.GunningFogIndex <= 0 {
		t.Errorf("GunningFogIndex = %v, want positive", r.GunningFogIndex)
	}
}

func TestSMOGRequiresThirtySentences(t *testing.T) {
	t.Parallel()

	short := Analyze(strings.Repeat("Something complicated happened yesterday. ", 29))
	if short.Readability.SMOGIndex != nil {
		t.Error("SMOG computed below the 30 sentence minimum")
	}

	long := Analyze(strings.Repeat("Something complicated happened yesterday. ", 30))
	if long.Readability.SMOGIndex == nil {
		t.Fatal("SMOG missing at 30 sentences")
	}
	if *long.Readability.SMOGIndex <= 0 {
		t.Errorf("SMOGIndex = %v, want positive", *long.Readability.SMOGIndex)
	}
}

func TestLengthStats(t *testing.T) {
	t.Parallel()

	mean, median, stdev := lengthStats([]int{2, 4, 6, 8})
	if mean != 5 {
		t.Errorf("mean = %v, want 5", mean)
	}
	if median != 5 {
		t.Errorf("median = %v, want 5", median)
	}
	want := math.Sqrt(20.0 / 3.0)
	if math.Abs(stdev-want) > 1e-9 {
		t.Errorf("stdev = %v, want %v", stdev, want)
	}
}

func TestReadingSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		words  int
		images int
		wpm    float64
		want   float64
	}{
		{"no text no images", 0, 0, 100, 0},
		{"hundred words at 100wpm", 100, 0, 100, 60},
		{"one image", 0, 1, 100, 12},
		{"image allowance decays", 0, 3, 100, 12 + 11 + 10},
		{"allowance floors at three", 0, 12, 100, 12 + 11 + 10 + 9 + 8 + 7 + 6 + 5 + 4 + 3 + 3 + 3},
		{"default rate", 265, 0, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ReadingSeconds(tt.words, tt.images, tt.wpm)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ReadingSeconds(%d, %d, %v) = %v, want %v", tt.words, tt.images, tt.wpm, got, tt.want)
			}
		})
	}
}
