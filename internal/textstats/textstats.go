// Package textstats provides the tokenization and readability statistics
// consumed by the metric computer: word, sentence and syllable counts, a
// fixed set of readability indices, and reading-time estimation.
//
// The tokenizer is deliberately simple; downstream code only consumes the
// counts needed for reading-time and reporting, and tolerates imprecision
// in the finer scores.
package textstats

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	vowelGroupRe    = regexp.MustCompile(`[aeiouy]+`)
)

// Stats is the full set of counts and indices for a text block.
type Stats struct {
	Chars             int
	Words             int
	Sentences         int
	UniqueWords       int
	Syllables         int
	MonosyllableWords int
	PolysyllableWords int
	LongWords         int

	SentenceLengthMean   float64
	SentenceLengthMedian float64
	SentenceLengthStdev  float64

	Readability Readability
}

// Readability holds the named readability indices. SMOG is nil when the
// text has fewer than 30 sentences, where the formula is not defined.
type Readability struct {
	FleschReadingEase        float64
	FleschKincaidGradeLevel  float64
	AutomatedReadabilityIdx  float64
	ColemanLiauIndex         float64
	SMOGIndex                *float64
	GunningFogIndex          float64
}

// Syllables estimates the syllable count of a word by counting vowel
// groups. A crude heuristic, accurate enough for readability scoring.
func Syllables(word string) int {
	n := len(vowelGroupRe.FindAllString(strings.ToLower(word), -1))
	if n == 0 {
		return 1
	}
	return n
}

// words splits text into word tokens, stripping surrounding punctuation and
// dropping tokens with no letters or digits.
func words(text string) []string {
	var out []string
	for _, field := range strings.Fields(text) {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// sentences splits text on terminal punctuation and returns the word count
// of each non-empty sentence.
func sentences(text string) []int {
	var lengths []int
	for _, part := range sentenceSplitRe.Split(text, -1) {
		if ws := words(part); len(ws) > 0 {
			lengths = append(lengths, len(ws))
		}
	}
	return lengths
}

// Analyze computes the full statistics set for a text block.
func Analyze(text string) Stats {
	ws := words(text)
	lengths := sentences(text)

	stats := Stats{
		Chars:     len(text),
		Words:     len(ws),
		Sentences: len(lengths),
	}

	unique := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		unique[strings.ToLower(w)] = struct{}{}

		s := Syllables(w)
		stats.Syllables += s
		if s == 1 {
			stats.MonosyllableWords++
		}
		if s >= 3 {
			stats.PolysyllableWords++
		}
		if len(w) > 6 {
			stats.LongWords++
		}
	}
	stats.UniqueWords = len(unique)

	stats.SentenceLengthMean, stats.SentenceLengthMedian, stats.SentenceLengthStdev = lengthStats(lengths)

	if stats.Words > 0 && stats.Sentences > 0 {
		stats.Readability = readability(stats)
	}
	return stats
}

// lengthStats returns mean, median and (sample) standard deviation of
// sentence lengths, or zeros when there are no sentences.
func lengthStats(lengths []int) (mean, median, stdev float64) {
	if len(lengths) == 0 {
		return 0, 0, 0
	}

	sum := 0
	for _, l := range lengths {
		sum += l
	}
	mean = float64(sum) / float64(len(lengths))

	sorted := append([]int(nil), lengths...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = float64(sorted[mid-1]+sorted[mid]) / 2
	} else {
		median = float64(sorted[mid])
	}

	if len(lengths) > 1 {
		var ss float64
		for _, l := range lengths {
			d := float64(l) - mean
			ss += d * d
		}
		stdev = math.Sqrt(ss / float64(len(lengths)-1))
	}
	return mean, median, stdev
}

// readability computes the index set from basic counts.
func readability(s Stats) Readability {
	nWords := float64(s.Words)
	nSents := float64(s.Sentences)
	nChars := float64(s.Chars)
	nSyll := float64(s.Syllables)
	nPoly := float64(s.PolysyllableWords)

	r := Readability{
		FleschReadingEase:       206.835 - 1.015*(nWords/nSents) - 84.6*(nSyll/nWords),
		FleschKincaidGradeLevel: 0.39*(nWords/nSents) + 11.8*(nSyll/nWords) - 15.59,
		AutomatedReadabilityIdx: 4.71*(nChars/nWords) + 0.5*(nWords/nSents) - 21.43,
		GunningFogIndex:         0.4 * ((nWords / nSents) + 100*(nPoly/nWords)),
	}

	l := (nChars / nWords) * 100
	sr := (nSents / nWords) * 100
	r.ColemanLiauIndex = 0.0588*l - 0.296*sr - 15.8

	if s.Sentences >= 30 {
		smog := 1.0430*math.Sqrt(nPoly*(30/nSents)) + 3.1291
		r.SMOGIndex = &smog
	}
	return r
}

// ReadingSeconds estimates reading time for a block of prose at the given
// words-per-minute rate, plus a per-image allowance that starts at 12
// seconds and decays by one second per image down to a 3 second floor.
func ReadingSeconds(nWords, nImages int, wpm float64) float64 {
	if wpm <= 0 {
		wpm = 265
	}

	seconds := float64(nWords) / wpm * 60

	allowance := 12.0
	for i := 0; i < nImages; i++ {
		seconds += allowance
		if allowance > 3 {
			allowance--
		}
	}
	return seconds
}
