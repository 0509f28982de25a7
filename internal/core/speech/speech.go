// Package speech models spoken duration of text under a fixed speech rate.
// It converts word counts to estimated seconds and back, and trims text to a
// duration budget. All functions are pure and deterministic; the Estimator and
// Trimmer share one Rate so their word math cannot drift apart.
package speech

import (
	"strings"
	"time"
)

// DefaultWordsPerMinute is a typical conversational speaking rate
const DefaultWordsPerMinute = 150

// Rate is a words-per-minute speech-rate model. The zero value falls back to
// DefaultWordsPerMinute so an unset Rate is still usable
type Rate struct {
	WordsPerMinute float64
}

// NewRate returns a Rate for the given words-per-minute figure
func NewRate(wpm float64) Rate { return Rate{WordsPerMinute: wpm} }

func (r Rate) wpm() float64 {
	if r.WordsPerMinute <= 0 {
		return DefaultWordsPerMinute
	}
	return r.WordsPerMinute
}

// WordCount counts whitespace-delimited tokens. Deliberately approximate; no
// locale-aware tokenization
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Seconds estimates the spoken duration of text in seconds.
// Empty text estimates to 0
func (r Rate) Seconds(text string) float64 {
	return float64(WordCount(text)) / r.wpm() * 60
}

// Estimate is Seconds as a time.Duration
func (r Rate) Estimate(text string) time.Duration {
	return time.Duration(r.Seconds(text) * float64(time.Second))
}

// WordBudget converts a duration budget to the number of words speakable
// within it at this rate
func (r Rate) WordBudget(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d.Seconds() / 60 * r.wpm())
}

// Trim shortens text so it speaks within target at this rate.
// See TrimMiddle for the retention policy
func (r Rate) Trim(text string, target time.Duration) string {
	return TrimMiddle(text, r.WordBudget(target))
}

// TrimMiddle drops a contiguous middle span of the word sequence, keeping a
// symmetric head and tail totalling at most budget words. Words are kept in
// original order and never rewritten. Text already within budget is returned
// verbatim. A budget below 2 words cannot hold a head and a tail, so the
// degenerate result is an empty string rather than an error
func TrimMiddle(text string, budget int) string {
	if budget < 2 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= budget {
		return text
	}
	head := budget / 2
	tail := budget - head
	kept := make([]string, 0, budget)
	kept = append(kept, words[:head]...)
	kept = append(kept, words[len(words)-tail:]...)
	return strings.Join(kept, " ")
}
