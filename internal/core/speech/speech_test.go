package speech_test

import (
	"strings"
	"testing"
	"time"

	"soundcheck/internal/core/speech"
)

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"hello", 1},
		{"hello world", 2},
		{"  spaced   out\ttabs\nand newlines  ", 5},
		{"punctuation, still. one-token each!", 4},
	}
	for _, c := range cases {
		if got := speech.WordCount(c.in); got != c.want {
			t.Fatalf("WordCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSecondsAtDefaultRate(t *testing.T) {
	r := speech.Rate{} // zero value uses the 150 wpm default

	if got := r.Seconds(""); got != 0 {
		t.Fatalf("empty text should estimate 0s, got %v", got)
	}

	// 8 words at 150 wpm is 3.2 seconds
	got := r.Seconds("one two three four five six seven eight")
	if got != 3.2 {
		t.Fatalf("8 words at 150wpm = %v, want 3.2", got)
	}

	// 150 words speak in exactly one minute
	text := strings.TrimSpace(strings.Repeat("word ", 150))
	if got := r.Estimate(text); got != time.Minute {
		t.Fatalf("150 words at 150wpm = %v, want 1m", got)
	}
}

func TestSecondsMonotonic(t *testing.T) {
	r := speech.NewRate(150)
	prev := -1.0
	text := ""
	for i := 0; i < 50; i++ {
		text += "word "
		got := r.Seconds(text)
		if got <= prev {
			t.Fatalf("estimate not strictly increasing at %d words: %v <= %v", i+1, got, prev)
		}
		prev = got
	}
}

func TestSecondsRespectsRate(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 100))
	slow := speech.NewRate(100)
	fast := speech.NewRate(200)
	if s, f := slow.Seconds(text), fast.Seconds(text); s != 60 || f != 30 {
		t.Fatalf("100 words: slow=%v fast=%v, want 60 and 30", s, f)
	}
}

func TestWordBudget(t *testing.T) {
	r := speech.NewRate(150)
	if got := r.WordBudget(time.Minute); got != 150 {
		t.Fatalf("one minute budget = %d words, want 150", got)
	}
	if got := r.WordBudget(0); got != 0 {
		t.Fatalf("zero budget = %d words, want 0", got)
	}
	if got := r.WordBudget(-time.Second); got != 0 {
		t.Fatalf("negative budget = %d words, want 0", got)
	}
}

func TestTrimMiddleUnderBudgetVerbatim(t *testing.T) {
	// including interior whitespace, which must be preserved untouched
	in := "short  enough   already"
	if got := speech.TrimMiddle(in, 10); got != in {
		t.Fatalf("under-budget text must be returned verbatim: %q", got)
	}
	if got := speech.TrimMiddle(in, 3); got != in {
		t.Fatalf("exactly-at-budget text must be returned verbatim: %q", got)
	}
}

func TestTrimMiddleDropsMiddle(t *testing.T) {
	in := "w1 w2 w3 w4 w5 w6 w7 w8 w9 w10"

	got := speech.TrimMiddle(in, 4)
	if got != "w1 w2 w9 w10" {
		t.Fatalf("budget 4: got %q", got)
	}

	// odd budget keeps the extra word on the tail
	got = speech.TrimMiddle(in, 5)
	if got != "w1 w2 w8 w9 w10" {
		t.Fatalf("budget 5: got %q", got)
	}
}

func TestTrimMiddleKeepsOrder(t *testing.T) {
	words := make([]string, 200)
	for i := range words {
		words[i] = "w" + strings.Repeat("x", i%3)
	}
	in := strings.Join(words, " ")

	out := speech.TrimMiddle(in, 40)
	outWords := strings.Fields(out)
	if len(outWords) != 40 {
		t.Fatalf("kept %d words, want 40", len(outWords))
	}
	// head half then tail half, in original order
	for i := 0; i < 20; i++ {
		if outWords[i] != words[i] {
			t.Fatalf("head word %d: got %q want %q", i, outWords[i], words[i])
		}
	}
	for i := 0; i < 20; i++ {
		if outWords[20+i] != words[180+i] {
			t.Fatalf("tail word %d: got %q want %q", i, outWords[20+i], words[180+i])
		}
	}
}

func TestTrimMiddleDegenerateBudget(t *testing.T) {
	for _, b := range []int{1, 0, -5} {
		if got := speech.TrimMiddle("some long text here", b); got != "" {
			t.Fatalf("budget %d: got %q, want empty", b, got)
		}
	}
}

func TestTrimFitsBudget(t *testing.T) {
	r := speech.NewRate(150)
	budget := time.Minute
	in := strings.TrimSpace(strings.Repeat("word ", 500))

	out := r.Trim(in, budget)
	if est := r.Estimate(out); est > budget {
		t.Fatalf("trimmed text still over budget: %v", est)
	}
	if n := speech.WordCount(out); n != 150 {
		t.Fatalf("trimmed to %d words, want 150", n)
	}
}
