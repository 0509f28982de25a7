package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"soundcheck/internal/core/speech"
	"soundcheck/internal/platform/testkit"
	"soundcheck/internal/services/speech/domain"
	"soundcheck/internal/services/speech/service"
)

type fakeSummarizer struct {
	out   string
	err   error
	calls int
	seen  string
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.calls++
	f.seen = text
	return f.out, f.err
}

func newSvc(sum domain.SummarizerPort) *service.Svc {
	return service.New(sum, service.Options{
		Budget:           time.Minute,
		Rate:             speech.NewRate(150),
		SummarizeTimeout: 100 * time.Millisecond,
	})
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestNewGuards(t *testing.T) {
	testkit.MustPanic(t, func() {
		service.New(nil, service.Options{Budget: time.Minute, Rate: speech.NewRate(150)})
	})
	testkit.MustPanic(t, func() {
		service.New(&fakeSummarizer{}, service.Options{Budget: 0, Rate: speech.NewRate(150)})
	})
	testkit.MustPanic(t, func() {
		service.New(&fakeSummarizer{}, service.Options{Budget: time.Minute, Rate: speech.NewRate(-1)})
	})
	testkit.MustNotPanic(t, func() {
		service.New(&fakeSummarizer{}, service.Options{Budget: time.Minute, Rate: speech.NewRate(150)})
	})
}

func TestValidatePassReturnsOriginalUntouched(t *testing.T) {
	sum := &fakeSummarizer{out: "should never be used"}
	svc := newSvc(sum)

	in := "Hello,  how can I   help you today?"
	res, err := svc.Validate(context.Background(), domain.ValidateInput{Text: in})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != domain.OutcomePass {
		t.Fatalf("outcome = %q, want pass", res.Outcome)
	}
	// byte for byte, interior whitespace included
	if res.FinalText != in {
		t.Fatalf("pass must return the original text untouched: %q", res.FinalText)
	}
	if res.WasModified {
		t.Fatalf("pass must report wasModified=false")
	}
	if res.EstimatedSeconds != 2.8 {
		t.Fatalf("7 words at 150wpm = %v, want 2.8", res.EstimatedSeconds)
	}
	if sum.calls != 0 {
		t.Fatalf("summarizer must not be called on pass, got %d calls", sum.calls)
	}
}

func TestValidateExactlyAtBudgetPasses(t *testing.T) {
	sum := &fakeSummarizer{}
	svc := newSvc(sum)

	res, err := svc.Validate(context.Background(), domain.ValidateInput{Text: words(150)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != domain.OutcomePass || res.EstimatedSeconds != 60 {
		t.Fatalf("150 words must pass at exactly 60s, got %+v", res)
	}
}

func TestValidateOverBudgetRewrites(t *testing.T) {
	summary := words(40) // 16 seconds
	sum := &fakeSummarizer{out: summary}
	svc := newSvc(sum)

	res, err := svc.Validate(context.Background(), domain.ValidateInput{Text: words(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != domain.OutcomeRewritten {
		t.Fatalf("outcome = %q, want rewritten", res.Outcome)
	}
	if res.FinalText != summary {
		t.Fatalf("finalText = %q, want the summary", res.FinalText)
	}
	if !res.WasModified {
		t.Fatalf("rewrite must report wasModified=true")
	}
	if res.EstimatedSeconds != 16 {
		t.Fatalf("40 words at 150wpm = %v, want 16", res.EstimatedSeconds)
	}
	if sum.calls != 1 {
		t.Fatalf("want exactly one summarization attempt, got %d", sum.calls)
	}
	// the summarizer sees the trimmed text, not all 300 words
	if n := speech.WordCount(sum.seen); n != 150 {
		t.Fatalf("summarizer input was %d words, want 150", n)
	}
}

func TestValidateSummarizerErrorDegrades(t *testing.T) {
	sum := &fakeSummarizer{err: errors.New("model down")}
	svc := newSvc(sum)

	in := words(300)
	res, err := svc.Validate(context.Background(), domain.ValidateInput{Text: in})
	if err != nil {
		t.Fatalf("degraded path must not surface an error, got %v", err)
	}
	if res.Outcome != domain.OutcomeDegraded {
		t.Fatalf("outcome = %q, want degraded", res.Outcome)
	}
	want := speech.NewRate(150).Trim(in, time.Minute)
	if res.FinalText != want {
		t.Fatalf("degraded finalText must equal the trimmed text")
	}
	if !res.WasModified {
		t.Fatalf("degraded must report wasModified=true")
	}
	if res.EstimatedSeconds != 60 {
		t.Fatalf("trimmed estimate = %v, want 60", res.EstimatedSeconds)
	}
}

func TestValidateBlankSummaryDegrades(t *testing.T) {
	sum := &fakeSummarizer{out: "   \n "}
	svc := newSvc(sum)

	res, err := svc.Validate(context.Background(), domain.ValidateInput{Text: words(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != domain.OutcomeDegraded {
		t.Fatalf("blank summary must degrade, got %q", res.Outcome)
	}
	if speech.WordCount(res.FinalText) != 150 {
		t.Fatalf("degraded text should be the 150-word trim, got %d words", speech.WordCount(res.FinalText))
	}
}

type slowSummarizer struct{}

func (slowSummarizer) Summarize(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestValidateSummarizerTimeoutDegrades(t *testing.T) {
	svc := newSvc(slowSummarizer{})

	start := time.Now()
	res, err := svc.Validate(context.Background(), domain.ValidateInput{Text: words(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != domain.OutcomeDegraded {
		t.Fatalf("timeout must degrade, got %q", res.Outcome)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %v", elapsed)
	}
}

func TestValidateIdempotentOnPass(t *testing.T) {
	sum := &fakeSummarizer{out: words(40)}
	svc := newSvc(sum)

	first, _ := svc.Validate(context.Background(), domain.ValidateInput{Text: words(300)})
	second, _ := svc.Validate(context.Background(), domain.ValidateInput{Text: first.FinalText})
	if second.Outcome != domain.OutcomePass {
		t.Fatalf("re-validating a rewrite should pass, got %q", second.Outcome)
	}
	if second.FinalText != first.FinalText {
		t.Fatalf("re-validation must not change the text again")
	}
}

func TestEstimate(t *testing.T) {
	svc := newSvc(&fakeSummarizer{})

	res, err := svc.Estimate(context.Background(), domain.EstimateInput{Text: words(8)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EstimatedSeconds != 3.2 || res.WordCount != 8 || !res.WithinBudget {
		t.Fatalf("bad estimate: %+v", res)
	}

	over, _ := svc.Estimate(context.Background(), domain.EstimateInput{Text: words(200)})
	if over.WithinBudget {
		t.Fatalf("200 words must be over a 60s budget")
	}
}
