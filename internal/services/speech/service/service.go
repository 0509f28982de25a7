// Package service contains the speech validation workflow
package service

import (
	"context"
	"strings"
	"time"

	"soundcheck/internal/core/normalize"
	"soundcheck/internal/core/speech"
	"soundcheck/internal/platform/logger"
	"soundcheck/internal/services/speech/domain"
)

// Service defines the service contract for speech validation
type Service interface{ domain.ServicePort }

// Options carries the immutable per-process validation constants
type Options struct {
	// Budget is the maximum allowed estimated speech duration
	Budget time.Duration

	// Rate is the words-per-minute model shared by estimation and trimming
	Rate speech.Rate

	// SummarizeTimeout bounds the single summarization attempt
	SummarizeTimeout time.Duration
}

// Svc implements the Service interface. All fields are set once at
// construction and never mutated, so one Svc serves any number of
// concurrent requests
type Svc struct {
	budget     time.Duration
	rate       speech.Rate
	timeout    time.Duration
	summarizer domain.SummarizerPort
	norm       *normalize.Normalizer
}

// New creates a new speech validation service
func New(summarizer domain.SummarizerPort, opt Options) *Svc {
	if summarizer == nil {
		panic("speech.Service requires a non nil SummarizerPort")
	}
	if opt.Budget <= 0 {
		panic("speech.Service requires a positive Budget")
	}
	if opt.Rate.WordsPerMinute <= 0 {
		panic("speech.Service requires a positive speech rate")
	}
	if opt.SummarizeTimeout <= 0 {
		opt.SummarizeTimeout = 3 * time.Second
	}
	return &Svc{
		budget:     opt.Budget,
		rate:       opt.Rate,
		timeout:    opt.SummarizeTimeout,
		summarizer: summarizer,
		norm:       normalize.New(),
	}
}

// Estimate reports the speech-rate estimate for a text without rewriting it
func (s *Svc) Estimate(_ context.Context, in domain.EstimateInput) (domain.EstimateResult, error) {
	return domain.EstimateResult{
		EstimatedSeconds: s.rate.Seconds(in.Text),
		WordCount:        speech.WordCount(in.Text),
		WithinBudget:     s.rate.Estimate(in.Text) <= s.budget,
	}, nil
}

// Validate estimates the spoken duration of the utterance and, when it runs
// over budget, trims and summarizes it. One summarization attempt; if the
// model's output is still over budget that is reported, not re-iterated.
// Summarizer failure degrades to the trimmed text so the agent always gets
// something speakable back
func (s *Svc) Validate(ctx context.Context, in domain.ValidateInput) (domain.ValidateResult, error) {
	text := in.Text

	if s.rate.Estimate(text) <= s.budget {
		return domain.ValidateResult{
			FinalText:        text,
			EstimatedSeconds: s.rate.Seconds(text),
			WasModified:      false,
			Outcome:          domain.OutcomePass,
		}, nil
	}

	trimmed := s.rate.Trim(text, s.budget)

	sctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.summarizer.Summarize(sctx, s.norm.Clean(trimmed))
	if err != nil || strings.TrimSpace(summary) == "" {
		logger.C(ctx).Warn().
			Err(err).
			Int("trimmed_words", speech.WordCount(trimmed)).
			Msg("summarizer unavailable, returning trimmed text")
		return domain.ValidateResult{
			FinalText:        trimmed,
			EstimatedSeconds: s.rate.Seconds(trimmed),
			WasModified:      true,
			Outcome:          domain.OutcomeDegraded,
		}, nil
	}

	final := s.rate.Seconds(summary)
	if time.Duration(final*float64(time.Second)) > s.budget {
		logger.C(ctx).Debug().
			Float64("estimated_seconds", final).
			Msg("summary still over budget, reporting as-is")
	}
	return domain.ValidateResult{
		FinalText:        summary,
		EstimatedSeconds: final,
		WasModified:      true,
		Outcome:          domain.OutcomeRewritten,
	}, nil
}
