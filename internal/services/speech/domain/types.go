// Package domain holds speech validation core types independent of transport
package domain

// Outcome is the terminal state of one validation pass
type Outcome string

const (
	// OutcomePass means the text already spoke within budget and was returned untouched
	OutcomePass Outcome = "pass"

	// OutcomeRewritten means the text was trimmed and summarized
	OutcomeRewritten Outcome = "rewritten"

	// OutcomeDegraded means the text was trimmed but the summarizer was unavailable,
	// so the response is shortened but not semantically condensed
	OutcomeDegraded Outcome = "degraded"
)
