package domain

import "context"

// ServicePort is the interface implemented by the speech validation service
type ServicePort interface {
	Validate(ctx context.Context, in ValidateInput) (ValidateResult, error)
	Estimate(ctx context.Context, in EstimateInput) (EstimateResult, error)
}

// SummarizerPort is the narrow seam to the external summarization model.
// Implementations must treat the context deadline as the single-attempt budget;
// any failure (unreachable, timeout, rejected input) surfaces as one error
type SummarizerPort interface {
	Summarize(ctx context.Context, text string) (string, error)
}
