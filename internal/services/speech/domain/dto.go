// Package domain holds DTOs for speech http and service contracts
package domain

// ValidateInput carries one candidate utterance headed for speech synthesis.
// A missing or empty text field is a client error, never a degraded pass
type ValidateInput struct {
	Text string `json:"text" validate:"required" example:"Hello, how can I help you today?"`
}

// ValidateResult is the wire contract consumed by the agent's pre-TTS hook.
// Key casing is part of the external contract and must not change
type ValidateResult struct {
	FinalText        string  `json:"finalText" example:"Hello, how can I help you today?"`
	EstimatedSeconds float64 `json:"estimatedSeconds" example:"3.2"`
	WasModified      bool    `json:"wasModified" example:"false"`
	Outcome          Outcome `json:"outcome" example:"pass"`
}

// EstimateInput asks for a duration estimate without any rewriting
type EstimateInput struct {
	Text string `json:"text" validate:"required" example:"Hello, how can I help you today?"`
}

// EstimateResult reports the speech-rate estimate for a text
type EstimateResult struct {
	EstimatedSeconds float64 `json:"estimatedSeconds" example:"3.2"`
	WordCount        int     `json:"wordCount" example:"8"`
	WithinBudget     bool    `json:"withinBudget" example:"true"`
}
