package module

import (
	"strings"
	"time"

	"soundcheck/internal/platform/config"
	"soundcheck/internal/platform/logger"
)

// Provider names accepted for SUMMARIZER_PROVIDER
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
)

// Options holds configuration settings for the speech module
type Options struct {
	Budget         time.Duration
	WordsPerMinute float64

	Provider string
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	budget := cfg.MayFloat64("BUDGET_SECONDS", 60)
	if budget <= 0 {
		logger.Get().Panic().Float64("value", budget).Msg("BUDGET_SECONDS must be positive")
	}
	wpm := cfg.MayFloat64("WORDS_PER_MINUTE", 150)
	if wpm <= 0 {
		logger.Get().Panic().Float64("value", wpm).Msg("WORDS_PER_MINUTE must be positive")
	}
	// MayEnum matches case-insensitively but echoes the caller's casing
	provider := strings.ToLower(
		cfg.MayEnum("SUMMARIZER_PROVIDER", ProviderHuggingFace, ProviderHuggingFace, ProviderOpenAI))

	return Options{
		Budget:         time.Duration(budget * float64(time.Second)),
		WordsPerMinute: wpm,
		Provider:       provider,
		Endpoint:       cfg.MayString("SUMMARIZER_ENDPOINT", ""),
		Model:          cfg.MayString("SUMMARIZER_MODEL", ""),
		APIKey:         cfg.MayString("SUMMARIZER_API_KEY", ""),
		Timeout:        time.Duration(cfg.MayInt("SUMMARIZER_TIMEOUT_MS", 3000)) * time.Millisecond,
	}
}
