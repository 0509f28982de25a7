// Package agent adapts the validation API for a conversational agent's
// pre-TTS hook
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	perr "soundcheck/internal/platform/errors"
	"soundcheck/internal/platform/logger"
	"soundcheck/internal/services/speech/domain"
)

const (
	defaultBaseURL = "http://localhost:4000"
	defaultTimeout = 5 * time.Second
	validatePath   = "/api/v1/speech/validate"
)

// Options configures the Hook
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// Hook is an HTTP client for the validation endpoint, shaped for use as a
// before-TTS callback in an agent pipeline
type Hook struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a new Hook with sane defaults
func New(o Options) *Hook {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Hook{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("agent"),
	}
}

type envelope struct {
	StatusCode int                   `json:"status_code"`
	Error      string                `json:"error"`
	RequestID  string                `json:"request_id"`
	Data       domain.ValidateResult `json:"data"`
}

// Validate sends text to the validation endpoint and returns the result
func (h *Hook) Validate(ctx context.Context, text string) (domain.ValidateResult, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return domain.ValidateResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "agent marshal request failed")
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, h.opts.BaseURL+validatePath, bytes.NewReader(payload))
	if err != nil {
		return domain.ValidateResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "agent new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := h.http.Do(req)
	if err != nil {
		return domain.ValidateResult{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "agent validate call failed")
	}
	defer resp.Body.Close() // nolint:errcheck

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err != nil {
		return domain.ValidateResult{}, perr.Wrapf(err, perr.ErrorCodeJSON, "agent decode response failed")
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ValidateResult{}, perr.Newf(
			perr.ErrorCodeUnavailable, "validate status %d: %s", resp.StatusCode, env.Error)
	}
	return env.Data, nil
}

// BeforeTTS validates text and returns the text the agent should speak.
// Any failure falls back to the original text so speech is never blocked
// by the gate being down
func (h *Hook) BeforeTTS(ctx context.Context, text string) string {
	res, err := h.Validate(ctx, text)
	if err != nil {
		h.log.Warn().Err(err).Msg("validation unavailable, speaking original text")
		return text
	}
	return res.FinalText
}
