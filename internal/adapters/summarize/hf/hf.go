// Package hf provides a Hugging Face Inference API summarization client
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "soundcheck/internal/platform/errors"
	"soundcheck/internal/platform/logger"
)

const (
	baseURLDefault = "https://api-inference.huggingface.co"
	defaultModel   = "t5-small"
	defaultTimeout = 3 * time.Second
	defaultUA      = "soundcheck"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	Model     string
	APIKey    string
	UserAgent string
	Timeout   time.Duration

	// Summary length bounds passed through to the model
	MaxLength int
	MinLength int
}

// Client is a single-attempt summarization client over the HF Inference API.
// No retries: the caller's context deadline is the whole budget and a slow
// rewrite is worse than no rewrite
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a new Client with sane defaults
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxLength <= 0 {
		o.MaxLength = 100
	}
	if o.MinLength <= 0 {
		o.MinLength = 50
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("hf"),
	}
}

type summarizeRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters summarizeParameters `json:"parameters"`
	Options    requestOptions      `json:"options"`
}

type summarizeParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type requestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type summarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

// Summarize condenses text into a shorter passage. Empty input returns empty
// output without a network round trip
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	payload, err := json.Marshal(summarizeRequest{
		Inputs: text,
		Parameters: summarizeParameters{
			MaxLength: c.opts.MaxLength,
			MinLength: c.opts.MinLength,
			DoSample:  false,
		},
		Options: requestOptions{WaitForModel: true},
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "hf marshal request failed")
	}

	url := c.opts.BaseURL + "/models/" + c.opts.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "hf new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "hf do failed")
	}
	defer resp.Body.Close() // nolint:errcheck

	c.log.Debug().
		Str("model", c.opts.Model).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("hf inference response")

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", perr.Newf(perr.ErrorCodeTooManyRequests, "hf rate limited")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", perr.InvalidArgf("hf rejected input: %s", string(body))
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return "", perr.Unavailablef("hf model unavailable status %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", perr.Newf(perr.ErrorCodeUnknown, "hf unexpected status %d body %s", resp.StatusCode, string(body))
	}

	var out []summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "hf decode response failed")
	}
	if len(out) == 0 {
		return "", perr.Unavailablef("hf returned no candidates")
	}
	return strings.TrimSpace(out[0].SummaryText), nil
}

// Ping checks the model endpoint is reachable. Used by readiness probes
func (c *Client) Ping(ctx context.Context) error {
	url := c.opts.BaseURL + "/models/" + c.opts.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "hf new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "hf ping failed")
	}
	defer resp.Body.Close() // nolint:errcheck
	if resp.StatusCode >= 500 {
		return perr.Unavailablef("hf ping status %d", resp.StatusCode)
	}
	return nil
}
