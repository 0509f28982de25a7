// Package openai provides an OpenAI-compatible chat summarization client
package openai

import (
	"context"
	"strings"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	perr "soundcheck/internal/platform/errors"
	"soundcheck/internal/platform/logger"
)

const (
	defaultModel     = gopenai.GPT4oMini
	defaultMaxTokens = 120
)

const systemPrompt = "Condense the user's text so it can be spoken aloud in well under a minute. " +
	"Keep the speaker's intent and tone. Reply with the condensed text only."

// Options configures the Client
type Options struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
}

// Client summarizes text through a chat completion endpoint.
// Works against OpenAI or any API-compatible server via BaseURL
type Client struct {
	api  *gopenai.Client
	opts Options
	log  logger.Logger
}

// New creates a new Client
func New(o Options) *Client {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	cfg := gopenai.DefaultConfig(o.APIKey)
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	return &Client{
		api:  gopenai.NewClientWithConfig(cfg),
		opts: o,
		log:  *logger.Named("openai"),
	}
}

// Summarize condenses text into a shorter passage. Empty input returns empty
// output without a network round trip
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:     c.opts.Model,
		MaxTokens: c.opts.MaxTokens,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: gopenai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "openai chat completion failed")
	}

	c.log.Debug().
		Str("model", c.opts.Model).
		Dur("latency", time.Since(start)).
		Msg("openai chat completion response")

	if len(resp.Choices) == 0 {
		return "", perr.Unavailablef("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Ping checks the API is reachable with the configured credentials
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "openai ping failed")
	}
	return nil
}
