// Package module implements the speech validation module
package module

import (
	"net/http"

	"soundcheck/internal/adapters/summarize/hf"
	"soundcheck/internal/adapters/summarize/openai"
	"soundcheck/internal/core/speech"
	"soundcheck/internal/modkit"
	"soundcheck/internal/modkit/httpkit"
	str "soundcheck/internal/platform/strings"
	"soundcheck/internal/services/speech/domain"
	speechhttp "soundcheck/internal/services/speech/http"
	"soundcheck/internal/services/speech/service"
)

// Ports exposed by the speech module
type Ports struct {
	Validator  domain.ServicePort
	Summarizer domain.SummarizerPort
}

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports
	svc    service.Service
}

// New constructs a speech module. Tests may inject a fake summarizer via
// modkit.WithPorts(Ports{Summarizer: ...}); otherwise the provider is built
// from config
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("speech"),
		modkit.WithPrefix("/speech"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var summarizer domain.SummarizerPort
	if injected, ok := b.Ports.(Ports); ok && injected.Summarizer != nil {
		summarizer = injected.Summarizer
	} else {
		summarizer = newSummarizer(cfg)
	}

	svc := service.New(summarizer, service.Options{
		Budget:           cfg.Budget,
		Rate:             speech.NewRate(cfg.WordsPerMinute),
		SummarizeTimeout: cfg.Timeout,
	})

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{
		Validator:  svc,
		Summarizer: summarizer,
	}
	return m
}

func newSummarizer(cfg Options) domain.SummarizerPort {
	switch cfg.Provider {
	case ProviderOpenAI:
		return openai.New(openai.Options{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.Endpoint,
			Timeout: cfg.Timeout,
		})
	default:
		return hf.New(hf.Options{
			BaseURL: cfg.Endpoint,
			Model:   cfg.Model,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		})
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "speech") }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(sub httpkit.Router) {
		speechhttp.Register(sub, m.svc)
	})
}
