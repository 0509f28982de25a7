// Package api composes the HTTP API for the application
package api

import (
	"soundcheck/internal/platform/config"
	"soundcheck/internal/platform/logger"
	phttp "soundcheck/internal/platform/net/http"

	"soundcheck/internal/modkit"
	"soundcheck/internal/modkit/httpkit"
	"soundcheck/internal/modkit/module"
	"soundcheck/internal/modkit/swaggerkit"

	metamod "soundcheck/internal/services/meta/module"
	speechmod "soundcheck/internal/services/speech/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the speech module first and hand its summarizer port to meta
	// so /meta/ready can probe the same client validation uses
	speech := speechmod.New(deps)
	sum := module.MustPortsOf[speechmod.Ports](speech).Summarizer

	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Summarizer: sum,
	}))

	mods := []module.Module{
		speech,
		meta,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
