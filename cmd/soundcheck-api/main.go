// @title         Soundcheck API
// @version       0.1.0
// @description   Validates agent responses against a speech duration budget before TTS

package main

import (
	"context"
	"os/signal"
	"syscall"

	"soundcheck/internal/platform/config"
	"soundcheck/internal/platform/logger"
	phttp "soundcheck/internal/platform/net/http"

	"soundcheck/internal/services/api"
)

func main() {
	cfg := config.New()

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// http server (reads API_PORT)
	srv := phttp.NewServer(cfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         cfg,
			Logger:         l,
			EnableSwagger:  cfg.MayBool("SWAGGER", true),
			EnableProfiler: cfg.MayBool("PROFILER", true),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		l.Info().Msg("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
