// @title         cadastro API
// @version       0.3.0
// @description   CPF and mobile phone masks and validation, display names and onboarding progress
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cadastro/internal/platform/config"
	"cadastro/internal/platform/logger"
	phttp "cadastro/internal/platform/net/http"

	"cadastro/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	apiCfg := config.New().Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	opt := api.FromConfig(apiCfg)
	opt.Logger = l
	api.Mount(srv.Router(), opt)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("shutdown complete")
}
