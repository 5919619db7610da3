// @title         Tenant Risk Scoring API
// @version       0.1.0
// @description   Scores tenant risk from payment history features

package main

import (
	"context"

	"tenantrisk/internal/core/model"
	"tenantrisk/internal/platform/config"
	"tenantrisk/internal/platform/logger"
	phttp "tenantrisk/internal/platform/net/http"

	"tenantrisk/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// load the classifier artifact once, before any request is accepted.
	// a missing or broken artifact is non-fatal: the service starts degraded
	// and scoring calls answer 503 until an operator fixes the deployment
	modelPath := apiCfg.MayString("MODEL_PATH", "model/models/tenant_risk_model.json")
	st := model.NewUnavailable()
	if art, err := model.Load(modelPath); err != nil {
		l.Error().Err(err).Str("path", modelPath).Msg("model load failed; scoring unavailable")
	} else {
		st = model.NewLoaded(art)
		l.Info().
			Str("path", modelPath).
			Str("model_id", art.ModelID.String()).
			Strs("features", art.Features).
			Msg("model loaded")
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Model:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
