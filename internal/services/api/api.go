// Package api provides the HTTP API for the application
package api

import (
	"tenantrisk/internal/core/model"
	"tenantrisk/internal/platform/config"
	"tenantrisk/internal/platform/logger"
	phttp "tenantrisk/internal/platform/net/http"

	"tenantrisk/internal/modkit"
	"tenantrisk/internal/modkit/httpkit"
	"tenantrisk/internal/modkit/module"
	"tenantrisk/internal/modkit/swaggerkit"

	metamod "tenantrisk/internal/services/api/meta/module"
	scoremod "tenantrisk/internal/services/api/score/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Model          model.State
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router.
// Routes live at the root (GET / and POST /predict/score are the public
// contract), with a common middleware stack applied to all of them
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Model: opt.Model,
	}

	meta := metamod.New(deps)

	mods := []module.Module{
		meta,
		scoremod.New(deps),
	}

	httpkit.MountRoot(r, httpkit.CommonStack(), func(root httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		// always-on status endpoint at /
		if mm, ok := meta.(*metamod.Module); ok {
			mm.MountRoot(root)
		}

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(root)
		}
	})
}
