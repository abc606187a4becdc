// Package api provides the HTTP API for the application
package api

import (
	"cadastro/internal/core/version"
	"cadastro/internal/platform/config"
	"cadastro/internal/platform/logger"
	phttp "cadastro/internal/platform/net/http"
	"cadastro/internal/platform/net/http/bind"

	"cadastro/internal/modkit"
	"cadastro/internal/modkit/httpkit"
	"cadastro/internal/modkit/swaggerkit"

	docsmod "cadastro/internal/services/api/documents/module"
	metamod "cadastro/internal/services/api/meta/module"
	profilemod "cadastro/internal/services/api/profile/module"
	progressmod "cadastro/internal/services/api/progress/module"
)

func init() {
	swaggerkit.Register(stampBuild)
}

// stampBuild reports the running build in the served spec instead of the annotated version
func stampBuild(spec map[string]any) {
	info, ok := spec["info"].(map[string]any)
	if !ok {
		return
	}
	bi := version.Info()
	info["version"] = bi.Version
	info["x-build"] = map[string]any{"commit": bi.Commit, "date": bi.Date}
}

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Locale         string
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
}

// FromConfig reads the API options from cfg, usually prefixed CORE_API_
func FromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		Locale:         cfg.MayEnum("LOCALE", bind.LocaleEN, bind.Locales...),
		Stack:          httpkit.StackOptionsFromConfig(cfg),
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
	}
}

// Modules returns the API modules in mount order
func Modules(deps modkit.Deps) []modkit.Module {
	return []modkit.Module{
		metamod.New(deps),
		docsmod.New(deps),
		profilemod.New(deps),
		progressmod.New(deps),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	bind.Init(opt.Locale)

	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
	}
	log := deps.Logger("api")

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range Modules(deps) {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	log.Info().
		Str("locale", opt.Locale).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
}
