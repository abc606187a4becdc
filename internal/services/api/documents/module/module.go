// Package module wires documents into the API using modkit
package module

import (
	modkit "cadastro/internal/modkit"
	"cadastro/internal/modkit/httpkit"
	"cadastro/internal/platform/net/middleware"
	"cadastro/internal/services/api/documents/domain"
	docshttp "cadastro/internal/services/api/documents/http"
	docssvc "cadastro/internal/services/api/documents/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	svc docssvc.Service
}

// New constructs a documents module. BATCH_MAX on deps.Cfg caps batch size,
// DOCUMENTS_MAX_INFLIGHT caps concurrent requests into this module (0 disables)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{
		modkit.WithName("documents"),
		modkit.WithPrefix("/documents"),
		modkit.WithMiddlewares(middleware.Throttle(deps.Cfg.MayInt("DOCUMENTS_MAX_INFLIGHT", 0))),
	}, opts...)

	batchMax := deps.Cfg.MayInt("BATCH_MAX", domain.DefaultBatchMax)
	return &Module{
		b:   b,
		svc: docssvc.New(batchMax, deps.Logger(b.Name)),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		docshttp.Register(rr, m.svc)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }
