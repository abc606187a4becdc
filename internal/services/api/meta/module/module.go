// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"cadastro/internal/core/version"
	modkit "cadastro/internal/modkit"
	"cadastro/internal/modkit/httpkit"
	metahttp "cadastro/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		b: modkit.Build([]modkit.Option{
			modkit.WithName("meta"),
			modkit.WithPrefix("/meta"),
		}, opts...),
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }
