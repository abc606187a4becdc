// Package module wires the progress endpoint into the API
package module

import (
	modkit "cadastro/internal/modkit"
	"cadastro/internal/modkit/httpkit"
	progresshttp "cadastro/internal/services/api/progress/http"
)

// Module implements the modkit.Module interface
type Module struct{ b modkit.Built }

// New constructs a progress module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{b: modkit.Build([]modkit.Option{
		modkit.WithName("progress"),
		modkit.WithPrefix("/progress"),
	}, opts...)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { progresshttp.Register(rr) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }
