// Package module wires the profile endpoints into the API
package module

import (
	modkit "cadastro/internal/modkit"
	"cadastro/internal/modkit/httpkit"
	profilehttp "cadastro/internal/services/api/profile/http"
)

// Module implements the modkit.Module interface
type Module struct{ b modkit.Built }

// New constructs a profile module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{b: modkit.Build([]modkit.Option{
		modkit.WithName("profile"),
		modkit.WithPrefix("/profile"),
	}, opts...)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { profilehttp.Register(rr) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }
