package modkit

import (
	"net/http"

	"cadastro/internal/modkit/httpkit"
	str "cadastro/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
}

// Build applies defaults then opts and returns a plain struct
// name and prefix are checked here so a misconfigured module fails at startup
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range defaults {
		o(&c)
	}
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   str.MustString(c.name, "module name"),
		Prefix: str.MustPrefix(c.prefix),
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
	}
}

// Mount mounts b's prefix on r, applies its middleware, then registers the module routes
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, own)
}
