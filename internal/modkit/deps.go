// Package modkit provides module wiring and core deps
package modkit

import (
	"cadastro/internal/platform/config"
	"cadastro/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns the module logger, falling back to the process logger
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	l := d.Log.With().Str("component", component).Logger()
	return &l
}
