package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"cadastro/internal/platform/config"
	"cadastro/internal/platform/net/middleware"
)

// StackOptions tunes the common middleware stack
type StackOptions struct {
	CORSOrigins []string
	Slow        time.Duration
	Timeout     time.Duration
	MaxInflight int
}

// StackOptionsFromConfig reads CORS_ORIGINS, SLOW_MS, TIMEOUT and MAX_INFLIGHT from cfg
func StackOptionsFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Slow:        cfg.MayDuration("SLOW_MS", 500*time.Millisecond),
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		MaxInflight: cfg.MayInt("MAX_INFLIGHT", 0),
	}
}

// CommonStack returns the baseline middleware slice for the versioned API
// order matters: ids first so every later layer can log them
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.RecoverJSON,
		middleware.Throttle(o.MaxInflight),

		// validation results are per request, never cache them
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
}
