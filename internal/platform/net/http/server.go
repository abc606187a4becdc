package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"cadastro/internal/platform/config"
	perr "cadastro/internal/platform/errors"
	"cadastro/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// shutdownGrace bounds how long Run waits for in-flight requests once ctx is done
const shutdownGrace = 10 * time.Second

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer creates a server listening on API_PORT (default :4000)
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := normalizeAddr(cfg.MayString("API_PORT", ":4000"))
	m := chi.NewRouter()
	m.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	})
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// normalizeAddr accepts "4000" as well as ":4000" and "host:4000"
func normalizeAddr(a string) string {
	for _, c := range a {
		if c < '0' || c > '9' {
			return a
		}
	}
	return ":" + a
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the listening address
func (s *Server) Addr() string { return s.addr }

// Run starts the server and blocks until it fails or ctx is cancelled
// on cancellation the server is shut down gracefully
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return s.Shutdown(sctx)
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
