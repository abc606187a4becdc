package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cadastro/internal/platform/config"
	phttp "cadastro/internal/platform/net/http"
)

func TestNewServer_DefaultsAndMux(t *testing.T) {
	t.Setenv("API_PORT", "")
	srv := phttp.NewServer(config.New())
	if srv.Addr() != ":4000" {
		t.Fatalf("addr = %q, want :4000", srv.Addr())
	}
	r := srv.Router()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewServer_BarePort(t *testing.T) {
	t.Setenv("CORE_API_API_PORT", "8088")
	t.Setenv("CORE_API_PORT", "9999")
	srv := phttp.NewServer(config.New().Prefix("CORE_API_"))
	if srv.Addr() != ":8088" {
		t.Fatalf("addr = %q, want :8088", srv.Addr())
	}
}

func TestRouter_RouteGroupWith(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()

	tag := func(v string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Add("X-Tag", v)
				next.ServeHTTP(w, req)
			})
		}
	}

	r.Route("/api", func(api phttp.Router) {
		api.Use(tag("api"))
		api.Group(func(g phttp.Router) {
			g.Post("/echo", func(w http.ResponseWriter, req *http.Request) {
				_, _ = io.Copy(w, req.Body)
			})
		})
		api.With(tag("with")).Get("/tagged", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
		api.Options("/echo", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/tagged", nil))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("tagged code: %d", rec.Code)
	}
	if got := rec.Header().Values("X-Tag"); len(got) != 2 || got[0] != "api" || got[1] != "with" {
		t.Fatalf("middleware order: %v", got)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/echo", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("options code: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/echo", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET on a POST route, got %d", rec.Code)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestMountProfiler(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.MountProfiler(r, "/debug", false)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}

	srv2 := phttp.NewServer(config.New())
	r2 := srv2.Router()
	phttp.MountProfiler(r2, "/debug", true)

	rec = httptest.NewRecorder()
	r2.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("enabled profiler should 200, got %d", rec.Code)
	}
}

func TestNewServer_NotFoundIsJSON(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	r.Route("/api", func(api phttp.Router) {
		api.Get("/known", func(w http.ResponseWriter, _ *http.Request) {})
	})

	for _, path := range []string{"/nope", "/api/unknown"} {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.Error != "no route for GET "+path {
			t.Fatalf("%s: bad envelope %+v", path, env)
		}
	}
}
