package modkit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cadastro/internal/modkit"
	"cadastro/internal/modkit/httpkit"
	"cadastro/internal/platform/config"
	phttp "cadastro/internal/platform/net/http"
	kit "cadastro/internal/platform/testkit"
)

type fakeModule struct{ b modkit.Built }

func newFake(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &fakeModule{b: modkit.Build([]modkit.Option{
		modkit.WithName("fake"),
		modkit.WithPrefix("fake"),
	}, opts...)}
}

func (m *fakeModule) Name() string { return m.b.Name }

func (m *fakeModule) MountRoutes(r phttp.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		httpkit.Get(sub, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})
}

func serve(r phttp.Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestBuild_DefaultsThenOverrides(t *testing.T) {
	var builder modkit.Builder = newFake
	m := builder(modkit.Deps{}, modkit.WithName("renamed"))
	if m.Name() != "renamed" {
		t.Fatalf("Name = %q", m.Name())
	}

	b := modkit.Build([]modkit.Option{modkit.WithName("x"), modkit.WithPrefix("/x/")})
	if b.Prefix != "/x" {
		t.Fatalf("Prefix = %q", b.Prefix)
	}
}

func TestBuild_PanicsOnMissingNameOrPrefix(t *testing.T) {
	kit.MustPanic(t, func() { modkit.Build(nil, modkit.WithPrefix("/x")) })
	kit.MustPanic(t, func() { modkit.Build(nil, modkit.WithName("x")) })
}

func TestMount_PrefixAndMiddleware(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()

	tagged := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Module", "fake")
			next.ServeHTTP(w, req)
		})
	}
	m := newFake(modkit.Deps{}, modkit.WithMiddlewares(tagged))
	m.MountRoutes(r)

	rec := serve(r, "GET", "/fake/ping")
	if rec.Code != http.StatusOK || rec.Header().Get("X-Module") != "fake" {
		t.Fatalf("ping: %d %v", rec.Code, rec.Header())
	}
	if rec := serve(r, "GET", "/ping"); rec.Code != http.StatusNotFound {
		t.Fatalf("unprefixed route should 404, got %d", rec.Code)
	}
}

func TestDeps_Logger(t *testing.T) {
	if (modkit.Deps{}).Logger("documents") == nil {
		t.Fatalf("expected fallback logger")
	}
}
