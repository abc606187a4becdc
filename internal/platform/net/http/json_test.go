package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cadastro/internal/platform/config"
	perr "cadastro/internal/platform/errors"
	phttp "cadastro/internal/platform/net/http"
)

type echoIn struct {
	CPF string `json:"cpf" validate:"required,cpf"`
}

func TestPostJSON_BindsValidatesAndWraps(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	phttp.PostJSON(r, "/cpf", func(_ *http.Request, in echoIn) (any, error) {
		return map[string]string{"got": in.CPF}, nil
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("POST", "/cpf", strings.NewReader(`{"cpf":"11144477735"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d body %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if m, ok := env.Data.(map[string]any); !ok || m["got"] != "11144477735" {
		t.Fatalf("bad data: %#v", env.Data)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("POST", "/cpf", strings.NewReader(`{"cpf":"11144477736"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env = decodeEnvelope(t, rec)
	if env.Code != perr.ErrorCodeValidation || env.Field != "cpf" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestGetJSON_HandlerError(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	phttp.GetJSON(r, "/fail", func(*http.Request) (any, error) {
		return nil, perr.Wrap(errors.New("io"), perr.ErrorCodeUnavailable, "upstream down")
	})
	phttp.GetJSON(r, "/ok", func(*http.Request) (any, error) { return []int{1, 2}, nil })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ok", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetJSON_PassesResponseThrough(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	phttp.GetJSON(r, "/ddds", func(*http.Request) (any, error) {
		return phttp.Response{
			Status: http.StatusOK,
			Body:   []string{"11", "21"},
			Header: http.Header{"Cache-Control": {"max-age=3600"}},
		}, nil
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ddds", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "max-age=3600" {
		t.Fatalf("Cache-Control = %q", got)
	}
	env := decodeEnvelope(t, rec)
	if d, ok := env.Data.([]any); !ok || len(d) != 2 || d[0] != "11" {
		t.Fatalf("bad data: %#v", env.Data)
	}
}
