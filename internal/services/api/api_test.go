package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cadastro/internal/core/version"
	"cadastro/internal/platform/config"
	phttp "cadastro/internal/platform/net/http"
	"cadastro/internal/platform/net/http/bind"
	kit "cadastro/internal/platform/testkit"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
}

func newServer(t *testing.T, opt Options) phttp.Router {
	t.Helper()
	t.Cleanup(func() { bind.Init(bind.LocaleEN) })
	r := phttp.NewServer(config.New()).Router()
	Mount(r, opt)
	return r
}

func call(t *testing.T, r phttp.Router, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestFromConfig(t *testing.T) {
	t.Setenv("API_T_LOCALE", "PT_br")
	t.Setenv("API_T_SWAGGER", "true")
	t.Setenv("API_T_CORS_ORIGINS", "https://painel.example")

	opt := FromConfig(config.New().Prefix("API_T_"))
	if opt.Locale != bind.LocalePTBR || !opt.EnableSwagger || opt.EnableProfiler {
		t.Fatalf("options = %+v", opt)
	}
	if len(opt.Stack.CORSOrigins) != 1 {
		t.Fatalf("stack = %+v", opt.Stack)
	}
}

func TestFromConfig_BadLocalePanics(t *testing.T) {
	t.Setenv("API_T_LOCALE", "fr")
	kit.MustPanic(t, func() { FromConfig(config.New().Prefix("API_T_")) })
}

func TestMount_EveryModuleAnswers(t *testing.T) {
	r := newServer(t, Options{Locale: bind.LocaleEN})

	cases := []struct {
		method, path, body string
		status             int
	}{
		{"GET", "/api/v1/meta/health", "", 200},
		{"GET", "/api/v1/meta/version", "", 200},
		{"GET", "/api/v1/meta/service", "", 200},
		{"POST", "/api/v1/documents/cpf/validate", `{"value":"11144477735"}`, 200},
		{"GET", "/api/v1/documents/phone/ddds", "", 200},
		{"POST", "/api/v1/profile/name", `{"nome":"Ana Maria"}`, 200},
		{"POST", "/api/v1/progress", `{"entregues":30,"prometidas":40}`, 200},
		{"GET", "/api/v1/nope", "", 404},
		{"GET", "/api/docs/doc.json", "", 404},
		{"GET", "/debug/pprof/", "", 404},
	}
	for _, tc := range cases {
		rec, _ := call(t, r, tc.method, tc.path, tc.body)
		if rec.Code != tc.status {
			t.Fatalf("%s %s: status %d, want %d (%s)", tc.method, tc.path, rec.Code, tc.status, rec.Body.String())
		}
	}
}

func TestMount_HealthEnvelope(t *testing.T) {
	r := newServer(t, Options{})
	rec, env := call(t, r, "GET", "/api/v1/meta/health", "")
	if env.RequestID == "" || rec.Header().Get("X-Request-ID") != env.RequestID {
		t.Fatalf("request id missing: %+v", env)
	}
	var h struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
	}
	if err := json.Unmarshal(env.Data, &h); err != nil || !h.OK || h.Service != "cadastro-api" {
		t.Fatalf("health = %+v (%v)", h, err)
	}
}

func TestMount_ProfileAndProgress(t *testing.T) {
	r := newServer(t, Options{})

	_, env := call(t, r, "POST", "/api/v1/profile/name", `{"nome":"  ana   maria "}`)
	var name map[string]any
	_ = json.Unmarshal(env.Data, &name)
	if name["valid"] != true || name["normalized"] != "ana maria" || name["initials"] != "AM" || name["reason"] != "ok" {
		t.Fatalf("name = %v", name)
	}

	_, env = call(t, r, "POST", "/api/v1/profile/name", `{"nome":""}`)
	name = nil
	_ = json.Unmarshal(env.Data, &name)
	if name["display"] != "Sem Nome" || name["pending"] != true || name["initials"] != "SN" {
		t.Fatalf("empty name = %v", name)
	}

	_, env = call(t, r, "POST", "/api/v1/progress", `{"entregues":30,"prometidas":40}`)
	var p map[string]any
	_ = json.Unmarshal(env.Data, &p)
	if p["formatted"] != "75.00%" || p["band"] != "green" || p["entregues"] != float64(30) {
		t.Fatalf("progress = %v", p)
	}

	rec, env := call(t, r, "POST", "/api/v1/progress", `{"entregues":-1,"prometidas":40}`)
	if rec.Code != http.StatusBadRequest || env.Field != "entregues" {
		t.Fatalf("negative count: %d %+v", rec.Code, env)
	}
}

func TestMount_PortugueseMessages(t *testing.T) {
	r := newServer(t, Options{Locale: bind.LocalePTBR})
	rec, env := call(t, r, "POST", "/api/v1/documents/contact", `{"cpf":"12345678900","telefone":"11988887777"}`)
	if rec.Code != http.StatusBadRequest || env.Error != "cpf deve ser um CPF válido" {
		t.Fatalf("contact: %d %+v", rec.Code, env)
	}
}

func TestMount_SwaggerAndProfiler(t *testing.T) {
	r := newServer(t, Options{EnableSwagger: true, EnableProfiler: true})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json: %d", rec.Code)
	}
	var spec struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Version string         `json:"version"`
			Build   map[string]any `json:"x-build"`
		} `json:"info"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("doc.json: %v", err)
	}
	if spec.OpenAPI != "3.0.3" || len(spec.Servers) != 1 || spec.Servers[0].URL != "/api/v1" {
		t.Fatalf("spec = %+v", spec)
	}
	if spec.Info.Version != version.Info().Version || spec.Info.Build["commit"] != version.Info().Commit {
		t.Fatalf("build not stamped: %+v", spec.Info)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("pprof: %d", rec.Code)
	}
}
