package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "cadastro/internal/platform/errors"
	pnet "cadastro/internal/platform/net"
	phttp "cadastro/internal/platform/net/http"
)

// reqWithReqID builds a request with a request id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestRespondError_MapsCodeAndField(t *testing.T) {
	rec := httptest.NewRecorder()
	err := perr.WithField(perr.Validationf("cpf must be a valid CPF"), "cpf")
	phttp.RespondError(rec, reqWithReqID("POST", "/x", "rid-2"), err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code: %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != perr.ErrorCodeValidation || env.Field != "cpf" || env.Error != "cpf must be a valid CPF" {
		t.Fatalf("bad envelope: %+v", env)
	}
	if env.Data != nil {
		t.Fatalf("error envelope should not carry data: %+v", env.Data)
	}
}

func TestRespondError_ForeignErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/x", ""), errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code: %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != perr.ErrorCodeUnknown || env.RequestID != "" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandle_ReturnStyle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.OK(map[string]int{"n": 1}) })
		rec := httptest.NewRecorder()
		h(rec, reqWithReqID("GET", "/", "rid-3"))
		env := decodeEnvelope(t, rec)
		if rec.Code != 200 || env.RequestID != "rid-3" {
			t.Fatalf("bad response: %d %+v", rec.Code, env)
		}
	})

	t.Run("error derives status", func(t *testing.T) {
		h := phttp.Handle(func(*http.Request) phttp.Response {
			return phttp.Error(perr.InvalidArgf("cpf base must have 9 digits, got 3"))
		})
		rec := httptest.NewRecorder()
		h(rec, reqWithReqID("GET", "/", ""))
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.Code != perr.ErrorCodeInvalidArgument {
			t.Fatalf("bad envelope: %+v", env)
		}
	})

	t.Run("headers and no content", func(t *testing.T) {
		h := phttp.Handle(func(*http.Request) phttp.Response {
			return phttp.Response{Status: http.StatusNoContent, Header: http.Header{"X-Batch": {"1"}}}
		})
		rec := httptest.NewRecorder()
		h(rec, reqWithReqID("GET", "/", ""))
		if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
			t.Fatalf("expected empty 204, got %d %q", rec.Code, rec.Body.String())
		}
		if rec.Header().Get("X-Batch") != "1" {
			t.Fatalf("header not copied")
		}
	})
}
