package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/robertroman/store-admin-console/internal/errs"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_AttachesAuthAndRequestID(t *testing.T) {
	t.Parallel()

	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Tokens: staticToken("abc")})
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.Get(context.Background(), "/ping", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !out.OK {
		t.Fatalf("decode failed: %+v", out)
	}
	if gotAuth != "Bearer abc" {
		t.Fatalf("Authorization=%q, want Bearer abc", gotAuth)
	}
	if gotReqID == "" {
		t.Fatalf("missing X-Request-ID")
	}
}

func TestClient_AnonymousWhenNoToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Tokens: staticToken("")})
	var out []string
	if err := c.Get(context.Background(), "/x", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Stock insuficiente","timestamp":1700000000}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	err := c.Post(context.Background(), "/ventas", map[string]any{}, nil)
	if err == nil {
		t.Fatalf("want error on 400")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Stock insuficiente" {
		t.Fatalf("bad error: %+v", apiErr)
	}
	if got := ErrorMessage(err, "fallback"); got != "Stock insuficiente" {
		t.Fatalf("ErrorMessage=%q", got)
	}
}

func TestClient_UnauthorizedMapsToSentinel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token inválido"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	err := c.Get(context.Background(), "/locales/mis-locales", nil)
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestClient_NotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	err := c.Get(context.Background(), "/productos/99", nil)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	// empty body: fallback message wins
	if got := ErrorMessage(err, "Error al cargar el producto"); got != "Error al cargar el producto" {
		t.Fatalf("ErrorMessage=%q", got)
	}
}

func TestErrorMessage_TransportFailure(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	err := c.Get(context.Background(), "/x", nil)
	if err == nil {
		t.Fatalf("want transport error")
	}
	if got := ErrorMessage(err, "Error de red"); got != "Error de red" {
		t.Fatalf("ErrorMessage=%q, want fallback", got)
	}
}
