package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/robertroman/store-admin-console/internal/api"
)

// capture records the last request hitting the fake backend.
type capture struct {
	method string
	path   string
	query  string
	body   map[string]any
}

// newTestAPI starts a fake backend that records the request and answers
// with the given JSON payload.
func newTestAPI(t *testing.T, status int, payload string, cap *capture) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.method = r.Method
		cap.path = r.URL.Path
		cap.query = r.URL.RawQuery
		cap.body = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&cap.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return api.NewClient(api.Config{BaseURL: srv.URL})
}
