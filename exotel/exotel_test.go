package exotel

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const testSID = "acc123"

// recordedRequest is one request captured by the fake provider.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   []byte
}

func (r recordedRequest) jsonBody(t *testing.T, out any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, out); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
}

// requestLog records every request the client issued, in order.
type requestLog struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (l *requestLog) record(r *http.Request) recordedRequest {
	body, _ := io.ReadAll(r.Body)
	rec := recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   body,
	}
	l.mu.Lock()
	l.reqs = append(l.reqs, rec)
	l.mu.Unlock()
	return rec
}

func (l *requestLog) all() []recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedRequest(nil), l.reqs...)
}

func (l *requestLog) matching(method, path string) []recordedRequest {
	var out []recordedRequest
	for _, r := range l.all() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// newTestClient spins up a fake provider and a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	return NewClient(testSID, "test-key", "test-token", opts...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}
