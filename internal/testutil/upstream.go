package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Upstream is a fake investments or companies service. Routes are keyed by
// "METHOD /path"; unknown routes answer 404.
type Upstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests map[string][][]byte
}

// NewUpstream starts a fake upstream that is closed when the test ends.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{
		routes:   map[string]http.HandlerFunc{},
		requests: map[string][][]byte{},
	}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Server.Close)
	return u
}

// URL returns the base URL of the fake.
func (u *Upstream) URL() string { return u.Server.URL }

// Handle registers h for method and path.
func (u *Upstream) Handle(method, path string, h http.HandlerFunc) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[method+" "+path] = h
}

// JSON registers a fixed JSON reply.
func (u *Upstream) JSON(method, path string, status int, body string) {
	u.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Status registers an empty reply with status.
func (u *Upstream) Status(method, path string, status int) {
	u.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

// Requests returns the bodies received on method and path.
func (u *Upstream) Requests(method, path string) [][]byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([][]byte(nil), u.requests[method+" "+path]...)
}

// Calls returns how many requests hit method and path.
func (u *Upstream) Calls(method, path string) int {
	return len(u.Requests(method, path))
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := r.URL.EscapedPath()
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	key := r.Method + " " + path

	u.mu.Lock()
	u.requests[key] = append(u.requests[key], body)
	h, ok := u.routes[key]
	u.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// ClosedURL returns the address of a server that is no longer listening,
// for simulating an unreachable upstream.
func ClosedURL(t *testing.T) string {
	t.Helper()
	s := httptest.NewServer(http.NotFoundHandler())
	addr := s.URL
	s.Close()
	return addr
}
