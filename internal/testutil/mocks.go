package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockServer serves canned responses by path and records every request
type MockServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]MockResponse
	requests  []string
}

// MockResponse holds response data for a path
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// NewMockServer creates a mock HTTP server that is closed with the test
func NewMockServer(t *testing.T) *MockServer {
	t.Helper()

	mock := &MockServer{responses: make(map[string]MockResponse)}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requests = append(mock.requests, r.URL.Path)
		response, ok := mock.responses[r.URL.Path]
		mock.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}

		for key, value := range response.Headers {
			w.Header().Set(key, value)
		}
		if response.StatusCode != 0 {
			w.WriteHeader(response.StatusCode)
		}
		w.Write(response.Body)
	}))

	t.Cleanup(mock.Server.Close)

	return mock
}

// SetResponse serves body with 200 OK at path
func (m *MockServer) SetResponse(path, contentType string, body []byte) {
	m.SetRawResponse(path, http.StatusOK, body, map[string]string{"Content-Type": contentType})
}

// SetRawResponse sets a raw response
func (m *MockServer) SetRawResponse(path string, statusCode int, body []byte, headers map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = MockResponse{
		StatusCode: statusCode,
		Body:       body,
		Headers:    headers,
	}
}

// RequestCount returns the number of requests made to a path
func (m *MockServer) RequestCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.requests {
		if p == path {
			count++
		}
	}
	return count
}
