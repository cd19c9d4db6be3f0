package e2e

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	activityhandler "mergington/internal/activity/handler"
	"mergington/internal/activity/models"
	"mergington/internal/activity/service"
	"mergington/internal/activity/store"
	"mergington/internal/platform/health"
	httptransport "mergington/internal/transport/http"
)

// TestContext holds state between test steps. Each scenario runs against an
// in-process server with a freshly seeded registry.
type TestContext struct {
	Server           *httptest.Server
	HTTPClient       *http.Client
	LastResponse     *http.Response
	LastResponseBody []byte
}

// NewTestContext creates a new test context.
func NewTestContext() *TestContext {
	return &TestContext{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Start spins up an in-process server with the seed registry.
func (tc *TestContext) Start() {
	tc.Close()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.New(store.NewInMemory(models.Seed()), logger)
	h := activityhandler.New(svc, logger, nil)
	router := httptransport.NewRouter(h, health.New("e2e"), logger, 30*time.Second)
	tc.Server = httptest.NewServer(router)
}

// Close shuts the in-process server down.
func (tc *TestContext) Close() {
	if tc.Server != nil {
		tc.Server.Close()
		tc.Server = nil
	}
	tc.LastResponse = nil
	tc.LastResponseBody = nil
}

// GET makes a GET request and stores the response.
func (tc *TestContext) GET(path string) error {
	return tc.do(http.MethodGet, path)
}

// POST makes a POST request without a body and stores the response.
func (tc *TestContext) POST(path string) error {
	return tc.do(http.MethodPost, path)
}

// DELETE makes a DELETE request and stores the response.
func (tc *TestContext) DELETE(path string) error {
	return tc.do(http.MethodDelete, path)
}

func (tc *TestContext) do(method, path string) error {
	req, err := http.NewRequest(method, tc.Server.URL+path, nil)
	if err != nil {
		return err
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.LastResponse = resp
	tc.LastResponseBody = body
	return nil
}
