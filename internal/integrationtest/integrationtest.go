// Package integrationtest provides helpers to run the whole server in tests.
package integrationtest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/cmd/httpserver"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/pkg/configpkg"
	"github.com/go-petr/pet-budget/pkg/randompkg"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Config returns a local in-memory configuration with a fresh token key.
func Config(t *testing.T) configpkg.Config {
	t.Helper()

	return configpkg.Config{
		StorageMode:         configpkg.StorageLocal,
		LocalNamespace:      configpkg.NamespaceMemory,
		TokenSymmetricKey:   randompkg.String(32),
		TokenKind:           configpkg.TokenPaseto,
		AccessTokenDuration: time.Minute,
		BudgetRefreshSpec:   "@hourly",
		Environement:        "test",
	}
}

// SetupServer returns a server over config that is closed after the test.
func SetupServer(t *testing.T, config configpkg.Config) *httpserver.Server {
	t.Helper()

	logger := zerolog.Nop()

	server, err := httpserver.New(context.Background(), logger, config)
	if err != nil {
		t.Fatalf("httpserver.New(ctx, logger, %+v) returned error: %v", config, err)
	}

	t.Cleanup(func() {
		if err := server.Close(); err != nil {
			t.Errorf("server.Close() returned error: %v", err)
		}
	})

	return server
}

// Client sends requests to a server on behalf of one owner.
type Client struct {
	t       *testing.T
	server  *httpserver.Server
	OwnerID string
}

// NewClient returns a Client of ownerID.
func NewClient(t *testing.T, server *httpserver.Server, ownerID string) *Client {
	return &Client{t: t, server: server, OwnerID: ownerID}
}

// Authorize sets the bearer token of the client owner on r.
func (c *Client) Authorize(r *http.Request) {
	c.t.Helper()

	err := middleware.AddAuthorization(r, c.server.TokenMaker, middleware.AuthTypeBearer, c.OwnerID, c.server.Config.AccessTokenDuration)
	if err != nil {
		c.t.Fatalf("middleware.AddAuthorization(%v) returned error: %v", c.OwnerID, err)
	}
}

// Do sends body encoded as JSON. A nil body sends no body.
func (c *Client) Do(method, url string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("Encoding request body error: %v", err)
		}

		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		c.t.Fatalf("Creating request error: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.Authorize(req)

	recorder := httptest.NewRecorder()
	c.server.ServeHTTP(recorder, req)

	return recorder
}

// Decode reads the result envelope and checks the status code.
func Decode[T any](t *testing.T, recorder *httptest.ResponseRecorder, wantStatusCode int) web.Result[T] {
	t.Helper()

	if recorder.Code != wantStatusCode {
		t.Fatalf("Status code: got %v, want %v, body: %s", recorder.Code, wantStatusCode, recorder.Body.String())
	}

	var res web.Result[T]
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}
