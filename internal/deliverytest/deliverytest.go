// Package deliverytest provides helpers for testing gin handlers behind the auth middleware.
package deliverytest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/validation"
	"github.com/go-petr/pet-budget/pkg/randompkg"
	"github.com/go-petr/pet-budget/pkg/tokenpkg"
	"github.com/go-petr/pet-budget/pkg/web"
)

// CompareDecimals makes cmp treat numerically equal decimals as equal.
var CompareDecimals = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// Setup switches gin to test mode and registers the custom binding tags.
// It is meant to be called from TestMain.
func Setup() error {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return validation.RegisterBinding(v)
	}

	return nil
}

// Server is a gin router whose routes require a bearer token.
type Server struct {
	Router *gin.Engine
	Maker  tokenpkg.Maker
}

// NewServer mounts routes behind middleware.AuthMiddleware.
func NewServer(t *testing.T, routes func(rg gin.IRouter)) Server {
	t.Helper()

	maker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker returned error: %v", err)
	}

	router := gin.New()
	routes(router.Group("/", middleware.AuthMiddleware(maker)))

	return Server{Router: router, Maker: maker}
}

// Do sends the request as ownerID. An empty ownerID sends no authorization.
func (s Server) Do(t *testing.T, method, url, ownerID string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	return s.Serve(t, req, ownerID)
}

// Serve authorizes req as ownerID and records the response.
func (s Server) Serve(t *testing.T, req *http.Request, ownerID string) *httptest.ResponseRecorder {
	t.Helper()

	if ownerID != "" {
		if err := middleware.AddAuthorization(req, s.Maker, middleware.AuthTypeBearer, ownerID, time.Minute); err != nil {
			t.Fatalf("middleware.AddAuthorization(%v) returned error: %v", ownerID, err)
		}
	}

	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)

	return recorder
}

// JSONBody encodes v as a request body.
func JSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Encoding request body error: %v", err)
	}

	return bytes.NewReader(body)
}

// Decode reads the result envelope from the response.
func Decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) web.Result[T] {
	t.Helper()

	var res web.Result[T]
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}
