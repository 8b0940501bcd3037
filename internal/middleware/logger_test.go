package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/pkg/configpkg"
	"github.com/go-petr/pet-budget/pkg/errorspkg"
	"github.com/go-petr/pet-budget/pkg/web"
)

func TestRequestLogger(t *testing.T) {
	testCases := []struct {
		name           string
		requestID      string
		handler        gin.HandlerFunc
		wantStatusCode int
		wantLevel      string
	}{
		{
			name:      "GeneratesRequestID",
			handler:   func(gctx *gin.Context) { gctx.Status(http.StatusNoContent) },
			wantLevel: "info",

			wantStatusCode: http.StatusNoContent,
		},
		{
			name:      "KeepsRequestID",
			requestID: "req-1",
			handler: func(gctx *gin.Context) {
				zerolog.Ctx(gctx.Request.Context()).Info().Msg("inside handler")
				gctx.Status(http.StatusOK)
			},
			wantLevel:      "info",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "RecoversPanic",
			handler:        func(gctx *gin.Context) { panic("boom") },
			wantLevel:      "error",
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.Use(RequestLogger(zerolog.New(&logs)))
			server.GET("/", tc.handler)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.requestID != "" {
				request.Header.Set(RequestIDHeader, tc.requestID)
			}

			server.ServeHTTP(recorder, request)

			if recorder.Code != tc.wantStatusCode {
				t.Errorf("recorder.Code = %v, tc.wantStatusCode = %v, want equal", recorder.Code, tc.wantStatusCode)
			}

			gotID := recorder.Header().Get(RequestIDHeader)
			if gotID == "" || (tc.requestID != "" && gotID != tc.requestID) {
				t.Errorf("response %s = %q, want %q or generated", RequestIDHeader, gotID, tc.requestID)
			}

			lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))

			var last map[string]any
			if err := json.Unmarshal(lines[len(lines)-1], &last); err != nil {
				t.Fatalf("json.Unmarshal(%s) returned error: %v", lines[len(lines)-1], err)
			}

			if last["level"] != tc.wantLevel {
				t.Errorf("level = %v, want %v", last["level"], tc.wantLevel)
			}

			if last["request_id"] != gotID {
				t.Errorf("request_id = %v, want %v", last["request_id"], gotID)
			}

			if tc.wantStatusCode == http.StatusInternalServerError {
				var got web.Response
				if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
					t.Fatalf("Decoding response body error: %v", err)
				}

				if got.Error != errorspkg.ErrInternal.Error() {
					t.Errorf("got.Error = %v, want %v", got.Error, errorspkg.ErrInternal)
				}
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	if got := GetLogger(configpkg.Config{}).GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("GetLogger(production).GetLevel() = %v, want %v", got, zerolog.InfoLevel)
	}

	if got := GetLogger(configpkg.Config{Environement: "development"}).GetLevel(); got != zerolog.TraceLevel {
		t.Errorf("GetLogger(development).GetLevel() = %v, want %v", got, zerolog.TraceLevel)
	}
}
