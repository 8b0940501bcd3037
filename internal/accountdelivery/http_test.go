package accountdelivery

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/go-petr/pet-budget/internal/deliverytest"
	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/pkg/randompkg"
	"github.com/go-petr/pet-budget/pkg/web"
)

func TestMain(m *testing.M) {
	if err := deliverytest.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "deliverytest.Setup returned error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func TestPurge(t *testing.T) {
	ownerID := randompkg.Owner()
	report := domain.PurgeReport{Transactions: 3, Categories: 2, Budgets: 1, Profiles: 2, Objects: 1}

	testCases := []struct {
		name           string
		ownerID        string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		wantReport     domain.PurgeReport
	}{
		{
			name:    "OK",
			ownerID: ownerID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purge(gomock.Any(), gomock.Eq(ownerID)).
					Times(1).
					Return(web.OK(report))
			},
			wantStatusCode: http.StatusOK,
			wantReport:     report,
		},
		{
			name: "NoAuthorization",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purge(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:    "StorageFailure",
			ownerID: ownerID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purge(gomock.Any(), gomock.Eq(ownerID)).
					Times(1).
					Return(web.FailWith(domain.PurgeReport{Transactions: 3}, fmt.Errorf("%w: locked", domain.ErrStorage)))
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantError:      "storage unavailable: locked",
			wantReport:     domain.PurgeReport{Transactions: 3},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service := NewMockService(gomock.NewController(t))
			handler := NewHandler(service)
			server := deliverytest.NewServer(t, handler.Register)

			tc.buildStubs(service)

			recorder := server.Do(t, http.MethodDelete, "/account", tc.ownerID, nil)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := deliverytest.Decode[domain.PurgeReport](t, recorder)
			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if res.Data != tc.wantReport {
				t.Errorf("res.Data = %+v, want %+v", res.Data, tc.wantReport)
			}
		})
	}
}
