package budgetdelivery

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-budget/internal/deliverytest"
	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/model"
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

func budgetForm() domain.BudgetForm {
	return domain.BudgetForm{
		Name:      randompkg.String(8),
		Category:  "Food",
		Amount:    randompkg.MoneyAmountBetween(100, 500),
		Period:    "MONTHLY",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}
}

func newTestServer(t *testing.T) (deliverytest.Server, *MockService) {
	t.Helper()

	service := NewMockService(gomock.NewController(t))
	handler := NewHandler(service)

	return deliverytest.NewServer(t, handler.Register), service
}

func TestCreate(t *testing.T) {
	ownerID := randompkg.Owner()
	form := budgetForm()
	budget := model.NewBudget(form, ownerID, randompkg.String(10), time.Now().UTC().Truncate(time.Second))

	reversed := form
	reversed.StartDate, reversed.EndDate = form.EndDate, form.StartDate

	testCases := []struct {
		name           string
		form           domain.BudgetForm
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			form: form,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(ownerID), gomock.Eq(form)).
					Times(1).
					Return(web.OK(budget))
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "EndBeforeStart",
			form: reversed,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "end_date must not be before start_date",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service := newTestServer(t)
			tc.buildStubs(service)

			recorder := server.Do(t, http.MethodPost, "/budgets", ownerID, deliverytest.JSONBody(t, tc.form))

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := deliverytest.Decode[domain.Budget](t, recorder)
			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if res.Success {
				if diff := cmp.Diff(budget, res.Data, deliverytest.CompareDecimals); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestListActive(t *testing.T) {
	ownerID := randompkg.Owner()
	want := domain.BudgetFilter{ActiveOnly: true, Category: "Food"}

	server, service := newTestServer(t)
	service.EXPECT().
		List(gomock.Any(), gomock.Eq(ownerID), gomock.Eq(want)).
		Times(1).
		Return(web.OK([]domain.Budget{}))

	recorder := server.Do(t, http.MethodGet, "/budgets?active=true&category=Food", ownerID, nil)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}
}

func TestRefreshSpent(t *testing.T) {
	ownerID := randompkg.Owner()
	budget := model.NewBudget(budgetForm(), ownerID, "b1", time.Now().UTC().Truncate(time.Second))
	budget.Spent = decimal.RequireFromString("30.50")

	server, service := newTestServer(t)
	service.EXPECT().
		RefreshSpent(gomock.Any(), gomock.Eq(ownerID)).
		Times(1).
		Return(web.OK([]domain.Budget{budget}))

	recorder := server.Do(t, http.MethodPost, "/budgets/refresh", ownerID, nil)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := deliverytest.Decode[[]domain.Budget](t, recorder)
	if len(res.Data) != 1 || !res.Data[0].Spent.Equal(budget.Spent) {
		t.Errorf("res.Data = %+v, want one budget spending %v", res.Data, budget.Spent)
	}
}

func TestGetStorageFailure(t *testing.T) {
	ownerID := randompkg.Owner()
	storageErr := fmt.Errorf("%w: disk full", domain.ErrStorage)

	server, service := newTestServer(t)
	service.EXPECT().
		Get(gomock.Any(), gomock.Eq(ownerID), gomock.Eq("b1")).
		Times(1).
		Return(web.Fail[domain.Budget](storageErr))

	recorder := server.Do(t, http.MethodGet, "/budgets/b1", ownerID, nil)

	if got := recorder.Code; got != http.StatusServiceUnavailable {
		t.Errorf("Status code: got %v, want %v", got, http.StatusServiceUnavailable)
	}
}
