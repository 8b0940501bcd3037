package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-budget/internal/domain"
)

func validBudgetForm() domain.BudgetForm {
	return domain.BudgetForm{
		Name:      "Groceries",
		Category:  "Food",
		Amount:    "100",
		Period:    "MONTHLY",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}
}

func TestValidateBudget(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(f *domain.BudgetForm)
		wantReasons []string
	}{
		{
			name:   "OK",
			modify: func(f *domain.BudgetForm) {},
		},
		{
			name: "SameDay",
			modify: func(f *domain.BudgetForm) {
				f.StartDate = "2024-01-01"
				f.EndDate = "2024-01-01"
			},
		},
		{
			name: "EndBeforeStart",
			modify: func(f *domain.BudgetForm) {
				f.StartDate = "2024-02-01"
				f.EndDate = "2024-01-01"
			},
			wantReasons: []string{"end_date must not be before start_date"},
		},
		{
			name:        "NegativeAmount",
			modify:      func(f *domain.BudgetForm) { f.Amount = "-100" },
			wantReasons: []string{"amount must be a non-negative number"},
		},
		{
			name:        "NegativeSpent",
			modify:      func(f *domain.BudgetForm) { f.Spent = "-1" },
			wantReasons: []string{"spent must be a non-negative number"},
		},
		{
			name:        "InvalidPeriod",
			modify:      func(f *domain.BudgetForm) { f.Period = "DAILY" },
			wantReasons: []string{"period must be one of WEEKLY, MONTHLY, YEARLY"},
		},
		{
			name:        "MissingStartDate",
			modify:      func(f *domain.BudgetForm) { f.StartDate = "" },
			wantReasons: []string{"start_date is required"},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			f := validBudgetForm()
			tc.modify(&f)

			err := ValidateBudget(f)
			if len(tc.wantReasons) == 0 {
				require.NoError(t, err)
				return
			}

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.wantReasons, ve.Reasons)
		})
	}
}

func TestNewBudgetDefaults(t *testing.T) {
	now := time.Now().UTC()

	got := NewBudget(validBudgetForm(), "u1", "b1", now)

	require.True(t, got.IsActive)
	require.True(t, got.Spent.IsZero())
	require.True(t, decimal.NewFromInt(100).Equal(got.Amount))
	require.Equal(t, domain.PeriodMonthly, got.Period)
	require.Equal(t, domain.NewDate(2024, time.January, 1), got.StartDate)
	require.Equal(t, domain.NewDate(2024, time.January, 31), got.EndDate)
}

func TestPatchBudgetRevalidatesDates(t *testing.T) {
	existing := NewBudget(validBudgetForm(), "u1", "b1", time.Now().UTC())

	end := "2023-12-31"
	f := PatchBudget(existing, domain.BudgetPatch{EndDate: &end})

	var ve *domain.ValidationError
	require.ErrorAs(t, ValidateBudget(f), &ve)
	require.Equal(t, []string{"end_date must not be before start_date"}, ve.Reasons)
}
