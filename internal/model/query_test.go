package model

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-budget/internal/domain"
)

func tx(id, owner string, kind domain.Kind, amount, description, category, date string) domain.Transaction {
	return NewTransaction(domain.TransactionForm{
		Kind:        string(kind),
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}, owner, id, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
}

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		tx("1", "u1", domain.KindExpense, "10.50", "Coffee beans", "Food", "2024-01-05"),
		tx("2", "u1", domain.KindIncome, "200", "Invoice 42", "Sales", "2024-01-10"),
		tx("3", "u1", domain.KindExpense, "4.50", "COFFEE with client", "Food", "2024-02-01"),
		tx("4", "u2", domain.KindExpense, "30", "Rent share", "Rent", "2024-01-07"),
	}
}

func ids(txs []domain.Transaction) []string {
	res := make([]string, 0, len(txs))
	for _, t := range txs {
		res = append(res, t.ID)
	}

	return res
}

func TestFilterTransactions(t *testing.T) {
	txs := sampleTransactions()

	testCases := []struct {
		name   string
		filter domain.TransactionFilter
		want   []string
	}{
		{name: "NoFilter", filter: domain.TransactionFilter{}, want: []string{"1", "2", "3", "4"}},
		{name: "Kind", filter: domain.TransactionFilter{Kind: domain.KindIncome}, want: []string{"2"}},
		{name: "Category", filter: domain.TransactionFilter{Category: "food"}, want: []string{"1", "3"}},
		{name: "SearchIgnoresCase", filter: domain.TransactionFilter{Search: "coffee"}, want: []string{"1", "3"}},
		{
			name: "DateRangeInclusive",
			filter: domain.TransactionFilter{
				From: domain.NewDate(2024, time.January, 5),
				To:   domain.NewDate(2024, time.January, 10),
			},
			want: []string{"1", "2", "4"},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterTransactions(txs, tc.filter))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FilterTransactions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortTransactions(t *testing.T) {
	txs := sampleTransactions()
	SortTransactions(txs)

	want := []string{"3", "2", "4", "1"}
	if diff := cmp.Diff(want, ids(txs)); diff != "" {
		t.Errorf("SortTransactions mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(OwnedBy(sampleTransactions(), "u1"))

	want := domain.Summary{
		Totals: domain.Totals{
			Income:  decimal.NewFromInt(200),
			Expense: decimal.NewFromInt(15),
			Balance: decimal.NewFromInt(185),
			Count:   3,
		},
		ByCategory: []domain.CategoryTotal{
			{Category: "Food", Kind: domain.KindExpense, Amount: decimal.NewFromInt(15), Count: 2},
			{Category: "Sales", Kind: domain.KindIncome, Amount: decimal.NewFromInt(200), Count: 1},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestBudgetSpent(t *testing.T) {
	b := NewBudget(domain.BudgetForm{
		Name:      "Food",
		Category:  "food",
		Amount:    "100",
		Period:    "MONTHLY",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}, "u1", "b1", time.Now().UTC())

	got := BudgetSpent(b, sampleTransactions())
	if !got.Equal(decimal.RequireFromString("10.5")) {
		t.Errorf("BudgetSpent = %v, want 10.5", got)
	}
}

func TestFindCategoryByName(t *testing.T) {
	now := time.Now().UTC()
	cats := []domain.Category{
		NewCategory(domain.CategoryForm{Name: "Rent", Kind: "EXPENSE"}, "u1", "c1", now),
		NewCategory(domain.CategoryForm{Name: "Rent", Kind: "INCOME"}, "u1", "c2", now),
	}

	got, ok := FindCategoryByName(cats, domain.KindIncome, " rent")
	if !ok || got.ID != "c2" {
		t.Errorf("FindCategoryByName = %v, %v, want c2", got.ID, ok)
	}

	if _, ok := FindCategoryByName(cats, domain.KindExpense, "Payroll"); ok {
		t.Errorf("FindCategoryByName(Payroll) found a category")
	}

	if i := IndexOf(cats, "c2"); i != 1 {
		t.Errorf("IndexOf(c2) = %d, want 1", i)
	}
}
