package model

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/go-petr/pet-budget/internal/domain"
)

// FilterTransactions returns the transactions matching every non-zero field of f.
// Search is a case-insensitive substring match over the description.
func FilterTransactions(txs []domain.Transaction, f domain.TransactionFilter) []domain.Transaction {
	folder := cases.Fold()
	search := folder.String(strings.TrimSpace(f.Search))

	res := make([]domain.Transaction, 0, len(txs))

	for _, t := range txs {
		if !f.From.IsZero() && t.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && t.Date.After(f.To) {
			continue
		}
		if f.Kind != "" && t.Kind != f.Kind {
			continue
		}
		if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
			continue
		}
		if search != "" && !strings.Contains(folder.String(t.Description), search) {
			continue
		}

		res = append(res, t)
	}

	return res
}

// SortTransactions orders txs most recent first: by date, then by creation time.
func SortTransactions(txs []domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date.Time) {
			return txs[i].Date.After(txs[j].Date)
		}

		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}

// ComputeTotals sums income and expense amounts of txs.
func ComputeTotals(txs []domain.Transaction) domain.Totals {
	totals := domain.Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, t := range txs {
		switch t.Kind {
		case domain.KindIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case domain.KindExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	totals.Count = len(txs)

	return totals
}

// TotalsByCategory groups txs by kind and category.
// The result is ordered by kind, then by amount descending, then by name.
func TotalsByCategory(txs []domain.Transaction) []domain.CategoryTotal {
	type key struct {
		kind     domain.Kind
		category string
	}

	index := make(map[key]int)
	res := []domain.CategoryTotal{}

	for _, t := range txs {
		k := key{t.Kind, t.Category}

		i, ok := index[k]
		if !ok {
			i = len(res)
			index[k] = i
			res = append(res, domain.CategoryTotal{
				Category: t.Category,
				Kind:     t.Kind,
				Amount:   decimal.Zero,
			})
		}

		res[i].Amount = res[i].Amount.Add(t.Amount)
		res[i].Count++
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Kind != res[j].Kind {
			return res[i].Kind < res[j].Kind
		}
		if !res[i].Amount.Equal(res[j].Amount) {
			return res[i].Amount.GreaterThan(res[j].Amount)
		}

		return res[i].Category < res[j].Category
	})

	return res
}

// Summarize returns totals and per category totals of txs.
func Summarize(txs []domain.Transaction) domain.Summary {
	return domain.Summary{
		Totals:     ComputeTotals(txs),
		ByCategory: TotalsByCategory(txs),
	}
}

// FindCategoryByName returns the category of the given kind whose name matches case-insensitively.
func FindCategoryByName(cats []domain.Category, kind domain.Kind, name string) (domain.Category, bool) {
	name = strings.TrimSpace(name)

	for _, c := range cats {
		if c.Kind == kind && strings.EqualFold(c.Name, name) {
			return c, true
		}
	}

	return domain.Category{}, false
}

// FilterCategories returns the categories matching f.
func FilterCategories(cats []domain.Category, f domain.CategoryFilter) []domain.Category {
	res := make([]domain.Category, 0, len(cats))

	for _, c := range cats {
		if f.Kind != "" && c.Kind != f.Kind {
			continue
		}

		res = append(res, c)
	}

	return res
}

// SortCategories orders categories by kind and then by name.
func SortCategories(cats []domain.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Kind != cats[j].Kind {
			return cats[i].Kind < cats[j].Kind
		}

		return strings.ToLower(cats[i].Name) < strings.ToLower(cats[j].Name)
	})
}

// FilterBudgets returns the budgets matching f.
func FilterBudgets(budgets []domain.Budget, f domain.BudgetFilter) []domain.Budget {
	res := make([]domain.Budget, 0, len(budgets))

	for _, b := range budgets {
		if f.ActiveOnly && !b.IsActive {
			continue
		}
		if f.Category != "" && !strings.EqualFold(b.Category, f.Category) {
			continue
		}

		res = append(res, b)
	}

	return res
}

// SortBudgets orders budgets by start date, most recent first, then by name.
func SortBudgets(budgets []domain.Budget) {
	sort.SliceStable(budgets, func(i, j int) bool {
		if !budgets[i].StartDate.Equal(budgets[j].StartDate.Time) {
			return budgets[i].StartDate.After(budgets[j].StartDate)
		}

		return budgets[i].Name < budgets[j].Name
	})
}

// BudgetSpent sums the expenses of the budget category dated within the budget range.
func BudgetSpent(b domain.Budget, txs []domain.Transaction) decimal.Decimal {
	spent := decimal.Zero

	for _, t := range txs {
		if t.OwnerID != b.OwnerID || t.Kind != domain.KindExpense {
			continue
		}
		if !strings.EqualFold(t.Category, b.Category) {
			continue
		}
		if t.Date.Before(b.StartDate) || t.Date.After(b.EndDate) {
			continue
		}

		spent = spent.Add(t.Amount)
	}

	return spent
}
