package model

import (
	"strings"
	"time"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/validation"
)

func normalizeBudgetForm(f domain.BudgetForm) domain.BudgetForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	f.Amount = strings.TrimSpace(f.Amount)
	f.Period = strings.TrimSpace(f.Period)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)
	f.Spent = strings.TrimSpace(f.Spent)

	return f
}

// ValidateBudget returns a *domain.ValidationError when the form breaks any rule.
func ValidateBudget(f domain.BudgetForm) error {
	return validation.Struct(normalizeBudgetForm(f))
}

// NewBudget builds a budget from a validated form.
func NewBudget(f domain.BudgetForm, ownerID, id string, now time.Time) domain.Budget {
	f = normalizeBudgetForm(f)

	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}

	return domain.Budget{
		ID:        id,
		OwnerID:   ownerID,
		Name:      f.Name,
		Category:  f.Category,
		Amount:    parseAmount(f.Amount),
		Period:    domain.Period(f.Period),
		StartDate: parseDate(f.StartDate),
		EndDate:   parseDate(f.EndDate),
		Spent:     parseAmount(f.Spent),
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetFormOf returns the form that would produce b.
func BudgetFormOf(b domain.Budget) domain.BudgetForm {
	active := b.IsActive

	return domain.BudgetForm{
		Name:      b.Name,
		Category:  b.Category,
		Amount:    b.Amount.String(),
		Period:    string(b.Period),
		StartDate: b.StartDate.String(),
		EndDate:   b.EndDate.String(),
		Spent:     b.Spent.String(),
		IsActive:  &active,
	}
}

// PatchBudget overlays the non-nil fields of patch on the form of existing.
func PatchBudget(existing domain.Budget, patch domain.BudgetPatch) domain.BudgetForm {
	f := BudgetFormOf(existing)

	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Amount != nil {
		f.Amount = *patch.Amount
	}
	if patch.Period != nil {
		f.Period = *patch.Period
	}
	if patch.StartDate != nil {
		f.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		f.EndDate = *patch.EndDate
	}
	if patch.Spent != nil {
		f.Spent = *patch.Spent
	}
	if patch.IsActive != nil {
		f.IsActive = patch.IsActive
	}

	return f
}

// UpdateBudget rebuilds existing from a validated form keeping its identity fields.
func UpdateBudget(existing domain.Budget, f domain.BudgetForm, now time.Time) domain.Budget {
	b := NewBudget(f, existing.OwnerID, existing.ID, existing.CreatedAt)
	b.UpdatedAt = now

	return b
}
