package model

import (
	"strings"
	"time"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/validation"
)

func normalizeTransactionForm(f domain.TransactionForm) domain.TransactionForm {
	f.Kind = strings.TrimSpace(f.Kind)
	f.Amount = strings.TrimSpace(f.Amount)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.Subcategory = strings.TrimSpace(f.Subcategory)
	f.Date = strings.TrimSpace(f.Date)
	f.PaymentMethod = strings.TrimSpace(f.PaymentMethod)
	f.Reference = strings.TrimSpace(f.Reference)

	return f
}

// ValidateTransaction returns a *domain.ValidationError when the form breaks any rule.
func ValidateTransaction(f domain.TransactionForm) error {
	return validation.Struct(normalizeTransactionForm(f))
}

// NewTransaction builds a transaction from a validated form.
func NewTransaction(f domain.TransactionForm, ownerID, id string, now time.Time) domain.Transaction {
	f = normalizeTransactionForm(f)

	return domain.Transaction{
		ID:            id,
		OwnerID:       ownerID,
		Kind:          domain.Kind(f.Kind),
		Amount:        parseAmount(f.Amount),
		Description:   f.Description,
		Category:      f.Category,
		Subcategory:   f.Subcategory,
		Date:          parseDate(f.Date),
		PaymentMethod: domain.PaymentMethod(f.PaymentMethod),
		Reference:     f.Reference,
		Tags:          cleanList(f.Tags),
		Attachments:   cleanList(f.Attachments),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TransactionFormOf returns the form that would produce t.
func TransactionFormOf(t domain.Transaction) domain.TransactionForm {
	return domain.TransactionForm{
		Kind:          string(t.Kind),
		Amount:        t.Amount.String(),
		Description:   t.Description,
		Category:      t.Category,
		Subcategory:   t.Subcategory,
		Date:          t.Date.String(),
		PaymentMethod: string(t.PaymentMethod),
		Reference:     t.Reference,
		Tags:          cloneList(t.Tags),
		Attachments:   cloneList(t.Attachments),
	}
}

// PatchTransaction overlays the non-nil fields of patch on the form of existing.
func PatchTransaction(existing domain.Transaction, patch domain.TransactionPatch) domain.TransactionForm {
	f := TransactionFormOf(existing)

	if patch.Kind != nil {
		f.Kind = *patch.Kind
	}
	if patch.Amount != nil {
		f.Amount = *patch.Amount
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Subcategory != nil {
		f.Subcategory = *patch.Subcategory
	}
	if patch.Date != nil {
		f.Date = *patch.Date
	}
	if patch.PaymentMethod != nil {
		f.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Reference != nil {
		f.Reference = *patch.Reference
	}
	if patch.Tags != nil {
		f.Tags = *patch.Tags
	}
	if patch.Attachments != nil {
		f.Attachments = *patch.Attachments
	}

	return f
}

// UpdateTransaction rebuilds existing from a validated form.
// ID, OwnerID and CreatedAt always come from existing.
func UpdateTransaction(existing domain.Transaction, f domain.TransactionForm, now time.Time) domain.Transaction {
	t := NewTransaction(f, existing.OwnerID, existing.ID, existing.CreatedAt)
	t.UpdatedAt = now

	return t
}
