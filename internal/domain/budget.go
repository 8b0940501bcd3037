package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is the recurrence of a budget.
type Period string

// Supported periods.
const (
	PeriodWeekly  Period = "WEEKLY"
	PeriodMonthly Period = "MONTHLY"
	PeriodYearly  Period = "YEARLY"
)

// Budget caps spending of one category over a date range.
type Budget struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    Period          `json:"period"`
	StartDate Date            `json:"start_date"`
	EndDate   Date            `json:"end_date"`
	Spent     decimal.Decimal `json:"spent"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RecordID implements Record.
func (b Budget) RecordID() string { return b.ID }

// RecordOwner implements Record.
func (b Budget) RecordOwner() string { return b.OwnerID }

// BudgetForm is the raw input to create a budget.
type BudgetForm struct {
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Amount    string `json:"amount" validate:"required,amount"`
	Period    string `json:"period" validate:"required,oneof=WEEKLY MONTHLY YEARLY"`
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date" validate:"required,date"`
	Spent     string `json:"spent" validate:"omitempty,amount"`
	IsActive  *bool  `json:"is_active"`
}

// BudgetPatch is a partial update of a budget.
type BudgetPatch struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Amount    *string `json:"amount"`
	Period    *string `json:"period"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Spent     *string `json:"spent"`
	IsActive  *bool   `json:"is_active"`
}

// BudgetFilter narrows a budget listing.
type BudgetFilter struct {
	ActiveOnly bool
	Category   string
}
