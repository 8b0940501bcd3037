package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a transaction was paid.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCheck    PaymentMethod = "CHECK"
	PaymentOther    PaymentMethod = "OTHER"
)

// Transaction holds a single income or expense.
type Transaction struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	Kind          Kind            `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Date          Date            `json:"date"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Tags          []string        `json:"tags"`
	Attachments   []string        `json:"attachments"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecordID implements Record.
func (t Transaction) RecordID() string { return t.ID }

// RecordOwner implements Record.
func (t Transaction) RecordOwner() string { return t.OwnerID }

// TransactionForm is the raw input to create a transaction.
type TransactionForm struct {
	Kind          string   `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount        string   `json:"amount" validate:"required,amount"`
	Description   string   `json:"description" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Subcategory   string   `json:"subcategory"`
	Date          string   `json:"date" validate:"required,date"`
	PaymentMethod string   `json:"payment_method" validate:"omitempty,oneof=CASH CARD TRANSFER CHECK OTHER"`
	Reference     string   `json:"reference"`
	Tags          []string `json:"tags"`
	Attachments   []string `json:"attachments"`
}

// TransactionPatch is a partial update of a transaction. Nil fields are left untouched.
type TransactionPatch struct {
	Kind          *string   `json:"type"`
	Amount        *string   `json:"amount"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category"`
	Subcategory   *string   `json:"subcategory"`
	Date          *string   `json:"date"`
	PaymentMethod *string   `json:"payment_method"`
	Reference     *string   `json:"reference"`
	Tags          *[]string `json:"tags"`
	Attachments   *[]string `json:"attachments"`
}

// TransactionFilter narrows a transaction listing. Zero fields match everything.
type TransactionFilter struct {
	From     Date
	To       Date
	Kind     Kind
	Category string
	Search   string
}

// Totals holds aggregated amounts of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
	Count   int             `json:"count"`
}

// CategoryTotal is the aggregated amount of one category and kind.
type CategoryTotal struct {
	Category string          `json:"category"`
	Kind     Kind            `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// Summary is the result of the transaction summary query.
type Summary struct {
	Totals     Totals          `json:"totals"`
	ByCategory []CategoryTotal `json:"by_category"`
}
