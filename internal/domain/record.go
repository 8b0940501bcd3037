package domain

// Entity names used to key collections.
const (
	EntityTransactions = "transactions"
	EntityCategories   = "categories"
	EntityBudgets      = "budgets"
)

// Record is implemented by every persisted entity.
type Record interface {
	RecordID() string
	RecordOwner() string
}

// Kind is the direction of money flow.
type Kind string

// Supported kinds.
const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)
