package domain

// PurgeReport counts what an account purge removed.
type PurgeReport struct {
	Transactions int `json:"transactions"`
	Categories   int `json:"categories"`
	Budgets      int `json:"budgets"`
	Profiles     int `json:"profiles"`
	Objects      int `json:"objects"`
}
