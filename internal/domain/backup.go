package domain

import "time"

// BackupVersion is the format version written into backups.
const BackupVersion = 1

// Backup is a full export of the data of one owner.
type Backup struct {
	Version        int             `json:"version"`
	OwnerID        string          `json:"owner_id"`
	ExportedAt     time.Time       `json:"exported_at"`
	Transactions   []Transaction   `json:"transactions"`
	Categories     []Category      `json:"categories"`
	Budgets        []Budget        `json:"budgets"`
	UserProfile    *UserProfile    `json:"user_profile,omitempty"`
	CompanyProfile *CompanyProfile `json:"company_profile,omitempty"`
}
