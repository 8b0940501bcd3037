package domain

import "time"

// Profile kinds used to key profile documents.
const (
	ProfileUser    = "user-profile"
	ProfileCompany = "company-profile"
)

// UserProfile holds display data of the owner. It is not authoritative for identity.
type UserProfile struct {
	OwnerID   string    `json:"owner_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	ImageRef  string    `json:"image_ref,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record. Profiles are keyed by owner.
func (p UserProfile) RecordID() string { return p.OwnerID }

// RecordOwner implements Record.
func (p UserProfile) RecordOwner() string { return p.OwnerID }

// CompanyProfile holds the business data of the owner.
type CompanyProfile struct {
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	LogoRef   string    `json:"logo_ref,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (p CompanyProfile) RecordID() string { return p.OwnerID }

// RecordOwner implements Record.
func (p CompanyProfile) RecordOwner() string { return p.OwnerID }

// UserProfileForm is the input to update a user profile. Nil fields are left untouched.
type UserProfileForm struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
}

// CompanyProfileForm is the input to update a company profile. Nil fields are left untouched.
type CompanyProfileForm struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	TaxID    *string `json:"tax_id"`
	Currency *string `json:"currency" validate:"omitempty,currency"`
}

// Upload is a binary payload for the object storage.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}
