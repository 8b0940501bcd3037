package model

import (
	"strings"
	"time"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/validation"
)

// ValidateUserProfile returns a *domain.ValidationError when the form breaks any rule.
func ValidateUserProfile(f domain.UserProfileForm) error {
	return validation.Struct(f)
}

// ValidateCompanyProfile returns a *domain.ValidationError when the form breaks any rule.
func ValidateCompanyProfile(f domain.CompanyProfileForm) error {
	return validation.Struct(f)
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// ApplyUserProfile merges a validated form into existing.
func ApplyUserProfile(existing domain.UserProfile, f domain.UserProfileForm, now time.Time) domain.UserProfile {
	p := existing

	set(&p.FullName, f.FullName)
	set(&p.Email, f.Email)
	set(&p.Phone, f.Phone)

	p.UpdatedAt = now

	return p
}

// ApplyCompanyProfile merges a validated form into existing.
func ApplyCompanyProfile(existing domain.CompanyProfile, f domain.CompanyProfileForm, now time.Time) domain.CompanyProfile {
	p := existing

	set(&p.Name, f.Name)
	set(&p.Email, f.Email)
	set(&p.Phone, f.Phone)
	set(&p.Address, f.Address)
	set(&p.TaxID, f.TaxID)
	set(&p.Currency, f.Currency)

	p.UpdatedAt = now

	return p
}
