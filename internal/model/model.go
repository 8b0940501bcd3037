// Package model holds the pure rules of the budget domain: form validation,
// record construction, partial updates and in-memory queries. Nothing here does I/O.
package model

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-budget/internal/domain"
)

// IndexOf returns the position of the record with the given id or -1.
func IndexOf[T domain.Record](records []T, id string) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}

	return -1
}

// OwnedBy returns the records of the given owner keeping their order.
func OwnedBy[T domain.Record](records []T, ownerID string) []T {
	res := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordOwner() == ownerID {
			res = append(res, r)
		}
	}

	return res
}

// parseAmount parses an already validated amount. Blank input is zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}

// parseDate parses an already validated date.
func parseDate(s string) domain.Date {
	d, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return domain.Date{}
	}

	return d
}

// cleanList trims values, drops blanks and duplicates and never returns nil.
func cleanList(values []string) []string {
	res := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		res = append(res, v)
	}

	return res
}

func cloneList(values []string) []string {
	res := make([]string, len(values))
	copy(res, values)

	return res
}
