package model

import (
	"strings"
	"time"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/validation"
)

func normalizeCategoryForm(f domain.CategoryForm) domain.CategoryForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Kind = strings.TrimSpace(f.Kind)
	f.Color = strings.TrimSpace(f.Color)
	f.Icon = strings.TrimSpace(f.Icon)

	return f
}

// ValidateCategory returns a *domain.ValidationError when the form breaks any rule.
func ValidateCategory(f domain.CategoryForm) error {
	return validation.Struct(normalizeCategoryForm(f))
}

// NewCategory builds a category from a validated form.
func NewCategory(f domain.CategoryForm, ownerID, id string, now time.Time) domain.Category {
	f = normalizeCategoryForm(f)

	color := f.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	return domain.Category{
		ID:            id,
		OwnerID:       ownerID,
		Name:          f.Name,
		Kind:          domain.Kind(f.Kind),
		Subcategories: cleanList(f.Subcategories),
		Color:         color,
		Icon:          f.Icon,
		IsDefault:     f.IsDefault,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CategoryFormOf returns the form that would produce c.
func CategoryFormOf(c domain.Category) domain.CategoryForm {
	return domain.CategoryForm{
		Name:          c.Name,
		Kind:          string(c.Kind),
		Subcategories: cloneList(c.Subcategories),
		Color:         c.Color,
		Icon:          c.Icon,
		IsDefault:     c.IsDefault,
	}
}

// PatchCategory overlays the non-nil fields of patch on the form of existing.
func PatchCategory(existing domain.Category, patch domain.CategoryPatch) domain.CategoryForm {
	f := CategoryFormOf(existing)

	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Kind != nil {
		f.Kind = *patch.Kind
	}
	if patch.Subcategories != nil {
		f.Subcategories = *patch.Subcategories
	}
	if patch.Color != nil {
		f.Color = *patch.Color
	}
	if patch.Icon != nil {
		f.Icon = *patch.Icon
	}

	return f
}

// UpdateCategory rebuilds existing from a validated form keeping its identity fields.
func UpdateCategory(existing domain.Category, f domain.CategoryForm, now time.Time) domain.Category {
	f.IsDefault = existing.IsDefault

	c := NewCategory(f, existing.OwnerID, existing.ID, existing.CreatedAt)
	c.UpdatedAt = now

	return c
}

// DefaultCategoryForms returns the categories seeded for a new owner.
func DefaultCategoryForms() []domain.CategoryForm {
	income := string(domain.KindIncome)
	expense := string(domain.KindExpense)

	return []domain.CategoryForm{
		{Name: "Sales", Kind: income, Color: "#16A34A", Icon: "shopping-cart", IsDefault: true},
		{Name: "Services", Kind: income, Color: "#0EA5E9", Icon: "briefcase", IsDefault: true},
		{Name: "Other income", Kind: income, Color: "#22C55E", Icon: "plus-circle", IsDefault: true},
		{Name: "Rent", Kind: expense, Color: "#EF4444", Icon: "home", IsDefault: true},
		{Name: "Payroll", Kind: expense, Color: "#F97316", Icon: "users", IsDefault: true},
		{Name: "Supplies", Kind: expense, Color: "#EAB308", Icon: "package", IsDefault: true},
		{Name: "Utilities", Kind: expense, Color: "#8B5CF6", Icon: "zap", IsDefault: true},
		{Name: "Marketing", Kind: expense, Color: "#EC4899", Icon: "megaphone", IsDefault: true},
		{Name: "Taxes", Kind: expense, Color: "#64748B", Icon: "landmark", IsDefault: true},
		{Name: "Other expenses", Kind: expense, Color: "#6366F1", Icon: "tag", IsDefault: true},
	}
}
