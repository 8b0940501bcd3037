// Package validation provides the validator engine shared by form validation and request binding.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/pkg/currencypkg"
)

var (
	once   sync.Once
	engine *validator.Validate
)

// Engine returns the shared validator with all custom tags registered.
func Engine() *validator.Validate {
	once.Do(func() {
		engine = validator.New()
		engine.RegisterTagNameFunc(jsonName)

		if err := Register(engine); err != nil {
			panic(err)
		}
	})

	return engine
}

// Register adds the custom tags and struct rules to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("amount", ValidAmount); err != nil {
		return err
	}

	if err := v.RegisterValidation("date", ValidDate); err != nil {
		return err
	}

	if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
		return err
	}

	v.RegisterStructValidation(budgetDates, domain.BudgetForm{})

	return nil
}

// ValidAmount validates that the field is a non-negative decimal number.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return !d.IsNegative()
}

// ValidDate validates that the field is a calendar date formatted as YYYY-MM-DD.
var ValidDate validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := domain.ParseDate(s)

	return err == nil
}

func budgetDates(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(domain.BudgetForm)
	if !ok {
		return
	}

	start, err := domain.ParseDate(f.StartDate)
	if err != nil {
		return
	}

	end, err := domain.ParseDate(f.EndDate)
	if err != nil {
		return
	}

	if end.Before(start) {
		sl.ReportError(f.EndDate, "end_date", "EndDate", "gtefield", "start_date")
	}
}

// jsonName reports fields by their wire name. Query parameters fall back to the form tag.
func jsonName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "-" && name != "" {
			return name
		}
	}

	return fld.Name
}

// RegisterBinding prepares the validator of a request binder such as gin's.
func RegisterBinding(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	return Register(v)
}

// Struct validates s and returns a *domain.ValidationError listing every failed rule.
func Struct(s any) error {
	err := Engine().Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.NewValidationError(err.Error())
	}

	return domain.NewValidationError(Messages(ve)...)
}

// Messages formats validation errors as human readable sentences.
func Messages(ve validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Field()+" "+GetErrorMsg(fe))
	}

	return msgs
}

// GetErrorMsg returns the message for a single failed rule.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "amount":
		return "must be a non-negative number"
	case "date":
		return "must be a date formatted as YYYY-MM-DD"
	case "email":
		return "must be a valid email"
	case "hexcolor":
		return "must be a hex color"
	case "currency":
		return "is not supported"
	case "gtefield":
		return "must not be before " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}

	return "is invalid"
}
