package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"credit-application/internal/domain/credit"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/paemuri/brdoc"
	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"

	// moneyScale matches the NUMERIC(19, 2) money columns.
	moneyScale = 2
)

// Validator runs structural checks on inbound payloads and reports them as a
// single validation error keyed by json field name.
type Validator struct {
	validate        *validator.Validate
	maxInstallments int
	now             func() time.Time
}

func NewValidator(maxInstallments int, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{
		validate:        validator.New(),
		maxInstallments: maxInstallments,
		now:             now,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Money is compared numerically by the built-in gt/gte tags.
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v.validate, "cpf", func(fl validator.FieldLevel) bool {
		return IsValidCPF(fl.Field().String())
	})
	mustRegister(v.validate, "futuredate", func(fl validator.FieldLevel) bool {
		day, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return day.After(credit.CivilDate(v.now()))
	})
	mustRegister(v.validate, "money", func(fl validator.FieldLevel) bool {
		amount, ok := decimalField(fl)
		return !ok || HasMoneyScale(amount)
	})
	mustRegister(v.validate, "installments", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(v.maxInstallments)
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

func (v *Validator) MaxInstallments() int {
	return v.maxInstallments
}

// Struct validates req, translating each failed field through messages
// ("field.tag" -> text) before falling back to a generic description.
func (v *Validator) Struct(req interface{}, messages map[string]string) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("request", err.Error())
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = v.message(fe, messages)
	}
	return apperrors.NewValidationErrors(details)
}

func (v *Validator) message(fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "installments":
		return fmt.Sprintf("Number of installments must be equal or smaller than %d", v.maxInstallments)
	case "min", "gte":
		return "Must be at least " + fe.Param()
	case "max", "lte":
		return "Must be at most " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	case "money":
		return fmt.Sprintf("Must have at most %d decimal places", moneyScale)
	case "datetime":
		return "Must be a date in " + DateLayout + " format"
	default:
		return "Invalid value"
	}
}

// decimalField reads the raw decimal behind fl. The registered custom type
// func hands the tag a float64, which cannot tell 0.001 from 0.00100000001.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() {
		return decimal.Decimal{}, false
	}
	switch amount := field.Interface().(type) {
	case decimal.Decimal:
		return amount, true
	case *decimal.Decimal:
		if amount == nil {
			return decimal.Decimal{}, false
		}
		return *amount, true
	default:
		return decimal.Decimal{}, false
	}
}

// HasMoneyScale reports whether d fits the stored money scale without rounding.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(moneyScale))
}

// IsValidCPF checks a Brazilian CPF, bare (11 digits) or punctuated
// (000.000.000-00), against both check digits.
func IsValidCPF(cpf string) bool {
	switch len(cpf) {
	case 11:
	case 14:
		if cpf[3] != '.' || cpf[7] != '.' || cpf[11] != '-' {
			return false
		}
	default:
		return false
	}
	digits := NormalizeCPF(cpf)
	return len(digits) == 11 && brdoc.IsCPF(digits)
}

// NormalizeCPF reduces a CPF to its 11 digits so that every accepted spelling
// of the same tax id collides on the unique constraint.
func NormalizeCPF(cpf string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cpf)
}
