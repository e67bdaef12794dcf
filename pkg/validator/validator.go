package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"medicare-plus/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{8,18}[0-9]$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

const (
	minCardDigits   = 16
	minMobileDigits = 10
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names so the form can place errors inline
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return entity.Department(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("slot_token", func(fl validator.FieldLevel) bool {
		_, _, err := entity.ParseSlotToken(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("date_ymd", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
		return isCardNumber(fl.Field().String())
	})
	v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return cardExpiryPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("mobile_number", func(fl validator.FieldLevel) bool {
		return countDigits(fl.Field().String()) >= minMobileDigits
	})

	return &CustomValidator{validator: v}
}

// isCardNumber accepts digits grouped by spaces or hyphens
func isCardNumber(value string) bool {
	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= minCardDigits
}

func countDigits(value string) int {
	n := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required", "required_if":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "department":
				errors[field] = field + " must be a known department"
			case "slot_token":
				errors[field] = field + " must be a valid time slot"
			case "date_ymd":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "number":
				errors[field] = field + " must contain only digits"
			case "card_number":
				errors[field] = field + " must contain at least 16 digits"
			case "card_expiry":
				errors[field] = field + " must be in MM/YY format"
			case "mobile_number":
				errors[field] = field + " must contain at least 10 digits"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
