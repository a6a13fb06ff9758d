package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Same shape the website checks in the browser: something@something.tld, no whitespace
	simpleEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Phone digit bounds for the quote form
const (
	PhoneMinDigits = 8
	PhoneMaxDigits = 15
)

// New returns a validator that reports JSON field names and knows the custom tags.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("simple_email", SimpleEmail)
	_ = v.RegisterValidation("phone_min_digits", PhoneMinDigitsRule)
	_ = v.RegisterValidation("phone_max_digits", PhoneMaxDigitsRule)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// NotBlank validates that a string has non-whitespace content
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// SimpleEmail validates the local@domain.tld shape
func SimpleEmail(fl validator.FieldLevel) bool {
	return IsSimpleEmail(fl.Field().String())
}

// IsSimpleEmail reports whether s looks like local@domain.tld.
func IsSimpleEmail(s string) bool {
	return simpleEmailRegex.MatchString(s)
}

// PhoneMinDigitsRule fails when the phone has fewer digits than the tag parameter
func PhoneMinDigitsRule(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		limit = PhoneMinDigits
	}
	return len(DigitsOnly(fl.Field().String())) >= limit
}

// PhoneMaxDigitsRule fails when the phone has more digits than the tag parameter
func PhoneMaxDigitsRule(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		limit = PhoneMaxDigits
	}
	return len(DigitsOnly(fl.Field().String())) <= limit
}

// DigitsOnly strips every non-digit character
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
