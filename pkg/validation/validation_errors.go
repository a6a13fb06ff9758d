package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Custom tags reported by struct-level rules
const (
	TagSelectService = "select_service"
)

// Message keys understood by the i18n catalog
const (
	KeyRequired      = "error.required"
	KeyInvalidEmail  = "error.invalidEmail"
	KeyPhoneTooShort = "error.phoneTooShort"
	KeyPhoneTooLong  = "error.phoneTooLong"
	KeySelectService = "error.selectService"
	KeyInvalidOption = "error.invalidOption"
	KeyInvalid       = "error.invalid"
)

// Messages resolves catalog keys to user-facing text
type Messages interface {
	T(key string, params ...string) (string, bool)
}

// fallbackMessages are used when no catalog entry exists
var fallbackMessages = map[string]string{
	KeyRequired:      "This field is required",
	KeyInvalidEmail:  "Please enter a valid email address",
	KeyPhoneTooShort: "Phone number is too short",
	KeyPhoneTooLong:  "Phone number is too long",
	KeySelectService: "Please select at least one service",
	KeyInvalidOption: "Please select a valid option",
	KeyInvalid:       "This field is invalid",
}

// FormatValidationErrors converts validator.ValidationErrors into a field -> message map.
// The first failing rule of each field wins.
func FormatValidationErrors(err error, messages Messages) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["_"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(messages, MessageKey(e.Tag()))
	}
	return out
}

// MessageKey maps a validation tag to its catalog key
func MessageKey(tag string) string {
	switch tag {
	case "required", "notblank":
		return KeyRequired
	case "simple_email", "email":
		return KeyInvalidEmail
	case "phone_min_digits":
		return KeyPhoneTooShort
	case "phone_max_digits":
		return KeyPhoneTooLong
	case TagSelectService:
		return KeySelectService
	case "oneof":
		return KeyInvalidOption
	default:
		return KeyInvalid
	}
}

func message(messages Messages, key string) string {
	if messages != nil {
		if s, ok := messages.T(key); ok {
			return s
		}
	}
	return fallbackMessages[key]
}
