// Package phone provides phone number utilities.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used for numbers entered without a country code.
const DefaultRegion = "HK"

// NormalizeE164 formats a phone number to E.164. The second result is false
// when the number cannot be parsed or is not a valid number, in which case the
// trimmed input is returned.
func NormalizeE164(input, region string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed, false
	}
	if region == "" {
		region = DefaultRegion
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return trimmed, false
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed, false
	}

	return phonenumbers.Format(number, phonenumbers.E164), true
}
