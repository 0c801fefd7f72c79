package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var defaultRegions = []string{
	"US",
	"IL",
}

// NormalizePhone trims a phone string. The digits themselves are kept as
// submitted; bookings store the phone verbatim.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// PhoneRateKey canonicalizes a phone number to E.164 so the rate limiter
// treats "+1 212 555 1234" and "12125551234" as the same caller. Numbers
// that cannot be parsed fall back to the trimmed input.
func PhoneRateKey(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	for _, region := range defaultRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}
