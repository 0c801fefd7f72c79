package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims whitespace", "  5551234  ", "5551234"},
		{"keeps digits verbatim", "555-1234", "555-1234"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPhoneRateKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"us number with formatting", "+1 212 555 0123", "+12125550123"},
		{"us number without plus", "(212) 555-0123", "+12125550123"},
		{"unparseable falls back to trimmed input", "  5551234 ", "5551234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhoneRateKey(tt.input); got != tt.expected {
				t.Errorf("PhoneRateKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPhoneRateKey_Idempotent(t *testing.T) {
	once := PhoneRateKey("+1 212 555 0123")
	twice := PhoneRateKey(once)
	if once != twice {
		t.Errorf("not idempotent: first %q, second %q", once, twice)
	}
}
