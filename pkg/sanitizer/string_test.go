package sanitizer

import (
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only spaces", "    ", ""},
		{"leading and trailing", "  Jo Lee  ", "Jo Lee"},
		{"inner run of spaces", "Jo    Lee", "Jo Lee"},
		{"tabs and newlines", "Jo\t\nLee", "Jo Lee"},
		{"already clean", "Jo Lee", "Jo Lee"},
		{"unicode preserved", "  José  Müller ", "José Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimAndNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  a  b ", "c\td", "", "plain"}
	for _, in := range inputs {
		once := TrimAndNormalize(in)
		twice := TrimAndNormalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestPipeline_Apply(t *testing.T) {
	p := Pipeline{
		TrimAndNormalize,
		NormalizeIdentifier,
	}
	if got := p.Apply("  h1   main "); got != "h1 main" {
		t.Errorf("Pipeline.Apply = %q, want %q", got, "h1 main")
	}
}
