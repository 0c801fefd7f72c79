package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// TrimAndNormalize trims the string and collapses any run of whitespace
// (including newlines and tabs) into a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeFreeText(text string) string {
	return TrimAndNormalize(text)
}

// NormalizeSlotLabel keeps the slot label opaque but canonical enough to
// compare: trimmed, single-spaced.
func NormalizeSlotLabel(label string) string {
	return TrimAndNormalize(label)
}

func NormalizeIdentifier(id string) string {
	return strings.TrimSpace(id)
}
