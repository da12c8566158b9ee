package form

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required  bool
	Trim      bool // validate the value with surrounding whitespace removed
	MaxLength int
}

// Normalize applies the value transformations implied by the rules.
func (v FieldValidation) Normalize(value string) string {
	if v.Trim {
		return strings.TrimSpace(value)
	}
	return value
}

// ValidateText checks a text value against the validation rules and returns
// a short message, or "" when the value is acceptable. Lengths count runes.
func (v FieldValidation) ValidateText(value string) string {
	value = v.Normalize(value)

	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}

	if v.MaxLength > 0 && utf8.RuneCountInString(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	return ""
}
