// Package validation holds the scalar rules shared by entity validators.
package validation

import (
	"math"
	"regexp"
	"unicode/utf8"
)

// Validation rule patterns
var (
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// NameMaxLength bounds free-text identity fields, counted in runes
	NameMaxLength = 200
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// StringValidation checks a required string
type StringValidation struct {
	Value   string
	MaxLen  int
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate reports whether the value is present and satisfies every rule
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}
	if v.MaxLen > 0 && utf8.RuneCountInString(v.Value) > v.MaxLen {
		return false
	}
	return v.Pattern == nil || v.Pattern.MatchString(v.Value)
}

// NumericValidation checks an inclusive range. A zero bound is meaningful,
// so bounds are tracked with explicit flags.
type NumericValidation struct {
	Value  float64
	Min    float64
	Max    float64
	hasMin bool
	hasMax bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value float64) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min float64) *NumericValidation {
	v.Min = min
	v.hasMin = true
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max float64) *NumericValidation {
	v.Max = max
	v.hasMax = true
	return v
}

// Validate performs validation. NaN never validates.
func (v *NumericValidation) Validate() bool {
	if math.IsNaN(v.Value) {
		return false
	}
	if v.hasMin && v.Value < v.Min {
		return false
	}
	return !v.hasMax || v.Value <= v.Max
}
