// Package validation holds the shared form-validation rule table. Both the
// contact and checkout forms consume the same pure rules, keyed by field name,
// so a rule is defined exactly once.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Rule validates a single field value. A nil return means the value is valid.
type Rule func(value string) error

// RuleSet maps field names to their rules. Validation is all-fields: every
// rule runs and every failure is reported, no short-circuit.
type RuleSet map[string]Rule

// Validate runs every rule against its field and returns the failures as a
// field-to-message map. Fields absent from values are validated against "".
func (rs RuleSet) Validate(values map[string]string) map[string]string {
	failures := make(map[string]string)
	for field, rule := range rs {
		if err := rule(values[field]); err != nil {
			failures[field] = err.Error()
		}
	}
	return failures
}

var (
	nameCharsRe  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneCharsRe = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	digitsRe     = regexp.MustCompile(`[^0-9]`)
	postcodeRe   = regexp.MustCompile(`^\d{4}$`)
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
)

// NameRule validates person-name style fields: trimmed, at least two
// characters, letters/spaces/apostrophes/hyphens only.
func NameRule(label string) Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return fmt.Errorf("%s is required", label)
		}
		if len(v) < 2 {
			return fmt.Errorf("%s must be at least 2 characters", label)
		}
		if !nameCharsRe.MatchString(v) {
			return fmt.Errorf("%s may only contain letters, spaces, apostrophes and hyphens", label)
		}
		return nil
	}
}

// EmailRule validates a non-empty address of the shape local@domain.tld.
func EmailRule() Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return errors.New("Email is required")
		}
		if !emailRe.MatchString(v) {
			return errors.New("Please enter a valid email address")
		}
		return nil
	}
}

// PhoneRule validates a phone number: allowed punctuation only, and between
// minDigits and maxDigits digits after stripping everything else.
func PhoneRule(label string, minDigits, maxDigits int) Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return fmt.Errorf("%s is required", label)
		}
		if !phoneCharsRe.MatchString(v) {
			return fmt.Errorf("%s may only contain digits, spaces and + - ( )", label)
		}
		digits := digitsRe.ReplaceAllString(v, "")
		if len(digits) < minDigits || len(digits) > maxDigits {
			return fmt.Errorf("%s must contain %d to %d digits", label, minDigits, maxDigits)
		}
		return nil
	}
}

// AgeRule validates a whole number of years in (0, 120].
func AgeRule() Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return errors.New("Age is required")
		}
		age, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("Age must be a whole number")
		}
		if age <= 0 || age > 120 {
			return errors.New("Age must be between 1 and 120")
		}
		return nil
	}
}

// MessageRule validates free text between 10 and 1000 characters after trim.
func MessageRule() Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return errors.New("Message is required")
		}
		if len(v) < 10 {
			return errors.New("Message must be at least 10 characters")
		}
		if len(v) > 1000 {
			return errors.New("Message must be 1000 characters or less")
		}
		return nil
	}
}

// RequiredRule validates simple non-empty text fields.
func RequiredRule(label string) Rule {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// PostcodeRule validates an exactly-four-digit postcode.
func PostcodeRule() Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return errors.New("Postcode is required")
		}
		if !postcodeRe.MatchString(v) {
			return errors.New("Postcode must be exactly 4 digits")
		}
		return nil
	}
}

// NormalizeCardNumber strips spaces from a card number for validation.
func NormalizeCardNumber(value string) string {
	return strings.ReplaceAll(value, " ", "")
}

// FormatCardNumber groups a normalized card number into space-separated
// four-digit chunks for display.
func FormatCardNumber(value string) string {
	v := NormalizeCardNumber(value)
	var groups []string
	for len(v) > 4 {
		groups = append(groups, v[:4])
		v = v[4:]
	}
	groups = append(groups, v)
	return strings.Join(groups, " ")
}

// CardNumberRule validates a 16-digit card number, accepting the spaced
// display form.
func CardNumberRule() Rule {
	return func(value string) error {
		v := NormalizeCardNumber(strings.TrimSpace(value))
		if v == "" {
			return errors.New("Card number is required")
		}
		if !cardNumberRe.MatchString(v) {
			return errors.New("Card number must be exactly 16 digits")
		}
		return nil
	}
}

// ExpiryRule validates an MM/YY expiry with month 1-12 that is not before the
// current month. The clock is injected so tests can pin "now".
func ExpiryRule(now func() time.Time) Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return errors.New("Expiry date is required")
		}
		m := expiryRe.FindStringSubmatch(v)
		if m == nil {
			return errors.New("Expiry date must be in MM/YY format")
		}
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		year += 2000

		t := now()
		if year < t.Year() || (year == t.Year() && month < int(t.Month())) {
			return errors.New("Card has expired")
		}
		return nil
	}
}

// CVVRule validates a 3 or 4 digit security code.
func CVVRule() Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return errors.New("CVV is required")
		}
		if !cvvRe.MatchString(v) {
			return errors.New("CVV must be 3 or 4 digits")
		}
		return nil
	}
}

// SelectionRule validates membership in an enumerated option set.
func SelectionRule(label string, options []string) Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		if v == "" {
			return fmt.Errorf("Please select a %s", label)
		}
		for _, opt := range options {
			if v == opt {
				return nil
			}
		}
		return fmt.Errorf("Please select a valid %s", label)
	}
}
