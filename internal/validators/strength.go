package validators

import (
	"unicode/utf8"

	"github.com/MKhiriev/auth-bridge/models"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// Entropy thresholds in bits.
const (
	fairEntropyBits   = 50
	strongEntropyBits = 70
)

// StrengthItem is one line of the signup checklist.
type StrengthItem struct {
	Rule  string
	Label string
	Met   bool
}

// PasswordStrength grades password for the signup page. Match is reported
// only once confirm is non-empty.
func PasswordStrength(password, confirm string) models.PasswordStrength {
	entropy := passwordvalidator.GetEntropy(password)

	return models.PasswordStrength{
		HasMinLength: utf8.RuneCountInString(password) >= MinPasswordLength,
		HasUppercase: upperRe.MatchString(password),
		HasLowercase: lowerRe.MatchString(password),
		HasNumber:    numberRe.MatchString(password),
		Match:        confirm != "" && password == confirm,
		Entropy:      entropy,
		Label:        strengthLabel(entropy),
	}
}

// Checklist renders s as the four requirement lines shown under the
// password input.
func Checklist(s models.PasswordStrength) []StrengthItem {
	return []StrengthItem{
		{Rule: "length", Label: "At least 8 characters", Met: s.HasMinLength},
		{Rule: "upper", Label: "One uppercase letter (A-Z)", Met: s.HasUppercase},
		{Rule: "lower", Label: "One lowercase letter (a-z)", Met: s.HasLowercase},
		{Rule: "number", Label: "One number (0-9)", Met: s.HasNumber},
	}
}

func strengthLabel(entropy float64) models.StrengthLabel {
	switch {
	case entropy >= strongEntropyBits:
		return models.StrengthStrong
	case entropy >= fairEntropyBits:
		return models.StrengthFair
	default:
		return models.StrengthWeak
	}
}
