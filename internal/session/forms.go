package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Birth years accepted for a pediatric patient.
const (
	minBirthYear = 2007
	maxBirthYear = 2025
)

// PatientInfoForm is the new-patient registration submission.
type PatientInfoForm struct {
	FirstName string `validate:"required,alphaspace"`
	LastName  string `validate:"required,alphaspace"`
	Month     string
	Day       string
	Year      string
	Sex       string
}

func (f PatientInfoForm) fullName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

func (f PatientInfoForm) birthdate() string {
	return fmt.Sprintf("%s/%s/%s", f.Month, f.Day, f.Year)
}

// LoginForm identifies an existing patient by name.
type LoginForm struct {
	FirstName string `validate:"required,alphaspace"`
	LastName  string `validate:"required,alphaspace"`
}

// VitalsForm is one vitals capture. Fields carry the operator's raw
// text; parsing happens in the evaluator.
type VitalsForm struct {
	HeartRate   string `validate:"omitempty,vitalnum"`
	Temperature string `validate:"omitempty,vitaldec"`
	Systolic    string `validate:"omitempty,vitalnum"`
	Diastolic   string `validate:"omitempty,vitalnum"`
}

// registerValidators installs the capture-format rules: integer vitals
// are at most three digits and at most 300; temperature is at most
// four characters of digits and one dot, at most 45.0. A lone or
// trailing dot is accepted here and surfaces later as an invalid-input
// evaluation.
func registerValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		for _, c := range fl.Field().String() {
			if !isAlpha(c) && c != ' ' {
				return false
			}
		}
		return true
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("vitalnum", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) > 3 {
			return false
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return false
		}
		return n <= 300
	}); err != nil {
		return err
	}

	return v.RegisterValidation("vitaldec", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) > 4 || strings.Count(s, ".") > 1 {
			return false
		}
		for _, c := range s {
			if (c < '0' || c > '9') && c != '.' {
				return false
			}
		}
		trimmed := strings.TrimSuffix(s, ".")
		if trimmed == "" {
			return true
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return false
		}
		return value <= 45.0
	})
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// validateBirthdate mirrors the granular per-field date checks: each
// failing field contributes its own message.
func validateBirthdate(month, day, year string) []string {
	var msgs []string
	if m, err := strconv.Atoi(month); err != nil {
		msgs = append(msgs, "Month must be a number.")
	} else if m < 1 || m > 12 {
		msgs = append(msgs, "Month must be between 01 and 12.")
	}
	if d, err := strconv.Atoi(day); err != nil {
		msgs = append(msgs, "Day must be a number.")
	} else if d < 1 || d > 31 {
		msgs = append(msgs, "Day must be between 01 and 31.")
	}
	if y, err := strconv.Atoi(year); err != nil {
		msgs = append(msgs, "Year must be a number.")
	} else if y < minBirthYear || y > maxBirthYear {
		msgs = append(msgs, fmt.Sprintf("Year must be between %d and %d.", minBirthYear, maxBirthYear))
	}
	return msgs
}
