package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	oldPlateRegex      = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlateRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	phoneRegex         = regexp.MustCompile(`^(?:\+55\s?)?(?:\(?\d{2}\)?\s?)?(?:9\d{4}|\d{4})-?\d{4}$`)
	specialCharRegex   = regexp.MustCompile(`[!@#$%^&*()\-_=+\[\]{}|;:'",.<>?/\\` + "`~]")
)

func Validate(data interface{}) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(data)
}

// ValidatePassword requires 8+ characters with an uppercase letter, a digit and a special character.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	return hasUpper && hasDigit && specialCharRegex.MatchString(password)
}

func ValidateEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == strings.TrimSpace(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// NormalizePlate uppercases the plate and drops separators ("abc-1234" -> "ABC1234").
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(plate) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePlate accepts a normalized plate in the old (AAA9999) or Mercosul (AAA9A99) format.
func ValidatePlate(plate string) bool {
	return oldPlateRegex.MatchString(plate) || mercosulPlateRegex.MatchString(plate)
}
