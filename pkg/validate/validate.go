// Package validate holds the single-field validators shared by the signup
// flow and the resume section editors. Each validator checks one raw string
// and returns nil or a typed validation error with a human-readable message.
package validate

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/vitaehq/vitae/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("VALIDATE")

var (
	CodeNameRequired      = ErrRegistry.Register("NAME_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Name is required")
	CodeNameLettersOnly   = ErrRegistry.Register("NAME_LETTERS_ONLY", errx.TypeValidation, http.StatusBadRequest, "Name must contain only letters (no numbers or symbols)")
	CodeUsernameNoLetter  = ErrRegistry.Register("USERNAME_NO_LETTER", errx.TypeValidation, http.StatusBadRequest, "Username must contain at least one letter")
	CodeUsernameCharset   = ErrRegistry.Register("USERNAME_CHARSET", errx.TypeValidation, http.StatusBadRequest, "Username can only contain letters, numbers, and characters: _-.")
	CodeUsernameTooShort  = ErrRegistry.Register("USERNAME_TOO_SHORT", errx.TypeValidation, http.StatusBadRequest, "Username must be at least 3 characters")
	CodeUsernameTooLong   = ErrRegistry.Register("USERNAME_TOO_LONG", errx.TypeValidation, http.StatusBadRequest, "Username must be less than 20 characters")
	CodeEmailFormat       = ErrRegistry.Register("EMAIL_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Invalid email format. Email must start with a letter/number and contain at least one letter before '@'")
	CodeEmailDomain       = ErrRegistry.Register("EMAIL_DOMAIN", errx.TypeValidation, http.StatusBadRequest, "Invalid domain. Must contain at least 2 letters (e.g., example@site.com)")
	CodePasswordTooShort  = ErrRegistry.Register("PASSWORD_TOO_SHORT", errx.TypeValidation, http.StatusBadRequest, "Password must be at least 8 characters")
	CodePasswordNoUpper   = ErrRegistry.Register("PASSWORD_NO_UPPER", errx.TypeValidation, http.StatusBadRequest, "Password must contain at least one uppercase letter")
	CodePasswordNoLower   = ErrRegistry.Register("PASSWORD_NO_LOWER", errx.TypeValidation, http.StatusBadRequest, "Password must contain at least one lowercase letter")
	CodePasswordNoDigit   = ErrRegistry.Register("PASSWORD_NO_DIGIT", errx.TypeValidation, http.StatusBadRequest, "Password must contain at least one number")
	CodePasswordNoSymbol  = ErrRegistry.Register("PASSWORD_NO_SYMBOL", errx.TypeValidation, http.StatusBadRequest, "Password must contain at least one special character")
	CodePasswordMismatch  = ErrRegistry.Register("PASSWORD_MISMATCH", errx.TypeValidation, http.StatusBadRequest, "Passwords must match")
	CodePhoneFormat       = ErrRegistry.Register("PHONE_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Phone must start with 6, 7, 8, or 9 and be exactly 10 digits")
	CodePostalCodeFormat  = ErrRegistry.Register("POSTAL_CODE_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Pincode must be exactly 6 digits")
	CodeURLFormat         = ErrRegistry.Register("URL_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Invalid URL")
	CodeFieldRequired     = ErrRegistry.Register("FIELD_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Field is required")
)

var (
	nameRe            = regexp.MustCompile(`^[A-Za-z]+$`)
	usernameLetterRe  = regexp.MustCompile(`[a-zA-Z]`)
	usernameCharsetRe = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	emailRe           = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._%+-]*[A-Za-z]+[A-Za-z0-9._%+-]*@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	allDigitsRe       = regexp.MustCompile(`^\d+$`)
	upperRe           = regexp.MustCompile(`[A-Z]`)
	lowerRe           = regexp.MustCompile(`[a-z]`)
	digitRe           = regexp.MustCompile(`[0-9]`)
	symbolRe          = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	phoneRe           = regexp.MustCompile(`^[6-9]\d{9}$`)
	postalCodeRe      = regexp.MustCompile(`^\d{6}$`)
)

// Name validates a first or last name: letters only, non-empty.
func Name(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRegistry.New(CodeNameRequired)
	}
	if !nameRe.MatchString(s) {
		return ErrRegistry.New(CodeNameLettersOnly)
	}
	return nil
}

// Username validates an account name: at least one letter, charset
// letters/digits/_-., length 3 to 20.
func Username(s string) error {
	if !usernameLetterRe.MatchString(s) {
		return ErrRegistry.New(CodeUsernameNoLetter)
	}
	if !usernameCharsetRe.MatchString(s) {
		return ErrRegistry.New(CodeUsernameCharset)
	}
	if len(s) < 3 {
		return ErrRegistry.New(CodeUsernameTooShort)
	}
	if len(s) > 20 {
		return ErrRegistry.New(CodeUsernameTooLong)
	}
	return nil
}

// Email validates structural shape plus a domain label of at least 2
// characters that is not all digits.
func Email(s string) error {
	if !emailRe.MatchString(s) {
		return ErrRegistry.New(CodeEmailFormat)
	}
	at := strings.LastIndex(s, "@")
	domainLabel := s[at+1:]
	if dot := strings.Index(domainLabel, "."); dot >= 0 {
		domainLabel = domainLabel[:dot]
	}
	if len(domainLabel) < 2 || allDigitsRe.MatchString(domainLabel) {
		return ErrRegistry.New(CodeEmailDomain)
	}
	return nil
}

// Password enforces length 8+ with at least one uppercase, lowercase,
// digit, and special character. Checks run in order so the first unmet
// rule produces the message.
func Password(s string) error {
	if len(s) < 8 {
		return ErrRegistry.New(CodePasswordTooShort)
	}
	if !upperRe.MatchString(s) {
		return ErrRegistry.New(CodePasswordNoUpper)
	}
	if !lowerRe.MatchString(s) {
		return ErrRegistry.New(CodePasswordNoLower)
	}
	if !digitRe.MatchString(s) {
		return ErrRegistry.New(CodePasswordNoDigit)
	}
	if !symbolRe.MatchString(s) {
		return ErrRegistry.New(CodePasswordNoSymbol)
	}
	return nil
}

// PasswordConfirmation checks the confirmation matches the password.
func PasswordConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ErrRegistry.New(CodePasswordMismatch)
	}
	return nil
}

// Phone validates a 10-digit number with first digit in 6-9.
func Phone(s string) error {
	if !phoneRe.MatchString(s) {
		return ErrRegistry.New(CodePhoneFormat)
	}
	return nil
}

// PostalCode validates a 6-digit pincode.
func PostalCode(s string) error {
	if !postalCodeRe.MatchString(s) {
		return ErrRegistry.New(CodePostalCodeFormat)
	}
	return nil
}

// URL accepts empty strings and otherwise requires a well-formed
// absolute URL with scheme and host.
func URL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrRegistry.New(CodeURLFormat).WithDetail("url", s)
	}
	return nil
}

// Required rejects empty or whitespace-only values, naming the field in
// the error details.
func Required(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRegistry.New(CodeFieldRequired).WithDetail("field", field)
	}
	return nil
}
