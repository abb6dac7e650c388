package teacher

import (
	"regexp"
	"unicode/utf8"
)

// Conservative address shape: dotted alphanumeric local part, dotted domain,
// alphabetic TLD of 2-6 characters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// validateRegistration applies the registration rules in order and stops at
// the first failure: presence, email shape, password length.
func validateRegistration(reg Registration) error {
	if reg.Nombre == "" || reg.Correo == "" || reg.Password == "" {
		return ErrMissingField
	}
	if !emailPattern.MatchString(reg.Correo) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(reg.Password) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// validateLogin only checks presence. Format and length were already
// enforced when the account was registered.
func validateLogin(creds Credentials) error {
	if creds.Correo == "" || creds.Password == "" {
		return ErrMissingField
	}
	return nil
}
