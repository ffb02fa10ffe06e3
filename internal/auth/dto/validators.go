package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// credentials is the validation shape shared by register and login
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,game_password"`
}

// RegisterCustomValidators registers auth-specific validation rules
func RegisterCustomValidators(v *validator.Validate) {
	// Passwords must be at least 6 characters and contain no spaces
	v.RegisterValidation("game_password", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		return len(password) >= 6 && !strings.ContainsAny(password, " \t")
	})
}

// ValidateCredentials checks an email/password pair before it reaches the
// auth service.
func ValidateCredentials(v *validator.Validate, email, password string) error {
	if err := v.Struct(credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("invalid credentials format: %w", err)
	}
	return nil
}
