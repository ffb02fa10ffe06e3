package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials(t *testing.T) {
	v := validator.New()
	RegisterCustomValidators(v)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			email:    "pilot@example.com",
			password: "hunter22",
			wantErr:  false,
		},
		{
			name:     "minimum length password",
			email:    "pilot@example.com",
			password: "six666",
			wantErr:  false,
		},
		{
			name:     "missing email",
			email:    "",
			password: "hunter22",
			wantErr:  true,
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "hunter22",
			wantErr:  true,
		},
		{
			name:     "password too short",
			email:    "pilot@example.com",
			password: "five5",
			wantErr:  true,
		},
		{
			name:     "password with spaces",
			email:    "pilot@example.com",
			password: "has a space",
			wantErr:  true,
		},
		{
			name:     "missing password",
			email:    "pilot@example.com",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(v, tt.email, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
