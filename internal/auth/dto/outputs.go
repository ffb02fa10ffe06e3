package dto

import "time"

// SessionResponse is the body returned after register and login
type SessionResponse struct {
	UserID    string    `json:"user_id" description:"Identity key of the account"`
	Email     string    `json:"email" description:"Account email address"`
	Token     string    `json:"token" description:"Session token, also set as a cookie"`
	ExpiresAt time.Time `json:"expires_at" description:"Session token expiry"`
}

// SessionOutput wraps a session response and sets the auth cookie
type SessionOutput struct {
	SetCookie string `header:"Set-Cookie" doc:"Authentication cookie"`
	Body      SessionResponse
}

// AuthStatusResponse represents authentication status
type AuthStatusResponse struct {
	Authenticated bool    `json:"authenticated"`
	UserID        *string `json:"user_id,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// AuthStatusOutput wraps an authentication status response
type AuthStatusOutput struct {
	Body AuthStatusResponse
}

// LogoutOutput clears the auth cookie
type LogoutOutput struct {
	SetCookie string `header:"Set-Cookie" doc:"Clear authentication cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}
