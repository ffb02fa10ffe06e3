package dto

// RegisterInput represents the input for account registration
type RegisterInput struct {
	Body struct {
		Email    string `json:"email" format:"email" required:"true" description:"Account email address"`
		Password string `json:"password" minLength:"6" maxLength:"128" required:"true" description:"Account password (at least 6 characters)"`
	}
}

// LoginInput represents the input for signing in
type LoginInput struct {
	Body struct {
		Email    string `json:"email" format:"email" required:"true" description:"Account email address"`
		Password string `json:"password" required:"true" description:"Account password"`
	}
}

// AuthStatusInput carries the credentials for an identity check
type AuthStatusInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
}

// LogoutInput represents the input for signing out
type LogoutInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
}
