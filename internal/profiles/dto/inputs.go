package dto

// GetProfileInput carries the credentials for reading the current profile
type GetProfileInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
}

// GetProfileStatsInput carries the credentials for the statistics view
type GetProfileStatsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
}
