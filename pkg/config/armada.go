package config

import "time"

// GetAPIPrefix returns the path prefix the unified API is mounted under,
// e.g. "/api". Empty means the API is mounted at the root.
func GetAPIPrefix() string {
	return GetEnv("API_PREFIX", "")
}

// GetHost returns the listen host for the HTTP server
func GetHost() string {
	return GetEnv("HOST", "0.0.0.0")
}

// GetFrontendURL returns the public URL of the game frontend
func GetFrontendURL() string {
	return GetEnv("FRONTEND_URL", "https://armada.example.com")
}

// GetJWTSecret returns the HMAC secret used to sign session tokens
func GetJWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "armada-dev-secret-change-me"))
}

// GetCookieName returns the name of the session cookie
func GetCookieName() string {
	return GetEnv("AUTH_COOKIE_NAME", "armada_auth_token")
}

// GetCookieDuration returns how long issued session tokens remain valid
func GetCookieDuration() time.Duration {
	hours := GetIntEnv("AUTH_COOKIE_HOURS", 24)
	return time.Duration(hours) * time.Hour
}

// GetMissionTickInterval returns the cadence of the mission progress tick.
// One second matches the progress formula of 100/duration points per tick.
func GetMissionTickInterval() time.Duration {
	seconds := GetIntEnv("MISSION_TICK_SECONDS", 1)
	return time.Duration(seconds) * time.Second
}
