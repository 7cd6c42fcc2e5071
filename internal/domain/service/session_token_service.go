package service

// SessionTokenService issues and verifies the signed tokens identifying cart sessions.
type SessionTokenService interface {
	// Issue creates a signed token for the given session ID.
	Issue(sessionID string) (string, error)

	// Parse verifies the token and returns the session ID it carries.
	Parse(token string) (string, error)
}
