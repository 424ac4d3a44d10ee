package models

import "time"

// Session describes the authenticated state handed to the engine by the
// external authentication provider. The engine never creates sessions; it
// only consumes them.
type Session struct {
	// AccountID is the owner identifier (e.g. the login email).
	AccountID string `json:"account_id"`

	// Token is the bearer token issued by the authentication provider.
	Token string `json:"token"`

	// ExpiresAt is the token expiry extracted from the token itself,
	// zero when the token carries no expiry claim.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Active reports whether the session can authorize remote calls.
func (s *Session) Active() bool {
	if s == nil || s.AccountID == "" || s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}
