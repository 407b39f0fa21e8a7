package entity

import "time"

// User is the identity the auth provider vouches for.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// SessionTokens is the opaque credential pair carried in cookies.
type SessionTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// IsEmpty reports whether no credential was presented at all.
func (t *SessionTokens) IsEmpty() bool {
	return t == nil || (t.AccessToken == "" && t.RefreshToken == "")
}

// AuthResult is a successful provider answer. Rotated is set when the provider
// issued new tokens that must be written back to the client.
type AuthResult struct {
	User    *User
	Rotated *SessionTokens
}
