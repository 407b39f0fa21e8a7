package impl

import (
	"net/http"
	"time"

	"atelier/config"
	"atelier/internal/domain/entity"
)

// SessionCookies reads and writes the session token pair carried in cookies.
type SessionCookies struct {
	accessName  string
	refreshName string
	secure      bool
	ttl         time.Duration
	now         func() time.Time
}

// NewSessionCookies creates the cookie codec from the auth provider settings.
func NewSessionCookies(cfg *config.Config) *SessionCookies {
	return &SessionCookies{
		accessName:  cfg.AuthProvider.AccessCookie,
		refreshName: cfg.AuthProvider.RefreshCookie,
		secure:      cfg.AuthProvider.SecureCookies,
		ttl:         cfg.AuthProvider.SessionTTL,
		now:         time.Now,
	}
}

// Read extracts the token pair. It returns nil when neither cookie is present.
func (s *SessionCookies) Read(cookies []*http.Cookie) *entity.SessionTokens {
	tokens := &entity.SessionTokens{}
	for _, c := range cookies {
		switch c.Name {
		case s.accessName:
			tokens.AccessToken = c.Value
		case s.refreshName:
			tokens.RefreshToken = c.Value
		}
	}

	if tokens.IsEmpty() {
		return nil
	}

	return tokens
}

// Write returns cookies that store the token pair.
func (s *SessionCookies) Write(tokens *entity.SessionTokens) []*http.Cookie {
	expires := s.now().Add(s.ttl)

	cookies := []*http.Cookie{s.cookie(s.accessName, tokens.AccessToken, expires)}
	if tokens.RefreshToken != "" {
		cookies = append(cookies, s.cookie(s.refreshName, tokens.RefreshToken, expires))
	}

	return cookies
}

// Clear returns expired cookies that remove the session from the browser.
func (s *SessionCookies) Clear() []*http.Cookie {
	access := s.cookie(s.accessName, "", time.Unix(0, 0))
	access.MaxAge = -1
	refresh := s.cookie(s.refreshName, "", time.Unix(0, 0))
	refresh.MaxAge = -1

	return []*http.Cookie{access, refresh}
}

func (s *SessionCookies) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
