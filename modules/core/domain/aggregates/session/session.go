package session

import (
	"time"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
)

// Session binds a browser cookie to the acting user and its backend bearer
// token. Sessions are immutable; token refresh returns a new value.
type Session struct {
	id        string
	user      user.User
	token     string
	expiresAt time.Time
}

func New(id string, u user.User, token string, duration time.Duration) Session {
	return Session{
		id:        id,
		user:      u,
		token:     token,
		expiresAt: time.Now().Add(duration),
	}
}

func Hydrate(id string, u user.User, token string, expiresAt time.Time) Session {
	return Session{id: id, user: u, token: token, expiresAt: expiresAt}
}

func (s Session) ID() string           { return s.id }
func (s Session) User() user.User      { return s.user }
func (s Session) Token() string        { return s.token }
func (s Session) ExpiresAt() time.Time { return s.expiresAt }
func (s Session) IsZero() bool         { return s.id == "" }

func (s Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

// WithToken returns a copy carrying a refreshed bearer token.
func (s Session) WithToken(token string) Session {
	s.token = token
	return s
}
