package composables

import (
	"context"
	"errors"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/session"
	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
	"github.com/paddockhq/paddock/pkg/constants"
)

var (
	ErrNoUser    = errors.New("user not found in context")
	ErrNoSession = errors.New("session not found in context")
)

// WithUser returns a new context carrying the acting user.
func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, constants.UserKey, u)
}

// UseUser returns the acting user from the context.
func UseUser(ctx context.Context) (user.User, error) {
	u, ok := ctx.Value(constants.UserKey).(user.User)
	if !ok || u.IsZero() {
		return user.User{}, ErrNoUser
	}
	return u, nil
}

// WithSession returns a new context carrying the session.
func WithSession(ctx context.Context, s session.Session) context.Context {
	return context.WithValue(ctx, constants.SessionKey, s)
}

// UseSession returns the session from the context.
func UseSession(ctx context.Context) (session.Session, error) {
	s, ok := ctx.Value(constants.SessionKey).(session.Session)
	if !ok || s.IsZero() {
		return session.Session{}, ErrNoSession
	}
	return s, nil
}
