package intl

import (
	"context"
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/paddockhq/paddock/pkg/constants"
)

var ErrNoLocalizer = errors.New("localizer not found in context")

// WithLocalizer returns a new context carrying the localizer.
func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, constants.LocalizerKey, l)
}

// UseLocalizer returns the localizer from the context.
func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(constants.LocalizerKey).(*i18n.Localizer)
	return l, ok
}

// MustT localizes the message ID, panicking when no localizer is present.
func MustT(ctx context.Context, msgID string) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		panic(ErrNoLocalizer)
	}
	return l.MustLocalize(&i18n.LocalizeConfig{MessageID: msgID})
}

// T localizes the message ID, falling back to the ID itself when the message
// or the localizer is missing.
func T(ctx context.Context, msgID string) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		return msgID
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil || msg == "" {
		return msgID
	}
	return msg
}
