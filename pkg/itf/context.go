// Package itf carries shared test fixtures: a fluent builder for contexts
// wired the way the middleware stack wires real requests.
package itf

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/session"
	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
	corelocales "github.com/paddockhq/paddock/modules/core/presentation/locales"
	motorsportlocales "github.com/paddockhq/paddock/modules/motorsport/presentation/locales"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/intl"
	"github.com/paddockhq/paddock/pkg/logging"
)

// Bundle builds the i18n bundle from every module's embedded locale files.
func Bundle(tb testing.TB) *i18n.Bundle {
	tb.Helper()
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for name, read := range map[string]func(string) ([]byte, error){
		"core.en.json":       corelocales.FS.ReadFile,
		"motorsport.en.json": motorsportlocales.FS.ReadFile,
	} {
		data, err := read("en.json")
		if err != nil {
			tb.Fatalf("reading locale file: %v", err)
		}
		bundle.MustParseMessageFileBytes(data, name)
	}
	return bundle
}

// Localizer returns an English localizer over all module locale files.
func Localizer(tb testing.TB) *i18n.Localizer {
	tb.Helper()
	return i18n.NewLocalizer(Bundle(tb), "en")
}

// TestContext provides a fluent API for building test contexts.
type TestContext struct {
	user    user.User
	session session.Session
}

func NewTestContext() *TestContext {
	return &TestContext{}
}

// WithUser sets the acting user for the test context.
func (tc *TestContext) WithUser(u user.User) *TestContext {
	tc.user = u
	return tc
}

// WithSession sets an explicit session; without it a user implies a
// synthetic one, matching how the auth middleware always carries both.
func (tc *TestContext) WithSession(s session.Session) *TestContext {
	tc.session = s
	return tc
}

// Build assembles the context the way the middleware stack would.
func (tc *TestContext) Build(tb testing.TB) context.Context {
	tb.Helper()
	ctx := context.Background()
	ctx = intl.WithLocalizer(ctx, Localizer(tb))
	logger := logging.ConsoleLogger(logrus.PanicLevel)
	ctx = composables.WithLogger(ctx, logrus.NewEntry(logger))
	if !tc.user.IsZero() {
		ctx = composables.WithUser(ctx, tc.user)
		if tc.session.IsZero() {
			tc.session = session.New(uuid.NewString(), tc.user, "test-token", time.Hour)
		}
	}
	if !tc.session.IsZero() {
		ctx = composables.WithSession(ctx, tc.session)
	}
	return ctx
}
