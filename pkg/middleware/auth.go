package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/session"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/configuration"
	"github.com/paddockhq/paddock/pkg/httpapi"
)

// SessionStore resolves a session ID cookie to a live session.
type SessionStore interface {
	Get(ctx context.Context, sid string) (session.Session, error)
}

// Authorize resolves the session cookie into a session and user on the
// context. Requests without a valid session pass through anonymously.
func Authorize(store SessionStore) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(conf.SidCookieKey)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := store.Get(r.Context(), cookie.Value)
			if err != nil || sess.Expired() {
				next.ServeHTTP(w, r)
				return
			}
			ctx := composables.WithSession(r.Context(), sess)
			ctx = composables.WithUser(ctx, sess.User())
			if params, ok := composables.UseParams(ctx); ok {
				params.Authenticated = true
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthorization rejects anonymous requests with a JSON 401.
func RequireAuthorization() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := composables.UseUser(r.Context()); err != nil {
				if errors.Is(err, composables.ErrNoUser) {
					httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
					return
				}
				httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
