package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/configuration"
)

// RequestParams collects per-request metadata into the context so that
// services far from the handler can still reach the writer and client info.
func RequestParams() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := &composables.Params{
				IP:        getRealIP(r, conf),
				UserAgent: r.UserAgent(),
				RequestID: composables.UseRequestID(r.Context()),
				Request:   r,
				Writer:    w,
			}
			next.ServeHTTP(w, r.WithContext(composables.WithParams(r.Context(), params)))
		})
	}
}
