package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/paddockhq/paddock/pkg/intl"
)

// Application exposes the app config the localizer middleware needs.
type Application interface {
	Bundle() *i18n.Bundle
}

func supportedTags() []language.Tag {
	langs := intl.GetSupportedLanguages(nil)
	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = lang.Tag
	}
	return tags
}

func useLocale(r *http.Request, defaultLocale language.Tag, supported []language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{defaultLocale}
	}
	matcher := language.NewMatcher(supported)
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// ProvideLocalizer negotiates the request locale and attaches a localizer.
func ProvideLocalizer(app Application) mux.MiddlewareFunc {
	bundle := app.Bundle()
	supported := supportedTags()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := useLocale(r, language.English, supported)
			ctx := intl.WithLocalizer(r.Context(), i18n.NewLocalizer(bundle, locale.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
