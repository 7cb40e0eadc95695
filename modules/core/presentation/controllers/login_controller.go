package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/paddockhq/paddock/modules/core/infrastructure/authapi"
	"github.com/paddockhq/paddock/modules/core/services"
	"github.com/paddockhq/paddock/pkg/application"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/configuration"
	"github.com/paddockhq/paddock/pkg/constants"
	"github.com/paddockhq/paddock/pkg/httpapi"
	"github.com/paddockhq/paddock/pkg/intl"
	"github.com/paddockhq/paddock/pkg/serrors"
)

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d *LoginDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	validationErrors := make(serrors.ValidationErrors)
	for field, err := range serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), func(field string) string {
		return fmt.Sprintf("Login.Fields.%s", field)
	}) {
		validationErrors[field] = err
	}
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

type LoginController struct {
	app      application.Application
	sessions *services.SessionService
}

func NewLoginController(app application.Application) application.Controller {
	return &LoginController{
		app:      app,
		sessions: app.Service(services.SessionService{}).(*services.SessionService),
	}
}

func (c *LoginController) Key() string {
	return "/login"
}

func (c *LoginController) Register(r *mux.Router) {
	r.HandleFunc("/login", c.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", c.Logout).Methods(http.MethodPost)
}

func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed JSON body", nil)
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteValidationErrors(w, "VALIDATION_ERROR", errs)
		return
	}

	sess, err := c.sessions.Login(r.Context(), dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, authapi.ErrInvalidCredentials) {
			_ = httpapi.WriteError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS",
				intl.T(r.Context(), "Session.Errors.InvalidCredentials"), nil)
			return
		}
		logger, logErr := composables.UseLogger(r.Context())
		if logErr == nil {
			logger.WithError(err).Error("login against auth backend failed")
		}
		_ = httpapi.WriteError(w, http.StatusBadGateway, "AUTH_BACKEND_UNAVAILABLE", "authentication backend unavailable", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     conf.SidCookieKey,
		Value:    sess.ID(),
		Expires:  sess.ExpiresAt(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.Scheme() == "https",
		Domain:   conf.Domain,
		Path:     "/",
	})
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":            sess.User().ID(),
			"name":          sess.User().Name(),
			"email":         sess.User().Email(),
			"isAdmin":       sess.User().IsAdmin(),
			"isAdjudicator": sess.User().IsAdjudicator(),
		},
		"expiresAt": sess.ExpiresAt().Format(time.RFC3339),
	})
}

func (c *LoginController) Logout(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	if cookie, err := r.Cookie(conf.SidCookieKey); err == nil {
		c.sessions.Logout(r.Context(), cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     conf.SidCookieKey,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
	w.WriteHeader(http.StatusNoContent)
}
