package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/modules/core/services"
	"github.com/paddockhq/paddock/pkg/application"
	"github.com/paddockhq/paddock/pkg/httpapi"
)

type HealthController struct {
	sessions *services.SessionService
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{
		sessions: app.Service(services.SessionService{}).(*services.SessionService),
	}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Get).Methods(http.MethodGet)
}

func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": c.sessions.Count(),
	})
}
