package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/team"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/drafts"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/mappers"
	"github.com/paddockhq/paddock/modules/motorsport/services"
	"github.com/paddockhq/paddock/pkg/application"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/httpapi"
	"github.com/paddockhq/paddock/pkg/middleware"
	"github.com/paddockhq/paddock/pkg/picker"
	"github.com/paddockhq/paddock/pkg/shared"
)

type TeamsController struct {
	app      application.Application
	teams    *services.TeamService
	drafts   *drafts.Store
	basePath string
}

func NewTeamsController(app application.Application, draftStore *drafts.Store) application.Controller {
	return &TeamsController{
		app:      app,
		teams:    app.Service(services.TeamService{}).(*services.TeamService),
		drafts:   draftStore,
		basePath: "/motorsport/api",
	}
}

func (c *TeamsController) Key() string {
	return c.basePath + "/teams"
}

func (c *TeamsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuthorization())

	router.HandleFunc("/teams", c.List).Methods(http.MethodGet)
	router.HandleFunc("/teams:options", c.Options).Methods(http.MethodGet)
	router.HandleFunc("/teams:draft", c.SaveDraft).Methods(http.MethodPost)
	router.HandleFunc("/teams/new", c.NewForm).Methods(http.MethodGet)
	router.HandleFunc("/teams", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/teams/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/teams/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/teams/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *TeamsController) List(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	items, err := c.teams.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]any, 0, len(items))
	for _, t := range items {
		out = append(out, mappers.TeamToViewModel(t, u))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *TeamsController) GetByID(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	t, err := c.teams.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.TeamToViewModel(t, u))
}

func (c *TeamsController) Options(w http.ResponseWriter, r *http.Request) {
	items, err := c.teams.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	candidates := make([]picker.Value, 0, len(items))
	for _, t := range items {
		candidates = append(candidates, picker.Ref{ID: t.ID(), Name: t.Name()})
	}
	writeOptions(w, r, candidates, nil)
}

func (c *TeamsController) NewForm(w http.ResponseWriter, r *http.Request) {
	payload := draftPayload(w, r, c.drafts, "team")
	if payload == nil {
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, payload)
}

func (c *TeamsController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	saveDraft(w, r, c.drafts, "team")
}

func (c *TeamsController) Create(w http.ResponseWriter, r *http.Request) {
	var dto team.CreateDTO
	if !decodeEntityForm(w, r, &dto, &dto.Logo) {
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteValidationErrors(w, "VALIDATION_ERROR", errs)
		return
	}
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	created, err := c.teams.Create(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	finishDraft(r, c.drafts, "team", "teamIDs", created.ID())
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.TeamToViewModel(created, u))
}

func (c *TeamsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	var dto team.UpdateDTO
	if !decodeEntityForm(w, r, &dto, &dto.Logo) {
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteValidationErrors(w, "VALIDATION_ERROR", errs)
		return
	}
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	updated, err := c.teams.Update(r.Context(), id, &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	dropDraft(r, c.drafts)
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.TeamToViewModel(updated, u))
}

func (c *TeamsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	if _, err := c.teams.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
