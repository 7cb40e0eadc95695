package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/series"
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

type SeriesController struct {
	app      application.Application
	series   *services.SeriesService
	drafts   *drafts.Store
	basePath string
}

func NewSeriesController(app application.Application, draftStore *drafts.Store) application.Controller {
	return &SeriesController{
		app:      app,
		series:   app.Service(services.SeriesService{}).(*services.SeriesService),
		drafts:   draftStore,
		basePath: "/motorsport/api",
	}
}

func (c *SeriesController) Key() string {
	return c.basePath + "/series"
}

func (c *SeriesController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuthorization())

	router.HandleFunc("/series", c.List).Methods(http.MethodGet)
	router.HandleFunc("/series:options", c.Options).Methods(http.MethodGet)
	router.HandleFunc("/series:draft", c.SaveDraft).Methods(http.MethodPost)
	router.HandleFunc("/series/new", c.NewForm).Methods(http.MethodGet)
	router.HandleFunc("/series", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/series/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/series/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/series/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *SeriesController) List(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	items, err := c.series.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]any, 0, len(items))
	for _, s := range items {
		out = append(out, mappers.SeriesToViewModel(s, u))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *SeriesController) GetByID(w http.ResponseWriter, r *http.Request) {
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
	s, err := c.series.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.SeriesToViewModel(s, u))
}

func (c *SeriesController) Options(w http.ResponseWriter, r *http.Request) {
	items, err := c.series.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	candidates := make([]picker.Value, 0, len(items))
	for _, s := range items {
		candidates = append(candidates, picker.Ref{ID: s.ID(), Name: s.Name()})
	}
	writeOptions(w, r, candidates, nil)
}

func (c *SeriesController) NewForm(w http.ResponseWriter, r *http.Request) {
	payload := draftPayload(w, r, c.drafts, "series")
	if payload == nil {
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, payload)
}

func (c *SeriesController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	saveDraft(w, r, c.drafts, "series")
}

func (c *SeriesController) Create(w http.ResponseWriter, r *http.Request) {
	var dto series.CreateDTO
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
	created, err := c.series.Create(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	finishDraft(r, c.drafts, "series", "seriesIDs", created.ID())
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.SeriesToViewModel(created, u))
}

func (c *SeriesController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	var dto series.UpdateDTO
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
	updated, err := c.series.Update(r.Context(), id, &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	dropDraft(r, c.drafts)
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.SeriesToViewModel(updated, u))
}

func (c *SeriesController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	if _, err := c.series.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
