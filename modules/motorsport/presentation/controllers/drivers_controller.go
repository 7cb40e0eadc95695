package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
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

type DriversController struct {
	app      application.Application
	drivers  *services.DriverService
	drafts   *drafts.Store
	basePath string
}

func NewDriversController(app application.Application, draftStore *drafts.Store) application.Controller {
	return &DriversController{
		app:      app,
		drivers:  app.Service(services.DriverService{}).(*services.DriverService),
		drafts:   draftStore,
		basePath: "/motorsport/api",
	}
}

func (c *DriversController) Key() string {
	return c.basePath + "/drivers"
}

func (c *DriversController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuthorization())

	router.HandleFunc("/drivers", c.List).Methods(http.MethodGet)
	router.HandleFunc("/drivers:options", c.Options).Methods(http.MethodGet)
	router.HandleFunc("/drivers:draft", c.SaveDraft).Methods(http.MethodPost)
	router.HandleFunc("/drivers/new", c.NewForm).Methods(http.MethodGet)
	router.HandleFunc("/drivers", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/drivers/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/drivers/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/drivers/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *DriversController) List(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	items, err := c.drivers.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]any, 0, len(items))
	for _, d := range items {
		out = append(out, mappers.DriverToViewModel(d, u))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *DriversController) GetByID(w http.ResponseWriter, r *http.Request) {
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
	d, err := c.drivers.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.DriverToViewModel(d, u))
}

// Options feeds the team/series membership pickers on other entity pages:
// ranked fuzzy matches against the query, minus already-picked entries.
func (c *DriversController) Options(w http.ResponseWriter, r *http.Request) {
	items, err := c.drivers.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	candidates := make([]picker.Value, 0, len(items))
	for _, d := range items {
		candidates = append(candidates, picker.Ref{ID: d.ID(), Name: d.Name()})
	}
	writeOptions(w, r, candidates, nil)
}

// NewForm seeds the create page, optionally from a stored draft.
func (c *DriversController) NewForm(w http.ResponseWriter, r *http.Request) {
	payload := draftPayload(w, r, c.drafts, "driver")
	if payload == nil {
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, payload)
}

func (c *DriversController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	saveDraft(w, r, c.drafts, "driver")
}

func (c *DriversController) Create(w http.ResponseWriter, r *http.Request) {
	var dto driver.CreateDTO
	if !decodeEntityForm(w, r, &dto, &dto.Portrait) {
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
	created, err := c.drivers.Create(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	finishDraft(r, c.drafts, "driver", "driverIDs", created.ID())
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.DriverToViewModel(created, u))
}

func (c *DriversController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	var dto driver.UpdateDTO
	if !decodeEntityForm(w, r, &dto, &dto.Portrait) {
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
	updated, err := c.drivers.Update(r.Context(), id, &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	dropDraft(r, c.drafts)
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.DriverToViewModel(updated, u))
}

func (c *DriversController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	if _, err := c.drivers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
