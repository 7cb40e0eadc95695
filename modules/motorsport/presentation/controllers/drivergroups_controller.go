package controllers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/drivergroup"
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

type DriverGroupsController struct {
	app      application.Application
	groups   *services.DriverGroupService
	drafts   *drafts.Store
	basePath string
}

func NewDriverGroupsController(app application.Application, draftStore *drafts.Store) application.Controller {
	return &DriverGroupsController{
		app:      app,
		groups:   app.Service(services.DriverGroupService{}).(*services.DriverGroupService),
		drafts:   draftStore,
		basePath: "/motorsport/api",
	}
}

func (c *DriverGroupsController) Key() string {
	return c.basePath + "/driver-groups"
}

func (c *DriverGroupsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuthorization())

	router.HandleFunc("/driver-groups", c.List).Methods(http.MethodGet)
	router.HandleFunc("/driver-groups:options", c.Options).Methods(http.MethodGet)
	router.HandleFunc("/driver-groups:draft", c.SaveDraft).Methods(http.MethodPost)
	router.HandleFunc("/driver-groups/new", c.NewForm).Methods(http.MethodGet)
	router.HandleFunc("/driver-groups", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/driver-groups/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/driver-groups/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/driver-groups/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *DriverGroupsController) List(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	items, err := c.groups.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]any, 0, len(items))
	for _, g := range items {
		out = append(out, mappers.DriverGroupToViewModel(g, u))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *DriverGroupsController) GetByID(w http.ResponseWriter, r *http.Request) {
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
	g, err := c.groups.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.DriverGroupToViewModel(g, u))
}

// Options decorates each group with a badge so the picker can render the
// roster size and provenance next to the name.
func (c *DriverGroupsController) Options(w http.ResponseWriter, r *http.Request) {
	items, err := c.groups.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	candidates := make([]picker.Value, 0, len(items))
	badges := make(map[string]picker.Badge, len(items))
	for _, g := range items {
		candidates = append(candidates, picker.Ref{ID: g.ID(), Name: g.Name()})
		rarity := "community"
		if g.Official() {
			rarity = "official"
		}
		badges[g.Name()] = picker.Badge{
			Name:        g.Name(),
			Description: fmt.Sprintf("%d drivers", len(g.DriverIDs())),
			Rarity:      rarity,
		}
	}
	writeOptions(w, r, candidates, badges)
}

func (c *DriverGroupsController) NewForm(w http.ResponseWriter, r *http.Request) {
	payload := draftPayload(w, r, c.drafts, "driver-group")
	if payload == nil {
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, payload)
}

func (c *DriverGroupsController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	saveDraft(w, r, c.drafts, "driver-group")
}

func (c *DriverGroupsController) Create(w http.ResponseWriter, r *http.Request) {
	var dto drivergroup.CreateDTO
	if !decodeEntityForm(w, r, &dto, &dto.Emblem) {
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
	created, err := c.groups.Create(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	finishDraft(r, c.drafts, "driver-group", "", created.ID())
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.DriverGroupToViewModel(created, u))
}

func (c *DriverGroupsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	var dto drivergroup.UpdateDTO
	if !decodeEntityForm(w, r, &dto, &dto.Emblem) {
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
	updated, err := c.groups.Update(r.Context(), id, &dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	dropDraft(r, c.drafts)
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.DriverGroupToViewModel(updated, u))
}

func (c *DriverGroupsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseUUID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed entity id", nil)
		return
	}
	if _, err := c.groups.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
