package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/drafts"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/viewmodels"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/configuration"
	"github.com/paddockhq/paddock/pkg/httpapi"
	"github.com/paddockhq/paddock/pkg/picker"
	"github.com/paddockhq/paddock/pkg/shared"
)

// decodeEntityForm reads a JSON body, an urlencoded form or a multipart
// form carrying a `payload` JSON part plus an optional `file` image part.
func decodeEntityForm(w http.ResponseWriter, r *http.Request, dto any, file *upload.Payload) bool {
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		return decodeMultipartForm(w, r, dto, file)
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := shared.DecodeForm(r, dto); err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed form body", nil)
			return false
		}
		if existing := r.FormValue("fileURL"); existing != "" {
			*file = upload.ExistingURL(existing)
		}
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil && !errors.Is(err, io.EOF) {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed JSON body", nil)
		return false
	}
	return true
}

func decodeMultipartForm(w http.ResponseWriter, r *http.Request, dto any, file *upload.Payload) bool {
	conf := configuration.Use()
	r.Body = http.MaxBytesReader(w, r.Body, conf.MaxUploadSize)
	if err := r.ParseMultipartForm(conf.MaxUploadMemory); err != nil {
		_ = httpapi.WriteError(w, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "upload exceeds the size limit", nil)
		return false
	}
	if payload := r.FormValue("payload"); payload != "" {
		if err := json.Unmarshal([]byte(payload), dto); err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed payload part", nil)
			return false
		}
	}

	part, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		if existing := r.FormValue("fileURL"); existing != "" {
			*file = upload.ExistingURL(existing)
		}
		return true
	}
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "unreadable file part", nil)
		return false
	}
	defer func() {
		_ = part.Close()
	}()

	data, err := io.ReadAll(part)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "unreadable file part", nil)
		return false
	}
	*file = upload.NewFile(header.Filename, data)
	return true
}

// writeOptions renders picker candidates for an options endpoint: fuzzy
// matched against `q`, minus entries listed in `selected`.
func writeOptions(w http.ResponseWriter, r *http.Request, candidates []picker.Value, badges map[string]picker.Badge) {
	field := picker.New(picker.Config{
		Mode:   picker.ModeAppend,
		Badges: badges,
	}, candidates)
	for _, label := range r.URL.Query()["selected"] {
		field.Select(picker.Raw(label))
	}
	field.SetQuery(r.URL.Query().Get("q"))

	matched := field.Candidates()
	out := make([]viewmodels.Option, 0, len(matched))
	for _, v := range matched {
		opt := viewmodels.Option{Label: v.Label()}
		if ref, ok := v.(picker.Ref); ok {
			opt.ID = ref.ID.String()
		}
		if badge, ok := field.BadgeFor(v); ok {
			opt.Badge = &viewmodels.Badge{
				Name:        badge.Name,
				Description: badge.Description,
				Rarity:      badge.Rarity,
			}
		}
		out = append(out, opt)
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"items":   out,
		"showNew": field.ShowCreate(),
		"query":   field.Query(),
	})
}

// draftOwner scopes draft access to the requesting session so one user's
// draft ID is worthless to another.
func draftOwner(r *http.Request) string {
	s, err := composables.UseSession(r.Context())
	if err != nil {
		return ""
	}
	return s.ID()
}

// draftPayload resolves the optional `draft` query parameter to the stored
// envelope ({"form": ..., "returnTo": ..., "highlight": ...}). A nil return
// means the response is already written.
func draftPayload(w http.ResponseWriter, r *http.Request, store *drafts.Store, kind string) json.RawMessage {
	raw := r.URL.Query().Get("draft")
	if raw == "" {
		return json.RawMessage(`{"form":{}}`)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed draft id", nil)
		return nil
	}
	payload, err := store.Get(draftOwner(r), kind, id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusNotFound, "DRAFT_NOT_FOUND", "draft not found or expired", nil)
		return nil
	}
	return payload
}

func saveDraft(w http.ResponseWriter, r *http.Request, store *drafts.Store, kind string) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusRequestEntityTooLarge, "DRAFT_TOO_LARGE", "draft exceeds the size limit", nil)
		return
	}
	if !json.Valid(body) {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "draft body must be JSON", nil)
		return
	}
	id := store.Put(draftOwner(r), kind, body)
	_ = httpapi.WriteJSON(w, http.StatusCreated, map[string]string{"draftID": id.String()})
}

// dropDraft discards the draft named by the submission, if any.
func dropDraft(r *http.Request, store *drafts.Store) {
	if raw := r.URL.Query().Get("draft"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			store.Delete(draftOwner(r), id)
		}
	}
}

// finishDraft settles the draft a create submission referenced. A draft of
// the submission's own kind is consumed; a draft of another kind is a parent
// form waiting mid-flight, so the created ID is spliced into its member list
// instead.
func finishDraft(r *http.Request, store *drafts.Store, kind, memberField string, created uuid.UUID) {
	raw := r.URL.Query().Get("draft")
	if raw == "" {
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return
	}
	owner := draftOwner(r)
	if _, err := store.Get(owner, kind, id); err == nil {
		store.Delete(owner, id)
		return
	}
	if memberField != "" {
		_ = store.Prepend(owner, id, memberField, created.String())
	}
}
