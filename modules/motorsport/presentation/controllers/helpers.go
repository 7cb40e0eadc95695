package controllers

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/paddockhq/paddock/modules/motorsport/services"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/gql"
	"github.com/paddockhq/paddock/pkg/httpapi"
	"github.com/paddockhq/paddock/pkg/intl"
)

// writeServiceError maps a service failure onto the API error envelope,
// localizing the message and pinning it to a form field where possible.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var nameErr *services.NameTakenError
	if errors.As(err, &nameErr) {
		_ = httpapi.WriteFieldError(w, http.StatusUnprocessableEntity, "NAME_TAKEN",
			intl.T(ctx, nameErr.MessageID), nameErr.Field)
		return
	}

	var depErr *services.DependentsError
	if errors.As(err, &depErr) {
		_ = httpapi.WriteError(w, http.StatusConflict, "HAS_DEPENDENTS",
			intl.T(ctx, depErr.MessageID), nil)
		return
	}

	var uploadErr *services.UploadError
	if errors.As(err, &uploadErr) {
		_ = httpapi.WriteError(w, http.StatusBadGateway, "UPLOAD_FAILED",
			intl.T(ctx, "Motorsport.Errors.UploadFailed"), nil)
		return
	}

	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		_ = httpapi.WriteError(w, http.StatusForbidden, "PERMISSION_DENIED",
			intl.T(ctx, "Motorsport.Errors.PermissionDenied"), nil)
		return
	case errors.Is(err, services.ErrNoChanges):
		_ = httpapi.WriteError(w, http.StatusConflict, "NO_CHANGES",
			intl.T(ctx, "Motorsport.Errors.NoChanges"), nil)
		return
	case errors.Is(err, composables.ErrNoUser):
		_ = httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
		return
	}

	// Backend errors tagged with a field land on that form input.
	if remoteErrs, ok := gql.AsErrors(err); ok {
		if first := remoteErrs.First(); first != nil && first.Field != "" {
			_ = httpapi.WriteFieldError(w, http.StatusUnprocessableEntity, "REMOTE_ERROR",
				first.Message, first.Field)
			return
		}
	}

	if logger, logErr := composables.UseLogger(ctx); logErr == nil {
		logger.WithError(err).Error("motorsport request failed")
	}
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal error", nil)
}
