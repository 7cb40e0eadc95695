package services

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/assets"
)

var (
	// ErrPermissionDenied means the resolved access level forbids the
	// attempted operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNoChanges means an update submission matches the stored entity.
	ErrNoChanges = errors.New("no changes to save")
)

// NameTakenError reports a sibling name collision. MessageID points at the
// entity-specific locale text; Field names the offending form input.
type NameTakenError struct {
	Field     string
	MessageID string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("name already in use (field %s)", e.Field)
}

// DependentsError reports a delete refused because of linked records.
type DependentsError struct {
	MessageID string
}

func (e *DependentsError) Error() string {
	return "entity has dependent records"
}

// UploadError wraps an asset service failure; the whole submission aborts
// so no partial entity reaches the backend.
type UploadError struct {
	Purpose string
	Err     error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %s: %v", e.Purpose, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Uploader is the slice of the asset client the services need.
type Uploader interface {
	Upload(ctx context.Context, req assets.UploadRequest) (string, error)
}
