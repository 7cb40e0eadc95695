package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/modules/motorsport/domain/access"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/assets"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/eventbus"
	"github.com/paddockhq/paddock/pkg/shared"
)

type DriverService struct {
	repo      driver.Repository
	uploads   Uploader
	publisher eventbus.EventBus
}

func NewDriverService(repo driver.Repository, uploads Uploader, publisher eventbus.EventBus) *DriverService {
	return &DriverService{
		repo:      repo,
		uploads:   uploads,
		publisher: publisher,
	}
}

func (s *DriverService) GetAll(ctx context.Context) ([]driver.Driver, error) {
	return s.repo.GetAll(ctx)
}

func (s *DriverService) GetByID(ctx context.Context, id uuid.UUID) (driver.Driver, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DriverService) Create(ctx context.Context, dto *driver.CreateDTO) (driver.Driver, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return driver.Driver{}, err
	}
	dto.Normalize()

	if err := s.checkNameFree(ctx, dto.DriverName, uuid.Nil); err != nil {
		return driver.Driver{}, err
	}

	portraitURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "drivers",
		EntityName: dto.DriverName,
		Purpose:    "portrait",
		Payload:    dto.Portrait,
	})
	if err != nil {
		return driver.Driver{}, &UploadError{Purpose: "portrait", Err: err}
	}

	entity := dto.ToEntity(uuid.Nil, u.ID(), portraitURL, false)
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return driver.Driver{}, err
	}
	s.publisher.Publish(&driver.CreatedEvent{Driver: created})
	return created, nil
}

func (s *DriverService) Update(ctx context.Context, id uuid.UUID, dto *driver.UpdateDTO) (driver.Driver, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return driver.Driver{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return driver.Driver{}, err
	}
	if !access.Resolve(original, u).CanEdit() {
		return driver.Driver{}, ErrPermissionDenied
	}
	if !dto.Changed(&original) {
		return driver.Driver{}, ErrNoChanges
	}
	if err := s.checkNameFree(ctx, dto.DriverName, id); err != nil {
		return driver.Driver{}, err
	}

	portrait := dto.Portrait
	if portrait.IsZero() && original.PortraitURL() != "" {
		// Untouched picture keeps the stored URL.
		portrait = upload.ExistingURL(original.PortraitURL())
	}
	portraitURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "drivers",
		EntityName: dto.DriverName,
		Purpose:    "portrait",
		Payload:    portrait,
	})
	if err != nil {
		return driver.Driver{}, &UploadError{Purpose: "portrait", Err: err}
	}

	entity := dto.ToEntity(id, original.CreatedBy(), portraitURL, original.Official())
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return driver.Driver{}, err
	}
	s.publisher.Publish(&driver.UpdatedEvent{Driver: updated})
	return updated, nil
}

// Delete re-derives the access level before touching the backend: the
// guard never trusts what a page claimed the user could do.
func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) (driver.Driver, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return driver.Driver{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return driver.Driver{}, err
	}
	level := access.Resolve(original, u)
	if !level.CanDelete() {
		if level.CanEdit() && original.HasDependents() {
			return driver.Driver{}, &DependentsError{MessageID: "Driver.Errors.InTeams"}
		}
		return driver.Driver{}, ErrPermissionDenied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return driver.Driver{}, err
	}
	s.publisher.Publish(&driver.DeletedEvent{Driver: original})
	return original, nil
}

func (s *DriverService) checkNameFree(ctx context.Context, name string, self uuid.UUID) error {
	siblings, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	refs := make([]shared.NamedRef, 0, len(siblings))
	for _, d := range siblings {
		refs = append(refs, shared.NamedRef{ID: d.ID(), Name: d.Name()})
	}
	if shared.NameTaken(name, self, refs) {
		return &NameTakenError{Field: "driverName", MessageID: "Driver.Errors.NameTaken"}
	}
	return nil
}
