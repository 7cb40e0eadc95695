package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/modules/motorsport/domain/access"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/drivergroup"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/assets"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/eventbus"
	"github.com/paddockhq/paddock/pkg/shared"
)

type DriverGroupService struct {
	repo      drivergroup.Repository
	uploads   Uploader
	publisher eventbus.EventBus
}

func NewDriverGroupService(repo drivergroup.Repository, uploads Uploader, publisher eventbus.EventBus) *DriverGroupService {
	return &DriverGroupService{
		repo:      repo,
		uploads:   uploads,
		publisher: publisher,
	}
}

func (s *DriverGroupService) GetAll(ctx context.Context) ([]drivergroup.DriverGroup, error) {
	return s.repo.GetAll(ctx)
}

func (s *DriverGroupService) GetByID(ctx context.Context, id uuid.UUID) (drivergroup.DriverGroup, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DriverGroupService) Create(ctx context.Context, dto *drivergroup.CreateDTO) (drivergroup.DriverGroup, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return drivergroup.DriverGroup{}, err
	}
	dto.Normalize()

	if err := s.checkNameFree(ctx, dto.GroupName, uuid.Nil); err != nil {
		return drivergroup.DriverGroup{}, err
	}

	emblemURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "driver-groups",
		EntityName: dto.GroupName,
		Purpose:    "emblem",
		Payload:    dto.Emblem,
	})
	if err != nil {
		return drivergroup.DriverGroup{}, &UploadError{Purpose: "emblem", Err: err}
	}

	entity := dto.ToEntity(uuid.Nil, u.ID(), emblemURL, nil, false)
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return drivergroup.DriverGroup{}, err
	}
	s.publisher.Publish(&drivergroup.CreatedEvent{Group: created})
	return created, nil
}

func (s *DriverGroupService) Update(ctx context.Context, id uuid.UUID, dto *drivergroup.UpdateDTO) (drivergroup.DriverGroup, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return drivergroup.DriverGroup{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return drivergroup.DriverGroup{}, err
	}
	if !access.Resolve(original, u).CanEdit() {
		return drivergroup.DriverGroup{}, ErrPermissionDenied
	}
	if !dto.Changed(&original) {
		return drivergroup.DriverGroup{}, ErrNoChanges
	}
	if err := s.checkNameFree(ctx, dto.GroupName, id); err != nil {
		return drivergroup.DriverGroup{}, err
	}

	emblem := dto.Emblem
	if emblem.IsZero() && original.EmblemURL() != "" {
		emblem = upload.ExistingURL(original.EmblemURL())
	}
	emblemURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "driver-groups",
		EntityName: dto.GroupName,
		Purpose:    "emblem",
		Payload:    emblem,
	})
	if err != nil {
		return drivergroup.DriverGroup{}, &UploadError{Purpose: "emblem", Err: err}
	}

	entity := dto.ToEntity(id, original.CreatedBy(), emblemURL, original.ChampionshipIDs(), original.Official())
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return drivergroup.DriverGroup{}, err
	}
	s.publisher.Publish(&drivergroup.UpdatedEvent{Group: updated})
	return updated, nil
}

func (s *DriverGroupService) Delete(ctx context.Context, id uuid.UUID) (drivergroup.DriverGroup, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return drivergroup.DriverGroup{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return drivergroup.DriverGroup{}, err
	}
	level := access.Resolve(original, u)
	if !level.CanDelete() {
		if level.CanEdit() && original.HasDependents() {
			return drivergroup.DriverGroup{}, &DependentsError{MessageID: "Motorsport.Errors.HasChampionships"}
		}
		return drivergroup.DriverGroup{}, ErrPermissionDenied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return drivergroup.DriverGroup{}, err
	}
	s.publisher.Publish(&drivergroup.DeletedEvent{Group: original})
	return original, nil
}

func (s *DriverGroupService) checkNameFree(ctx context.Context, name string, self uuid.UUID) error {
	siblings, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	refs := make([]shared.NamedRef, 0, len(siblings))
	for _, g := range siblings {
		refs = append(refs, shared.NamedRef{ID: g.ID(), Name: g.Name()})
	}
	if shared.NameTaken(name, self, refs) {
		return &NameTakenError{Field: "groupName", MessageID: "DriverGroup.Errors.NameTaken"}
	}
	return nil
}
