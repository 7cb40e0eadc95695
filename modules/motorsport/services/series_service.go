package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/modules/motorsport/domain/access"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/series"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/assets"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/eventbus"
	"github.com/paddockhq/paddock/pkg/shared"
)

type SeriesService struct {
	repo      series.Repository
	uploads   Uploader
	publisher eventbus.EventBus
}

func NewSeriesService(repo series.Repository, uploads Uploader, publisher eventbus.EventBus) *SeriesService {
	return &SeriesService{
		repo:      repo,
		uploads:   uploads,
		publisher: publisher,
	}
}

func (s *SeriesService) GetAll(ctx context.Context) ([]series.Series, error) {
	return s.repo.GetAll(ctx)
}

func (s *SeriesService) GetByID(ctx context.Context, id uuid.UUID) (series.Series, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SeriesService) Create(ctx context.Context, dto *series.CreateDTO) (series.Series, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return series.Series{}, err
	}
	dto.Normalize()

	if err := s.checkNameFree(ctx, dto.SeriesName, uuid.Nil); err != nil {
		return series.Series{}, err
	}

	logoURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "series",
		EntityName: dto.SeriesName,
		Purpose:    "logo",
		Payload:    dto.Logo,
	})
	if err != nil {
		return series.Series{}, &UploadError{Purpose: "logo", Err: err}
	}

	entity := dto.ToEntity(uuid.Nil, u.ID(), logoURL, nil, false)
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return series.Series{}, err
	}
	s.publisher.Publish(&series.CreatedEvent{Series: created})
	return created, nil
}

func (s *SeriesService) Update(ctx context.Context, id uuid.UUID, dto *series.UpdateDTO) (series.Series, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return series.Series{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return series.Series{}, err
	}
	if !access.Resolve(original, u).CanEdit() {
		return series.Series{}, ErrPermissionDenied
	}
	if !dto.Changed(&original) {
		return series.Series{}, ErrNoChanges
	}
	if err := s.checkNameFree(ctx, dto.SeriesName, id); err != nil {
		return series.Series{}, err
	}

	logo := dto.Logo
	if logo.IsZero() && original.LogoURL() != "" {
		logo = upload.ExistingURL(original.LogoURL())
	}
	logoURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "series",
		EntityName: dto.SeriesName,
		Purpose:    "logo",
		Payload:    logo,
	})
	if err != nil {
		return series.Series{}, &UploadError{Purpose: "logo", Err: err}
	}

	entity := dto.ToEntity(id, original.CreatedBy(), logoURL, original.ChampionshipIDs(), original.Official())
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return series.Series{}, err
	}
	s.publisher.Publish(&series.UpdatedEvent{Series: updated})
	return updated, nil
}

func (s *SeriesService) Delete(ctx context.Context, id uuid.UUID) (series.Series, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return series.Series{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return series.Series{}, err
	}
	level := access.Resolve(original, u)
	if !level.CanDelete() {
		if level.CanEdit() && original.HasDependents() {
			return series.Series{}, &DependentsError{MessageID: "Motorsport.Errors.HasChampionships"}
		}
		return series.Series{}, ErrPermissionDenied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return series.Series{}, err
	}
	s.publisher.Publish(&series.DeletedEvent{Series: original})
	return original, nil
}

func (s *SeriesService) checkNameFree(ctx context.Context, name string, self uuid.UUID) error {
	siblings, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	refs := make([]shared.NamedRef, 0, len(siblings))
	for _, entry := range siblings {
		refs = append(refs, shared.NamedRef{ID: entry.ID(), Name: entry.Name()})
	}
	if shared.NameTaken(name, self, refs) {
		return &NameTakenError{Field: "seriesName", MessageID: "Series.Errors.NameTaken"}
	}
	return nil
}
