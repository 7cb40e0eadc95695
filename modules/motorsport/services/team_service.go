package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/modules/motorsport/domain/access"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/team"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/assets"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/eventbus"
	"github.com/paddockhq/paddock/pkg/shared"
)

type TeamService struct {
	repo      team.Repository
	uploads   Uploader
	publisher eventbus.EventBus
}

func NewTeamService(repo team.Repository, uploads Uploader, publisher eventbus.EventBus) *TeamService {
	return &TeamService{
		repo:      repo,
		uploads:   uploads,
		publisher: publisher,
	}
}

func (s *TeamService) GetAll(ctx context.Context) ([]team.Team, error) {
	return s.repo.GetAll(ctx)
}

func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (team.Team, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TeamService) Create(ctx context.Context, dto *team.CreateDTO) (team.Team, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return team.Team{}, err
	}
	dto.Normalize()

	if err := s.checkNameFree(ctx, dto.TeamName, uuid.Nil); err != nil {
		return team.Team{}, err
	}

	logoURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "teams",
		EntityName: dto.TeamName,
		Purpose:    "logo",
		Payload:    dto.Logo,
	})
	if err != nil {
		return team.Team{}, &UploadError{Purpose: "logo", Err: err}
	}

	entity := dto.ToEntity(uuid.Nil, u.ID(), logoURL, nil, false)
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return team.Team{}, err
	}
	s.publisher.Publish(&team.CreatedEvent{Team: created})
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, id uuid.UUID, dto *team.UpdateDTO) (team.Team, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return team.Team{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, err
	}
	if !access.Resolve(original, u).CanEdit() {
		return team.Team{}, ErrPermissionDenied
	}
	if !dto.Changed(&original) {
		return team.Team{}, ErrNoChanges
	}
	if err := s.checkNameFree(ctx, dto.TeamName, id); err != nil {
		return team.Team{}, err
	}

	logo := dto.Logo
	if logo.IsZero() && original.LogoURL() != "" {
		logo = upload.ExistingURL(original.LogoURL())
	}
	logoURL, err := s.uploads.Upload(ctx, assets.UploadRequest{
		Dir:        "teams",
		EntityName: dto.TeamName,
		Purpose:    "logo",
		Payload:    logo,
	})
	if err != nil {
		return team.Team{}, &UploadError{Purpose: "logo", Err: err}
	}

	entity := dto.ToEntity(id, original.CreatedBy(), logoURL, original.ChampionshipIDs(), original.Official())
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return team.Team{}, err
	}
	s.publisher.Publish(&team.UpdatedEvent{Team: updated})
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) (team.Team, error) {
	u, err := composables.UseUser(ctx)
	if err != nil {
		return team.Team{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, err
	}
	level := access.Resolve(original, u)
	if !level.CanDelete() {
		if level.CanEdit() && original.HasDependents() {
			return team.Team{}, &DependentsError{MessageID: "Motorsport.Errors.HasChampionships"}
		}
		return team.Team{}, ErrPermissionDenied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return team.Team{}, err
	}
	s.publisher.Publish(&team.DeletedEvent{Team: original})
	return original, nil
}

func (s *TeamService) checkNameFree(ctx context.Context, name string, self uuid.UUID) error {
	siblings, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	refs := make([]shared.NamedRef, 0, len(siblings))
	for _, t := range siblings {
		refs = append(refs, shared.NamedRef{ID: t.ID(), Name: t.Name()})
	}
	if shared.NameTaken(name, self, refs) {
		return &NameTakenError{Field: "teamName", MessageID: "Team.Errors.NameTaken"}
	}
	return nil
}
