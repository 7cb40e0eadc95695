package remote

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/team"
	"github.com/paddockhq/paddock/pkg/gql"
)

const teamFields = `
id
teamName
inceptionDate
nationality
logoURL
driverIDs
championshipIDs
createdBy
official`

const (
	queryTeams = `query Teams { teams {` + teamFields + ` } }`

	queryTeam = `query Team($id: ID!) { team(id: $id) {` + teamFields + ` } }`

	mutationCreateTeam = `mutation CreateTeam($input: TeamInput!) {
  createTeam(input: $input) {` + teamFields + ` }
}`

	mutationUpdateTeam = `mutation UpdateTeam($id: ID!, $input: TeamInput!) {
  updateTeam(id: $id, input: $input) {` + teamFields + ` }
}`

	mutationDeleteTeam = `mutation DeleteTeam($id: ID!) { deleteTeam(id: $id) }`
)

type TeamRepository struct {
	client *gql.Client
}

func NewTeamRepository(client *gql.Client) team.Repository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]team.Team, error) {
	var data struct {
		Teams []teamRecord `json:"teams"`
	}
	if err := r.client.Run(ctx, gql.NewRequest(queryTeams), &data); err != nil {
		return nil, err
	}
	teams := make([]team.Team, 0, len(data.Teams))
	for _, record := range data.Teams {
		teams = append(teams, record.toDomain())
	}
	return teams, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (team.Team, error) {
	var data struct {
		Team teamRecord `json:"team"`
	}
	req := gql.NewRequest(queryTeam).Var("id", id.String())
	if err := r.client.Run(ctx, req, &data); err != nil {
		return team.Team{}, err
	}
	return data.Team.toDomain(), nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	var data struct {
		CreateTeam teamRecord `json:"createTeam"`
	}
	req := gql.NewRequest(mutationCreateTeam).Var("input", teamInput(t))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return team.Team{}, err
	}
	return data.CreateTeam.toDomain(), nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) (team.Team, error) {
	var data struct {
		UpdateTeam teamRecord `json:"updateTeam"`
	}
	req := gql.NewRequest(mutationUpdateTeam).
		Var("id", t.ID().String()).
		Var("input", teamInput(t))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return team.Team{}, err
	}
	return data.UpdateTeam.toDomain(), nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	req := gql.NewRequest(mutationDeleteTeam).Var("id", id.String())
	return r.client.Run(ctx, req, nil)
}
