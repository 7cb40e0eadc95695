package remote

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/drivergroup"
	"github.com/paddockhq/paddock/pkg/gql"
)

const groupFields = `
id
groupName
emblemURL
driverIDs
championshipIDs
createdBy
official`

const (
	queryDriverGroups = `query DriverGroups { driverGroups {` + groupFields + ` } }`

	queryDriverGroup = `query DriverGroup($id: ID!) { driverGroup(id: $id) {` + groupFields + ` } }`

	mutationCreateDriverGroup = `mutation CreateDriverGroup($input: DriverGroupInput!) {
  createDriverGroup(input: $input) {` + groupFields + ` }
}`

	mutationUpdateDriverGroup = `mutation UpdateDriverGroup($id: ID!, $input: DriverGroupInput!) {
  updateDriverGroup(id: $id, input: $input) {` + groupFields + ` }
}`

	mutationDeleteDriverGroup = `mutation DeleteDriverGroup($id: ID!) { deleteDriverGroup(id: $id) }`
)

type DriverGroupRepository struct {
	client *gql.Client
}

func NewDriverGroupRepository(client *gql.Client) drivergroup.Repository {
	return &DriverGroupRepository{client: client}
}

func (r *DriverGroupRepository) GetAll(ctx context.Context) ([]drivergroup.DriverGroup, error) {
	var data struct {
		DriverGroups []groupRecord `json:"driverGroups"`
	}
	if err := r.client.Run(ctx, gql.NewRequest(queryDriverGroups), &data); err != nil {
		return nil, err
	}
	groups := make([]drivergroup.DriverGroup, 0, len(data.DriverGroups))
	for _, record := range data.DriverGroups {
		groups = append(groups, record.toDomain())
	}
	return groups, nil
}

func (r *DriverGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (drivergroup.DriverGroup, error) {
	var data struct {
		DriverGroup groupRecord `json:"driverGroup"`
	}
	req := gql.NewRequest(queryDriverGroup).Var("id", id.String())
	if err := r.client.Run(ctx, req, &data); err != nil {
		return drivergroup.DriverGroup{}, err
	}
	return data.DriverGroup.toDomain(), nil
}

func (r *DriverGroupRepository) Create(ctx context.Context, g drivergroup.DriverGroup) (drivergroup.DriverGroup, error) {
	var data struct {
		CreateDriverGroup groupRecord `json:"createDriverGroup"`
	}
	req := gql.NewRequest(mutationCreateDriverGroup).Var("input", groupInput(g))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return drivergroup.DriverGroup{}, err
	}
	return data.CreateDriverGroup.toDomain(), nil
}

func (r *DriverGroupRepository) Update(ctx context.Context, g drivergroup.DriverGroup) (drivergroup.DriverGroup, error) {
	var data struct {
		UpdateDriverGroup groupRecord `json:"updateDriverGroup"`
	}
	req := gql.NewRequest(mutationUpdateDriverGroup).
		Var("id", g.ID().String()).
		Var("input", groupInput(g))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return drivergroup.DriverGroup{}, err
	}
	return data.UpdateDriverGroup.toDomain(), nil
}

func (r *DriverGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	req := gql.NewRequest(mutationDeleteDriverGroup).Var("id", id.String())
	return r.client.Run(ctx, req, nil)
}
