package remote

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
	"github.com/paddockhq/paddock/pkg/gql"
)

const driverFields = `
id
driverName
driverID
nationality
heightCM
weightKG
birthday
moustache
mullet
portraitURL
teamIDs
seriesIDs
createdBy
official`

const (
	queryDrivers = `query Drivers { drivers {` + driverFields + ` } }`

	queryDriver = `query Driver($id: ID!) { driver(id: $id) {` + driverFields + ` } }`

	mutationCreateDriver = `mutation CreateDriver($input: DriverInput!) {
  createDriver(input: $input) {` + driverFields + ` }
}`

	mutationUpdateDriver = `mutation UpdateDriver($id: ID!, $input: DriverInput!) {
  updateDriver(id: $id, input: $input) {` + driverFields + ` }
}`

	mutationDeleteDriver = `mutation DeleteDriver($id: ID!) { deleteDriver(id: $id) }`
)

type DriverRepository struct {
	client *gql.Client
}

func NewDriverRepository(client *gql.Client) driver.Repository {
	return &DriverRepository{client: client}
}

func (r *DriverRepository) GetAll(ctx context.Context) ([]driver.Driver, error) {
	var data struct {
		Drivers []driverRecord `json:"drivers"`
	}
	if err := r.client.Run(ctx, gql.NewRequest(queryDrivers), &data); err != nil {
		return nil, err
	}
	drivers := make([]driver.Driver, 0, len(data.Drivers))
	for _, record := range data.Drivers {
		drivers = append(drivers, record.toDomain())
	}
	return drivers, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id uuid.UUID) (driver.Driver, error) {
	var data struct {
		Driver driverRecord `json:"driver"`
	}
	req := gql.NewRequest(queryDriver).Var("id", id.String())
	if err := r.client.Run(ctx, req, &data); err != nil {
		return driver.Driver{}, err
	}
	return data.Driver.toDomain(), nil
}

func (r *DriverRepository) Create(ctx context.Context, d driver.Driver) (driver.Driver, error) {
	var data struct {
		CreateDriver driverRecord `json:"createDriver"`
	}
	req := gql.NewRequest(mutationCreateDriver).Var("input", driverInput(d))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return driver.Driver{}, err
	}
	return data.CreateDriver.toDomain(), nil
}

func (r *DriverRepository) Update(ctx context.Context, d driver.Driver) (driver.Driver, error) {
	var data struct {
		UpdateDriver driverRecord `json:"updateDriver"`
	}
	req := gql.NewRequest(mutationUpdateDriver).
		Var("id", d.ID().String()).
		Var("input", driverInput(d))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return driver.Driver{}, err
	}
	return data.UpdateDriver.toDomain(), nil
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	req := gql.NewRequest(mutationDeleteDriver).Var("id", id.String())
	return r.client.Run(ctx, req, nil)
}
