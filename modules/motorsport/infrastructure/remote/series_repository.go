package remote

import (
	"context"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/series"
	"github.com/paddockhq/paddock/pkg/gql"
)

const seriesFields = `
id
seriesName
logoURL
driverIDs
championshipIDs
createdBy
official`

const (
	querySeriesList = `query SeriesList { seriesList {` + seriesFields + ` } }`

	querySeries = `query Series($id: ID!) { series(id: $id) {` + seriesFields + ` } }`

	mutationCreateSeries = `mutation CreateSeries($input: SeriesInput!) {
  createSeries(input: $input) {` + seriesFields + ` }
}`

	mutationUpdateSeries = `mutation UpdateSeries($id: ID!, $input: SeriesInput!) {
  updateSeries(id: $id, input: $input) {` + seriesFields + ` }
}`

	mutationDeleteSeries = `mutation DeleteSeries($id: ID!) { deleteSeries(id: $id) }`
)

type SeriesRepository struct {
	client *gql.Client
}

func NewSeriesRepository(client *gql.Client) series.Repository {
	return &SeriesRepository{client: client}
}

func (r *SeriesRepository) GetAll(ctx context.Context) ([]series.Series, error) {
	var data struct {
		SeriesList []seriesRecord `json:"seriesList"`
	}
	if err := r.client.Run(ctx, gql.NewRequest(querySeriesList), &data); err != nil {
		return nil, err
	}
	list := make([]series.Series, 0, len(data.SeriesList))
	for _, record := range data.SeriesList {
		list = append(list, record.toDomain())
	}
	return list, nil
}

func (r *SeriesRepository) GetByID(ctx context.Context, id uuid.UUID) (series.Series, error) {
	var data struct {
		Series seriesRecord `json:"series"`
	}
	req := gql.NewRequest(querySeries).Var("id", id.String())
	if err := r.client.Run(ctx, req, &data); err != nil {
		return series.Series{}, err
	}
	return data.Series.toDomain(), nil
}

func (r *SeriesRepository) Create(ctx context.Context, s series.Series) (series.Series, error) {
	var data struct {
		CreateSeries seriesRecord `json:"createSeries"`
	}
	req := gql.NewRequest(mutationCreateSeries).Var("input", seriesInput(s))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return series.Series{}, err
	}
	return data.CreateSeries.toDomain(), nil
}

func (r *SeriesRepository) Update(ctx context.Context, s series.Series) (series.Series, error) {
	var data struct {
		UpdateSeries seriesRecord `json:"updateSeries"`
	}
	req := gql.NewRequest(mutationUpdateSeries).
		Var("id", s.ID().String()).
		Var("input", seriesInput(s))
	if err := r.client.Run(ctx, req, &data); err != nil {
		return series.Series{}, err
	}
	return data.UpdateSeries.toDomain(), nil
}

func (r *SeriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	req := gql.NewRequest(mutationDeleteSeries).Var("id", id.String())
	return r.client.Run(ctx, req, nil)
}
