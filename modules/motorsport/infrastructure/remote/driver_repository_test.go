package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/remote"
	"github.com/paddockhq/paddock/pkg/gql"
)

type staticTokens struct{}

func (staticTokens) CurrentToken() string { return "machine-token" }

func (staticTokens) RefreshToken(_ context.Context) (string, error) { return "machine-token", nil }

type capturedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func TestDriverRepository_GetAll(t *testing.T) {
	id := uuid.New()
	teamID := uuid.New()
	creator := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer machine-token", r.Header.Get("Authorization"))

		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "drivers")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"drivers": []map[string]any{{
					"id":          id.String(),
					"driverName":  "Tripp Hazard",
					"driverID":    "TRP",
					"nationality": "GBR",
					"heightCM":    183,
					"weightKG":    74,
					"birthday":    "1994-05-12T00:00:00Z",
					"moustache":   true,
					"mullet":      false,
					"portraitURL": "https://cdn.example.com/tripp.png",
					"teamIDs":     []string{teamID.String()},
					"seriesIDs":   []string{},
					"createdBy":   creator.String(),
					"official":    true,
				}},
			},
		})
	}))
	defer server.Close()

	repo := remote.NewDriverRepository(gql.NewClient(server.URL, gql.WithTokenSource(staticTokens{})))

	drivers, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 1)

	d := drivers[0]
	assert.Equal(t, id, d.ID())
	assert.Equal(t, "Tripp Hazard", d.Name())
	assert.Equal(t, "TRP", d.Code())
	assert.Equal(t, 1994, d.Birthday().Year())
	assert.Equal(t, []uuid.UUID{teamID}, d.TeamIDs())
	assert.Equal(t, creator, d.CreatedBy())
	assert.True(t, d.Official())
}

func TestDriverRepository_CreateSendsInput(t *testing.T) {
	id := uuid.New()
	var got capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"createDriver": map[string]any{
					"id":         id.String(),
					"driverName": "Tripp Hazard",
					"driverID":   "TRP",
				},
			},
		})
	}))
	defer server.Close()

	repo := remote.NewDriverRepository(gql.NewClient(server.URL, gql.WithTokenSource(staticTokens{})))

	created, err := repo.Create(context.Background(), driver.New(driver.Params{
		Name:        "Tripp Hazard",
		Code:        "TRP",
		Nationality: "GBR",
		Birthday:    time.Date(1994, 5, 12, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, err)
	assert.Equal(t, id, created.ID())

	input, ok := got.Variables["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tripp Hazard", input["driverName"])
	assert.Equal(t, "TRP", input["driverID"])
	assert.Equal(t, "1994-05-12T00:00:00Z", input["birthday"])
}

func TestDriverRepository_FieldErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{
				"message": "driver name already exists",
				"extensions": map[string]any{
					"type":  "DUPLICATE_NAME",
					"field": "driverName",
				},
			}},
		})
	}))
	defer server.Close()

	repo := remote.NewDriverRepository(gql.NewClient(server.URL, gql.WithTokenSource(staticTokens{})))

	_, err := repo.Create(context.Background(), driver.New(driver.Params{Name: "Tripp Hazard"}))
	require.Error(t, err)

	remoteErrs, ok := gql.AsErrors(err)
	require.True(t, ok)
	require.NotNil(t, remoteErrs.First())
	assert.Equal(t, "driverName", remoteErrs.First().Field)
	assert.Equal(t, "DUPLICATE_NAME", remoteErrs.First().Type)
}
