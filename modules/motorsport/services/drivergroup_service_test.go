package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/drivergroup"
	"github.com/paddockhq/paddock/modules/motorsport/services"
	"github.com/paddockhq/paddock/pkg/eventbus"
	"github.com/paddockhq/paddock/pkg/logging"
)

type groupRepoStub struct {
	groups map[uuid.UUID]drivergroup.DriverGroup

	created []drivergroup.DriverGroup
	updated []drivergroup.DriverGroup
	deleted []uuid.UUID
}

func newGroupRepoStub(existing ...drivergroup.DriverGroup) *groupRepoStub {
	repo := &groupRepoStub{groups: make(map[uuid.UUID]drivergroup.DriverGroup)}
	for _, g := range existing {
		repo.groups[g.ID()] = g
	}
	return repo
}

func (r *groupRepoStub) GetAll(ctx context.Context) ([]drivergroup.DriverGroup, error) {
	out := make([]drivergroup.DriverGroup, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *groupRepoStub) GetByID(ctx context.Context, id uuid.UUID) (drivergroup.DriverGroup, error) {
	g, ok := r.groups[id]
	if !ok {
		return drivergroup.DriverGroup{}, errors.New("driver group not found")
	}
	return g, nil
}

func (r *groupRepoStub) Create(ctx context.Context, g drivergroup.DriverGroup) (drivergroup.DriverGroup, error) {
	r.created = append(r.created, g)
	return g, nil
}

func (r *groupRepoStub) Update(ctx context.Context, g drivergroup.DriverGroup) (drivergroup.DriverGroup, error) {
	r.updated = append(r.updated, g)
	r.groups[g.ID()] = g
	return g, nil
}

func (r *groupRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.groups, id)
	return nil
}

func TestDriverGroupService_Create_UploadsBeforeMutation(t *testing.T) {
	u := regularUser()
	ctx := userCtx(t, u)

	repo := newGroupRepoStub()
	uploads := &uploaderStub{url: "https://cdn.example.com/emblem.png"}
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	var events []*drivergroup.CreatedEvent
	bus.Subscribe(func(event *drivergroup.CreatedEvent) {
		events = append(events, event)
	})

	svc := services.NewDriverGroupService(repo, uploads, bus)

	members := []uuid.UUID{uuid.New(), uuid.New()}
	dto := &drivergroup.CreateDTO{
		GroupName: "Moustache Riders",
		DriverIDs: members,
		Emblem:    upload.NewFile("emblem.png", []byte{0x89, 0x50}),
	}

	created, err := svc.Create(ctx, dto)
	require.NoError(t, err)

	require.Len(t, uploads.requests, 1)
	assert.Equal(t, "driver-groups", uploads.requests[0].Dir)
	assert.Equal(t, "emblem", uploads.requests[0].Purpose)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "https://cdn.example.com/emblem.png", created.EmblemURL())
	assert.Equal(t, members, created.DriverIDs())
	assert.Equal(t, u.ID(), created.CreatedBy())
	require.Len(t, events, 1)
	assert.Equal(t, created.Name(), events[0].Group.Name())
}

func TestDriverGroupService_Create_UploadFailureAbortsSubmission(t *testing.T) {
	ctx := userCtx(t, regularUser())

	repo := newGroupRepoStub()
	uploads := &uploaderStub{err: errors.New("asset service down")}
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverGroupService(repo, uploads, bus)

	dto := &drivergroup.CreateDTO{
		GroupName: "Moustache Riders",
		DriverIDs: []uuid.UUID{uuid.New(), uuid.New()},
		Emblem:    upload.NewFile("emblem.png", []byte{0x89, 0x50}),
	}

	_, err := svc.Create(ctx, dto)
	var uploadErr *services.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "emblem", uploadErr.Purpose)
	assert.Empty(t, repo.created, "no entity reaches the backend after a failed upload")
}

func TestDriverGroupService_Delete_RefusesWithChampionships(t *testing.T) {
	u := regularUser()
	ctx := userCtx(t, u)

	existing := drivergroup.New(drivergroup.Params{
		ID:              uuid.New(),
		Name:            "Moustache Riders",
		CreatedBy:       u.ID(),
		ChampionshipIDs: []uuid.UUID{uuid.New()},
	})
	repo := newGroupRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverGroupService(repo, &uploaderStub{}, bus)

	_, err := svc.Delete(ctx, existing.ID())
	var depErr *services.DependentsError
	require.ErrorAs(t, err, &depErr)
	assert.Empty(t, repo.deleted, "guard refuses before any remote call")
}

func TestDriverGroupService_Update_OfficialDeniedToNonAdmin(t *testing.T) {
	ctx := userCtx(t, regularUser())

	existing := drivergroup.New(drivergroup.Params{
		ID:        uuid.New(),
		Name:      "Moustache Riders",
		CreatedBy: uuid.New(),
		Official:  true,
	})
	repo := newGroupRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverGroupService(repo, &uploaderStub{}, bus)

	dto := &drivergroup.UpdateDTO{CreateDTO: drivergroup.CreateDTO{
		GroupName: "Mullet Riders",
		DriverIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}}
	_, err := svc.Update(ctx, existing.ID(), dto)
	require.ErrorIs(t, err, services.ErrPermissionDenied)
	assert.Empty(t, repo.updated)
}
