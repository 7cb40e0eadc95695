package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/assets"
	"github.com/paddockhq/paddock/modules/motorsport/services"
	"github.com/paddockhq/paddock/pkg/eventbus"
	"github.com/paddockhq/paddock/pkg/itf"
	"github.com/paddockhq/paddock/pkg/logging"
)

type driverRepoStub struct {
	drivers map[uuid.UUID]driver.Driver

	created []driver.Driver
	updated []driver.Driver
	deleted []uuid.UUID
}

func newDriverRepoStub(existing ...driver.Driver) *driverRepoStub {
	repo := &driverRepoStub{drivers: make(map[uuid.UUID]driver.Driver)}
	for _, d := range existing {
		repo.drivers[d.ID()] = d
	}
	return repo
}

func (r *driverRepoStub) GetAll(ctx context.Context) ([]driver.Driver, error) {
	out := make([]driver.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		out = append(out, d)
	}
	return out, nil
}

func (r *driverRepoStub) GetByID(ctx context.Context, id uuid.UUID) (driver.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return driver.Driver{}, errors.New("driver not found")
	}
	return d, nil
}

func (r *driverRepoStub) Create(ctx context.Context, d driver.Driver) (driver.Driver, error) {
	r.created = append(r.created, d)
	return d, nil
}

func (r *driverRepoStub) Update(ctx context.Context, d driver.Driver) (driver.Driver, error) {
	r.updated = append(r.updated, d)
	r.drivers[d.ID()] = d
	return d, nil
}

func (r *driverRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.drivers, id)
	return nil
}

type uploaderStub struct {
	url      string
	err      error
	requests []assets.UploadRequest
}

func (u *uploaderStub) Upload(ctx context.Context, req assets.UploadRequest) (string, error) {
	u.requests = append(u.requests, req)
	if u.err != nil {
		return "", u.err
	}
	if req.Payload.Kind() == upload.KindExistingURL {
		return req.Payload.URL(), nil
	}
	if req.Payload.IsZero() {
		return "", nil
	}
	return u.url, nil
}

func regularUser() user.User {
	return user.Hydrate(uuid.New(), "Jo Practice", "jo@example.com", false, false)
}

func adminUser() user.User {
	return user.Hydrate(uuid.New(), "Race Control", "rc@example.com", true, false)
}

func userCtx(t *testing.T, u user.User) context.Context {
	t.Helper()
	return itf.NewTestContext().WithUser(u).Build(t)
}

func validCreateDTO() *driver.CreateDTO {
	return &driver.CreateDTO{
		DriverName:  "Max Verstappen",
		DriverID:    "VER",
		Nationality: "Dutch",
	}
}

func TestDriverService_Create_UploadsBeforeMutation(t *testing.T) {
	u := regularUser()
	ctx := userCtx(t, u)

	repo := newDriverRepoStub()
	uploads := &uploaderStub{url: "https://cdn.example.com/portrait.png"}
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	var events []*driver.CreatedEvent
	bus.Subscribe(func(event *driver.CreatedEvent) {
		events = append(events, event)
	})

	svc := services.NewDriverService(repo, uploads, bus)

	dto := validCreateDTO()
	dto.Portrait = upload.NewFile("portrait.png", []byte{0x89, 0x50})

	created, err := svc.Create(ctx, dto)
	require.NoError(t, err)

	require.Len(t, uploads.requests, 1)
	assert.Equal(t, "drivers", uploads.requests[0].Dir)
	assert.Equal(t, "portrait", uploads.requests[0].Purpose)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "https://cdn.example.com/portrait.png", created.PortraitURL())
	assert.Equal(t, u.ID(), created.CreatedBy())
	require.Len(t, events, 1)
	assert.Equal(t, created.Name(), events[0].Driver.Name())
}

func TestDriverService_Create_UploadFailureAbortsSubmission(t *testing.T) {
	ctx := userCtx(t, regularUser())

	repo := newDriverRepoStub()
	uploads := &uploaderStub{err: errors.New("asset service down")}
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverService(repo, uploads, bus)

	dto := validCreateDTO()
	dto.Portrait = upload.NewFile("portrait.png", []byte{0x89, 0x50})

	_, err := svc.Create(ctx, dto)
	var uploadErr *services.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Empty(t, repo.created, "no entity reaches the backend after a failed upload")
}

func TestDriverService_Create_NameTaken(t *testing.T) {
	ctx := userCtx(t, regularUser())

	existing := driver.New(driver.Params{ID: uuid.New(), Name: "Max Verstappen", Code: "VER"})
	repo := newDriverRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverService(repo, &uploaderStub{}, bus)

	dto := validCreateDTO()
	dto.DriverName = "max verstappen"

	_, err := svc.Create(ctx, dto)
	var nameErr *services.NameTakenError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "driverName", nameErr.Field)
	assert.Empty(t, repo.created)
}

func TestDriverService_Update_NoChanges(t *testing.T) {
	u := regularUser()
	ctx := userCtx(t, u)

	existing := driver.New(driver.Params{
		ID:          uuid.New(),
		Name:        "Max Verstappen",
		Code:        "VER",
		Nationality: "Dutch",
		CreatedBy:   u.ID(),
	})
	repo := newDriverRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverService(repo, &uploaderStub{}, bus)

	dto := &driver.UpdateDTO{CreateDTO: *validCreateDTO()}
	_, err := svc.Update(ctx, existing.ID(), dto)
	require.ErrorIs(t, err, services.ErrNoChanges)
	assert.Empty(t, repo.updated)
}

func TestDriverService_Update_PermissionDenied(t *testing.T) {
	ctx := userCtx(t, regularUser())

	// Someone else's official entry.
	existing := driver.New(driver.Params{
		ID:        uuid.New(),
		Name:      "Max Verstappen",
		Code:      "VER",
		CreatedBy: uuid.New(),
		Official:  true,
	})
	repo := newDriverRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverService(repo, &uploaderStub{}, bus)

	dto := &driver.UpdateDTO{CreateDTO: *validCreateDTO()}
	dto.Nationality = "Belgian"
	_, err := svc.Update(ctx, existing.ID(), dto)
	require.ErrorIs(t, err, services.ErrPermissionDenied)
}

func TestDriverService_Update_KeepsStoredPortraitWhenUntouched(t *testing.T) {
	u := regularUser()
	ctx := userCtx(t, u)

	existing := driver.New(driver.Params{
		ID:          uuid.New(),
		Name:        "Max Verstappen",
		Code:        "VER",
		Nationality: "Dutch",
		PortraitURL: "https://cdn.example.com/keep.png",
		CreatedBy:   u.ID(),
	})
	repo := newDriverRepoStub(existing)
	uploads := &uploaderStub{}
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverService(repo, uploads, bus)

	dto := &driver.UpdateDTO{CreateDTO: *validCreateDTO()}
	dto.Nationality = "Belgian"

	updated, err := svc.Update(ctx, existing.ID(), dto)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/keep.png", updated.PortraitURL())
}

func TestDriverService_Delete_RefusesWithTeamMemberships(t *testing.T) {
	u := regularUser()
	ctx := userCtx(t, u)

	existing := driver.New(driver.Params{
		ID:        uuid.New(),
		Name:      "Max Verstappen",
		Code:      "VER",
		CreatedBy: u.ID(),
		TeamIDs:   []uuid.UUID{uuid.New()},
	})
	repo := newDriverRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverService(repo, &uploaderStub{}, bus)

	_, err := svc.Delete(ctx, existing.ID())
	var depErr *services.DependentsError
	require.ErrorAs(t, err, &depErr)
	assert.Empty(t, repo.deleted, "guard refuses before any remote call")
}

func TestDriverService_Delete_AdminOverridesDependents(t *testing.T) {
	ctx := userCtx(t, adminUser())

	existing := driver.New(driver.Params{
		ID:        uuid.New(),
		Name:      "Max Verstappen",
		Code:      "VER",
		CreatedBy: uuid.New(),
		TeamIDs:   []uuid.UUID{uuid.New()},
	})
	repo := newDriverRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	var events []*driver.DeletedEvent
	bus.Subscribe(func(event *driver.DeletedEvent) {
		events = append(events, event)
	})

	svc := services.NewDriverService(repo, &uploaderStub{}, bus)

	deleted, err := svc.Delete(ctx, existing.ID())
	require.NoError(t, err)
	assert.Equal(t, existing.ID(), deleted.ID())
	require.Len(t, repo.deleted, 1)
	require.Len(t, events, 1)
}

func TestDriverService_Delete_StrangerDenied(t *testing.T) {
	ctx := userCtx(t, regularUser())

	existing := driver.New(driver.Params{
		ID:        uuid.New(),
		Name:      "Max Verstappen",
		Code:      "VER",
		CreatedBy: uuid.New(),
	})
	repo := newDriverRepoStub(existing)
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))

	svc := services.NewDriverService(repo, &uploaderStub{}, bus)

	_, err := svc.Delete(ctx, existing.ID())
	require.ErrorIs(t, err, services.ErrPermissionDenied)
	assert.Empty(t, repo.deleted)
}
