package motorsport

import (
	"net/http"

	"github.com/paddockhq/paddock/modules/core/infrastructure/authapi"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/assets"
	"github.com/paddockhq/paddock/modules/motorsport/infrastructure/remote"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/controllers"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/drafts"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/locales"
	"github.com/paddockhq/paddock/modules/motorsport/services"
	"github.com/paddockhq/paddock/pkg/application"
	"github.com/paddockhq/paddock/pkg/configuration"
	"github.com/paddockhq/paddock/pkg/gql"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "motorsport"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	app.RegisterLocaleFiles(&locales.FS)

	// The data plane talks to the backend as a machine account; user
	// sessions never reach the GraphQL layer.
	authClient := authapi.NewClient(conf.Backend.AuthURL, conf.Backend.Timeout)
	tokens := authapi.NewTokenRefresher(authClient, conf.Backend.ServiceEmail, conf.Backend.ServicePassword)
	client := gql.NewClient(conf.Backend.GraphQLURL,
		gql.WithHTTPClient(&http.Client{Timeout: conf.Backend.Timeout}),
		gql.WithTokenSource(tokens),
		gql.WithLogger(conf.Logger()),
	)

	uploads := assets.NewClient(conf.UploadService.URL, conf.UploadService.Timeout, conf.MaxUploadSize)
	publisher := app.EventPublisher()

	app.RegisterServices(
		services.NewDriverService(remote.NewDriverRepository(client), uploads, publisher),
		services.NewTeamService(remote.NewTeamRepository(client), uploads, publisher),
		services.NewSeriesService(remote.NewSeriesRepository(client), uploads, publisher),
		services.NewDriverGroupService(remote.NewDriverGroupRepository(client), uploads, publisher),
	)

	draftStore := drafts.NewStore(conf.DraftTTL)
	app.RegisterControllers(
		controllers.NewDriversController(app, draftStore),
		controllers.NewTeamsController(app, draftStore),
		controllers.NewSeriesController(app, draftStore),
		controllers.NewDriverGroupsController(app, draftStore),
		controllers.NewRealtimeUpdates(app),
	)
	return nil
}
