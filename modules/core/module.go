package core

import (
	"github.com/paddockhq/paddock/modules/core/infrastructure/authapi"
	"github.com/paddockhq/paddock/modules/core/presentation/controllers"
	"github.com/paddockhq/paddock/modules/core/presentation/locales"
	"github.com/paddockhq/paddock/modules/core/services"
	"github.com/paddockhq/paddock/pkg/application"
	"github.com/paddockhq/paddock/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	app.RegisterLocaleFiles(&locales.FS)

	authClient := authapi.NewClient(conf.Backend.AuthURL, conf.Backend.Timeout)

	app.RegisterServices(
		services.NewSessionService(authClient, conf.SessionDuration),
	)

	app.RegisterControllers(
		controllers.NewHealthController(app),
		controllers.NewLoginController(app),
		controllers.NewWebsocketController(app),
	)
	return nil
}
