package main

import (
	"log"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/paddockhq/paddock/modules"
	coreservices "github.com/paddockhq/paddock/modules/core/services"
	"github.com/paddockhq/paddock/pkg/application"
	"github.com/paddockhq/paddock/pkg/configuration"
	"github.com/paddockhq/paddock/pkg/eventbus"
	"github.com/paddockhq/paddock/pkg/metrics"
	"github.com/paddockhq/paddock/pkg/middleware"
	"github.com/paddockhq/paddock/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	bundle := application.LoadBundle()
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Bundle:   bundle,
		Huber: application.NewHub(&application.HuberOptions{
			Bundle: bundle,
			Logger: logger,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	app.RegisterNavItems(modules.NavLinks...)

	sessions := app.Service(coreservices.SessionService{}).(*coreservices.SessionService)
	app.RegisterMiddleware(
		middleware.WithLogger(logger),
		middleware.RequestParams(),
		middleware.Authorize(sessions),
		middleware.ProvideLocalizer(app),
		metrics.Collect(),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	log.Printf("Listening on: %s\n", conf.Origin)
	if err := server.NewHTTPServer(app).Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
