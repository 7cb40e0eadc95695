package controllers

import (
	"context"
	"encoding/json"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/drivergroup"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/series"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/team"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/mappers"
	"github.com/paddockhq/paddock/pkg/application"
	"github.com/paddockhq/paddock/pkg/configuration"
)

// RealtimeUpdates pushes entity mutations to every authenticated websocket
// so open list pages stay current. Rows are mapped per connection: the
// derived access surface depends on who is looking.
type RealtimeUpdates struct {
	app application.Application
}

func NewRealtimeUpdates(app application.Application) *RealtimeUpdates {
	return &RealtimeUpdates{app: app}
}

func (ru *RealtimeUpdates) Key() string {
	return "/motorsport/realtime"
}

func (ru *RealtimeUpdates) Register(_ *mux.Router) {
	publisher := ru.app.EventPublisher()
	publisher.Subscribe(ru.onDriverCreated)
	publisher.Subscribe(ru.onDriverUpdated)
	publisher.Subscribe(ru.onDriverDeleted)
	publisher.Subscribe(ru.onTeamCreated)
	publisher.Subscribe(ru.onTeamUpdated)
	publisher.Subscribe(ru.onTeamDeleted)
	publisher.Subscribe(ru.onSeriesCreated)
	publisher.Subscribe(ru.onSeriesUpdated)
	publisher.Subscribe(ru.onSeriesDeleted)
	publisher.Subscribe(ru.onGroupCreated)
	publisher.Subscribe(ru.onGroupUpdated)
	publisher.Subscribe(ru.onGroupDeleted)
}

// broadcast fans an event out to the authenticated channel, building the
// payload per connection.
func (ru *RealtimeUpdates) broadcast(event string, item func(conn application.Connection) any) {
	logger := configuration.Use().Logger()

	if err := ru.app.Websocket().ForEach(application.ChannelAuthenticated, func(connCtx context.Context, conn application.Connection) error {
		message, err := json.Marshal(map[string]any{
			"event": event,
			"item":  item(conn),
		})
		if err != nil {
			logger.WithError(err).WithField("event", event).Error("failed to encode realtime event")
			return nil
		}
		if err := conn.SendMessage(message); err != nil {
			logger.WithError(err).WithField("event", event).Error("failed to send realtime event")
			return nil // keep going for the remaining connections
		}
		return nil
	}); err != nil {
		logger.WithError(err).WithField("event", event).Error("failed to broadcast realtime event")
	}
}

func (ru *RealtimeUpdates) onDriverCreated(event *driver.CreatedEvent) {
	ru.broadcast("driver.created", func(conn application.Connection) any {
		return mappers.DriverToViewModel(event.Driver, conn.User())
	})
}

func (ru *RealtimeUpdates) onDriverUpdated(event *driver.UpdatedEvent) {
	ru.broadcast("driver.updated", func(conn application.Connection) any {
		return mappers.DriverToViewModel(event.Driver, conn.User())
	})
}

func (ru *RealtimeUpdates) onDriverDeleted(event *driver.DeletedEvent) {
	ru.broadcast("driver.deleted", func(conn application.Connection) any {
		return mappers.DriverToViewModel(event.Driver, conn.User())
	})
}

func (ru *RealtimeUpdates) onTeamCreated(event *team.CreatedEvent) {
	ru.broadcast("team.created", func(conn application.Connection) any {
		return mappers.TeamToViewModel(event.Team, conn.User())
	})
}

func (ru *RealtimeUpdates) onTeamUpdated(event *team.UpdatedEvent) {
	ru.broadcast("team.updated", func(conn application.Connection) any {
		return mappers.TeamToViewModel(event.Team, conn.User())
	})
}

func (ru *RealtimeUpdates) onTeamDeleted(event *team.DeletedEvent) {
	ru.broadcast("team.deleted", func(conn application.Connection) any {
		return mappers.TeamToViewModel(event.Team, conn.User())
	})
}

func (ru *RealtimeUpdates) onSeriesCreated(event *series.CreatedEvent) {
	ru.broadcast("series.created", func(conn application.Connection) any {
		return mappers.SeriesToViewModel(event.Series, conn.User())
	})
}

func (ru *RealtimeUpdates) onSeriesUpdated(event *series.UpdatedEvent) {
	ru.broadcast("series.updated", func(conn application.Connection) any {
		return mappers.SeriesToViewModel(event.Series, conn.User())
	})
}

func (ru *RealtimeUpdates) onSeriesDeleted(event *series.DeletedEvent) {
	ru.broadcast("series.deleted", func(conn application.Connection) any {
		return mappers.SeriesToViewModel(event.Series, conn.User())
	})
}

func (ru *RealtimeUpdates) onGroupCreated(event *drivergroup.CreatedEvent) {
	ru.broadcast("driverGroup.created", func(conn application.Connection) any {
		return mappers.DriverGroupToViewModel(event.Group, conn.User())
	})
}

func (ru *RealtimeUpdates) onGroupUpdated(event *drivergroup.UpdatedEvent) {
	ru.broadcast("driverGroup.updated", func(conn application.Connection) any {
		return mappers.DriverGroupToViewModel(event.Group, conn.User())
	})
}

func (ru *RealtimeUpdates) onGroupDeleted(event *drivergroup.DeletedEvent) {
	ru.broadcast("driverGroup.deleted", func(conn application.Connection) any {
		return mappers.DriverGroupToViewModel(event.Group, conn.User())
	})
}
