// Package mappers projects domain aggregates into viewmodels, deriving the
// per-row access surface for the acting user on the way.
package mappers

import (
	"time"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
	"github.com/paddockhq/paddock/modules/motorsport/domain/access"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/drivergroup"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/series"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/team"
	"github.com/paddockhq/paddock/modules/motorsport/presentation/viewmodels"
)

func accessFor(res access.Resource, u user.User) viewmodels.Access {
	level := access.Resolve(res, u)
	return viewmodels.Access{
		Level:     level.String(),
		CanEdit:   level.CanEdit(),
		CanDelete: level.CanDelete(),
	}
}

func ids(in []uuid.UUID) []string {
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.String()
	}
	return out
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func DriverToViewModel(d driver.Driver, u user.User) viewmodels.Driver {
	return viewmodels.Driver{
		ID:          d.ID().String(),
		DriverName:  d.Name(),
		DriverID:    d.Code(),
		Nationality: d.Nationality(),
		HeightCM:    d.HeightCM(),
		WeightKG:    d.WeightKG(),
		Birthday:    day(d.Birthday()),
		Moustache:   d.Moustache(),
		Mullet:      d.Mullet(),
		PortraitURL: d.PortraitURL(),
		TeamIDs:     ids(d.TeamIDs()),
		SeriesIDs:   ids(d.SeriesIDs()),
		Official:    d.Official(),
		Access:      accessFor(d, u),
	}
}

func TeamToViewModel(t team.Team, u user.User) viewmodels.Team {
	return viewmodels.Team{
		ID:              t.ID().String(),
		TeamName:        t.Name(),
		InceptionDate:   day(t.InceptionDate()),
		Nationality:     t.Nationality(),
		LogoURL:         t.LogoURL(),
		DriverIDs:       ids(t.DriverIDs()),
		ChampionshipIDs: ids(t.ChampionshipIDs()),
		Official:        t.Official(),
		Access:          accessFor(t, u),
	}
}

func SeriesToViewModel(s series.Series, u user.User) viewmodels.Series {
	return viewmodels.Series{
		ID:              s.ID().String(),
		SeriesName:      s.Name(),
		LogoURL:         s.LogoURL(),
		DriverIDs:       ids(s.DriverIDs()),
		ChampionshipIDs: ids(s.ChampionshipIDs()),
		Official:        s.Official(),
		Access:          accessFor(s, u),
	}
}

func DriverGroupToViewModel(g drivergroup.DriverGroup, u user.User) viewmodels.DriverGroup {
	return viewmodels.DriverGroup{
		ID:              g.ID().String(),
		GroupName:       g.Name(),
		EmblemURL:       g.EmblemURL(),
		DriverIDs:       ids(g.DriverIDs()),
		ChampionshipIDs: ids(g.ChampionshipIDs()),
		Official:        g.Official(),
		Access:          accessFor(g, u),
	}
}
