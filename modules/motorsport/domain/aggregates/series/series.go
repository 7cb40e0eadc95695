package series

import (
	"strings"

	"github.com/google/uuid"
)

type Series struct {
	id              uuid.UUID
	name            string
	logoURL         string
	driverIDs       []uuid.UUID
	championshipIDs []uuid.UUID
	createdBy       uuid.UUID
	official        bool
}

type Params struct {
	ID              uuid.UUID
	Name            string
	LogoURL         string
	DriverIDs       []uuid.UUID
	ChampionshipIDs []uuid.UUID
	CreatedBy       uuid.UUID
	Official        bool
}

func New(p Params) Series {
	return Series{
		id:              p.ID,
		name:            strings.TrimSpace(p.Name),
		logoURL:         p.LogoURL,
		driverIDs:       p.DriverIDs,
		championshipIDs: p.ChampionshipIDs,
		createdBy:       p.CreatedBy,
		official:        p.Official,
	}
}

func (s Series) ID() uuid.UUID                { return s.id }
func (s Series) Name() string                 { return s.name }
func (s Series) LogoURL() string              { return s.logoURL }
func (s Series) DriverIDs() []uuid.UUID       { return s.driverIDs }
func (s Series) ChampionshipIDs() []uuid.UUID { return s.championshipIDs }
func (s Series) IsZero() bool                 { return s.id == uuid.Nil && s.name == "" }
func (s Series) Official() bool               { return s.official }
func (s Series) CreatedBy() uuid.UUID         { return s.createdBy }

// HasDependents reports associated championships; a series carrying any
// cannot be deleted.
func (s Series) HasDependents() bool { return len(s.championshipIDs) > 0 }
