package drivergroup

import (
	"strings"

	"github.com/google/uuid"
)

type DriverGroup struct {
	id              uuid.UUID
	name            string
	emblemURL       string
	driverIDs       []uuid.UUID
	championshipIDs []uuid.UUID
	createdBy       uuid.UUID
	official        bool
}

type Params struct {
	ID              uuid.UUID
	Name            string
	EmblemURL       string
	DriverIDs       []uuid.UUID
	ChampionshipIDs []uuid.UUID
	CreatedBy       uuid.UUID
	Official        bool
}

func New(p Params) DriverGroup {
	return DriverGroup{
		id:              p.ID,
		name:            strings.TrimSpace(p.Name),
		emblemURL:       p.EmblemURL,
		driverIDs:       p.DriverIDs,
		championshipIDs: p.ChampionshipIDs,
		createdBy:       p.CreatedBy,
		official:        p.Official,
	}
}

func (g DriverGroup) ID() uuid.UUID                { return g.id }
func (g DriverGroup) Name() string                 { return g.name }
func (g DriverGroup) EmblemURL() string            { return g.emblemURL }
func (g DriverGroup) DriverIDs() []uuid.UUID       { return g.driverIDs }
func (g DriverGroup) ChampionshipIDs() []uuid.UUID { return g.championshipIDs }
func (g DriverGroup) IsZero() bool                 { return g.id == uuid.Nil && g.name == "" }
func (g DriverGroup) Official() bool               { return g.official }
func (g DriverGroup) CreatedBy() uuid.UUID         { return g.createdBy }

// HasDependents reports associated championships; a group carrying any
// cannot be deleted.
func (g DriverGroup) HasDependents() bool { return len(g.championshipIDs) > 0 }
