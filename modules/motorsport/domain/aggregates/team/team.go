package team

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Team struct {
	id              uuid.UUID
	name            string
	inceptionDate   time.Time
	nationality     string
	logoURL         string
	driverIDs       []uuid.UUID
	championshipIDs []uuid.UUID
	createdBy       uuid.UUID
	official        bool
}

type Params struct {
	ID              uuid.UUID
	Name            string
	InceptionDate   time.Time
	Nationality     string
	LogoURL         string
	DriverIDs       []uuid.UUID
	ChampionshipIDs []uuid.UUID
	CreatedBy       uuid.UUID
	Official        bool
}

func New(p Params) Team {
	return Team{
		id:              p.ID,
		name:            strings.TrimSpace(p.Name),
		inceptionDate:   p.InceptionDate,
		nationality:     strings.TrimSpace(p.Nationality),
		logoURL:         p.LogoURL,
		driverIDs:       p.DriverIDs,
		championshipIDs: p.ChampionshipIDs,
		createdBy:       p.CreatedBy,
		official:        p.Official,
	}
}

func (t Team) ID() uuid.UUID                { return t.id }
func (t Team) Name() string                 { return t.name }
func (t Team) InceptionDate() time.Time     { return t.inceptionDate }
func (t Team) Nationality() string          { return t.nationality }
func (t Team) LogoURL() string              { return t.logoURL }
func (t Team) DriverIDs() []uuid.UUID       { return t.driverIDs }
func (t Team) ChampionshipIDs() []uuid.UUID { return t.championshipIDs }
func (t Team) IsZero() bool                 { return t.id == uuid.Nil && t.name == "" }
func (t Team) Official() bool               { return t.official }
func (t Team) CreatedBy() uuid.UUID         { return t.createdBy }

// HasDependents reports associated championships, mirroring the other
// group-like entities.
func (t Team) HasDependents() bool { return len(t.championshipIDs) > 0 }
