package driver

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Driver is a racing driver as reported by the backend. The frontend never
// persists drivers locally; instances are a transient cache for the current
// form session.
type Driver struct {
	id          uuid.UUID
	name        string
	code        string
	nationality string
	heightCM    int
	weightKG    int
	birthday    time.Time
	moustache   bool
	mullet      bool
	portraitURL string
	teamIDs     []uuid.UUID
	seriesIDs   []uuid.UUID
	createdBy   uuid.UUID
	official    bool
}

type Params struct {
	ID          uuid.UUID
	Name        string
	Code        string
	Nationality string
	HeightCM    int
	WeightKG    int
	Birthday    time.Time
	Moustache   bool
	Mullet      bool
	PortraitURL string
	TeamIDs     []uuid.UUID
	SeriesIDs   []uuid.UUID
	CreatedBy   uuid.UUID
	Official    bool
}

func New(p Params) Driver {
	return Driver{
		id:          p.ID,
		name:        strings.TrimSpace(p.Name),
		code:        strings.ToUpper(strings.TrimSpace(p.Code)),
		nationality: strings.TrimSpace(p.Nationality),
		heightCM:    p.HeightCM,
		weightKG:    p.WeightKG,
		birthday:    p.Birthday,
		moustache:   p.Moustache,
		mullet:      p.Mullet,
		portraitURL: p.PortraitURL,
		teamIDs:     p.TeamIDs,
		seriesIDs:   p.SeriesIDs,
		createdBy:   p.CreatedBy,
		official:    p.Official,
	}
}

func (d Driver) ID() uuid.UUID          { return d.id }
func (d Driver) Name() string           { return d.name }
func (d Driver) Code() string           { return d.code }
func (d Driver) Nationality() string    { return d.nationality }
func (d Driver) HeightCM() int          { return d.heightCM }
func (d Driver) WeightKG() int          { return d.weightKG }
func (d Driver) Birthday() time.Time    { return d.birthday }
func (d Driver) Moustache() bool        { return d.moustache }
func (d Driver) Mullet() bool           { return d.mullet }
func (d Driver) PortraitURL() string    { return d.portraitURL }
func (d Driver) TeamIDs() []uuid.UUID   { return d.teamIDs }
func (d Driver) SeriesIDs() []uuid.UUID { return d.seriesIDs }
func (d Driver) IsZero() bool           { return d.id == uuid.Nil && d.name == "" }

// Official drivers are immutable to non-admins regardless of authorship.
func (d Driver) Official() bool { return d.official }

// HasDependents reports team membership: a driver belonging to at least one
// team cannot be deleted by a non-admin.
func (d Driver) HasDependents() bool { return len(d.teamIDs) > 0 }

func (d Driver) CreatedBy() uuid.UUID { return d.createdBy }
