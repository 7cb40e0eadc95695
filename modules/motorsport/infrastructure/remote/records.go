// Package remote implements the domain repositories against the backend
// GraphQL API. Repositories are thin: wire records in, aggregates out.
package remote

import (
	"time"

	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/drivergroup"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/series"
	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/team"
)

type driverRecord struct {
	ID          uuid.UUID   `json:"id"`
	DriverName  string      `json:"driverName"`
	DriverID    string      `json:"driverID"`
	Nationality string      `json:"nationality"`
	HeightCM    int         `json:"heightCM"`
	WeightKG    int         `json:"weightKG"`
	Birthday    *time.Time  `json:"birthday"`
	Moustache   bool        `json:"moustache"`
	Mullet      bool        `json:"mullet"`
	PortraitURL string      `json:"portraitURL"`
	TeamIDs     []uuid.UUID `json:"teamIDs"`
	SeriesIDs   []uuid.UUID `json:"seriesIDs"`
	CreatedBy   uuid.UUID   `json:"createdBy"`
	Official    bool        `json:"official"`
}

func (r driverRecord) toDomain() driver.Driver {
	var birthday time.Time
	if r.Birthday != nil {
		birthday = *r.Birthday
	}
	return driver.New(driver.Params{
		ID:          r.ID,
		Name:        r.DriverName,
		Code:        r.DriverID,
		Nationality: r.Nationality,
		HeightCM:    r.HeightCM,
		WeightKG:    r.WeightKG,
		Birthday:    birthday,
		Moustache:   r.Moustache,
		Mullet:      r.Mullet,
		PortraitURL: r.PortraitURL,
		TeamIDs:     r.TeamIDs,
		SeriesIDs:   r.SeriesIDs,
		CreatedBy:   r.CreatedBy,
		Official:    r.Official,
	})
}

func driverInput(d driver.Driver) map[string]any {
	input := map[string]any{
		"driverName":  d.Name(),
		"driverID":    d.Code(),
		"nationality": d.Nationality(),
		"heightCM":    d.HeightCM(),
		"weightKG":    d.WeightKG(),
		"moustache":   d.Moustache(),
		"mullet":      d.Mullet(),
		"portraitURL": d.PortraitURL(),
		"teamIDs":     idStrings(d.TeamIDs()),
		"seriesIDs":   idStrings(d.SeriesIDs()),
	}
	if !d.Birthday().IsZero() {
		input["birthday"] = d.Birthday().UTC().Format(time.RFC3339)
	}
	return input
}

type teamRecord struct {
	ID              uuid.UUID   `json:"id"`
	TeamName        string      `json:"teamName"`
	InceptionDate   *time.Time  `json:"inceptionDate"`
	Nationality     string      `json:"nationality"`
	LogoURL         string      `json:"logoURL"`
	DriverIDs       []uuid.UUID `json:"driverIDs"`
	ChampionshipIDs []uuid.UUID `json:"championshipIDs"`
	CreatedBy       uuid.UUID   `json:"createdBy"`
	Official        bool        `json:"official"`
}

func (r teamRecord) toDomain() team.Team {
	var inception time.Time
	if r.InceptionDate != nil {
		inception = *r.InceptionDate
	}
	return team.New(team.Params{
		ID:              r.ID,
		Name:            r.TeamName,
		InceptionDate:   inception,
		Nationality:     r.Nationality,
		LogoURL:         r.LogoURL,
		DriverIDs:       r.DriverIDs,
		ChampionshipIDs: r.ChampionshipIDs,
		CreatedBy:       r.CreatedBy,
		Official:        r.Official,
	})
}

func teamInput(t team.Team) map[string]any {
	input := map[string]any{
		"teamName":    t.Name(),
		"nationality": t.Nationality(),
		"logoURL":     t.LogoURL(),
		"driverIDs":   idStrings(t.DriverIDs()),
	}
	if !t.InceptionDate().IsZero() {
		input["inceptionDate"] = t.InceptionDate().UTC().Format(time.RFC3339)
	}
	return input
}

type seriesRecord struct {
	ID              uuid.UUID   `json:"id"`
	SeriesName      string      `json:"seriesName"`
	LogoURL         string      `json:"logoURL"`
	DriverIDs       []uuid.UUID `json:"driverIDs"`
	ChampionshipIDs []uuid.UUID `json:"championshipIDs"`
	CreatedBy       uuid.UUID   `json:"createdBy"`
	Official        bool        `json:"official"`
}

func (r seriesRecord) toDomain() series.Series {
	return series.New(series.Params{
		ID:              r.ID,
		Name:            r.SeriesName,
		LogoURL:         r.LogoURL,
		DriverIDs:       r.DriverIDs,
		ChampionshipIDs: r.ChampionshipIDs,
		CreatedBy:       r.CreatedBy,
		Official:        r.Official,
	})
}

func seriesInput(s series.Series) map[string]any {
	return map[string]any{
		"seriesName": s.Name(),
		"logoURL":    s.LogoURL(),
		"driverIDs":  idStrings(s.DriverIDs()),
	}
}

type groupRecord struct {
	ID              uuid.UUID   `json:"id"`
	GroupName       string      `json:"groupName"`
	EmblemURL       string      `json:"emblemURL"`
	DriverIDs       []uuid.UUID `json:"driverIDs"`
	ChampionshipIDs []uuid.UUID `json:"championshipIDs"`
	CreatedBy       uuid.UUID   `json:"createdBy"`
	Official        bool        `json:"official"`
}

func (r groupRecord) toDomain() drivergroup.DriverGroup {
	return drivergroup.New(drivergroup.Params{
		ID:              r.ID,
		Name:            r.GroupName,
		EmblemURL:       r.EmblemURL,
		DriverIDs:       r.DriverIDs,
		ChampionshipIDs: r.ChampionshipIDs,
		CreatedBy:       r.CreatedBy,
		Official:        r.Official,
	})
}

func groupInput(g drivergroup.DriverGroup) map[string]any {
	return map[string]any{
		"groupName": g.Name(),
		"emblemURL": g.EmblemURL(),
		"driverIDs": idStrings(g.DriverIDs()),
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
