// Package viewmodels holds the JSON shapes the entity pages consume. All
// fields are strings or plain scalars; formatting decisions live in the
// mappers, not in templates.
package viewmodels

// Access is the derived permission surface for one entity row.
type Access struct {
	Level     string `json:"level"`
	CanEdit   bool   `json:"canEdit"`
	CanDelete bool   `json:"canDelete"`
}

type Driver struct {
	ID          string   `json:"id"`
	DriverName  string   `json:"driverName"`
	DriverID    string   `json:"driverID"`
	Nationality string   `json:"nationality"`
	HeightCM    int      `json:"heightCM"`
	WeightKG    int      `json:"weightKG"`
	Birthday    string   `json:"birthday,omitempty"`
	Moustache   bool     `json:"moustache"`
	Mullet      bool     `json:"mullet"`
	PortraitURL string   `json:"portraitURL,omitempty"`
	TeamIDs     []string `json:"teamIDs"`
	SeriesIDs   []string `json:"seriesIDs"`
	Official    bool     `json:"official"`
	Access      Access   `json:"access"`
}

type Team struct {
	ID              string   `json:"id"`
	TeamName        string   `json:"teamName"`
	InceptionDate   string   `json:"inceptionDate,omitempty"`
	Nationality     string   `json:"nationality"`
	LogoURL         string   `json:"logoURL,omitempty"`
	DriverIDs       []string `json:"driverIDs"`
	ChampionshipIDs []string `json:"championshipIDs"`
	Official        bool     `json:"official"`
	Access          Access   `json:"access"`
}

type Series struct {
	ID              string   `json:"id"`
	SeriesName      string   `json:"seriesName"`
	LogoURL         string   `json:"logoURL,omitempty"`
	DriverIDs       []string `json:"driverIDs"`
	ChampionshipIDs []string `json:"championshipIDs"`
	Official        bool     `json:"official"`
	Access          Access   `json:"access"`
}

type DriverGroup struct {
	ID              string   `json:"id"`
	GroupName       string   `json:"groupName"`
	EmblemURL       string   `json:"emblemURL,omitempty"`
	DriverIDs       []string `json:"driverIDs"`
	ChampionshipIDs []string `json:"championshipIDs"`
	Official        bool     `json:"official"`
	Access          Access   `json:"access"`
}

// Option is one picker candidate.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Badge *Badge `json:"badge,omitempty"`
}

// Badge decorates a picker candidate, e.g. a rarity marker on a group.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rarity      string `json:"rarity,omitempty"`
}
