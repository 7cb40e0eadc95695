package motorsport

import (
	"github.com/paddockhq/paddock/pkg/types"
)

var DriversLink = types.NavigationItem{
	Name: "NavigationLinks.Drivers",
	Icon: "helmet",
	Href: "/motorsport/drivers",
}

var TeamsLink = types.NavigationItem{
	Name: "NavigationLinks.Teams",
	Icon: "flag",
	Href: "/motorsport/teams",
}

var SeriesLink = types.NavigationItem{
	Name: "NavigationLinks.Series",
	Icon: "trophy",
	Href: "/motorsport/series",
}

var DriverGroupsLink = types.NavigationItem{
	Name: "NavigationLinks.DriverGroups",
	Icon: "users",
	Href: "/motorsport/driver-groups",
}

var MotorsportLink = types.NavigationItem{
	Name: "NavigationLinks.Motorsport",
	Icon: "steering-wheel",
	Href: "#",
	Children: []types.NavigationItem{
		DriversLink,
		TeamsLink,
		SeriesLink,
		DriverGroupsLink,
	},
}

var NavItems = []types.NavigationItem{MotorsportLink}
