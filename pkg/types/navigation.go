package types

import (
	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
)

type NavigationItem struct {
	Name         string
	Href         string
	Icon         string
	Children     []NavigationItem
	RequireAdmin bool
}

func (n NavigationItem) Visible(u user.User) bool {
	if !n.RequireAdmin {
		return true
	}
	return u.IsAdmin()
}
