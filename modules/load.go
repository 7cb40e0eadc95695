package modules

import (
	"github.com/paddockhq/paddock/modules/core"
	"github.com/paddockhq/paddock/modules/motorsport"
	"github.com/paddockhq/paddock/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		core.NewModule(),
		motorsport.NewModule(),
	}

	NavLinks = motorsport.NavItems
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
