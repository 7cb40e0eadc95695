package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paddockhq/paddock/modules/motorsport/domain/aggregates/driver"
)

func TestNew_NormalizesNameAndCode(t *testing.T) {
	d := driver.New(driver.Params{
		Name:        "  Max Verstappen ",
		Code:        " ver ",
		Nationality: " Dutch ",
	})

	assert.Equal(t, "Max Verstappen", d.Name())
	assert.Equal(t, "VER", d.Code())
	assert.Equal(t, "Dutch", d.Nationality())
}
