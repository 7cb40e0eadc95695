package series

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/pkg/constants"
	"github.com/paddockhq/paddock/pkg/intl"
	"github.com/paddockhq/paddock/pkg/serrors"
	"github.com/paddockhq/paddock/pkg/shared"
)

type CreateDTO struct {
	SeriesName string         `json:"seriesName" form:"seriesName" validate:"required"`
	DriverIDs  []uuid.UUID    `json:"driverIDs" form:"driverIDs" validate:"min=2"`
	Logo       upload.Payload `json:"-" form:"-"`
}

type UpdateDTO struct {
	CreateDTO
}

func seriesFieldKey(field string) string {
	switch field {
	case "seriesName", "driverIDs":
		return fmt.Sprintf("Series.Fields.%s", field)
	default:
		return ""
	}
}

func (d *CreateDTO) Normalize() {
	d.SeriesName = strings.TrimSpace(d.SeriesName)
}

func (d *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}

	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	validationErrors := make(serrors.ValidationErrors)
	for field, err := range serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), seriesFieldKey) {
		validationErrors[field] = err
	}
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (d *CreateDTO) ToEntity(id uuid.UUID, createdBy uuid.UUID, logoURL string, championshipIDs []uuid.UUID, official bool) Series {
	return New(Params{
		ID:              id,
		Name:            d.SeriesName,
		LogoURL:         logoURL,
		DriverIDs:       d.DriverIDs,
		ChampionshipIDs: championshipIDs,
		CreatedBy:       createdBy,
		Official:        official,
	})
}

// Changed reports whether the form differs meaningfully from the original;
// a nil original is always submittable.
func (d *UpdateDTO) Changed(original *Series) bool {
	if original == nil {
		return true
	}
	d.Normalize()
	if d.Logo.Pending() {
		return true
	}
	return d.SeriesName != original.Name() ||
		!shared.SameMembers(d.DriverIDs, original.DriverIDs())
}
