package driver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/entities/upload"
	"github.com/paddockhq/paddock/pkg/constants"
	"github.com/paddockhq/paddock/pkg/intl"
	"github.com/paddockhq/paddock/pkg/serrors"
	"github.com/paddockhq/paddock/pkg/shared"
)

type CreateDTO struct {
	DriverName  string         `json:"driverName" form:"driverName" validate:"required"`
	DriverID    string         `json:"driverID" form:"driverID" validate:"required,drivercode"`
	Nationality string         `json:"nationality" form:"nationality" validate:"required"`
	HeightCM    int            `json:"heightCM" form:"heightCM" validate:"omitempty,gte=100,lte=250"`
	WeightKG    int            `json:"weightKG" form:"weightKG" validate:"omitempty,gte=30,lte=200"`
	Birthday    time.Time      `json:"birthday" form:"birthday" validate:"notfuture"`
	Moustache   bool           `json:"moustache" form:"moustache"`
	Mullet      bool           `json:"mullet" form:"mullet"`
	TeamIDs     []uuid.UUID    `json:"teamIDs" form:"teamIDs"`
	SeriesIDs   []uuid.UUID    `json:"seriesIDs" form:"seriesIDs"`
	Portrait    upload.Payload `json:"-" form:"-"`
}

type UpdateDTO struct {
	CreateDTO
}

func driverFieldKey(field string) string {
	switch field {
	case "driverName", "driverID", "nationality", "heightCM", "weightKG", "birthday":
		return fmt.Sprintf("Driver.Fields.%s", field)
	default:
		return ""
	}
}

func (d *CreateDTO) Normalize() {
	d.DriverName = strings.TrimSpace(d.DriverName)
	d.DriverID = strings.TrimSpace(d.DriverID)
	d.Nationality = strings.TrimSpace(d.Nationality)
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
	for field, err := range serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), driverFieldKey) {
		validationErrors[field] = err
	}
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

// ToEntity builds the aggregate, substituting the uploaded portrait URL for
// the local file reference.
func (d *CreateDTO) ToEntity(id uuid.UUID, createdBy uuid.UUID, portraitURL string, official bool) Driver {
	return New(Params{
		ID:          id,
		Name:        d.DriverName,
		Code:        d.DriverID,
		Nationality: d.Nationality,
		HeightCM:    d.HeightCM,
		WeightKG:    d.WeightKG,
		Birthday:    d.Birthday,
		Moustache:   d.Moustache,
		Mullet:      d.Mullet,
		PortraitURL: portraitURL,
		TeamIDs:     d.TeamIDs,
		SeriesIDs:   d.SeriesIDs,
		CreatedBy:   createdBy,
		Official:    official,
	})
}

// Changed reports whether the form differs meaningfully from the original.
// A nil original means "creating new" and is always submittable. Membership
// lists compare as sets, the birthday at day granularity; a pending portrait
// upload counts as a change on its own.
func (d *UpdateDTO) Changed(original *Driver) bool {
	if original == nil {
		return true
	}
	d.Normalize()
	if d.Portrait.Pending() {
		return true
	}
	return d.DriverName != original.Name() ||
		!strings.EqualFold(d.DriverID, original.Code()) ||
		d.Nationality != original.Nationality() ||
		d.HeightCM != original.HeightCM() ||
		d.WeightKG != original.WeightKG() ||
		!shared.SameDay(d.Birthday, original.Birthday()) ||
		d.Moustache != original.Moustache() ||
		d.Mullet != original.Mullet() ||
		!shared.SameMembers(d.TeamIDs, original.TeamIDs()) ||
		!shared.SameMembers(d.SeriesIDs, original.SeriesIDs())
}
