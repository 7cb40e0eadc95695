package constants

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	ParamsKey    ContextKey = "params"
	LoggerKey    ContextKey = "logger"
	UserKey      ContextKey = "user"
	SessionKey   ContextKey = "session"
	LocalizerKey ContextKey = "localizer"
	RequestIDKey ContextKey = "requestID"
)

var driverCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate is the shared validator instance. Custom rules:
//   - drivercode: exactly three uppercase letters
//   - notfuture: a date value must not be after the current day
var Validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Error maps are keyed the way the wire names fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("drivercode", func(fl validator.FieldLevel) bool {
		return driverCodeRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		if t.IsZero() {
			return true
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !t.After(today.AddDate(0, 0, 1).Add(-time.Nanosecond))
	}); err != nil {
		panic(err)
	}
	return v
}()
