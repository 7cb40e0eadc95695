package shared

import (
	"net/http"
	"time"

	"github.com/go-playground/form"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Decoder decodes POSTed form values into DTO structs.
var Decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return uuid.Parse(vals[0])
	}, uuid.UUID{})
	// Date inputs post day precision; fall back to RFC3339 for
	// anything richer.
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if vals[0] == "" {
			return time.Time{}, nil
		}
		if t, err := time.Parse("2006-01-02", vals[0]); err == nil {
			return t, nil
		}
		return time.Parse(time.RFC3339, vals[0])
	}, time.Time{})
	return d
}

var ErrInvalidID = errors.New("invalid entity ID")

// ParseUUID extracts and parses the {id} route variable.
func ParseUUID(r *http.Request) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)["id"]
	if !ok {
		return uuid.Nil, ErrInvalidID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidID, raw)
	}
	return id, nil
}

// DecodeForm parses the request form and decodes it into v.
func DecodeForm(r *http.Request, v interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return Decoder.Decode(v, r.Form)
}
