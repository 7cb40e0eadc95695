package user

import (
	"strings"

	"github.com/google/uuid"
)

// User is the acting account as reported by the backend session. The
// frontend never mutates users; it only reads permission flags.
type User struct {
	id            uuid.UUID
	name          string
	email         string
	isAdmin       bool
	isAdjudicator bool
}

func Hydrate(id uuid.UUID, name, email string, isAdmin, isAdjudicator bool) User {
	return User{
		id:            id,
		name:          strings.TrimSpace(name),
		email:         strings.TrimSpace(email),
		isAdmin:       isAdmin,
		isAdjudicator: isAdjudicator,
	}
}

func (u User) ID() uuid.UUID       { return u.id }
func (u User) Name() string        { return u.name }
func (u User) Email() string       { return u.email }
func (u User) IsAdmin() bool       { return u.isAdmin }
func (u User) IsAdjudicator() bool { return u.isAdjudicator }
func (u User) IsZero() bool        { return u.id == uuid.Nil }
