// Package access derives what the acting user may do with an entity. The
// result is a closed enumeration so call sites can switch exhaustively
// instead of comparing strings.
package access

import (
	"github.com/google/uuid"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
)

// Level is the derived access level for one entity and one user.
type Level int

const (
	LevelNone Level = iota
	LevelEdit
	LevelDelete
)

func (l Level) String() string {
	switch l {
	case LevelEdit:
		return "edit"
	case LevelDelete:
		return "delete"
	default:
		return "none"
	}
}

// CanEdit reports whether the level allows editing.
func (l Level) CanEdit() bool { return l >= LevelEdit }

// CanDelete reports whether the level allows deletion.
func (l Level) CanDelete() bool { return l == LevelDelete }

// Resource is the slice of an entity the resolver needs. Each aggregate
// supplies its own dependents predicate: team memberships for a driver,
// associated championships for the group-likes.
type Resource interface {
	// IsZero means "new entity", not yet persisted.
	IsZero() bool
	Official() bool
	HasDependents() bool
	CreatedBy() uuid.UUID
}

// Resolve evaluates the rules in order: a new entity is editable by anyone
// on the page; an official entity is locked for non-admins regardless of
// authorship; admins always delete; an authorized user deletes when the
// entity has no dependents and edits otherwise.
func Resolve(res Resource, u user.User) Level {
	if res == nil || res.IsZero() {
		return LevelEdit
	}
	if res.Official() && !u.IsAdmin() {
		return LevelNone
	}
	authorized := u.IsAdmin() || u.IsAdjudicator() || (res.CreatedBy() != uuid.Nil && res.CreatedBy() == u.ID())
	if u.IsAdmin() {
		return LevelDelete
	}
	if authorized && !res.HasDependents() {
		return LevelDelete
	}
	if authorized {
		return LevelEdit
	}
	return LevelNone
}
