package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
)

type resource struct {
	zero       bool
	official   bool
	dependents bool
	creator    uuid.UUID
}

func (r resource) IsZero() bool         { return r.zero }
func (r resource) Official() bool       { return r.official }
func (r resource) HasDependents() bool  { return r.dependents }
func (r resource) CreatedBy() uuid.UUID { return r.creator }

func TestResolve(t *testing.T) {
	creatorID := uuid.New()
	strangerID := uuid.New()

	admin := user.Hydrate(uuid.New(), "Admin", "admin@example.com", true, false)
	adjudicator := user.Hydrate(uuid.New(), "Adjudicator", "adj@example.com", false, true)
	creator := user.Hydrate(creatorID, "Creator", "creator@example.com", false, false)
	stranger := user.Hydrate(strangerID, "Stranger", "stranger@example.com", false, false)

	tests := []struct {
		name string
		res  Resource
		user user.User
		want Level
	}{
		{"new entity is editable", resource{zero: true}, stranger, LevelEdit},
		{"nil resource is editable", nil, stranger, LevelEdit},
		{"official locked for creator", resource{official: true, creator: creatorID}, creator, LevelNone},
		{"official locked for adjudicator", resource{official: true}, adjudicator, LevelNone},
		{"official open for admin", resource{official: true, dependents: true}, admin, LevelDelete},
		{"admin deletes despite dependents", resource{dependents: true, creator: creatorID}, admin, LevelDelete},
		{"creator deletes without dependents", resource{creator: creatorID}, creator, LevelDelete},
		{"creator edits with dependents", resource{dependents: true, creator: creatorID}, creator, LevelEdit},
		{"adjudicator deletes without dependents", resource{creator: creatorID}, adjudicator, LevelDelete},
		{"adjudicator edits with dependents", resource{dependents: true, creator: creatorID}, adjudicator, LevelEdit},
		{"stranger gets nothing", resource{creator: creatorID}, stranger, LevelNone},
		{"stranger gets nothing with dependents", resource{dependents: true, creator: creatorID}, stranger, LevelNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.res, tt.user))
		})
	}
}

func TestLevel_Predicates(t *testing.T) {
	assert.False(t, LevelNone.CanEdit())
	assert.False(t, LevelNone.CanDelete())
	assert.True(t, LevelEdit.CanEdit())
	assert.False(t, LevelEdit.CanDelete())
	assert.True(t, LevelDelete.CanEdit())
	assert.True(t, LevelDelete.CanDelete())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "none", LevelNone.String())
	assert.Equal(t, "edit", LevelEdit.String())
	assert.Equal(t, "delete", LevelDelete.String())
}
