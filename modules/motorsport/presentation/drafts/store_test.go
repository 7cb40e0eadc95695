package drafts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	store := NewStore(time.Hour)

	payload := json.RawMessage(`{"driverName":"Max"}`)
	id := store.Put("sess-1", "driver", payload)

	got, err := store.Get("sess-1", "driver", id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"driverName":"Max"}`, string(got))
}

func TestStore_KindMismatch(t *testing.T) {
	store := NewStore(time.Hour)

	id := store.Put("sess-1", "driver", json.RawMessage(`{}`))

	_, err := store.Get("sess-1", "team", id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_OwnerMismatch(t *testing.T) {
	store := NewStore(time.Hour)

	id := store.Put("sess-1", "driver", json.RawMessage(`{"driverName":"Max"}`))

	_, err := store.Get("sess-2", "driver", id)
	require.ErrorIs(t, err, ErrNotFound)

	store.Delete("sess-2", id)
	require.ErrorIs(t, store.Prepend("sess-2", id, "teamIDs", "x"), ErrNotFound)

	got, err := store.Get("sess-1", "driver", id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"driverName":"Max"}`, string(got))
}

func TestStore_UnknownID(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Get("sess-1", "driver", uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	id := store.Put("sess-1", "driver", json.RawMessage(`{}`))

	current = current.Add(2 * time.Minute)
	_, err := store.Get("sess-1", "driver", id)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.Len())
}

func TestStore_PutSweepsExpired(t *testing.T) {
	store := NewStore(time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("sess-1", "driver", json.RawMessage(`{}`))
	current = current.Add(2 * time.Minute)
	store.Put("sess-1", "driver", json.RawMessage(`{}`))

	assert.Equal(t, 1, store.Len())
}

func TestStore_PrependSplicesMemberList(t *testing.T) {
	store := NewStore(time.Hour)
	id := store.Put("sess-1", "driver", json.RawMessage(
		`{"form":{"driverName":"Max","teamIDs":["existing-team"]},"returnTo":"/motorsport/drivers/new"}`))

	require.NoError(t, store.Prepend("sess-1", id, "teamIDs", "new-team"))

	got, err := store.Get("sess-1", "driver", id)
	require.NoError(t, err)

	var envelope struct {
		Form struct {
			DriverName string   `json:"driverName"`
			TeamIDs    []string `json:"teamIDs"`
		} `json:"form"`
		ReturnTo  string `json:"returnTo"`
		Highlight string `json:"highlight"`
	}
	require.NoError(t, json.Unmarshal(got, &envelope))
	assert.Equal(t, []string{"new-team", "existing-team"}, envelope.Form.TeamIDs)
	assert.Equal(t, "Max", envelope.Form.DriverName)
	assert.Equal(t, "/motorsport/drivers/new", envelope.ReturnTo)
	assert.Equal(t, "new-team", envelope.Highlight)
}

func TestStore_PrependMissingList(t *testing.T) {
	store := NewStore(time.Hour)
	id := store.Put("sess-1", "driver", json.RawMessage(`{"form":{}}`))

	require.NoError(t, store.Prepend("sess-1", id, "teamIDs", "new-team"))

	got, err := store.Get("sess-1", "driver", id)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"teamIDs":["new-team"]`)
}

func TestStore_PrependUnknownID(t *testing.T) {
	store := NewStore(time.Hour)
	require.ErrorIs(t, store.Prepend("sess-1", uuid.New(), "teamIDs", "x"), ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour)

	id := store.Put("sess-1", "driver", json.RawMessage(`{}`))
	store.Delete("sess-1", id)

	_, err := store.Get("sess-1", "driver", id)
	require.ErrorIs(t, err, ErrNotFound)
}
