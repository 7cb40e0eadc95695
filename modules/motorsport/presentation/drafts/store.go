// Package drafts keeps half-finished form payloads server-side so a user
// can leave an entity page and come back via `?draft=<id>` without losing
// input. Drafts are process-local and expire after a TTL.
package drafts

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("draft not found")

type entry struct {
	owner     string
	kind      string
	payload   json.RawMessage
	expiresAt time.Time
}

type Store struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[uuid.UUID]entry
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]entry),
	}
}

// Put stores a raw form payload under a fresh ID. Owner is the session ID of
// the saving user; kind partitions drafts per entity page so a driver draft
// cannot seed a team form.
func (s *Store) Put(owner, kind string, payload json.RawMessage) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[id] = entry{
		owner:     owner,
		kind:      kind,
		payload:   payload,
		expiresAt: s.now().Add(s.ttl),
	}
	return id
}

// Get returns the stored payload. Expired drafts, kind mismatches and drafts
// saved by another session all read as missing.
func (s *Store) Get(owner, kind string, id uuid.UUID) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || e.owner != owner || e.kind != kind {
		return nil, ErrNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return nil, ErrNotFound
	}
	return e.payload, nil
}

// Prepend splices a newly created entity's ID onto a member list inside a
// stored draft, so e.g. a team created mid-flight lands first in the parent
// driver form's teamIDs. The created ID is also recorded as the highlight
// target for the restored page.
func (s *Store) Prepend(owner string, id uuid.UUID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || e.owner != owner {
		return ErrNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return ErrNotFound
	}

	var envelope map[string]any
	if err := json.Unmarshal(e.payload, &envelope); err != nil {
		return errors.Wrap(err, "decoding draft payload")
	}
	form, _ := envelope["form"].(map[string]any)
	if form == nil {
		form = map[string]any{}
	}
	members, _ := form[field].([]any)
	form[field] = append([]any{value}, members...)
	envelope["form"] = form
	envelope["highlight"] = value

	payload, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "encoding draft payload")
	}
	e.payload = payload
	s.entries[id] = e
	return nil
}

// Delete discards a draft, typically after a successful submission. Only the
// owning session can discard its entries.
func (s *Store) Delete(owner string, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok && e.owner == owner {
		delete(s.entries, id)
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) sweepLocked() {
	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
