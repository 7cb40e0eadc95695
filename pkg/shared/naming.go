package shared

import (
	"strings"

	"github.com/google/uuid"
)

// NamedRef is the identity/name projection used for sibling uniqueness
// checks.
type NamedRef struct {
	ID   uuid.UUID
	Name string
}

// NameTaken reports a case-insensitive name collision within siblings,
// excluding the entity's own identity when editing. The sibling collection
// must already be fetched; no remote call happens here.
func NameTaken(name string, self uuid.UUID, siblings []NamedRef) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return false
	}
	for _, s := range siblings {
		if s.ID == self {
			continue
		}
		if strings.ToLower(strings.TrimSpace(s.Name)) == needle {
			return true
		}
	}
	return false
}
