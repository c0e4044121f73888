// README: Opaque identifier type shared by all aggregates.
package types

import "github.com/google/uuid"

type ID string

// NewID returns a fresh opaque identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

func (id ID) IsZero() bool {
	return id == ""
}
