// Package uuid wraps google/uuid so that UUIDs can be bound
// directly from URI and query parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// New returns a random UUID. This is the only id source in Kleinbuch,
// entries and transfers draw from it alike.
func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam parses a UUID from a request parameter. The empty
// string parses to the Nil UUID so that optional query parameters
// can be left out.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
