// Package models implements the ledger accounting engine: entries
// (Buchungen), transfers between the two payment pools (Geldtransit),
// the opening balance, and the derived balance and EÜR report
// computations.
package models

import (
	"time"

	"github.com/google/uuid"
	kb_uuid "github.com/kleinbuch/backend/internal/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for entries and transfers.
//
// There is no soft delete: removing a record from the books is
// permanent and immediate.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
// The creation timestamp doubles as the stable tie-break for the
// chronological ledger view.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2024-03-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-03-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// BeforeCreate generates a UUID for the resource if the caller did not
// bring one. Ids are never reused and stay stable across edits.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = kb_uuid.New().UUID
	}
	return nil
}
