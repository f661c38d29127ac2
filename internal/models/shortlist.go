package models

import (
	"time"

	"github.com/google/uuid"
)

// Shortlist is a brand-private bookmark of a creator. No state machine.
type Shortlist struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	CreatorID uuid.UUID `json:"creator_id"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ShortlistWithCreator struct {
	Shortlist
	Creator *Creator `json:"creator,omitempty"`
}
