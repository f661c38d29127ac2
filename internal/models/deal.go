package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deal statuses (creator CRM pipeline)
const (
	DealStatusNew         = "NEW"
	DealStatusNegotiating = "NEGOTIATING"
	DealStatusActive      = "ACTIVE"
	DealStatusCompleted   = "COMPLETED"
	DealStatusLost        = "LOST"
)

// NormalizeDealStatus maps free-form client input onto the pipeline enum.
// Unknown values fall back to NEW.
func NormalizeDealStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid", "completed":
		return DealStatusCompleted
	case "pending", "active":
		return DealStatusActive
	case "negotiating":
		return DealStatusNegotiating
	case "lost":
		return DealStatusLost
	default:
		return DealStatusNew
	}
}

// Deal is a creator-owned CRM record, independent of campaign applications.
type Deal struct {
	ID        uuid.UUID `json:"id"`
	CreatorID uuid.UUID `json:"creator_id"`
	Title     string    `json:"title"`
	Brand     *string   `json:"brand,omitempty"`
	Value     *float64  `json:"value,omitempty"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
