package models

import (
	"time"

	"github.com/google/uuid"
)

// Analytics platforms
const (
	PlatformInstagram = "instagram"
	PlatformTiktok    = "tiktok"
	PlatformYoutube   = "youtube"
)

type AnalyticsSnapshot struct {
	ID             uuid.UUID `json:"id"`
	CreatorID      uuid.UUID `json:"creator_id"`
	Platform       string    `json:"platform"`
	Date           time.Time `json:"date"`
	Followers      *int      `json:"followers,omitempty"`
	EngagementRate *float64  `json:"engagement_rate,omitempty"`
	Reach          *int      `json:"reach,omitempty"`
	Impressions    *int      `json:"impressions,omitempty"`
	Source         string    `json:"source"` // manual / profile_parser
	CreatedAt      time.Time `json:"created_at"`
}

// MediaKit is a single free-form document per creator, rendered client-side.
type MediaKit struct {
	ID        uuid.UUID `json:"id"`
	CreatorID uuid.UUID `json:"creator_id"`
	Data      any       `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
