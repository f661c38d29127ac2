package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxCategories = 20

type Creator struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Username           string    `json:"username"`
	DisplayName        string    `json:"display_name"`
	Bio                *string   `json:"bio,omitempty"`
	Avatar             *string   `json:"avatar,omitempty"`
	InstagramHandle    *string   `json:"instagram_handle,omitempty"`
	InstagramFollowers *int      `json:"instagram_followers,omitempty"`
	TiktokHandle       *string   `json:"tiktok_handle,omitempty"`
	TiktokFollowers    *int      `json:"tiktok_followers,omitempty"`
	YoutubeHandle      *string   `json:"youtube_handle,omitempty"`
	YoutubeFollowers   *int      `json:"youtube_followers,omitempty"`
	AvgEngagementRate  *float64  `json:"avg_engagement_rate,omitempty"`
	BasePrice          *float64  `json:"base_price,omitempty"`
	Age                *int      `json:"age,omitempty"`
	Gender             *string   `json:"gender,omitempty"`
	Location           *string   `json:"location,omitempty"`
	Categories         []string  `json:"categories"`
	IsVerified         bool      `json:"is_verified"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreatorStats is the public profile counters block.
type CreatorStats struct {
	TotalApplications      int     `json:"total_applications"`
	ApprovedApplications   int     `json:"approved_applications"`
	AcceptedCollaborations int     `json:"accepted_collaborations"`
	ApprovalRate           float64 `json:"approval_rate"`
	ShortlistCount         int     `json:"shortlist_count"`
}

// TotalFollowers sums follower counts across all platforms, treating missing
// counts as zero.
func (c *Creator) TotalFollowers() int {
	total := 0
	if c.InstagramFollowers != nil {
		total += *c.InstagramFollowers
	}
	if c.TiktokFollowers != nil {
		total += *c.TiktokFollowers
	}
	if c.YoutubeFollowers != nil {
		total += *c.YoutubeFollowers
	}
	return total
}

// NormalizeCategories lowercases, trims, dedupes and caps the category list.
// Order of first appearance is preserved.
func NormalizeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
		if len(out) >= maxCategories {
			break
		}
	}
	return out
}

// NormalizeHandle strips a leading @ and surrounding whitespace.
func NormalizeHandle(h string) string {
	return strings.TrimPrefix(strings.TrimSpace(h), "@")
}
