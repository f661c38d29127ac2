package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusCancelled = "CANCELLED"
)

var AllCampaignStatuses = []string{
	CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused,
	CampaignStatusCompleted, CampaignStatusCancelled,
}

func IsValidCampaignStatus(s string) bool {
	for _, status := range AllCampaignStatuses {
		if status == s {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID                  uuid.UUID `json:"id"`
	BrandID             uuid.UUID `json:"brand_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Budget              float64   `json:"budget"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	Deliverables        []string  `json:"deliverables"`
	Requirements        []string  `json:"requirements,omitempty"`
	TargetAudience      *string   `json:"target_audience,omitempty"`
	PreferredCategories []string  `json:"preferred_categories,omitempty"`
	MinFollowers        *int      `json:"min_followers,omitempty"`
	MaxFollowers        *int      `json:"max_followers,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CampaignWithBrand embeds Campaign and adds brand info to avoid N+1 queries.
type CampaignWithBrand struct {
	Campaign
	BrandCompanyName *string `json:"brand_company_name,omitempty"`
}
