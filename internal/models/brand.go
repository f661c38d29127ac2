package models

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	CompanyName  string    `json:"company_name"`
	Description  *string   `json:"description,omitempty"`
	Logo         *string   `json:"logo,omitempty"`
	Website      *string   `json:"website,omitempty"`
	Industry     *string   `json:"industry,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BrandStats aggregates a brand's campaign and application activity.
type BrandStats struct {
	TotalCampaigns       int     `json:"total_campaigns"`
	ActiveCampaigns      int     `json:"active_campaigns"`
	CompletedCampaigns   int     `json:"completed_campaigns"`
	DraftCampaigns       int     `json:"draft_campaigns"`
	TotalApplications    int     `json:"total_applications"`
	ApprovedApplications int     `json:"approved_applications"`
	PendingApplications  int     `json:"pending_applications"`
	TotalBudget          float64 `json:"total_budget"`
	SpentBudget          float64 `json:"spent_budget"`
	AvailableBudget      float64 `json:"available_budget"`
}
