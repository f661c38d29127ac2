package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses (brand-driven)
const (
	ApplicationStatusPending  = "PENDING"
	ApplicationStatusApproved = "APPROVED"
	ApplicationStatusRejected = "REJECTED"
)

// Creator responses (terminal once set)
const (
	CreatorResponseAccepted = "ACCEPTED"
	CreatorResponseDeclined = "DECLINED"
)

var AllApplicationStatuses = []string{
	ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected,
}

func IsValidApplicationStatus(s string) bool {
	for _, status := range AllApplicationStatuses {
		if status == s {
			return true
		}
	}
	return false
}

func IsValidCreatorResponse(r string) bool {
	return r == CreatorResponseAccepted || r == CreatorResponseDeclined
}

type CampaignApplication struct {
	ID              uuid.UUID  `json:"id"`
	CampaignID      uuid.UUID  `json:"campaign_id"`
	CreatorID       uuid.UUID  `json:"creator_id"`
	Status          string     `json:"status"`
	ProposedPrice   *float64   `json:"proposed_price,omitempty"`
	Message         *string    `json:"message,omitempty"`
	Portfolio       []string   `json:"portfolio,omitempty"`
	CreatorResponse *string    `json:"creator_response,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CanRespond reports whether a creator response is legal for the application:
// the brand must have approved it and no response may have been recorded yet.
func (a *CampaignApplication) CanRespond() bool {
	return a.Status == ApplicationStatusApproved && a.CreatorResponse == nil
}

// IsResponded reports whether the creator-response side of the machine is in a
// terminal state.
func (a *CampaignApplication) IsResponded() bool {
	return a.CreatorResponse != nil
}

// ApplicationWithDetails embeds the application plus its campaign and creator
// for responses that need the nested records.
type ApplicationWithDetails struct {
	CampaignApplication
	Campaign *Campaign `json:"campaign,omitempty"`
	Creator  *Creator  `json:"creator,omitempty"`
}
