package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Idea statuses
const (
	IdeaStatusDraft     = "DRAFT"
	IdeaStatusPlanned   = "PLANNED"
	IdeaStatusPublished = "PUBLISHED"
	IdeaStatusArchived  = "ARCHIVED"
)

// Idea priorities
const (
	IdeaPriorityLow    = "LOW"
	IdeaPriorityMedium = "MEDIUM"
	IdeaPriorityHigh   = "HIGH"
)

func NormalizeIdeaStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "planned":
		return IdeaStatusPlanned
	case "published":
		return IdeaStatusPublished
	case "archived":
		return IdeaStatusArchived
	default:
		return IdeaStatusDraft
	}
}

func NormalizeIdeaPriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "low":
		return IdeaPriorityLow
	case "high":
		return IdeaPriorityHigh
	default:
		return IdeaPriorityMedium
	}
}

type Idea struct {
	ID          uuid.UUID `json:"id"`
	CreatorID   uuid.UUID `json:"creator_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
