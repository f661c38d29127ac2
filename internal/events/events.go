package events

import (
	"context"

	"github.com/google/uuid"
)

// Channel carries all application lifecycle events.
const ChannelApplications = "events:applications"

// Event types
const (
	EventApplicationSubmitted     = "application_submitted"
	EventApplicationStatusChanged = "application_status_changed"
	EventApplicationResponded     = "application_responded"
	EventCreatorInvited           = "creator_invited"
	EventCampaignExpired          = "campaign_expired"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// Recipients extracts the deduplicated user ids the event should be
// delivered to. Payloads cross redis as JSON, so the list arrives as
// []any on the subscriber side and []string on the publisher side.
func (e Event) Recipients() []uuid.UUID {
	raw, ok := e.Payload["recipients"]
	if !ok {
		return nil
	}

	var values []string
	switch v := raw.(type) {
	case []string:
		values = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	default:
		return nil
	}

	seen := make(map[uuid.UUID]bool, len(values))
	var ids []uuid.UUID
	for _, s := range values {
		id, err := uuid.Parse(s)
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, channel string, handler func(Event)) error
}
