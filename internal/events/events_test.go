package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestEventRecipients(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	tests := []struct {
		name    string
		payload map[string]any
		want    []uuid.UUID
	}{
		{"no recipients", map[string]any{"campaign_id": "x"}, nil},
		{"string slice", map[string]any{"recipients": []string{a.String(), b.String()}}, []uuid.UUID{a, b}},
		{"any slice after json decode", map[string]any{"recipients": []any{a.String(), b.String()}}, []uuid.UUID{a, b}},
		{"duplicates collapsed", map[string]any{"recipients": []string{a.String(), a.String()}}, []uuid.UUID{a}},
		{"garbage skipped", map[string]any{"recipients": []any{"not-a-uuid", 42, b.String()}}, []uuid.UUID{b}},
		{"wrong type ignored", map[string]any{"recipients": "oops"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Event{Type: EventApplicationSubmitted, Payload: tt.payload}.Recipients()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d recipients, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("recipient[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Events round-trip through redis as JSON, so recipients published as
// []string must still resolve after decoding.
func TestEventRecipientsSurviveJSON(t *testing.T) {
	userID := uuid.New()
	in := Event{
		Type:    EventCampaignExpired,
		Payload: map[string]any{"campaign_id": uuid.New().String(), "recipients": []string{userID.String()}},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Event
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	got := out.Recipients()
	if len(got) != 1 || got[0] != userID {
		t.Errorf("Recipients() after round trip = %v, want [%s]", got, userID)
	}
}
