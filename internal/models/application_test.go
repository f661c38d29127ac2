package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCanRespond(t *testing.T) {
	now := time.Now()
	accepted := CreatorResponseAccepted

	tests := []struct {
		name string
		app  CampaignApplication
		want bool
	}{
		{"pending", CampaignApplication{Status: ApplicationStatusPending}, false},
		{"rejected", CampaignApplication{Status: ApplicationStatusRejected}, false},
		{"approved unresponded", CampaignApplication{Status: ApplicationStatusApproved}, true},
		{"approved already responded", CampaignApplication{
			Status:          ApplicationStatusApproved,
			CreatorResponse: &accepted,
			RespondedAt:     &now,
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.app.CanRespond(); got != tt.want {
				t.Errorf("CanRespond() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidApplicationStatus(t *testing.T) {
	valid := []string{ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected}
	for _, s := range valid {
		if !IsValidApplicationStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{"", "pending", "ACCEPTED", "DONE"}
	for _, s := range invalid {
		if IsValidApplicationStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

// Invitation responses carry the nested campaign and creator records so
// clients need no follow-up fetches.
func TestApplicationWithDetailsMarshalsNestedRecords(t *testing.T) {
	detail := ApplicationWithDetails{
		CampaignApplication: CampaignApplication{Status: ApplicationStatusApproved},
		Campaign:            &Campaign{Title: "Spring launch"},
		Creator:             &Creator{Username: "jane"},
	}

	data, err := json.Marshal(detail)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	if _, ok := out["campaign"]; !ok {
		t.Error("campaign not nested in payload")
	}
	if _, ok := out["creator"]; !ok {
		t.Error("creator not nested in payload")
	}
	if out["status"] != ApplicationStatusApproved {
		t.Errorf("status = %v, want %s", out["status"], ApplicationStatusApproved)
	}
}

func TestIsValidCreatorResponse(t *testing.T) {
	if !IsValidCreatorResponse(CreatorResponseAccepted) || !IsValidCreatorResponse(CreatorResponseDeclined) {
		t.Error("expected ACCEPTED and DECLINED to be valid")
	}
	for _, s := range []string{"", "accepted", "MAYBE", ApplicationStatusApproved} {
		if IsValidCreatorResponse(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
