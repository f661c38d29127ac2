package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestCreateCampaignRequestValidation(t *testing.T) {
	v := validator.New()
	base := func() CreateCampaignRequest {
		return CreateCampaignRequest{
			Title:        "Spring launch",
			Description:  "Product seeding for the spring line",
			Budget:       1000,
			StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			Deliverables: []string{"1 reel"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateCampaignRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateCampaignRequest) {}, false},
		{"zero budget allowed", func(r *CreateCampaignRequest) { r.Budget = 0 }, false},
		{"negative budget rejected", func(r *CreateCampaignRequest) { r.Budget = -1 }, true},
		{"missing deliverables rejected", func(r *CreateCampaignRequest) { r.Deliverables = nil }, true},
		{"empty deliverables rejected", func(r *CreateCampaignRequest) { r.Deliverables = []string{} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)
			err := v.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterRequestPasswordLength(t *testing.T) {
	v := validator.New()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"six chars pass", "secret", false},
		{"five chars fail", "short", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{Email: "a@b.co", Password: tt.password, Role: "CREATOR"}
			err := v.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// The invite and review requests tell "field omitted" apart from "field
// sent empty": omitted fields stay nil so the storage layer preserves
// what the creator already submitted.
func TestInviteRequestOmittedFieldsStayNil(t *testing.T) {
	var req InviteRequest
	if err := json.Unmarshal([]byte(`{"creator_id":"6f1e1f66-8b2f-4f0e-9be9-1f6d1f000001"}`), &req); err != nil {
		t.Fatal(err)
	}
	if req.ProposedPrice != nil || req.Message != nil || req.Portfolio != nil {
		t.Errorf("omitted fields decoded non-nil: price=%v message=%v portfolio=%v",
			req.ProposedPrice, req.Message, req.Portfolio)
	}

	var withPortfolio InviteRequest
	if err := json.Unmarshal([]byte(`{"creator_id":"6f1e1f66-8b2f-4f0e-9be9-1f6d1f000001","portfolio":[]}`), &withPortfolio); err != nil {
		t.Fatal(err)
	}
	if withPortfolio.Portfolio == nil {
		t.Error("explicit empty portfolio decoded as nil")
	}
}

func TestUpdateApplicationStatusRequestFields(t *testing.T) {
	v := validator.New()
	price := 250.0
	msg := "revised offer"
	req := UpdateApplicationStatusRequest{
		Status:        "APPROVED",
		ProposedPrice: &price,
		Message:       &msg,
		Portfolio:     []string{"https://example.com/work"},
	}
	if err := v.Struct(req); err != nil {
		t.Errorf("full update rejected: %v", err)
	}

	statusOnly := UpdateApplicationStatusRequest{Status: "REJECTED"}
	if err := v.Struct(statusOnly); err != nil {
		t.Errorf("status-only update rejected: %v", err)
	}
}
