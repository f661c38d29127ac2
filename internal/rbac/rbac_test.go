package rbac

import (
	"testing"

	"github.com/creator-marketplace/backend/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		permission string
		want       bool
	}{
		{"admin has everything", models.RoleAdmin, PermManageUsers, true},
		{"admin has brand perms", models.RoleAdmin, PermManageCampaign, true},
		{"brand manages campaigns", models.RoleBrand, PermManageCampaign, true},
		{"brand reviews applications", models.RoleBrand, PermReviewApplication, true},
		{"brand cannot apply", models.RoleBrand, PermApplyToCampaign, false},
		{"brand cannot use toolkit", models.RoleBrand, PermManageToolkit, false},
		{"creator applies", models.RoleCreator, PermApplyToCampaign, true},
		{"creator responds", models.RoleCreator, PermRespondApplication, true},
		{"creator cannot invite", models.RoleCreator, PermInviteCreator, false},
		{"creator cannot manage users", models.RoleCreator, PermManageUsers, false},
		{"unknown role has nothing", "GUEST", PermApplyToCampaign, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.want {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.want)
			}
		})
	}
}
