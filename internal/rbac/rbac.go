// Package rbac maps platform roles onto the actions they may perform.
package rbac

import "github.com/creator-marketplace/backend/internal/models"

// Permission constants
const (
	PermManageCampaign     = "manage_campaign"
	PermReviewApplication  = "review_application"
	PermApplyToCampaign    = "apply_to_campaign"
	PermRespondApplication = "respond_application"
	PermInviteCreator      = "invite_creator"
	PermManageShortlist    = "manage_shortlist"
	PermManageToolkit      = "manage_toolkit"
	PermManageUsers        = "manage_users"
	PermImportCreators     = "import_creators"
)

// RolePermissions defines what each role can do. Admin is handled
// separately: it holds every permission.
var RolePermissions = map[string][]string{
	models.RoleBrand: {
		PermManageCampaign, PermReviewApplication, PermInviteCreator,
		PermManageShortlist,
	},
	models.RoleCreator: {
		PermApplyToCampaign, PermRespondApplication, PermManageToolkit,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	if role == models.RoleAdmin {
		return true
	}
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
