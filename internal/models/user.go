package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleCreator = "CREATOR"
	RoleBrand   = "BRAND"
	RoleAdmin   = "ADMIN"
)

var AllRoles = []string{RoleCreator, RoleBrand, RoleAdmin}

func IsValidRole(r string) bool {
	for _, role := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserWithProfiles embeds User plus the profile attached to it, if any.
// At most one of Creator/Brand is non-nil.
type UserWithProfiles struct {
	User
	Creator *Creator `json:"creator,omitempty"`
	Brand   *Brand   `json:"brand,omitempty"`
}
