package services

import (
	"context"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService covers the admin user-management surface.
type UserService struct {
	userRepo  *repositories.UserRepo
	auditRepo *repositories.AuditRepo
	log       *zap.Logger
}

func NewUserService(userRepo *repositories.UserRepo, auditRepo *repositories.AuditRepo, log *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, auditRepo: auditRepo, log: log}
}

func (s *UserService) List(ctx context.Context, f repositories.UserFilter) ([]models.User, int, error) {
	return s.userRepo.List(ctx, f)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateRole(ctx context.Context, actorID, id uuid.UUID, role string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, apperr.Validationf("unknown role %s", role)
	}
	if actorID == id {
		return nil, apperr.Validationf("cannot change your own role")
	}
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "admin",
		Action:      "user_role_changed",
		EntityType:  "user",
		EntityID:    &id,
		Meta:        map[string]any{"role": role},
	})
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return apperr.Validationf("cannot delete your own account")
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "admin",
		Action:      "user_deleted",
		EntityType:  "user",
		EntityID:    &id,
	})
	return nil
}

func (s *UserService) AuditLogs(ctx context.Context, f repositories.AuditFilter) ([]models.AuditLog, error) {
	return s.auditRepo.List(ctx, f)
}
