package services

import (
	"context"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreatorService struct {
	creatorRepo *repositories.CreatorRepo
	auditRepo   *repositories.AuditRepo
	log         *zap.Logger
}

func NewCreatorService(creatorRepo *repositories.CreatorRepo, auditRepo *repositories.AuditRepo, log *zap.Logger) *CreatorService {
	return &CreatorService{creatorRepo: creatorRepo, auditRepo: auditRepo, log: log}
}

func (s *CreatorService) CreateProfile(ctx context.Context, userID uuid.UUID, c *models.Creator) (*models.Creator, error) {
	c.UserID = userID
	c.Username = models.NormalizeHandle(c.Username)
	if c.Username == "" {
		return nil, apperr.Validationf("username is required")
	}
	c.Categories = models.NormalizeCategories(c.Categories)
	c.IsActive = true

	if err := s.creatorRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "creator_profile_created",
		EntityType:  "creator",
		EntityID:    &c.ID,
	})
	return c, nil
}

func (s *CreatorService) GetByID(ctx context.Context, id uuid.UUID) (*models.Creator, error) {
	return s.creatorRepo.GetByID(ctx, id)
}

func (s *CreatorService) GetByUsername(ctx context.Context, username string) (*models.Creator, error) {
	return s.creatorRepo.GetByUsername(ctx, models.NormalizeHandle(username))
}

// UpdateProfile applies the patch after checking the actor owns the
// profile or is an admin.
func (s *CreatorService) UpdateProfile(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, patch func(*models.Creator)) (*models.Creator, error) {
	creator, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if creator.UserID != actorID && actorRole != models.RoleAdmin {
		return nil, apperr.Forbiddenf("not your profile")
	}

	patch(creator)
	creator.Username = models.NormalizeHandle(creator.Username)
	if creator.Username == "" {
		return nil, apperr.Validationf("username is required")
	}
	creator.Categories = models.NormalizeCategories(creator.Categories)

	if err := s.creatorRepo.Update(ctx, creator); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorLabel(actorRole),
		Action:      "creator_profile_updated",
		EntityType:  "creator",
		EntityID:    &creator.ID,
	})
	return creator, nil
}

func (s *CreatorService) List(ctx context.Context, f repositories.CreatorFilter) ([]models.Creator, int, error) {
	return s.creatorRepo.List(ctx, f)
}

func (s *CreatorService) Stats(ctx context.Context, id uuid.UUID) (*models.CreatorStats, error) {
	if _, err := s.creatorRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.creatorRepo.Stats(ctx, id)
}

func (s *CreatorService) DeleteProfile(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	creator, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if creator.UserID != actorID && actorRole != models.RoleAdmin {
		return apperr.Forbiddenf("not your profile")
	}
	if err := s.creatorRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorLabel(actorRole),
		Action:      "creator_profile_deleted",
		EntityType:  "creator",
		EntityID:    &id,
	})
	return nil
}

// SetVerified is admin-only.
func (s *CreatorService) SetVerified(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, verified bool) (*models.Creator, error) {
	if actorRole != models.RoleAdmin {
		return nil, apperr.Forbiddenf("admin only")
	}
	creator, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	creator.IsVerified = verified
	if err := s.creatorRepo.Update(ctx, creator); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "admin",
		Action:      "creator_verification_changed",
		EntityType:  "creator",
		EntityID:    &creator.ID,
		Meta:        map[string]any{"verified": verified},
	})
	return creator, nil
}

func actorLabel(role string) string {
	if role == models.RoleAdmin {
		return "admin"
	}
	return "user"
}
