package services

import (
	"context"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BrandService struct {
	brandRepo       *repositories.BrandRepo
	applicationRepo *repositories.ApplicationRepo
	auditRepo       *repositories.AuditRepo
	log             *zap.Logger
}

func NewBrandService(
	brandRepo *repositories.BrandRepo,
	applicationRepo *repositories.ApplicationRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *BrandService {
	return &BrandService{
		brandRepo:       brandRepo,
		applicationRepo: applicationRepo,
		auditRepo:       auditRepo,
		log:             log,
	}
}

func (s *BrandService) CreateProfile(ctx context.Context, userID uuid.UUID, b *models.Brand) (*models.Brand, error) {
	if b.CompanyName == "" {
		return nil, apperr.Validationf("company name is required")
	}
	b.UserID = userID
	if err := s.brandRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "brand_profile_created",
		EntityType:  "brand",
		EntityID:    &b.ID,
	})
	return b, nil
}

func (s *BrandService) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	return s.brandRepo.GetByID(ctx, id)
}

func (s *BrandService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Brand, error) {
	return s.brandRepo.GetByUserID(ctx, userID)
}

func (s *BrandService) UpdateProfile(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, patch func(*models.Brand)) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand.UserID != actorID && actorRole != models.RoleAdmin {
		return nil, apperr.Forbiddenf("not your profile")
	}

	patch(brand)
	if brand.CompanyName == "" {
		return nil, apperr.Validationf("company name is required")
	}
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) List(ctx context.Context, f repositories.BrandFilter) ([]models.Brand, int, error) {
	return s.brandRepo.List(ctx, f)
}

func (s *BrandService) DeleteProfile(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if brand.UserID != actorID && actorRole != models.RoleAdmin {
		return apperr.Forbiddenf("not your profile")
	}
	if err := s.brandRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorLabel(actorRole),
		Action:      "brand_profile_deleted",
		EntityType:  "brand",
		EntityID:    &id,
	})
	return nil
}

// Dashboard bundles the stats block with the most recent applications
// across all of the brand's campaigns.
type BrandDashboard struct {
	Stats              *models.BrandStats              `json:"stats"`
	RecentApplications []models.ApplicationWithDetails `json:"recent_applications"`
}

func (s *BrandService) Stats(ctx context.Context, brandID uuid.UUID) (*models.BrandStats, error) {
	return s.brandRepo.Stats(ctx, brandID)
}

func (s *BrandService) Dashboard(ctx context.Context, brandID uuid.UUID) (*BrandDashboard, error) {
	stats, err := s.brandRepo.Stats(ctx, brandID)
	if err != nil {
		return nil, err
	}
	recent, _, err := s.applicationRepo.List(ctx, repositories.ApplicationFilter{
		BrandID: &brandID,
		Limit:   10,
	})
	if err != nil {
		return nil, err
	}
	return &BrandDashboard{Stats: stats, RecentApplications: recent}, nil
}
