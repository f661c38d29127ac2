package services

import (
	"context"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/matching"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	brandRepo    *repositories.BrandRepo
	creatorRepo  *repositories.CreatorRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	brandRepo *repositories.BrandRepo,
	creatorRepo *repositories.CreatorRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
		creatorRepo:  creatorRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// brandFor resolves the acting user's brand profile.
func (s *CampaignService) brandFor(ctx context.Context, userID uuid.UUID) (*models.Brand, error) {
	return s.brandRepo.GetByUserID(ctx, userID)
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) (*models.Campaign, error) {
	brand, err := s.brandFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.BrandID = brand.ID

	if c.Budget < 0 {
		return nil, apperr.Validationf("budget cannot be negative")
	}
	if len(c.Deliverables) == 0 {
		return nil, apperr.Validationf("deliverables must not be empty")
	}
	if !c.EndDate.After(c.StartDate) {
		return nil, apperr.Validationf("end date must be after start date")
	}
	if c.MinFollowers != nil && c.MaxFollowers != nil && *c.MinFollowers > *c.MaxFollowers {
		return nil, apperr.Validationf("min followers exceeds max followers")
	}
	c.PreferredCategories = models.NormalizeCategories(c.PreferredCategories)
	if c.Status == "" {
		c.Status = models.CampaignStatusActive
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return nil, apperr.Validationf("unknown campaign status %s", c.Status)
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        map[string]any{"status": c.Status},
	})
	return c, nil
}

func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*models.CampaignWithBrand, error) {
	return s.campaignRepo.GetWithBrand(ctx, id)
}

func (s *CampaignService) List(ctx context.Context, f repositories.CampaignFilter) ([]models.CampaignWithBrand, int, error) {
	return s.campaignRepo.List(ctx, f)
}

// ListForBrand scopes the listing to the acting brand's own campaigns.
func (s *CampaignService) ListForBrand(ctx context.Context, userID uuid.UUID, f repositories.CampaignFilter) ([]models.CampaignWithBrand, int, error) {
	brand, err := s.brandFor(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	f.BrandID = &brand.ID
	return s.campaignRepo.List(ctx, f)
}

// ownedCampaign loads the campaign and enforces brand ownership (admins
// pass).
func (s *CampaignService) ownedCampaign(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole == models.RoleAdmin {
		return campaign, nil
	}
	brand, err := s.brandFor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brand.ID {
		return nil, apperr.Forbiddenf("not your campaign")
	}
	return campaign, nil
}

func (s *CampaignService) Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, patch func(*models.Campaign)) (*models.Campaign, error) {
	campaign, err := s.ownedCampaign(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	patch(campaign)
	if campaign.Budget < 0 {
		return nil, apperr.Validationf("budget cannot be negative")
	}
	if len(campaign.Deliverables) == 0 {
		return nil, apperr.Validationf("deliverables must not be empty")
	}
	if !campaign.EndDate.After(campaign.StartDate) {
		return nil, apperr.Validationf("end date must be after start date")
	}
	if !models.IsValidCampaignStatus(campaign.Status) {
		return nil, apperr.Validationf("unknown campaign status %s", campaign.Status)
	}
	campaign.PreferredCategories = models.NormalizeCategories(campaign.PreferredCategories)

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, status string) (*models.Campaign, error) {
	if !models.IsValidCampaignStatus(status) {
		return nil, apperr.Validationf("unknown campaign status %s", status)
	}
	campaign, err := s.ownedCampaign(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	old := campaign.Status
	campaign.Status = status
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorLabel(actorRole),
		Action:      "campaign_status_changed",
		EntityType:  "campaign",
		EntityID:    &campaign.ID,
		Meta:        map[string]any{"old_status": old, "new_status": status},
	})
	return campaign, nil
}

// Delete is restricted to campaigns that never went live.
func (s *CampaignService) Delete(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	campaign, err := s.ownedCampaign(ctx, actorID, actorRole, id)
	if err != nil {
		return err
	}
	if campaign.Status != models.CampaignStatusDraft && actorRole != models.RoleAdmin {
		return apperr.InvalidStatef("only draft campaigns can be deleted")
	}
	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorLabel(actorRole),
		Action:      "campaign_deleted",
		EntityType:  "campaign",
		EntityID:    &id,
	})
	return nil
}

// RecommendCreators ranks active creators against the campaign's
// targeting. Only the owning brand (or an admin) may call it.
func (s *CampaignService) RecommendCreators(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, limit int) ([]matching.ScoredCreator, error) {
	campaign, err := s.ownedCampaign(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	creators, err := s.creatorRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	ranked := matching.Rank(creators, matching.FromCampaign(campaign))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// RecommendByCategory ranks active creators without a campaign context,
// optionally narrowed to one category.
func (s *CampaignService) RecommendByCategory(ctx context.Context, category string, limit int) ([]matching.ScoredCreator, error) {
	creators, err := s.creatorRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	crit := matching.Criteria{}
	if category != "" {
		crit.Categories = []string{category}
	}

	ranked := matching.Rank(creators, crit)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
