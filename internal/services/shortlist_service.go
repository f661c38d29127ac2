package services

import (
	"context"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShortlistService struct {
	shortlistRepo *repositories.ShortlistRepo
	brandRepo     *repositories.BrandRepo
	creatorRepo   *repositories.CreatorRepo
	log           *zap.Logger
}

func NewShortlistService(
	shortlistRepo *repositories.ShortlistRepo,
	brandRepo *repositories.BrandRepo,
	creatorRepo *repositories.CreatorRepo,
	log *zap.Logger,
) *ShortlistService {
	return &ShortlistService{
		shortlistRepo: shortlistRepo,
		brandRepo:     brandRepo,
		creatorRepo:   creatorRepo,
		log:           log,
	}
}

func (s *ShortlistService) Add(ctx context.Context, userID, creatorID uuid.UUID, notes *string) (*models.Shortlist, error) {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.creatorRepo.GetByID(ctx, creatorID); err != nil {
		return nil, err
	}

	entry := &models.Shortlist{BrandID: brand.ID, CreatorID: creatorID, Notes: notes}
	if err := s.shortlistRepo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ShortlistService) Remove(ctx context.Context, userID, creatorID uuid.UUID) error {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.shortlistRepo.Remove(ctx, brand.ID, creatorID)
}

func (s *ShortlistService) UpdateNotes(ctx context.Context, userID, creatorID uuid.UUID, notes *string) error {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.shortlistRepo.UpdateNotes(ctx, brand.ID, creatorID, notes)
}

func (s *ShortlistService) List(ctx context.Context, userID uuid.UUID) ([]models.ShortlistWithCreator, error) {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.shortlistRepo.ListByBrand(ctx, brand.ID)
}
