package services

import (
	"context"
	"errors"
	"strings"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/auth"
	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo    *repositories.UserRepo
	creatorRepo *repositories.CreatorRepo
	brandRepo   *repositories.BrandRepo
	auditRepo   *repositories.AuditRepo
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthService(
	userRepo *repositories.UserRepo,
	creatorRepo *repositories.CreatorRepo,
	brandRepo *repositories.BrandRepo,
	auditRepo *repositories.AuditRepo,
	cfg *config.Config,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		creatorRepo: creatorRepo,
		brandRepo:   brandRepo,
		auditRepo:   auditRepo,
		cfg:         cfg,
		log:         log,
	}
}

// Register creates the account and returns it with a signed token.
// Admin accounts cannot be self-registered.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (*models.User, string, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role != models.RoleCreator && role != models.RoleBrand {
		return nil, "", apperr.Validationf("role must be CREATOR or BRAND")
	}

	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.JWTExpiration)
	if err != nil {
		return nil, "", err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &user.ID,
		ActorType:   "user",
		Action:      "user_registered",
		EntityType:  "user",
		EntityID:    &user.ID,
		Meta:        map[string]any{"role": user.Role},
	})

	s.log.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))
	return user, token, nil
}

// Login verifies credentials. Wrong email and wrong password return the
// same error so callers cannot probe registered addresses.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.ErrUnauthorized
		}
		return nil, "", err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperr.ErrUnauthorized
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.JWTExpiration)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Refresh issues a fresh token for an already-authenticated user.
func (s *AuthService) Refresh(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.JWTExpiration)
}

// Me loads the account plus whichever profile is attached.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.UserWithProfiles, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &models.UserWithProfiles{User: *user}
	switch user.Role {
	case models.RoleCreator:
		creator, err := s.creatorRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		out.Creator = creator
	case models.RoleBrand:
		brand, err := s.brandRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		out.Brand = brand
	}
	return out, nil
}
