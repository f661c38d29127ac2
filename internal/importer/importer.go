// Package importer loads creator profiles in bulk. Rows are matched to
// existing creators through the alias table first, then by canonical
// username, so re-imports update instead of duplicating.
package importer

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/auth"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

type Row struct {
	Username           string   `json:"username" validate:"required,max=100"`
	DisplayName        string   `json:"display_name" validate:"max=100"`
	Bio                *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	InstagramHandle    *string  `json:"instagram_handle,omitempty"`
	InstagramFollowers *int     `json:"instagram_followers,omitempty" validate:"omitempty,min=0"`
	TiktokHandle       *string  `json:"tiktok_handle,omitempty"`
	TiktokFollowers    *int     `json:"tiktok_followers,omitempty" validate:"omitempty,min=0"`
	YoutubeHandle      *string  `json:"youtube_handle,omitempty"`
	YoutubeFollowers   *int     `json:"youtube_followers,omitempty" validate:"omitempty,min=0"`
	AvgEngagementRate  *float64 `json:"avg_engagement_rate,omitempty" validate:"omitempty,min=0,max=100"`
	Location           *string  `json:"location,omitempty"`
	Categories         []string `json:"categories,omitempty"`
	Aliases            []string `json:"aliases,omitempty"`
}

type RowError struct {
	Index    int    `json:"index"`
	Username string `json:"username"`
	Error    string `json:"error"`
}

type Result struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors,omitempty"`
}

type Importer struct {
	userRepo    *repositories.UserRepo
	creatorRepo *repositories.CreatorRepo
	bcryptCost  int
	log         *zap.Logger
}

func New(userRepo *repositories.UserRepo, creatorRepo *repositories.CreatorRepo, bcryptCost int, log *zap.Logger) *Importer {
	return &Importer{
		userRepo:    userRepo,
		creatorRepo: creatorRepo,
		bcryptCost:  bcryptCost,
		log:         log,
	}
}

// Import processes rows one at a time. A bad row is reported and skipped,
// it never aborts the batch.
func (im *Importer) Import(ctx context.Context, rows []Row) (*Result, error) {
	result := &Result{}
	for i, row := range rows {
		updated, err := im.importRow(ctx, row)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{
				Index:    i,
				Username: row.Username,
				Error:    apperr.Message(err),
			})
			continue
		}
		if updated {
			result.Updated++
		} else {
			result.Created++
		}
	}
	im.log.Info("import finished",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed))
	return result, nil
}

func (im *Importer) importRow(ctx context.Context, row Row) (updated bool, err error) {
	username := models.NormalizeHandle(row.Username)
	if username == "" {
		return false, apperr.Validationf("username is required")
	}

	existing, err := im.lookup(ctx, username, row.Aliases)
	if err != nil {
		return false, err
	}

	if existing != nil {
		im.apply(existing, row)
		if err := im.creatorRepo.Update(ctx, existing); err != nil {
			return false, err
		}
		im.registerAliases(ctx, existing, username, row.Aliases)
		return true, nil
	}

	// Imported profiles get a stub account the creator can claim later.
	user := &models.User{
		Email:        fmt.Sprintf("%s@import.invalid", username),
		PasswordHash: randomHash(im.bcryptCost),
		Role:         models.RoleCreator,
	}
	if err := im.userRepo.Create(ctx, user); err != nil {
		return false, err
	}

	creator := &models.Creator{
		UserID:      user.ID,
		Username:    username,
		DisplayName: row.DisplayName,
		IsActive:    true,
	}
	if creator.DisplayName == "" {
		creator.DisplayName = username
	}
	im.apply(creator, row)
	if err := im.creatorRepo.Create(ctx, creator); err != nil {
		return false, err
	}
	im.registerAliases(ctx, creator, username, row.Aliases)
	return false, nil
}

// lookup tries each alias and the username against the alias table and
// canonical usernames.
func (im *Importer) lookup(ctx context.Context, username string, aliases []string) (*models.Creator, error) {
	names := append([]string{username}, aliases...)
	for _, name := range names {
		name = models.NormalizeHandle(name)
		if name == "" {
			continue
		}
		creator, err := im.creatorRepo.GetByAlias(ctx, name)
		if err == nil {
			return creator, nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
	}
	return nil, nil
}

func (im *Importer) registerAliases(ctx context.Context, creator *models.Creator, username string, aliases []string) {
	for _, alias := range append(aliases, username) {
		alias = models.NormalizeHandle(alias)
		if alias == "" {
			continue
		}
		if err := im.creatorRepo.AddAlias(ctx, creator.ID, alias); err != nil {
			im.log.Warn("alias registration failed",
				zap.String("alias", alias), zap.Error(err))
		}
	}
}

// apply copies non-empty row fields onto the creator.
func (im *Importer) apply(c *models.Creator, row Row) {
	if row.DisplayName != "" {
		c.DisplayName = row.DisplayName
	}
	if row.Bio != nil {
		c.Bio = row.Bio
	}
	if row.InstagramHandle != nil {
		h := models.NormalizeHandle(*row.InstagramHandle)
		c.InstagramHandle = &h
	}
	if row.InstagramFollowers != nil {
		c.InstagramFollowers = row.InstagramFollowers
	}
	if row.TiktokHandle != nil {
		h := models.NormalizeHandle(*row.TiktokHandle)
		c.TiktokHandle = &h
	}
	if row.TiktokFollowers != nil {
		c.TiktokFollowers = row.TiktokFollowers
	}
	if row.YoutubeHandle != nil {
		h := models.NormalizeHandle(*row.YoutubeHandle)
		c.YoutubeHandle = &h
	}
	if row.YoutubeFollowers != nil {
		c.YoutubeFollowers = row.YoutubeFollowers
	}
	if row.AvgEngagementRate != nil {
		c.AvgEngagementRate = row.AvgEngagementRate
	}
	if row.Location != nil {
		c.Location = row.Location
	}
	if len(row.Categories) > 0 {
		c.Categories = models.NormalizeCategories(append(c.Categories, row.Categories...))
	}
}

// randomHash produces an unguessable password hash for stub accounts.
func randomHash(cost int) string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	hash, err := auth.HashPassword(hex.EncodeToString(buf), cost)
	if err != nil {
		return ""
	}
	return hash
}
