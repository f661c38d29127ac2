package repositories

import (
	"context"
	"encoding/json"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MediaKitRepo struct {
	pool *pgxpool.Pool
}

func NewMediaKitRepo(pool *pgxpool.Pool) *MediaKitRepo {
	return &MediaKitRepo{pool: pool}
}

// Upsert replaces the creator's media kit document. One kit per creator.
func (r *MediaKitRepo) Upsert(ctx context.Context, kit *models.MediaKit) error {
	data, err := json.Marshal(kit.Data)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO media_kits (creator_id, data)
		VALUES ($1, $2)
		ON CONFLICT (creator_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
		RETURNING id, created_at, updated_at
	`, kit.CreatorID, data).Scan(&kit.ID, &kit.CreatedAt, &kit.UpdatedAt)
}

func (r *MediaKitRepo) GetByCreator(ctx context.Context, creatorID uuid.UUID) (*models.MediaKit, error) {
	var (
		kit models.MediaKit
		raw []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, creator_id, data, created_at, updated_at
		FROM media_kits WHERE creator_id = $1
	`, creatorID).Scan(&kit.ID, &kit.CreatorID, &raw, &kit.CreatedAt, &kit.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "media kit for creator %s", creatorID)
	}
	if err := json.Unmarshal(raw, &kit.Data); err != nil {
		return nil, err
	}
	return &kit, nil
}
