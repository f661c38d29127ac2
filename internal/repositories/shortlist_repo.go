package repositories

import (
	"context"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShortlistRepo struct {
	pool *pgxpool.Pool
}

func NewShortlistRepo(pool *pgxpool.Pool) *ShortlistRepo {
	return &ShortlistRepo{pool: pool}
}

func (r *ShortlistRepo) Add(ctx context.Context, s *models.Shortlist) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO shortlists (brand_id, creator_id, notes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, s.BrandID, s.CreatorID, s.Notes).Scan(&s.ID, &s.CreatedAt)
	return conflict(err, "creator %s already shortlisted", s.CreatorID)
}

func (r *ShortlistRepo) Remove(ctx context.Context, brandID, creatorID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM shortlists WHERE brand_id = $1 AND creator_id = $2
	`, brandID, creatorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("shortlist entry for creator %s", creatorID)
	}
	return nil
}

func (r *ShortlistRepo) UpdateNotes(ctx context.Context, brandID, creatorID uuid.UUID, notes *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shortlists SET notes = $1 WHERE brand_id = $2 AND creator_id = $3
	`, notes, brandID, creatorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("shortlist entry for creator %s", creatorID)
	}
	return nil
}

func (r *ShortlistRepo) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.ShortlistWithCreator, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.brand_id, s.creator_id, s.notes, s.created_at,
		       c.id, c.user_id, c.username, c.display_name, c.bio, c.avatar,
		       c.instagram_handle, c.instagram_followers, c.tiktok_handle,
		       c.tiktok_followers, c.youtube_handle, c.youtube_followers,
		       c.avg_engagement_rate, c.base_price, c.age, c.gender,
		       c.location, c.categories, c.is_verified, c.is_active,
		       c.created_at, c.updated_at
		FROM shortlists s
		JOIN creators c ON c.id = s.creator_id
		WHERE s.brand_id = $1
		ORDER BY s.created_at DESC
	`, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ShortlistWithCreator
	for rows.Next() {
		var (
			s models.ShortlistWithCreator
			c models.Creator
		)
		if err := rows.Scan(&s.ID, &s.BrandID, &s.CreatorID, &s.Notes, &s.CreatedAt,
			&c.ID, &c.UserID, &c.Username, &c.DisplayName, &c.Bio, &c.Avatar,
			&c.InstagramHandle, &c.InstagramFollowers, &c.TiktokHandle,
			&c.TiktokFollowers, &c.YoutubeHandle, &c.YoutubeFollowers,
			&c.AvgEngagementRate, &c.BasePrice, &c.Age, &c.Gender,
			&c.Location, &c.Categories, &c.IsVerified, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		s.Creator = &c
		out = append(out, s)
	}
	return out, rows.Err()
}
