package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepo(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// Record upserts the snapshot for (creator, platform, date) so repeated
// refreshes on the same day overwrite instead of piling up.
func (r *AnalyticsRepo) Record(ctx context.Context, s *models.AnalyticsSnapshot) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO analytics_snapshots (creator_id, platform, date, followers,
			engagement_rate, reach, impressions, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (creator_id, platform, date) DO UPDATE SET
			followers = EXCLUDED.followers,
			engagement_rate = EXCLUDED.engagement_rate,
			reach = EXCLUDED.reach,
			impressions = EXCLUDED.impressions,
			source = EXCLUDED.source
		RETURNING id, created_at
	`, s.CreatorID, s.Platform, s.Date, s.Followers,
		s.EngagementRate, s.Reach, s.Impressions, s.Source,
	).Scan(&s.ID, &s.CreatedAt)
}

type AnalyticsFilter struct {
	CreatorID uuid.UUID
	Platform  *string
	From      *time.Time
	To        *time.Time
	Limit     int
}

func (r *AnalyticsRepo) List(ctx context.Context, f AnalyticsFilter) ([]models.AnalyticsSnapshot, error) {
	where := []string{"creator_id = $1"}
	args := []any{f.CreatorID}
	argIdx := 2

	if f.Platform != nil {
		where = append(where, fmt.Sprintf("platform = $%d", argIdx))
		args = append(args, *f.Platform)
		argIdx++
	}
	if f.From != nil {
		where = append(where, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *f.From)
		argIdx++
	}
	if f.To != nil {
		where = append(where, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *f.To)
		argIdx++
	}

	limit := f.Limit
	if limit <= 0 || limit > 365 {
		limit = 90
	}
	query := `
		SELECT id, creator_id, platform, date, followers, engagement_rate,
		       reach, impressions, source, created_at
		FROM analytics_snapshots
		WHERE ` + strings.Join(where, " AND ") +
		fmt.Sprintf(" ORDER BY date DESC LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []models.AnalyticsSnapshot
	for rows.Next() {
		var s models.AnalyticsSnapshot
		if err := rows.Scan(&s.ID, &s.CreatorID, &s.Platform, &s.Date, &s.Followers,
			&s.EngagementRate, &s.Reach, &s.Impressions, &s.Source, &s.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
