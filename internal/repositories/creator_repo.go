package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreatorRepo struct {
	pool *pgxpool.Pool
}

func NewCreatorRepo(pool *pgxpool.Pool) *CreatorRepo {
	return &CreatorRepo{pool: pool}
}

const creatorColumns = `
	id, user_id, username, display_name, bio, avatar,
	instagram_handle, instagram_followers, tiktok_handle, tiktok_followers,
	youtube_handle, youtube_followers, avg_engagement_rate, base_price,
	age, gender, location, categories, is_verified, is_active,
	created_at, updated_at`

func scanCreator(row interface{ Scan(...any) error }, c *models.Creator) error {
	return row.Scan(&c.ID, &c.UserID, &c.Username, &c.DisplayName, &c.Bio, &c.Avatar,
		&c.InstagramHandle, &c.InstagramFollowers, &c.TiktokHandle, &c.TiktokFollowers,
		&c.YoutubeHandle, &c.YoutubeFollowers, &c.AvgEngagementRate, &c.BasePrice,
		&c.Age, &c.Gender, &c.Location, &c.Categories, &c.IsVerified, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt)
}

func (r *CreatorRepo) Create(ctx context.Context, c *models.Creator) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO creators (user_id, username, display_name, bio, avatar,
			instagram_handle, instagram_followers, tiktok_handle, tiktok_followers,
			youtube_handle, youtube_followers, avg_engagement_rate, base_price,
			age, gender, location, categories, is_verified, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Username, c.DisplayName, c.Bio, c.Avatar,
		c.InstagramHandle, c.InstagramFollowers, c.TiktokHandle, c.TiktokFollowers,
		c.YoutubeHandle, c.YoutubeFollowers, c.AvgEngagementRate, c.BasePrice,
		c.Age, c.Gender, c.Location, textArray(c.Categories), c.IsVerified, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return conflict(err, "creator profile for user or username %s already exists", c.Username)
}

func (r *CreatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Creator, error) {
	var c models.Creator
	err := scanCreator(r.pool.QueryRow(ctx,
		`SELECT `+creatorColumns+` FROM creators WHERE id = $1`, id), &c)
	if err != nil {
		return nil, notFound(err, "creator %s", id)
	}
	return &c, nil
}

func (r *CreatorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	var c models.Creator
	err := scanCreator(r.pool.QueryRow(ctx,
		`SELECT `+creatorColumns+` FROM creators WHERE user_id = $1`, userID), &c)
	if err != nil {
		return nil, notFound(err, "creator profile for user %s", userID)
	}
	return &c, nil
}

func (r *CreatorRepo) GetByUsername(ctx context.Context, username string) (*models.Creator, error) {
	var c models.Creator
	err := scanCreator(r.pool.QueryRow(ctx,
		`SELECT `+creatorColumns+` FROM creators WHERE lower(username) = lower($1)`, username), &c)
	if err != nil {
		return nil, notFound(err, "creator %s", username)
	}
	return &c, nil
}

func (r *CreatorRepo) Update(ctx context.Context, c *models.Creator) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE creators SET
			username = $1, display_name = $2, bio = $3, avatar = $4,
			instagram_handle = $5, instagram_followers = $6,
			tiktok_handle = $7, tiktok_followers = $8,
			youtube_handle = $9, youtube_followers = $10,
			avg_engagement_rate = $11, base_price = $12,
			age = $13, gender = $14, location = $15, categories = $16,
			is_verified = $17, is_active = $18, updated_at = now()
		WHERE id = $19
		RETURNING updated_at
	`, c.Username, c.DisplayName, c.Bio, c.Avatar,
		c.InstagramHandle, c.InstagramFollowers,
		c.TiktokHandle, c.TiktokFollowers,
		c.YoutubeHandle, c.YoutubeFollowers,
		c.AvgEngagementRate, c.BasePrice,
		c.Age, c.Gender, c.Location, textArray(c.Categories),
		c.IsVerified, c.IsActive, c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		err = notFound(err, "creator %s", c.ID)
		return conflict(err, "username %s already taken", c.Username)
	}
	return nil
}

func (r *CreatorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM creators WHERE id = $1`, id)
	return err
}

// UpdateFollowers is used by the stats refresher. Nil counts are left
// untouched.
func (r *CreatorRepo) UpdateFollowers(ctx context.Context, id uuid.UUID, instagram, tiktok, youtube *int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE creators SET
			instagram_followers = COALESCE($1, instagram_followers),
			tiktok_followers = COALESCE($2, tiktok_followers),
			youtube_followers = COALESCE($3, youtube_followers),
			updated_at = now()
		WHERE id = $4
	`, instagram, tiktok, youtube, id)
	return err
}

type CreatorFilter struct {
	Category     *string
	Location     *string
	Gender       *string
	MinFollowers *int
	MaxFollowers *int
	Verified     *bool
	Active       *bool
	Search       *string
	Sort         string
	Limit        int
	Offset       int
}

// sortClause whitelists sort keys; anything else falls back to newest
// first.
func sortClause(sort string) string {
	switch sort {
	case "followers":
		return "COALESCE(instagram_followers,0) + COALESCE(tiktok_followers,0) + COALESCE(youtube_followers,0) DESC"
	case "engagement":
		return "avg_engagement_rate DESC NULLS LAST"
	case "price":
		return "base_price ASC NULLS LAST"
	default:
		return "created_at DESC"
	}
}

func (r *CreatorRepo) List(ctx context.Context, f CreatorFilter) ([]models.Creator, int, error) {
	where := []string{}
	args := []any{}
	argIdx := 1

	add := func(cond string, val any) {
		where = append(where, fmt.Sprintf(cond, argIdx))
		args = append(args, val)
		argIdx++
	}

	if f.Category != nil {
		add("$%d = ANY(categories)", strings.ToLower(strings.TrimSpace(*f.Category)))
	}
	if f.Location != nil {
		add("location ILIKE $%d", "%"+*f.Location+"%")
	}
	if f.Gender != nil {
		add("gender = $%d", *f.Gender)
	}
	if f.MinFollowers != nil {
		add("COALESCE(instagram_followers,0) + COALESCE(tiktok_followers,0) + COALESCE(youtube_followers,0) >= $%d", *f.MinFollowers)
	}
	if f.MaxFollowers != nil {
		add("COALESCE(instagram_followers,0) + COALESCE(tiktok_followers,0) + COALESCE(youtube_followers,0) <= $%d", *f.MaxFollowers)
	}
	if f.Verified != nil {
		add("is_verified = $%d", *f.Verified)
	}
	if f.Active != nil {
		add("is_active = $%d", *f.Active)
	}
	if f.Search != nil {
		where = append(where, fmt.Sprintf("(username ILIKE $%d OR display_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*f.Search+"%")
		argIdx++
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM creators"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + creatorColumns + ` FROM creators` + cond +
		fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", sortClause(f.Sort), argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var creators []models.Creator
	for rows.Next() {
		var c models.Creator
		if err := scanCreator(rows, &c); err != nil {
			return nil, 0, err
		}
		creators = append(creators, c)
	}
	return creators, total, rows.Err()
}

// Stats counts a creator's applications and shortlist appearances.
func (r *CreatorRepo) Stats(ctx context.Context, creatorID uuid.UUID) (*models.CreatorStats, error) {
	var s models.CreatorStats
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'APPROVED'),
		       count(*) FILTER (WHERE creator_response = 'ACCEPTED')
		FROM campaign_applications WHERE creator_id = $1
	`, creatorID).Scan(&s.TotalApplications, &s.ApprovedApplications, &s.AcceptedCollaborations)
	if err != nil {
		return nil, err
	}
	if s.TotalApplications > 0 {
		s.ApprovalRate = float64(s.ApprovedApplications) / float64(s.TotalApplications)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT count(*) FROM shortlists WHERE creator_id = $1`, creatorID,
	).Scan(&s.ShortlistCount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActive returns every active creator, used by matching and the stats
// refresher. No pagination: the candidate pool is scored in memory.
func (r *CreatorRepo) ListActive(ctx context.Context) ([]*models.Creator, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+creatorColumns+` FROM creators WHERE is_active ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creators []*models.Creator
	for rows.Next() {
		var c models.Creator
		if err := scanCreator(rows, &c); err != nil {
			return nil, err
		}
		creators = append(creators, &c)
	}
	return creators, rows.Err()
}

// AddAlias records an alternate spelling that import should resolve to an
// existing creator.
func (r *CreatorRepo) AddAlias(ctx context.Context, creatorID uuid.UUID, alias string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO creator_aliases (creator_id, alias)
		VALUES ($1, lower($2))
		ON CONFLICT (alias) DO NOTHING
	`, creatorID, alias)
	return err
}

// GetByAlias resolves a username through the alias table, falling back to
// the canonical username.
func (r *CreatorRepo) GetByAlias(ctx context.Context, alias string) (*models.Creator, error) {
	var c models.Creator
	err := scanCreator(r.pool.QueryRow(ctx, `
		SELECT `+creatorColumns+` FROM creators
		WHERE id = (SELECT creator_id FROM creator_aliases WHERE alias = lower($1))
		   OR lower(username) = lower($1)
		LIMIT 1
	`, alias), &c)
	if err != nil {
		return nil, notFound(err, "creator %s", alias)
	}
	return &c, nil
}
