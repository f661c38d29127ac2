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

type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

const applicationColumns = `
	id, campaign_id, creator_id, status, proposed_price, message,
	portfolio, creator_response, responded_at, created_at, updated_at`

func scanApplication(row interface{ Scan(...any) error }, a *models.CampaignApplication) error {
	return row.Scan(&a.ID, &a.CampaignID, &a.CreatorID, &a.Status, &a.ProposedPrice,
		&a.Message, &a.Portfolio, &a.CreatorResponse, &a.RespondedAt,
		&a.CreatedAt, &a.UpdatedAt)
}

func (r *ApplicationRepo) Create(ctx context.Context, a *models.CampaignApplication) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaign_applications (campaign_id, creator_id, status,
			proposed_price, message, portfolio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.CreatorID, a.Status, a.ProposedPrice, a.Message, textArray(a.Portfolio),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return conflict(err, "application to campaign %s already exists", a.CampaignID)
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignApplication, error) {
	var a models.CampaignApplication
	err := scanApplication(r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM campaign_applications WHERE id = $1`, id), &a)
	if err != nil {
		return nil, notFound(err, "application %s", id)
	}
	return &a, nil
}

func (r *ApplicationRepo) GetByCampaignAndCreator(ctx context.Context, campaignID, creatorID uuid.UUID) (*models.CampaignApplication, error) {
	var a models.CampaignApplication
	err := scanApplication(r.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+` FROM campaign_applications
		WHERE campaign_id = $1 AND creator_id = $2
	`, campaignID, creatorID), &a)
	if err != nil {
		return nil, notFound(err, "application for campaign %s by creator %s", campaignID, creatorID)
	}
	return &a, nil
}

// UpdateByBrand writes the brand-side decision and any revised proposal
// fields alongside it. Nil fields keep their stored value.
func (r *ApplicationRepo) UpdateByBrand(ctx context.Context, id uuid.UUID, status string, proposedPrice *float64, message *string, portfolio []string) (*models.CampaignApplication, error) {
	var a models.CampaignApplication
	err := scanApplication(r.pool.QueryRow(ctx, `
		UPDATE campaign_applications SET
			status = $1,
			proposed_price = COALESCE($2, proposed_price),
			message = COALESCE($3, message),
			portfolio = COALESCE($4::text[], portfolio),
			updated_at = now()
		WHERE id = $5
		RETURNING `+applicationColumns, status, proposedPrice, message, portfolio, id), &a)
	if err != nil {
		return nil, notFound(err, "application %s", id)
	}
	return &a, nil
}

// RecordResponse writes the creator-side terminal response. Fails if a
// response is already recorded so concurrent responders cannot both win.
func (r *ApplicationRepo) RecordResponse(ctx context.Context, id uuid.UUID, response string, at time.Time) (*models.CampaignApplication, error) {
	var a models.CampaignApplication
	err := scanApplication(r.pool.QueryRow(ctx, `
		UPDATE campaign_applications
		SET creator_response = $1, responded_at = $2, updated_at = now()
		WHERE id = $3 AND creator_response IS NULL
		RETURNING `+applicationColumns, response, at, id), &a)
	if err != nil {
		return nil, notFound(err, "unresponded application %s", id)
	}
	return &a, nil
}

// Upsert implements the invitation path: create the row as APPROVED, or
// if the creator already applied, force the status to APPROVED while
// keeping whatever the creator submitted. A nil portfolio means "not
// supplied", so the fresh-insert branch coalesces it to an empty array
// and the update branch leaves the stored one alone.
func (r *ApplicationRepo) Upsert(ctx context.Context, a *models.CampaignApplication) error {
	return scanApplication(r.pool.QueryRow(ctx, `
		INSERT INTO campaign_applications (campaign_id, creator_id, status,
			proposed_price, message, portfolio)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::text[], '{}'))
		ON CONFLICT (campaign_id, creator_id) DO UPDATE SET
			status = EXCLUDED.status,
			proposed_price = COALESCE($4, campaign_applications.proposed_price),
			message = COALESCE($5, campaign_applications.message),
			portfolio = COALESCE($6::text[], campaign_applications.portfolio),
			updated_at = now()
		RETURNING `+applicationColumns,
		a.CampaignID, a.CreatorID, a.Status, a.ProposedPrice, a.Message, a.Portfolio), a)
}

// RecipientUserIDs resolves the two accounts interested in an
// application's lifecycle: the applying creator and the campaign's
// brand.
func (r *ApplicationRepo) RecipientUserIDs(ctx context.Context, id uuid.UUID) (creatorUserID, brandUserID uuid.UUID, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT cr.user_id, b.user_id
		FROM campaign_applications a
		JOIN creators cr ON cr.id = a.creator_id
		JOIN campaigns c ON c.id = a.campaign_id
		JOIN brands b ON b.id = c.brand_id
		WHERE a.id = $1
	`, id).Scan(&creatorUserID, &brandUserID)
	if err != nil {
		err = notFound(err, "application %s", id)
	}
	return creatorUserID, brandUserID, err
}

type ApplicationFilter struct {
	CampaignID *uuid.UUID
	CreatorID  *uuid.UUID
	BrandID    *uuid.UUID
	Status     *string
	Responded  *bool
	Limit      int
	Offset     int
}

func (r *ApplicationRepo) List(ctx context.Context, f ApplicationFilter) ([]models.ApplicationWithDetails, int, error) {
	where := []string{}
	args := []any{}
	argIdx := 1

	add := func(cond string, val any) {
		where = append(where, fmt.Sprintf(cond, argIdx))
		args = append(args, val)
		argIdx++
	}

	if f.CampaignID != nil {
		add("a.campaign_id = $%d", *f.CampaignID)
	}
	if f.CreatorID != nil {
		add("a.creator_id = $%d", *f.CreatorID)
	}
	if f.BrandID != nil {
		add("c.brand_id = $%d", *f.BrandID)
	}
	if f.Status != nil {
		add("a.status = $%d", *f.Status)
	}
	if f.Responded != nil {
		if *f.Responded {
			where = append(where, "a.creator_response IS NOT NULL")
		} else {
			where = append(where, "a.creator_response IS NULL")
		}
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	from := `
		FROM campaign_applications a
		JOIN campaigns c ON c.id = a.campaign_id
		JOIN creators cr ON cr.id = a.creator_id`

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*)"+from+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT a.id, a.campaign_id, a.creator_id, a.status, a.proposed_price,
		       a.message, a.portfolio, a.creator_response, a.responded_at,
		       a.created_at, a.updated_at,
		       c.id, c.brand_id, c.title, c.description, c.budget, c.start_date,
		       c.end_date, c.deliverables, c.requirements, c.target_audience,
		       c.preferred_categories, c.min_followers, c.max_followers, c.status,
		       c.created_at, c.updated_at,
		       cr.id, cr.user_id, cr.username, cr.display_name, cr.bio, cr.avatar,
		       cr.instagram_handle, cr.instagram_followers, cr.tiktok_handle,
		       cr.tiktok_followers, cr.youtube_handle, cr.youtube_followers,
		       cr.avg_engagement_rate, cr.base_price, cr.age, cr.gender,
		       cr.location, cr.categories, cr.is_verified, cr.is_active,
		       cr.created_at, cr.updated_at` + from + cond +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithDetails
	for rows.Next() {
		var (
			a  models.ApplicationWithDetails
			c  models.Campaign
			cr models.Creator
		)
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.CreatorID, &a.Status, &a.ProposedPrice,
			&a.Message, &a.Portfolio, &a.CreatorResponse, &a.RespondedAt,
			&a.CreatedAt, &a.UpdatedAt,
			&c.ID, &c.BrandID, &c.Title, &c.Description, &c.Budget, &c.StartDate,
			&c.EndDate, &c.Deliverables, &c.Requirements, &c.TargetAudience,
			&c.PreferredCategories, &c.MinFollowers, &c.MaxFollowers, &c.Status,
			&c.CreatedAt, &c.UpdatedAt,
			&cr.ID, &cr.UserID, &cr.Username, &cr.DisplayName, &cr.Bio, &cr.Avatar,
			&cr.InstagramHandle, &cr.InstagramFollowers, &cr.TiktokHandle,
			&cr.TiktokFollowers, &cr.YoutubeHandle, &cr.YoutubeFollowers,
			&cr.AvgEngagementRate, &cr.BasePrice, &cr.Age, &cr.Gender,
			&cr.Location, &cr.Categories, &cr.IsVerified, &cr.IsActive,
			&cr.CreatedAt, &cr.UpdatedAt); err != nil {
			return nil, 0, err
		}
		a.Campaign = &c
		a.Creator = &cr
		apps = append(apps, a)
	}
	return apps, total, rows.Err()
}
