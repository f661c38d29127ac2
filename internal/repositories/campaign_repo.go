package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `
	id, brand_id, title, description, budget, start_date, end_date,
	deliverables, requirements, target_audience, preferred_categories,
	min_followers, max_followers, status, created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }, c *models.Campaign) error {
	return row.Scan(&c.ID, &c.BrandID, &c.Title, &c.Description, &c.Budget,
		&c.StartDate, &c.EndDate, &c.Deliverables, &c.Requirements,
		&c.TargetAudience, &c.PreferredCategories, &c.MinFollowers,
		&c.MaxFollowers, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (brand_id, title, description, budget, start_date,
			end_date, deliverables, requirements, target_audience,
			preferred_categories, min_followers, max_followers, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, c.BrandID, c.Title, c.Description, c.Budget, c.StartDate,
		c.EndDate, textArray(c.Deliverables), textArray(c.Requirements), c.TargetAudience,
		textArray(c.PreferredCategories), c.MinFollowers, c.MaxFollowers, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id), &c)
	if err != nil {
		return nil, notFound(err, "campaign %s", id)
	}
	return &c, nil
}

func (r *CampaignRepo) GetWithBrand(ctx context.Context, id uuid.UUID) (*models.CampaignWithBrand, error) {
	var c models.CampaignWithBrand
	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.brand_id, c.title, c.description, c.budget, c.start_date,
		       c.end_date, c.deliverables, c.requirements, c.target_audience,
		       c.preferred_categories, c.min_followers, c.max_followers, c.status,
		       c.created_at, c.updated_at, b.company_name
		FROM campaigns c
		JOIN brands b ON b.id = c.brand_id
		WHERE c.id = $1
	`, id).Scan(&c.ID, &c.BrandID, &c.Title, &c.Description, &c.Budget, &c.StartDate,
		&c.EndDate, &c.Deliverables, &c.Requirements, &c.TargetAudience,
		&c.PreferredCategories, &c.MinFollowers, &c.MaxFollowers, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.BrandCompanyName)
	if err != nil {
		return nil, notFound(err, "campaign %s", id)
	}
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE campaigns SET title = $1, description = $2, budget = $3,
			start_date = $4, end_date = $5, deliverables = $6, requirements = $7,
			target_audience = $8, preferred_categories = $9, min_followers = $10,
			max_followers = $11, status = $12, updated_at = now()
		WHERE id = $13
		RETURNING updated_at
	`, c.Title, c.Description, c.Budget, c.StartDate, c.EndDate,
		textArray(c.Deliverables), textArray(c.Requirements), c.TargetAudience,
		textArray(c.PreferredCategories), c.MinFollowers, c.MaxFollowers, c.Status, c.ID,
	).Scan(&c.UpdatedAt)
	return notFound(err, "campaign %s", c.ID)
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

type CampaignFilter struct {
	BrandID   *uuid.UUID
	Status    *string
	Category  *string
	MinBudget *float64
	MaxBudget *float64
	Search    *string
	Limit     int
	Offset    int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.CampaignWithBrand, int, error) {
	where := []string{}
	args := []any{}
	argIdx := 1

	add := func(cond string, val any) {
		where = append(where, fmt.Sprintf(cond, argIdx))
		args = append(args, val)
		argIdx++
	}

	if f.BrandID != nil {
		add("c.brand_id = $%d", *f.BrandID)
	}
	if f.Status != nil {
		add("c.status = $%d", *f.Status)
	}
	if f.Category != nil {
		add("$%d = ANY(c.preferred_categories)", strings.ToLower(strings.TrimSpace(*f.Category)))
	}
	if f.MinBudget != nil {
		add("c.budget >= $%d", *f.MinBudget)
	}
	if f.MaxBudget != nil {
		add("c.budget <= $%d", *f.MaxBudget)
	}
	if f.Search != nil {
		where = append(where, fmt.Sprintf("(c.title ILIKE $%d OR c.description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*f.Search+"%")
		argIdx++
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM campaigns c"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT c.id, c.brand_id, c.title, c.description, c.budget, c.start_date,
		       c.end_date, c.deliverables, c.requirements, c.target_audience,
		       c.preferred_categories, c.min_followers, c.max_followers, c.status,
		       c.created_at, c.updated_at, b.company_name
		FROM campaigns c
		JOIN brands b ON b.id = c.brand_id` + cond +
		fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var campaigns []models.CampaignWithBrand
	for rows.Next() {
		var c models.CampaignWithBrand
		if err := rows.Scan(&c.ID, &c.BrandID, &c.Title, &c.Description, &c.Budget,
			&c.StartDate, &c.EndDate, &c.Deliverables, &c.Requirements,
			&c.TargetAudience, &c.PreferredCategories, &c.MinFollowers,
			&c.MaxFollowers, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&c.BrandCompanyName); err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, total, rows.Err()
}

// ExpiredCampaign names a campaign flipped to COMPLETED plus the brand
// account to notify about it.
type ExpiredCampaign struct {
	ID          uuid.UUID
	BrandUserID uuid.UUID
}

// ExpireEnded marks active campaigns whose end date has passed as
// completed. Called by the background worker.
func (r *CampaignRepo) ExpireEnded(ctx context.Context) ([]ExpiredCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now()
		WHERE status = $2 AND end_date < now()
		RETURNING id, (SELECT user_id FROM brands WHERE brands.id = campaigns.brand_id)
	`, models.CampaignStatusCompleted, models.CampaignStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []ExpiredCampaign
	for rows.Next() {
		var e ExpiredCampaign
		if err := rows.Scan(&e.ID, &e.BrandUserID); err != nil {
			return nil, err
		}
		expired = append(expired, e)
	}
	return expired, rows.Err()
}
