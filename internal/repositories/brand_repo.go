package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

func (r *BrandRepo) Create(ctx context.Context, b *models.Brand) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO brands (user_id, company_name, description, logo, website,
			industry, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, b.UserID, b.CompanyName, b.Description, b.Logo, b.Website,
		b.Industry, b.ContactEmail, b.ContactPhone,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return conflict(err, "brand profile for user %s already exists", b.UserID)
}

func (r *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, description, logo, website,
		       industry, contact_email, contact_phone, created_at, updated_at
		FROM brands WHERE id = $1
	`, id).Scan(&b.ID, &b.UserID, &b.CompanyName, &b.Description, &b.Logo, &b.Website,
		&b.Industry, &b.ContactEmail, &b.ContactPhone, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "brand %s", id)
	}
	return &b, nil
}

func (r *BrandRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, description, logo, website,
		       industry, contact_email, contact_phone, created_at, updated_at
		FROM brands WHERE user_id = $1
	`, userID).Scan(&b.ID, &b.UserID, &b.CompanyName, &b.Description, &b.Logo, &b.Website,
		&b.Industry, &b.ContactEmail, &b.ContactPhone, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "brand profile for user %s", userID)
	}
	return &b, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *models.Brand) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE brands SET company_name = $1, description = $2, logo = $3,
			website = $4, industry = $5, contact_email = $6, contact_phone = $7,
			updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`, b.CompanyName, b.Description, b.Logo, b.Website,
		b.Industry, b.ContactEmail, b.ContactPhone, b.ID,
	).Scan(&b.UpdatedAt)
	return notFound(err, "brand %s", b.ID)
}

func (r *BrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("brand %s", id)
	}
	return nil
}

type BrandFilter struct {
	Search   *string
	Industry *string
	Limit    int
	Offset   int
}

func (r *BrandRepo) List(ctx context.Context, f BrandFilter) ([]models.Brand, int, error) {
	where := []string{}
	args := []any{}
	argIdx := 1
	add := func(clause string, value any) {
		where = append(where, fmt.Sprintf(clause, argIdx))
		args = append(args, value)
		argIdx++
	}

	if f.Search != nil {
		add("company_name ILIKE $%d", "%"+*f.Search+"%")
	}
	if f.Industry != nil {
		add("industry = $%d", *f.Industry)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM brands`+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := clampLimit(f.Limit)
	args = append(args, limit, f.Offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, user_id, company_name, description, logo, website,
		       industry, contact_email, contact_phone, created_at, updated_at
		FROM brands%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereSQL, argIdx, argIdx+1), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.UserID, &b.CompanyName, &b.Description, &b.Logo,
			&b.Website, &b.Industry, &b.ContactEmail, &b.ContactPhone,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		brands = append(brands, b)
	}
	return brands, total, rows.Err()
}

// Stats aggregates campaign and application counters for the brand
// dashboard in two queries.
func (r *BrandRepo) Stats(ctx context.Context, brandID uuid.UUID) (*models.BrandStats, error) {
	var s models.BrandStats
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'ACTIVE'),
		       count(*) FILTER (WHERE status = 'COMPLETED'),
		       count(*) FILTER (WHERE status = 'DRAFT'),
		       COALESCE(sum(budget), 0),
		       COALESCE(sum(budget) FILTER (WHERE status = 'COMPLETED'), 0)
		FROM campaigns WHERE brand_id = $1
	`, brandID).Scan(&s.TotalCampaigns, &s.ActiveCampaigns, &s.CompletedCampaigns,
		&s.DraftCampaigns, &s.TotalBudget, &s.SpentBudget)
	if err != nil {
		return nil, err
	}
	s.AvailableBudget = s.TotalBudget - s.SpentBudget

	err = r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE a.status = 'APPROVED'),
		       count(*) FILTER (WHERE a.status = 'PENDING')
		FROM campaign_applications a
		JOIN campaigns c ON c.id = a.campaign_id
		WHERE c.brand_id = $1
	`, brandID).Scan(&s.TotalApplications, &s.ApprovedApplications, &s.PendingApplications)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
