package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DealRepo struct {
	pool *pgxpool.Pool
}

func NewDealRepo(pool *pgxpool.Pool) *DealRepo {
	return &DealRepo{pool: pool}
}

func (r *DealRepo) Create(ctx context.Context, d *models.Deal) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO deals (creator_id, title, brand, value, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, d.CreatorID, d.Title, d.Brand, d.Value, d.Status, d.Notes,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *DealRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	var d models.Deal
	err := r.pool.QueryRow(ctx, `
		SELECT id, creator_id, title, brand, value, status, notes, created_at, updated_at
		FROM deals WHERE id = $1
	`, id).Scan(&d.ID, &d.CreatorID, &d.Title, &d.Brand, &d.Value, &d.Status,
		&d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "deal %s", id)
	}
	return &d, nil
}

func (r *DealRepo) Update(ctx context.Context, d *models.Deal) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE deals SET title = $1, brand = $2, value = $3, status = $4,
			notes = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`, d.Title, d.Brand, d.Value, d.Status, d.Notes, d.ID).Scan(&d.UpdatedAt)
	return notFound(err, "deal %s", d.ID)
}

func (r *DealRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	return err
}

type DealFilter struct {
	CreatorID uuid.UUID
	Status    *string
	Search    *string
	Limit     int
	Offset    int
}

func (r *DealRepo) List(ctx context.Context, f DealFilter) ([]models.Deal, int, error) {
	where := []string{"creator_id = $1"}
	args := []any{f.CreatorID}
	argIdx := 2

	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.Search != nil {
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR brand ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*f.Search+"%")
		argIdx++
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM deals"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, creator_id, title, brand, value, status, notes, created_at, updated_at
		FROM deals` + cond +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		var d models.Deal
		if err := rows.Scan(&d.ID, &d.CreatorID, &d.Title, &d.Brand, &d.Value,
			&d.Status, &d.Notes, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, err
		}
		deals = append(deals, d)
	}
	return deals, total, rows.Err()
}
