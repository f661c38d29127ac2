package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdeaRepo struct {
	pool *pgxpool.Pool
}

func NewIdeaRepo(pool *pgxpool.Pool) *IdeaRepo {
	return &IdeaRepo{pool: pool}
}

func (r *IdeaRepo) Create(ctx context.Context, i *models.Idea) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO ideas (creator_id, title, description, tags, status, priority, attachments)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, i.CreatorID, i.Title, i.Description, textArray(i.Tags), i.Status, i.Priority, textArray(i.Attachments),
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func (r *IdeaRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	var i models.Idea
	err := r.pool.QueryRow(ctx, `
		SELECT id, creator_id, title, description, tags, status, priority,
		       attachments, created_at, updated_at
		FROM ideas WHERE id = $1
	`, id).Scan(&i.ID, &i.CreatorID, &i.Title, &i.Description, &i.Tags, &i.Status,
		&i.Priority, &i.Attachments, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "idea %s", id)
	}
	return &i, nil
}

func (r *IdeaRepo) Update(ctx context.Context, i *models.Idea) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE ideas SET title = $1, description = $2, tags = $3, status = $4,
			priority = $5, attachments = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`, i.Title, i.Description, textArray(i.Tags), i.Status, i.Priority, textArray(i.Attachments), i.ID,
	).Scan(&i.UpdatedAt)
	return notFound(err, "idea %s", i.ID)
}

func (r *IdeaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	return err
}

type IdeaFilter struct {
	CreatorID uuid.UUID
	Status    *string
	Priority  *string
	Tag       *string
	Limit     int
	Offset    int
}

func (r *IdeaRepo) List(ctx context.Context, f IdeaFilter) ([]models.Idea, int, error) {
	where := []string{"creator_id = $1"}
	args := []any{f.CreatorID}
	argIdx := 2

	add := func(cond string, val any) {
		where = append(where, fmt.Sprintf(cond, argIdx))
		args = append(args, val)
		argIdx++
	}
	if f.Status != nil {
		add("status = $%d", *f.Status)
	}
	if f.Priority != nil {
		add("priority = $%d", *f.Priority)
	}
	if f.Tag != nil {
		add("$%d = ANY(tags)", *f.Tag)
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM ideas"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, creator_id, title, description, tags, status, priority,
		       attachments, created_at, updated_at
		FROM ideas` + cond +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		var i models.Idea
		if err := rows.Scan(&i.ID, &i.CreatorID, &i.Title, &i.Description, &i.Tags,
			&i.Status, &i.Priority, &i.Attachments, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, 0, err
		}
		ideas = append(ideas, i)
	}
	return ideas, total, rows.Err()
}
