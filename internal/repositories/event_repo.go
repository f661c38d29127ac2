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

type EventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

func (r *EventRepo) Create(ctx context.Context, e *models.Event) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO calendar_events (creator_id, title, description, start_at, end_at, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, e.CreatorID, e.Title, e.Description, e.StartAt, e.EndAt, e.Location,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var e models.Event
	err := r.pool.QueryRow(ctx, `
		SELECT id, creator_id, title, description, start_at, end_at, location,
		       created_at, updated_at
		FROM calendar_events WHERE id = $1
	`, id).Scan(&e.ID, &e.CreatorID, &e.Title, &e.Description, &e.StartAt, &e.EndAt,
		&e.Location, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "event %s", id)
	}
	return &e, nil
}

func (r *EventRepo) Update(ctx context.Context, e *models.Event) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE calendar_events SET title = $1, description = $2, start_at = $3,
			end_at = $4, location = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`, e.Title, e.Description, e.StartAt, e.EndAt, e.Location, e.ID).Scan(&e.UpdatedAt)
	return notFound(err, "event %s", e.ID)
}

func (r *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	return err
}

type EventFilter struct {
	CreatorID uuid.UUID
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

func (r *EventRepo) List(ctx context.Context, f EventFilter) ([]models.Event, error) {
	where := []string{"creator_id = $1"}
	args := []any{f.CreatorID}
	argIdx := 2

	if f.From != nil {
		where = append(where, fmt.Sprintf("start_at >= $%d", argIdx))
		args = append(args, *f.From)
		argIdx++
	}
	if f.To != nil {
		where = append(where, fmt.Sprintf("start_at <= $%d", argIdx))
		args = append(args, *f.To)
		argIdx++
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	query := `
		SELECT id, creator_id, title, description, start_at, end_at, location,
		       created_at, updated_at
		FROM calendar_events` + cond +
		fmt.Sprintf(" ORDER BY start_at LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.CreatorID, &e.Title, &e.Description, &e.StartAt,
			&e.EndAt, &e.Location, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
