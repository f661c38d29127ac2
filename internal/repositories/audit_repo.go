package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Log(ctx context.Context, entry models.AuditLog) error {
	meta, err := json.Marshal(entry.Meta)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO audit_logs (actor_user_id, actor_type, action, entity_type, entity_id, meta)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ActorUserID, entry.ActorType, entry.Action, entry.EntityType,
		entry.EntityID, meta)
	return err
}

type AuditFilter struct {
	ActorUserID *uuid.UUID
	EntityType  *string
	EntityID    *uuid.UUID
	Action      *string
	Limit       int
	Offset      int
}

func (r *AuditRepo) List(ctx context.Context, f AuditFilter) ([]models.AuditLog, error) {
	where := []string{}
	args := []any{}
	argIdx := 1

	add := func(cond string, val any) {
		where = append(where, fmt.Sprintf(cond, argIdx))
		args = append(args, val)
		argIdx++
	}
	if f.ActorUserID != nil {
		add("actor_user_id = $%d", *f.ActorUserID)
	}
	if f.EntityType != nil {
		add("entity_type = $%d", *f.EntityType)
	}
	if f.EntityID != nil {
		add("entity_id = $%d", *f.EntityID)
	}
	if f.Action != nil {
		add("action = $%d", *f.Action)
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	query := `
		SELECT id, actor_user_id, actor_type, action, entity_type, entity_id, meta, created_at
		FROM audit_logs` + cond +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var (
			entry models.AuditLog
			meta  []byte
		)
		if err := rows.Scan(&entry.ID, &entry.ActorUserID, &entry.ActorType,
			&entry.Action, &entry.EntityType, &entry.EntityID, &meta,
			&entry.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			_ = json.Unmarshal(meta, &entry.Meta)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
