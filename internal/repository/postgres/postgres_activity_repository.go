package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
)

type PostgresActivityRepository struct {
	db DBTX
}

func NewPostgresActivityRepository(db DBTX) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Append(ctx context.Context, e *models.ActivityEntry) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "AppendActivity")
	defer func() { done(err) }()

	// jsonb takes text; a []byte argument would be sent as bytea.
	payload := string(e.Payload)
	if payload == "" {
		payload = "{}"
	}
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO activity_log (event_type, actor_id, subject_id, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		e.Type, e.ActorID, e.SubjectID, payload, e.OccurredAt).Scan(&e.ID)
	if err != nil {
		slog.Error("failed to append activity", "method", "Append", "type", e.Type, "error", err)
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) ListRecent(ctx context.Context, limit int) (out []models.ActivityEntry, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListRecentActivity")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_type, actor_id, subject_id, payload, occurred_at
		FROM activity_log ORDER BY occurred_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.ActivityEntry
		var payload []byte
		if err = rows.Scan(&e.ID, &e.Type, &e.ActorID, &e.SubjectID, &payload, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		e.Payload = payload
		out = append(out, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return out, nil
}
