package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const bountyColumns = `id, user_id, title, budget, description, status, accepter_id, accepted_at, order_id, created_at`

type PostgresBountyRepository struct {
	db DBTX
}

func NewPostgresBountyRepository(db DBTX) *PostgresBountyRepository {
	return &PostgresBountyRepository{db: db}
}

func scanBounty(row rowScanner) (*models.Bounty, error) {
	var b models.Bounty
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Budget, &b.Description, &b.Status,
		&b.AccepterID, &b.AcceptedAt, &b.OrderID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBountyRepository) list(ctx context.Context, query string, args ...any) ([]models.Bounty, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Bounty
	for rows.Next() {
		b, err := scanBounty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *PostgresBountyRepository) Create(ctx context.Context, b *models.Bounty) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "CreateBounty")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("user_id", b.UserID))

	query := `
		INSERT INTO bounties (user_id, title, budget, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query, b.UserID, b.Title, b.Budget, b.Description, b.Status).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		slog.Error("failed to create bounty", "method", "Create", "user_id", b.UserID, "error", err)
		return fmt.Errorf("failed to create bounty: %w", err)
	}
	return nil
}

func (r *PostgresBountyRepository) GetByID(ctx context.Context, id int64) (b *models.Bounty, err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "GetBountyByID")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("bounty_id", id))

	b, err = scanBounty(r.db.QueryRowContext(ctx, `SELECT `+bountyColumns+` FROM bounties WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrBountyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bounty: %w", err)
	}
	return b, nil
}

func (r *PostgresBountyRepository) Transition(ctx context.Context, b *models.Bounty, from models.BountyStatus) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "TransitionBounty")
	defer func() { done(err) }()
	span.SetAttributes(
		attribute.Int64("bounty_id", b.ID),
		attribute.String("from", from.String()),
		attribute.String("to", b.Status.String()),
	)

	query := `
		UPDATE bounties
		SET status = $1, accepter_id = $2, accepted_at = $3, order_id = $4
		WHERE id = $5 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, b.Status, b.AccepterID, b.AcceptedAt, b.OrderID, b.ID, from)
	if err != nil {
		return fmt.Errorf("failed to update bounty: %w", err)
	}
	if err = expectOneRow(res, pkgerrors.ErrStaleState); err != nil {
		slog.Warn("bounty status changed concurrently", "method", "Transition", "bounty_id", b.ID, "from", from)
		return err
	}
	return nil
}

func (r *PostgresBountyRepository) ListOpen(ctx context.Context, limit int) (out []models.Bounty, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListOpenBounties")
	defer func() { done(err) }()

	if limit <= 0 {
		limit = 50
	}
	out, err = r.list(ctx, `SELECT `+bountyColumns+` FROM bounties WHERE status = $1 ORDER BY created_at DESC LIMIT $2`,
		models.BountyOpen, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list open bounties: %w", err)
	}
	return out, nil
}

func (r *PostgresBountyRepository) ListByAuthor(ctx context.Context, userID int64) (out []models.Bounty, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListBountiesByAuthor")
	defer func() { done(err) }()

	out, err = r.list(ctx, `SELECT `+bountyColumns+` FROM bounties WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posted bounties: %w", err)
	}
	return out, nil
}

func (r *PostgresBountyRepository) ListByAccepter(ctx context.Context, userID int64) (out []models.Bounty, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListBountiesByAccepter")
	defer func() { done(err) }()

	out, err = r.list(ctx, `SELECT `+bountyColumns+` FROM bounties WHERE accepter_id = $1 ORDER BY accepted_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted bounties: %w", err)
	}
	return out, nil
}

func (r *PostgresBountyRepository) Count(ctx context.Context) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountBounties")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM bounties`)
	if err != nil {
		return 0, fmt.Errorf("failed to count bounties: %w", err)
	}
	return n, nil
}

func (r *PostgresBountyRepository) CountByAuthor(ctx context.Context, userID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountBountiesByAuthor")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM bounties WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count bounties: %w", err)
	}
	return n, nil
}
