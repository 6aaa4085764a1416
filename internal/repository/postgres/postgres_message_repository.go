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
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

const messageColumns = `id, product_id, bounty_id, sender_id, receiver_id, content, message_type, offer_price, is_read, created_at`

type PostgresMessageRepository struct {
	db DBTX
}

func NewPostgresMessageRepository(db DBTX) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func scanMessage(row rowScanner) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.ProductID, &m.BountyID, &m.SenderID, &m.ReceiverID,
		&m.Content, &m.Type, &m.OfferPrice, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresMessageRepository) list(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m *models.Message) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "CreateMessage")
	defer func() { done(err) }()
	span.SetAttributes(
		attribute.Int64("sender_id", m.SenderID),
		attribute.Int64("receiver_id", m.ReceiverID),
		attribute.String("message_type", string(m.Type)),
	)

	if (m.ProductID == nil) == (m.BountyID == nil) {
		return pkgerrors.Invalid("message must reference exactly one of a product or a bounty")
	}

	query := `
		INSERT INTO messages (product_id, bounty_id, sender_id, receiver_id, content, message_type, offer_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_read, created_at`
	err = r.db.QueryRowContext(ctx, query,
		m.ProductID, m.BountyID, m.SenderID, m.ReceiverID, m.Content, m.Type, m.OfferPrice,
	).Scan(&m.ID, &m.IsRead, &m.CreatedAt)
	if err != nil {
		slog.Error("failed to create message", "method", "Create", "sender_id", m.SenderID, "error", err)
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *PostgresMessageRepository) GetByID(ctx context.Context, id int64) (m *models.Message, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "GetMessageByID")
	defer func() { done(err) }()

	m, err = scanMessage(r.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

// ListByParticipant returns every message the user sent or received, newest first.
func (r *PostgresMessageRepository) ListByParticipant(ctx context.Context, userID int64) (out []models.Message, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListMessagesByParticipant")
	defer func() { done(err) }()

	out, err = r.list(ctx, `SELECT `+messageColumns+` FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return out, nil
}

func (r *PostgresMessageRepository) ListProductThread(ctx context.Context, productID, userA, userB int64) (out []models.Message, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListProductThread")
	defer func() { done(err) }()

	out, err = r.list(ctx, `SELECT `+messageColumns+` FROM messages
		WHERE product_id = $1
		  AND ((sender_id = $2 AND receiver_id = $3) OR (sender_id = $3 AND receiver_id = $2))
		ORDER BY created_at ASC, id ASC`, productID, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to list product thread: %w", err)
	}
	return out, nil
}

func (r *PostgresMessageRepository) ListBountyThread(ctx context.Context, bountyID int64) (out []models.Message, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListBountyThread")
	defer func() { done(err) }()

	out, err = r.list(ctx, `SELECT `+messageColumns+` FROM messages
		WHERE bounty_id = $1
		ORDER BY created_at ASC, id ASC`, bountyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bounty thread: %w", err)
	}
	return out, nil
}

// MarkRead flags the given messages as read. Only messages addressed to
// receiverID are touched.
func (r *PostgresMessageRepository) MarkRead(ctx context.Context, receiverID int64, ids []int64) (err error) {
	if len(ids) == 0 {
		return nil
	}
	ctx, _, done := observability.StartRepositoryCall(ctx, "MarkMessagesRead")
	defer func() { done(err) }()

	_, err = r.db.ExecContext(ctx,
		`UPDATE messages SET is_read = TRUE WHERE receiver_id = $1 AND id = ANY($2) AND is_read = FALSE`,
		receiverID, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

func (r *PostgresMessageRepository) CountUnread(ctx context.Context, receiverID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountUnreadMessages")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = FALSE`, receiverID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}
