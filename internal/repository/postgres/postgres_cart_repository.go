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

type PostgresCartRepository struct {
	db DBTX
}

func NewPostgresCartRepository(db DBTX) *PostgresCartRepository {
	return &PostgresCartRepository{db: db}
}

func (r *PostgresCartRepository) AddOrIncrement(ctx context.Context, userID, productID int64) (item *models.CartItem, err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "AddCartItem")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.Int64("product_id", productID))

	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + 1, updated_at = NOW()
		RETURNING id, user_id, product_id, quantity, created_at, updated_at`
	var c models.CartItem
	err = r.db.QueryRowContext(ctx, query, userID, productID).
		Scan(&c.ID, &c.UserID, &c.ProductID, &c.Quantity, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		slog.Error("failed to add cart item", "method", "AddOrIncrement", "user_id", userID, "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return &c, nil
}

func (r *PostgresCartRepository) GetByID(ctx context.Context, id int64) (item *models.CartItem, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "GetCartItem")
	defer func() { done(err) }()

	var c models.CartItem
	err = r.db.QueryRowContext(ctx,
		`SELECT id, user_id, product_id, quantity, created_at, updated_at FROM cart_items WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.ProductID, &c.Quantity, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrCartItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return &c, nil
}

func (r *PostgresCartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "UpdateCartQuantity")
	defer func() { done(err) }()

	res, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2`, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return expectOneRow(res, pkgerrors.ErrCartItemNotFound)
}

func (r *PostgresCartRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "DeleteCartItem")
	defer func() { done(err) }()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return expectOneRow(res, pkgerrors.ErrCartItemNotFound)
}

// ListLines returns the cart joined with the current product rows, so
// status and price reflect the catalog at read time.
func (r *PostgresCartRepository) ListLines(ctx context.Context, userID int64) (out []models.CartLine, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListCartLines")
	defer func() { done(err) }()

	query := `
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.created_at, c.updated_at,
		       p.id, p.seller_id, p.title, p.price, p.image_url, p.category, p.status, p.description, p.origin_bounty_id, p.created_at
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.CartLine
		p := &l.Product
		err = rows.Scan(
			&l.ID, &l.UserID, &l.ProductID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
			&p.ID, &p.SellerID, &p.Title, &p.Price, &p.ImageURL, &p.Category, &p.Status,
			&p.Attributes.Description, &p.Attributes.OriginBountyID, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		out = append(out, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return out, nil
}

func (r *PostgresCartRepository) Clear(ctx context.Context, userID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ClearCart")
	defer func() { done(err) }()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(affected), nil
}

// Count sums quantities across the user's cart.
func (r *PostgresCartRepository) Count(ctx context.Context, userID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountCartItems")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count cart: %w", err)
	}
	return n, nil
}
