package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const orderColumns = `id, order_no, buyer_id, seller_id, product_id, price, status, address, contact, is_bounty_order, created_at, paid_at, shipped_at, completed_at`

type PostgresOrderRepository struct {
	db DBTX
}

func NewPostgresOrderRepository(db DBTX) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.OrderNo, &o.BuyerID, &o.SellerID, &o.ProductID, &o.Price, &o.Status,
		&o.Address, &o.Contact, &o.IsBountyOrder, &o.CreatedAt, &o.PaidAt, &o.ShippedAt, &o.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresOrderRepository) list(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PostgresOrderRepository) Create(ctx context.Context, o *models.Order) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "CreateOrder")
	defer func() { done(err) }()

	if o == nil {
		return fmt.Errorf("order is nil")
	}
	if !o.Price.IsPositive() {
		err = fmt.Errorf("amount must be positive")
		slog.Error("amount must be positive", "method", "Create", "price", o.Price, "error", err)
		return err
	}
	span.SetAttributes(
		attribute.String("order_no", o.OrderNo),
		attribute.Int64("buyer_id", o.BuyerID),
		attribute.Int64("seller_id", o.SellerID),
		attribute.Bool("is_bounty_order", o.IsBountyOrder),
	)

	query := `
		INSERT INTO orders (order_no, buyer_id, seller_id, product_id, price, status, address, contact, is_bounty_order, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		o.OrderNo, o.BuyerID, o.SellerID, o.ProductID, o.Price, o.Status,
		o.Address, o.Contact, o.IsBountyOrder, o.PaidAt,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		slog.Error("failed to create order", "method", "Create", "order_no", o.OrderNo, "buyer_id", o.BuyerID, "error", err)
		return fmt.Errorf("failed to create order: %w", err)
	}

	slog.Info("order created", "method", "Create", "id", o.ID, "order_no", o.OrderNo, "buyer_id", o.BuyerID, "seller_id", o.SellerID)
	return nil
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id int64) (o *models.Order, err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "GetOrderByID")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("order_id", id))

	o, err = scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrOrderNotFound
	}
	if err != nil {
		slog.Error("failed to get order by id", "method", "GetByID", "order_id", id, "error", err)
		return nil, fmt.Errorf("failed to get order by id: %w", err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) Transition(ctx context.Context, o *models.Order, from models.OrderStatus) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "TransitionOrder")
	defer func() { done(err) }()
	span.SetAttributes(
		attribute.Int64("order_id", o.ID),
		attribute.String("from", from.String()),
		attribute.String("to", o.Status.String()),
	)

	query := `
		UPDATE orders
		SET status = $1, paid_at = $2, shipped_at = $3, completed_at = $4
		WHERE id = $5 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, o.Status, o.PaidAt, o.ShippedAt, o.CompletedAt, o.ID, from)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if err = expectOneRow(res, pkgerrors.ErrStaleState); err != nil {
		slog.Warn("order status changed concurrently", "method", "Transition", "order_id", o.ID, "from", from)
		return err
	}
	return nil
}

func (r *PostgresOrderRepository) ListByBuyer(ctx context.Context, buyerID int64) (out []models.Order, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListOrdersByBuyer")
	defer func() { done(err) }()

	out, err = r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list buyer orders: %w", err)
	}
	return out, nil
}

func (r *PostgresOrderRepository) ListBySeller(ctx context.Context, sellerID int64) (out []models.Order, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListOrdersBySeller")
	defer func() { done(err) }()

	out, err = r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller orders: %w", err)
	}
	return out, nil
}

func (r *PostgresOrderRepository) CountByProduct(ctx context.Context, productID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountOrdersByProduct")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM orders WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to count product orders: %w", err)
	}
	return n, nil
}

func (r *PostgresOrderRepository) CountByBuyer(ctx context.Context, buyerID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountOrdersByBuyer")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM orders WHERE buyer_id = $1`, buyerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count buyer orders: %w", err)
	}
	return n, nil
}

func (r *PostgresOrderRepository) CountBySellerAndStatus(ctx context.Context, sellerID int64, status models.OrderStatus) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountOrdersBySellerAndStatus")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM orders WHERE seller_id = $1 AND status = $2`, sellerID, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count seller orders: %w", err)
	}
	return n, nil
}
