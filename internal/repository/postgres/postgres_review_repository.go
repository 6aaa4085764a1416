package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

type PostgresReviewRepository struct {
	db DBTX
}

func NewPostgresReviewRepository(db DBTX) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) Create(ctx context.Context, rv *models.Review) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "CreateReview")
	defer func() { done(err) }()
	span.SetAttributes(
		attribute.Int64("buyer_id", rv.BuyerID),
		attribute.Int64("product_id", rv.ProductID),
		attribute.Int("rating", rv.Rating),
	)

	query := `
		INSERT INTO reviews (buyer_id, seller_id, product_id, rating, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query, rv.BuyerID, rv.SellerID, rv.ProductID, rv.Rating, rv.Content).
		Scan(&rv.ID, &rv.CreatedAt)
	if isUniqueViolation(err) {
		return pkgerrors.ErrAlreadyReviewed
	}
	if err != nil {
		slog.Error("failed to create review", "method", "Create", "buyer_id", rv.BuyerID, "product_id", rv.ProductID, "error", err)
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *PostgresReviewRepository) Exists(ctx context.Context, buyerID, productID int64) (ok bool, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ReviewExists")
	defer func() { done(err) }()

	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE buyer_id = $1 AND product_id = $2)`,
		buyerID, productID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}
	return ok, nil
}

func (r *PostgresReviewRepository) ListByProduct(ctx context.Context, productID int64) (out []models.Review, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListReviewsByProduct")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, buyer_id, seller_id, product_id, rating, content, created_at
		FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rv models.Review
		if err = rows.Scan(&rv.ID, &rv.BuyerID, &rv.SellerID, &rv.ProductID, &rv.Rating, &rv.Content, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		out = append(out, rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return out, nil
}

// AverageForSeller returns the mean rating across the seller's reviews.
// avg is zero when count is zero.
func (r *PostgresReviewRepository) AverageForSeller(ctx context.Context, sellerID int64) (avg float64, count int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "AverageRatingForSeller")
	defer func() { done(err) }()

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE seller_id = $1`, sellerID).
		Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to average ratings: %w", err)
	}
	return avg, count, nil
}
