package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
)

type PostgresFavoriteRepository struct {
	db DBTX
}

func NewPostgresFavoriteRepository(db DBTX) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

// Get returns nil without error when the product is not a favorite.
func (r *PostgresFavoriteRepository) Get(ctx context.Context, userID, productID int64) (f *models.Favorite, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "GetFavorite")
	defer func() { done(err) }()

	var fav models.Favorite
	err = r.db.QueryRowContext(ctx,
		`SELECT id, user_id, product_id, created_at FROM favorites WHERE user_id = $1 AND product_id = $2`,
		userID, productID).Scan(&fav.ID, &fav.UserID, &fav.ProductID, &fav.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}
	return &fav, nil
}

func (r *PostgresFavoriteRepository) Create(ctx context.Context, f *models.Favorite) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CreateFavorite")
	defer func() { done(err) }()

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO favorites (user_id, product_id) VALUES ($1, $2) RETURNING id, created_at`,
		f.UserID, f.ProductID).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

func (r *PostgresFavoriteRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "DeleteFavorite")
	defer func() { done(err) }()

	if _, err = r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

func (r *PostgresFavoriteRepository) ListProducts(ctx context.Context, userID int64) (out []models.Product, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListFavoriteProducts")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.seller_id, p.title, p.price, p.image_url, p.category, p.status, p.description, p.origin_bounty_id, p.created_at
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	out, err = scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return out, nil
}

func (r *PostgresFavoriteRepository) Count(ctx context.Context, userID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountFavorites")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return n, nil
}

type PostgresHistoryRepository struct {
	db DBTX
}

func NewPostgresHistoryRepository(db DBTX) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

func (r *PostgresHistoryRepository) Touch(ctx context.Context, userID, productID int64) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "TouchHistory")
	defer func() { done(err) }()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO browsing_history (user_id, product_id, viewed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, product_id) DO UPDATE SET viewed_at = NOW()`,
		userID, productID)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// List returns the user's history limited to products that are still listed.
func (r *PostgresHistoryRepository) List(ctx context.Context, userID int64) (out []models.BrowsingRecord, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListHistory")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx, `
		SELECT h.user_id, h.viewed_at,
		       p.id, p.seller_id, p.title, p.price, p.image_url, p.category, p.status, p.description, p.origin_bounty_id, p.created_at
		FROM browsing_history h
		JOIN products p ON p.id = h.product_id
		WHERE h.user_id = $1 AND p.status = $2
		ORDER BY h.viewed_at DESC`, userID, models.ProductListed)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.BrowsingRecord
		p := &rec.Product
		err = rows.Scan(&rec.UserID, &rec.ViewedAt,
			&p.ID, &p.SellerID, &p.Title, &p.Price, &p.ImageURL, &p.Category, &p.Status,
			&p.Attributes.Description, &p.Attributes.OriginBountyID, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return out, nil
}

func (r *PostgresHistoryRepository) Clear(ctx context.Context, userID int64) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ClearHistory")
	defer func() { done(err) }()

	if _, err = r.db.ExecContext(ctx, `DELETE FROM browsing_history WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
