package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

type FavoriteRepository interface {
	Get(ctx context.Context, userID, productID int64) (*models.Favorite, error)
	Create(ctx context.Context, f *models.Favorite) error
	Delete(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, userID int64) ([]models.Product, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type HistoryRepository interface {
	// Touch records a view, refreshing viewed_at on revisits.
	Touch(ctx context.Context, userID, productID int64) error
	List(ctx context.Context, userID int64) ([]models.BrowsingRecord, error)
	Clear(ctx context.Context, userID int64) error
}
