package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
	// SetStatus moves a product from one status to another. It returns
	// ErrStaleState when the product is no longer in status from.
	SetStatus(ctx context.Context, id int64, from, to models.ProductStatus) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f models.ProductFilter) ([]models.Product, int, error)
	ListedPriceRange(ctx context.Context) (models.PriceRange, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]models.Product, error)
	ListRecent(ctx context.Context, limit int) ([]models.Product, error)
	Count(ctx context.Context) (int, error)
	CountBySeller(ctx context.Context, sellerID int64) (int, error)
	SumSold(ctx context.Context, sellerID *int64) (decimal.Decimal, error)
}
