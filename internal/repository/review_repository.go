package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

type ReviewRepository interface {
	// Create returns ErrAlreadyReviewed when the buyer reviewed the product before.
	Create(ctx context.Context, r *models.Review) error
	Exists(ctx context.Context, buyerID, productID int64) (bool, error)
	ListByProduct(ctx context.Context, productID int64) ([]models.Review, error)
	AverageForSeller(ctx context.Context, sellerID int64) (avg float64, count int, err error)
}
