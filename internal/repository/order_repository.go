package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	// Transition persists status and timestamps of o if the stored status
	// still equals from. Otherwise it returns ErrStaleState.
	Transition(ctx context.Context, o *models.Order, from models.OrderStatus) error
	ListByBuyer(ctx context.Context, buyerID int64) ([]models.Order, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]models.Order, error)
	CountByProduct(ctx context.Context, productID int64) (int, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int, error)
	CountBySellerAndStatus(ctx context.Context, sellerID int64, status models.OrderStatus) (int, error)
}
