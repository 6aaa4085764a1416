package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

type CartRepository interface {
	// AddOrIncrement inserts a line with quantity 1 or bumps the existing one.
	AddOrIncrement(ctx context.Context, userID, productID int64) (*models.CartItem, error)
	GetByID(ctx context.Context, id int64) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	ListLines(ctx context.Context, userID int64) ([]models.CartLine, error)
	Clear(ctx context.Context, userID int64) (int, error)
	Count(ctx context.Context, userID int64) (int, error)
}
