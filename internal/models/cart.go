package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with its product.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

type BrowsingRecord struct {
	UserID   int64     `json:"user_id"`
	Product  Product   `json:"product"`
	ViewedAt time.Time `json:"viewed_at"`
}
