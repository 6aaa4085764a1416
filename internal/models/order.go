package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus int

const (
	OrderUnpaid    OrderStatus = 0
	OrderToShip    OrderStatus = 1
	OrderToReceive OrderStatus = 2
	OrderComplete  OrderStatus = 3
	OrderCancelled OrderStatus = 4
)

func (s OrderStatus) String() string {
	switch s {
	case OrderUnpaid:
		return "unpaid"
	case OrderToShip:
		return "to_ship"
	case OrderToReceive:
		return "to_receive"
	case OrderComplete:
		return "complete"
	case OrderCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Cancellable reports whether a buyer may still cancel.
func (s OrderStatus) Cancellable() bool {
	return s == OrderUnpaid || s == OrderToShip
}

type Order struct {
	ID            int64           `json:"id"`
	OrderNo       string          `json:"order_no"`
	BuyerID       int64           `json:"buyer_id"`
	SellerID      int64           `json:"seller_id"`
	ProductID     *int64          `json:"product_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Status        OrderStatus     `json:"status"`
	Address       string          `json:"address"`
	Contact       string          `json:"contact"`
	IsBountyOrder bool            `json:"is_bounty_order"`
	CreatedAt     time.Time       `json:"created_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	ShippedAt     *time.Time      `json:"shipped_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// Shipping is the delivery information collected when an order is placed.
type Shipping struct {
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// BuyerOrder is an order as listed for its buyer.
type BuyerOrder struct {
	Order
	HasReviewed bool `json:"has_reviewed"`
}
