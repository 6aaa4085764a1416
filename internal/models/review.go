package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        int64     `json:"id"`
	BuyerID   int64     `json:"buyer_id"`
	SellerID  int64     `json:"seller_id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
