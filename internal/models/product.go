package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus int

const (
	ProductDelisted ProductStatus = 0
	ProductListed   ProductStatus = 1
	ProductOrdered  ProductStatus = 2
	ProductSold     ProductStatus = 3
)

func (s ProductStatus) String() string {
	switch s {
	case ProductDelisted:
		return "delisted"
	case ProductListed:
		return "listed"
	case ProductOrdered:
		return "ordered"
	case ProductSold:
		return "sold"
	}
	return "unknown"
}

type Category string

const (
	CategorySecondHand Category = "second"
	CategoryCreative   Category = "creative"
	CategoryAgri       Category = "agri"
)

func (c Category) Valid() bool {
	switch c {
	case CategorySecondHand, CategoryCreative, CategoryAgri:
		return true
	}
	return false
}

// ProductAttributes holds the optional listing fields.
type ProductAttributes struct {
	Description    string `json:"description,omitempty"`
	OriginBountyID *int64 `json:"origin_bounty_id,omitempty"`
}

type Product struct {
	ID         int64             `json:"id"`
	SellerID   int64             `json:"seller_id"`
	Title      string            `json:"title"`
	Price      decimal.Decimal   `json:"price"`
	ImageURL   string            `json:"image_url"`
	Category   Category          `json:"category"`
	Status     ProductStatus     `json:"status"`
	Attributes ProductAttributes `json:"attributes"`
	CreatedAt  time.Time         `json:"created_at"`
}

type ProductSort string

const (
	SortLatest    ProductSort = "latest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
)

const CatalogPageSize = 12

type ProductFilter struct {
	Query    string
	Category Category
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     ProductSort
	Page     int
}

type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}
