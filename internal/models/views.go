package models

import "github.com/shopspring/decimal"

// Read models returned by services. They are not persisted.

type CatalogPage struct {
	Products   []Product  `json:"products"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Pages      int        `json:"pages"`
	PriceRange PriceRange `json:"price_range"`
}

type ProductView struct {
	Product     Product  `json:"product"`
	Reviews     []Review `json:"reviews"`
	IsFavorited bool     `json:"is_favorited"`
	HasReviewed bool     `json:"has_reviewed"`
}

type PriceChange struct {
	ProductID int64           `json:"product_id"`
	OldPrice  decimal.Decimal `json:"old_price"`
	NewPrice  decimal.Decimal `json:"new_price"`
}

type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type OfferAcceptance struct {
	Product      Product `json:"product"`
	Confirmation Message `json:"confirmation"`
}

type MyBounties struct {
	Posted   []Bounty `json:"posted"`
	Accepted []Bounty `json:"accepted"`
}

type Profile struct {
	User          User    `json:"user"`
	OrderCount    int     `json:"order_count"`
	FavoriteCount int     `json:"favorite_count"`
	ProductCount  int     `json:"product_count"`
	BountyCount   int     `json:"bounty_count"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

type SellerDashboard struct {
	Products       []Product       `json:"products"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	PendingShipped int             `json:"pending_shipment"`
	UnreadMessages int             `json:"unread_messages"`
}

type AdminDashboard struct {
	UserCount      int             `json:"user_count"`
	ProductCount   int             `json:"product_count"`
	BountyCount    int             `json:"bounty_count"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	RecentProducts []Product       `json:"recent_products"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}
