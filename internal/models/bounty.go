package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BountyStatus int

const (
	BountyOpen         BountyStatus = 0
	BountyInDiscussion BountyStatus = 1
	BountyFulfilled    BountyStatus = 2
	BountyCancelled    BountyStatus = 3
)

func (s BountyStatus) String() string {
	switch s {
	case BountyOpen:
		return "open"
	case BountyInDiscussion:
		return "in_discussion"
	case BountyFulfilled:
		return "fulfilled"
	case BountyCancelled:
		return "cancelled"
	}
	return "unknown"
}

type Bounty struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Title       string          `json:"title"`
	Budget      decimal.Decimal `json:"budget"`
	Description string          `json:"description"`
	Status      BountyStatus    `json:"status"`
	AccepterID  *int64          `json:"accepter_id,omitempty"`
	AcceptedAt  *time.Time      `json:"accepted_at,omitempty"`
	OrderID     *int64          `json:"order_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
