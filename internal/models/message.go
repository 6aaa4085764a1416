package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MessageType string

const (
	MessageText       MessageType = "text"
	MessagePriceOffer MessageType = "price_offer"
)

type Message struct {
	ID         int64               `json:"id"`
	ProductID  *int64              `json:"product_id,omitempty"`
	BountyID   *int64              `json:"bounty_id,omitempty"`
	SenderID   int64               `json:"sender_id"`
	ReceiverID int64               `json:"receiver_id"`
	Content    string              `json:"content"`
	Type       MessageType         `json:"message_type"`
	OfferPrice decimal.NullDecimal `json:"offer_price"`
	IsRead     bool                `json:"is_read"`
	CreatedAt  time.Time           `json:"created_at"`
}

type ContextKind string

const (
	ContextProduct ContextKind = "product"
	ContextBounty  ContextKind = "bounty"
)

// ConversationKey identifies a conversation from one user's point of view.
type ConversationKey struct {
	Kind          ContextKind `json:"kind"`
	ContextID     int64       `json:"context_id"`
	CounterpartID int64       `json:"counterpart_id"`
}

type Conversation struct {
	Key         ConversationKey `json:"key"`
	LastMessage Message         `json:"last_message"`
	UnreadCount int             `json:"unread_count"`
}
