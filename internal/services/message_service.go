package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type MessageService interface {
	SendProductMessage(ctx context.Context, senderID, productID int64, receiverID *int64, content string) (*models.Message, error)
	SendPriceOffer(ctx context.Context, senderID, productID int64, offer decimal.Decimal, content string) (*models.Message, error)
	SendBountyMessage(ctx context.Context, senderID, bountyID int64, content string) (*models.Message, error)
	AcceptOffer(ctx context.Context, sellerID, messageID int64) (*models.OfferAcceptance, error)
	Conversations(ctx context.Context, userID int64) ([]models.Conversation, error)
	ProductThread(ctx context.Context, userID, productID int64, counterpartID *int64) ([]models.Message, error)
	BountyThread(ctx context.Context, userID, bountyID int64) ([]models.Message, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
}

type messageService struct {
	uow    repository.UnitOfWork
	events *EventPublisher
	cache  productCache
}

func NewMessageService(uow repository.UnitOfWork, redisClient redis.RedisClient, events *EventPublisher) *messageService {
	return &messageService{uow: uow, events: events, cache: productCache{client: redisClient}}
}

const (
	maxMessageLength = 500
	maxOfferNote     = 200
)

// productCounterpart resolves the other side of a product conversation. A
// buyer always talks to the seller; the seller must name the buyer.
func productCounterpart(userID int64, product *models.Product, named *int64) (int64, error) {
	if userID != product.SellerID {
		return product.SellerID, nil
	}
	if named == nil {
		return 0, pkgerrors.Invalid("receiver is required when replying as the seller")
	}
	if *named == userID {
		return 0, pkgerrors.ErrSelfMessage
	}
	return *named, nil
}

func (s *messageService) SendProductMessage(ctx context.Context, senderID, productID int64, receiverID *int64, content string) (*models.Message, error) {
	ctx, span := startSpan(ctx, "SendProductMessage")
	defer span.End()
	span.SetAttributes(attribute.Int64("sender_id", senderID), attribute.Int64("product_id", productID))

	content, err := textField("content", content, 1, maxMessageLength)
	if err != nil {
		return nil, fail(span, err, "invalid message")
	}

	var msg *models.Message
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		product, err := repos.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		receiver, err := productCounterpart(senderID, product, receiverID)
		if err != nil {
			return err
		}
		if receiver == senderID {
			return pkgerrors.ErrSelfMessage
		}
		if _, err := repos.Users().GetByID(ctx, receiver); err != nil {
			return err
		}
		msg = &models.Message{
			ProductID:  ptr(productID),
			SenderID:   senderID,
			ReceiverID: receiver,
			Content:    content,
			Type:       models.MessageText,
		}
		return repos.Messages().Create(ctx, msg)
	})
	if err != nil {
		slog.Error("failed to send message", "method", "SendProductMessage", "sender_id", senderID, "product_id", productID, "error", err)
		return nil, fail(span, err, "send message failed")
	}

	slog.Info("message sent", "message_id", msg.ID, "sender_id", senderID, "receiver_id", msg.ReceiverID)
	return msg, nil
}

func offerNote(offer decimal.Decimal) string {
	return fmt.Sprintf("I would like to buy this for ¥%s", offer.StringFixed(2))
}

func (s *messageService) SendPriceOffer(ctx context.Context, senderID, productID int64, offer decimal.Decimal, content string) (*models.Message, error) {
	ctx, span := startSpan(ctx, "SendPriceOffer")
	defer span.End()
	span.SetAttributes(attribute.Int64("sender_id", senderID), attribute.Int64("product_id", productID))

	if err := validateAmount("offer price", offer); err != nil {
		return nil, fail(span, err, "invalid offer")
	}
	content, err := textField("content", content, 0, maxOfferNote)
	if err != nil {
		return nil, fail(span, err, "invalid offer")
	}
	if content == "" {
		content = offerNote(offer)
	}

	var msg *models.Message
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		product, err := repos.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product.SellerID == senderID {
			return pkgerrors.ErrSelfMessage
		}
		msg = &models.Message{
			ProductID:  ptr(productID),
			SenderID:   senderID,
			ReceiverID: product.SellerID,
			Content:    content,
			Type:       models.MessagePriceOffer,
			OfferPrice: decimal.NewNullDecimal(offer),
		}
		return repos.Messages().Create(ctx, msg)
	})
	if err != nil {
		slog.Error("failed to send price offer", "method", "SendPriceOffer", "sender_id", senderID, "product_id", productID, "error", err)
		return nil, fail(span, err, "send offer failed")
	}

	slog.Info("price offer sent", "message_id", msg.ID, "sender_id", senderID, "offer", offer)
	return msg, nil
}

func (s *messageService) SendBountyMessage(ctx context.Context, senderID, bountyID int64, content string) (*models.Message, error) {
	ctx, span := startSpan(ctx, "SendBountyMessage")
	defer span.End()
	span.SetAttributes(attribute.Int64("sender_id", senderID), attribute.Int64("bounty_id", bountyID))

	content, err := textField("content", content, 1, maxMessageLength)
	if err != nil {
		return nil, fail(span, err, "invalid message")
	}

	var msg *models.Message
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		bounty, err := repos.Bounties().GetByID(ctx, bountyID)
		if err != nil {
			return err
		}
		receiver, err := bountyCounterpart(senderID, bounty)
		if err != nil {
			return err
		}
		msg = &models.Message{
			BountyID:   ptr(bountyID),
			SenderID:   senderID,
			ReceiverID: receiver,
			Content:    content,
			Type:       models.MessageText,
		}
		return repos.Messages().Create(ctx, msg)
	})
	if err != nil {
		slog.Error("failed to send bounty message", "method", "SendBountyMessage", "sender_id", senderID, "bounty_id", bountyID, "error", err)
		return nil, fail(span, err, "send message failed")
	}

	slog.Info("bounty message sent", "message_id", msg.ID, "bounty_id", bountyID)
	return msg, nil
}

// bountyCounterpart returns the other member of a bounty conversation.
func bountyCounterpart(userID int64, bounty *models.Bounty) (int64, error) {
	switch {
	case bounty.AccepterID == nil:
		if bounty.UserID == userID {
			return 0, pkgerrors.ErrInvalidBountyStatus
		}
		return 0, pkgerrors.ErrNotBountyMember
	case bounty.UserID == userID:
		return *bounty.AccepterID, nil
	case *bounty.AccepterID == userID:
		return bounty.UserID, nil
	}
	return 0, pkgerrors.ErrNotBountyMember
}

func offerAcceptedNote(offer decimal.Decimal) string {
	return fmt.Sprintf("I have accepted your offer of ¥%s, the price is updated!", offer.StringFixed(2))
}

// AcceptOffer sets the product price to the offered amount. Orders are not
// touched: the buyer still places one at the new price.
func (s *messageService) AcceptOffer(ctx context.Context, sellerID, messageID int64) (*models.OfferAcceptance, error) {
	ctx, span := startSpan(ctx, "AcceptOffer")
	defer span.End()
	span.SetAttributes(attribute.Int64("seller_id", sellerID), attribute.Int64("message_id", messageID))

	var (
		result   models.OfferAcceptance
		oldPrice decimal.Decimal
		offer    *models.Message
	)
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		offer, err = repos.Messages().GetByID(ctx, messageID)
		if err != nil {
			return err
		}
		if offer.ReceiverID != sellerID {
			return pkgerrors.ErrNotOfferReceiver
		}
		if offer.Type != models.MessagePriceOffer || !offer.OfferPrice.Valid || offer.ProductID == nil {
			return pkgerrors.ErrNotPriceOffer
		}

		product, err := repos.Products().GetByID(ctx, *offer.ProductID)
		if err != nil {
			return err
		}
		if product.SellerID != sellerID {
			return pkgerrors.ErrNotProductOwner
		}
		if product.Status != models.ProductListed {
			return pkgerrors.ErrProductUnavailable
		}

		oldPrice = product.Price
		newPrice := offer.OfferPrice.Decimal
		if err := repos.Products().UpdatePrice(ctx, product.ID, newPrice); err != nil {
			return err
		}
		product.Price = newPrice

		confirmation := &models.Message{
			ProductID:  ptr(product.ID),
			SenderID:   sellerID,
			ReceiverID: offer.SenderID,
			Content:    offerAcceptedNote(newPrice),
			Type:       models.MessageText,
		}
		if err := repos.Messages().Create(ctx, confirmation); err != nil {
			return err
		}
		if err := repos.Messages().MarkRead(ctx, sellerID, []int64{offer.ID}); err != nil {
			return err
		}

		result = models.OfferAcceptance{Product: *product, Confirmation: *confirmation}
		return nil
	})
	if err != nil {
		slog.Error("failed to accept offer", "method", "AcceptOffer", "message_id", messageID, "seller_id", sellerID, "error", err)
		return nil, fail(span, err, "accept offer failed")
	}

	s.cache.invalidate(ctx, result.Product.ID)
	s.events.Publish(ctx, newEvent(models.EventOfferAccepted, sellerID, result.Product.ID, map[string]any{
		"message_id": messageID,
		"buyer_id":   offer.SenderID,
		"old_price":  oldPrice,
		"new_price":  result.Product.Price,
	}))

	slog.Info("offer accepted", "product_id", result.Product.ID, "old_price", oldPrice, "new_price", result.Product.Price)
	return &result, nil
}

// GroupConversations folds a user's messages into one entry per context and
// counterpart, newest conversation first.
func GroupConversations(userID int64, msgs []models.Message) []models.Conversation {
	index := make(map[models.ConversationKey]int)
	var out []models.Conversation
	for _, m := range msgs {
		key, ok := conversationKey(userID, m)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, models.Conversation{Key: key, LastMessage: m})
			i = len(out) - 1
		} else if newer(m, out[i].LastMessage) {
			out[i].LastMessage = m
		}
		if m.ReceiverID == userID && !m.IsRead {
			out[i].UnreadCount++
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return newer(out[a].LastMessage, out[b].LastMessage)
	})
	return out
}

func conversationKey(userID int64, m models.Message) (models.ConversationKey, bool) {
	var key models.ConversationKey
	switch {
	case m.SenderID == userID:
		key.CounterpartID = m.ReceiverID
	case m.ReceiverID == userID:
		key.CounterpartID = m.SenderID
	default:
		return key, false
	}
	switch {
	case m.ProductID != nil:
		key.Kind, key.ContextID = models.ContextProduct, *m.ProductID
	case m.BountyID != nil:
		key.Kind, key.ContextID = models.ContextBounty, *m.BountyID
	default:
		return key, false
	}
	return key, true
}

func newer(a, b models.Message) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (s *messageService) Conversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	ctx, span := startSpan(ctx, "Conversations")
	defer span.End()

	var msgs []models.Message
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		msgs, err = repos.Messages().ListByParticipant(ctx, userID)
		return err
	})
	if err != nil {
		slog.Error("failed to list conversations", "method", "Conversations", "user_id", userID, "error", err)
		return nil, fail(span, err, "list conversations failed")
	}
	return GroupConversations(userID, msgs), nil
}

// markReceived flags the caller's unread messages in msgs and returns their ids.
func markReceived(userID int64, msgs []models.Message) []int64 {
	var ids []int64
	for i := range msgs {
		if msgs[i].ReceiverID == userID && !msgs[i].IsRead {
			ids = append(ids, msgs[i].ID)
			msgs[i].IsRead = true
		}
	}
	return ids
}

func (s *messageService) ProductThread(ctx context.Context, userID, productID int64, counterpartID *int64) ([]models.Message, error) {
	ctx, span := startSpan(ctx, "ProductThread")
	defer span.End()

	var msgs []models.Message
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		product, err := repos.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		other, err := productCounterpart(userID, product, counterpartID)
		if err != nil {
			return err
		}
		msgs, err = repos.Messages().ListProductThread(ctx, productID, userID, other)
		if err != nil {
			return err
		}
		return repos.Messages().MarkRead(ctx, userID, markReceived(userID, msgs))
	})
	if err != nil {
		slog.Error("failed to load product thread", "method", "ProductThread", "user_id", userID, "product_id", productID, "error", err)
		return nil, fail(span, err, "load thread failed")
	}
	return msgs, nil
}

func (s *messageService) BountyThread(ctx context.Context, userID, bountyID int64) ([]models.Message, error) {
	ctx, span := startSpan(ctx, "BountyThread")
	defer span.End()

	var msgs []models.Message
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		bounty, err := repos.Bounties().GetByID(ctx, bountyID)
		if err != nil {
			return err
		}
		isAccepter := bounty.AccepterID != nil && *bounty.AccepterID == userID
		if bounty.UserID != userID && !isAccepter {
			return pkgerrors.ErrNotBountyMember
		}
		msgs, err = repos.Messages().ListBountyThread(ctx, bountyID)
		if err != nil {
			return err
		}
		return repos.Messages().MarkRead(ctx, userID, markReceived(userID, msgs))
	})
	if err != nil {
		slog.Error("failed to load bounty thread", "method", "BountyThread", "user_id", userID, "bounty_id", bountyID, "error", err)
		return nil, fail(span, err, "load thread failed")
	}
	return msgs, nil
}

func (s *messageService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	ctx, span := startSpan(ctx, "UnreadCount")
	defer span.End()

	var n int
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		n, err = repos.Messages().CountUnread(ctx, userID)
		return err
	})
	if err != nil {
		return 0, fail(span, err, "count unread failed")
	}
	return n, nil
}
