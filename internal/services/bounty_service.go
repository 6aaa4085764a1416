package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type BountyInput struct {
	Title       string          `json:"title"`
	Budget      decimal.Decimal `json:"budget"`
	Description string          `json:"description"`
}

type BountyService interface {
	PostBounty(ctx context.Context, userID int64, in BountyInput) (*models.Bounty, error)
	OpenBounties(ctx context.Context) ([]models.Bounty, error)
	GetBounty(ctx context.Context, bountyID int64) (*models.Bounty, error)
	MyBounties(ctx context.Context, userID int64) (*models.MyBounties, error)
	AcceptBounty(ctx context.Context, userID, bountyID int64) (*models.Bounty, error)
	CreateBountyOrder(ctx context.Context, authorID, bountyID int64, price *decimal.Decimal, ship models.Shipping) (*models.Order, error)
	CancelBounty(ctx context.Context, authorID, bountyID int64) (*models.Bounty, error)
}

type bountyService struct {
	uow    repository.UnitOfWork
	events *EventPublisher
}

func NewBountyService(uow repository.UnitOfWork, events *EventPublisher) *bountyService {
	return &bountyService{uow: uow, events: events}
}

const openBountiesLimit = 50

func (s *bountyService) PostBounty(ctx context.Context, userID int64, in BountyInput) (*models.Bounty, error) {
	ctx, span := startSpan(ctx, "PostBounty")
	defer span.End()

	title, err := textField("title", in.Title, 1, 100)
	if err != nil {
		return nil, fail(span, err, "invalid bounty")
	}
	description, err := textField("description", in.Description, 0, 1000)
	if err != nil {
		return nil, fail(span, err, "invalid bounty")
	}
	if err := validateAmount("budget", in.Budget); err != nil {
		return nil, fail(span, err, "invalid bounty")
	}

	bounty := &models.Bounty{
		UserID:      userID,
		Title:       title,
		Budget:      in.Budget,
		Description: description,
		Status:      models.BountyOpen,
	}
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Bounties().Create(ctx, bounty)
	})
	if err != nil {
		slog.Error("failed to post bounty", "method", "PostBounty", "user_id", userID, "error", err)
		return nil, fail(span, err, "post bounty failed")
	}

	transitioned("bounty", models.BountyOpen)
	s.events.Publish(ctx, newEvent(models.EventBountyPosted, userID, bounty.ID, map[string]any{
		"title":  bounty.Title,
		"budget": bounty.Budget,
	}))

	slog.Info("bounty posted", "bounty_id", bounty.ID, "user_id", userID)
	return bounty, nil
}

func (s *bountyService) OpenBounties(ctx context.Context) ([]models.Bounty, error) {
	ctx, span := startSpan(ctx, "OpenBounties")
	defer span.End()

	var out []models.Bounty
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		out, err = repos.Bounties().ListOpen(ctx, openBountiesLimit)
		return err
	})
	if err != nil {
		return nil, fail(span, err, "list bounties failed")
	}
	return out, nil
}

func (s *bountyService) GetBounty(ctx context.Context, bountyID int64) (*models.Bounty, error) {
	ctx, span := startSpan(ctx, "GetBounty")
	defer span.End()

	var bounty *models.Bounty
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		bounty, err = repos.Bounties().GetByID(ctx, bountyID)
		return err
	})
	if err != nil {
		return nil, fail(span, err, "get bounty failed")
	}
	return bounty, nil
}

func (s *bountyService) MyBounties(ctx context.Context, userID int64) (*models.MyBounties, error) {
	ctx, span := startSpan(ctx, "MyBounties")
	defer span.End()

	out := &models.MyBounties{}
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		if out.Posted, err = repos.Bounties().ListByAuthor(ctx, userID); err != nil {
			return err
		}
		out.Accepted, err = repos.Bounties().ListByAccepter(ctx, userID)
		return err
	})
	if err != nil {
		slog.Error("failed to list bounties", "method", "MyBounties", "user_id", userID, "error", err)
		return nil, fail(span, err, "list bounties failed")
	}
	return out, nil
}

func acceptedMessage(title string) string {
	return fmt.Sprintf("I have accepted your bounty %q, let's talk about the details!", title)
}

// AcceptBounty claims an open bounty and opens the conversation with its author.
func (s *bountyService) AcceptBounty(ctx context.Context, userID, bountyID int64) (*models.Bounty, error) {
	ctx, span := startSpan(ctx, "AcceptBounty")
	defer span.End()
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.Int64("bounty_id", bountyID))

	var bounty *models.Bounty
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		bounty, err = repos.Bounties().GetByID(ctx, bountyID)
		if err != nil {
			return err
		}
		if bounty.Status != models.BountyOpen {
			return pkgerrors.ErrInvalidBountyStatus
		}
		if bounty.UserID == userID {
			return pkgerrors.ErrSelfAccept
		}

		bounty.Status = models.BountyInDiscussion
		bounty.AccepterID = ptr(userID)
		bounty.AcceptedAt = ptr(timeNow())
		if err := repos.Bounties().Transition(ctx, bounty, models.BountyOpen); err != nil {
			return err
		}

		return repos.Messages().Create(ctx, &models.Message{
			BountyID:   ptr(bounty.ID),
			SenderID:   userID,
			ReceiverID: bounty.UserID,
			Content:    acceptedMessage(bounty.Title),
			Type:       models.MessageText,
		})
	})
	if err != nil {
		slog.Error("failed to accept bounty", "method", "AcceptBounty", "bounty_id", bountyID, "user_id", userID, "error", err)
		return nil, fail(span, err, "accept bounty failed")
	}

	transitioned("bounty", models.BountyInDiscussion)
	s.events.Publish(ctx, newEvent(models.EventBountyAccepted, userID, bounty.ID, map[string]any{
		"author_id": bounty.UserID,
	}))

	slog.Info("bounty accepted", "bounty_id", bounty.ID, "accepter_id", userID)
	return bounty, nil
}

// CreateBountyOrder closes a bounty in discussion with an order from its
// author to the accepter. price defaults to the budget.
func (s *bountyService) CreateBountyOrder(ctx context.Context, authorID, bountyID int64, price *decimal.Decimal, ship models.Shipping) (*models.Order, error) {
	ctx, span := startSpan(ctx, "CreateBountyOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("author_id", authorID), attribute.Int64("bounty_id", bountyID))

	ship, err := validateShipping(ship)
	if err != nil {
		return nil, fail(span, err, "invalid shipping")
	}
	if price != nil {
		if err := validateAmount("price", *price); err != nil {
			return nil, fail(span, err, "invalid price")
		}
	}

	var (
		order  *models.Order
		bounty *models.Bounty
	)
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		bounty, err = repos.Bounties().GetByID(ctx, bountyID)
		if err != nil {
			return err
		}
		if bounty.UserID != authorID {
			return pkgerrors.ErrNotBountyAuthor
		}
		if bounty.Status != models.BountyInDiscussion || bounty.AccepterID == nil {
			return pkgerrors.ErrInvalidBountyStatus
		}

		amount := bounty.Budget
		if price != nil {
			amount = *price
		}
		order = &models.Order{
			OrderNo:       newOrderNo(),
			BuyerID:       authorID,
			SellerID:      *bounty.AccepterID,
			Price:         amount,
			Status:        models.OrderToShip,
			Address:       ship.Address,
			Contact:       ship.Contact,
			IsBountyOrder: true,
			PaidAt:        ptr(timeNow()),
		}
		if err := repos.Orders().Create(ctx, order); err != nil {
			return err
		}

		bounty.Status = models.BountyFulfilled
		bounty.OrderID = ptr(order.ID)
		return repos.Bounties().Transition(ctx, bounty, models.BountyInDiscussion)
	})
	if err != nil {
		slog.Error("failed to create bounty order", "method", "CreateBountyOrder", "bounty_id", bountyID, "author_id", authorID, "error", err)
		return nil, fail(span, err, "create bounty order failed")
	}

	transitioned("bounty", models.BountyFulfilled)
	transitioned("order", models.OrderToShip)
	s.events.Publish(ctx,
		newEvent(models.EventBountyFulfilled, authorID, bounty.ID, map[string]any{"order_id": order.ID}),
		newEvent(models.EventOrderPlaced, authorID, order.ID, map[string]any{
			"order_no":  order.OrderNo,
			"bounty_id": bounty.ID,
			"seller_id": order.SellerID,
			"price":     order.Price,
		}),
	)

	slog.Info("bounty order created", "bounty_id", bounty.ID, "order_id", order.ID, "price", order.Price)
	return order, nil
}

func (s *bountyService) CancelBounty(ctx context.Context, authorID, bountyID int64) (*models.Bounty, error) {
	ctx, span := startSpan(ctx, "CancelBounty")
	defer span.End()

	var bounty *models.Bounty
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		bounty, err = repos.Bounties().GetByID(ctx, bountyID)
		if err != nil {
			return err
		}
		if bounty.UserID != authorID {
			return pkgerrors.ErrNotBountyAuthor
		}
		if bounty.Status != models.BountyOpen {
			return pkgerrors.ErrInvalidBountyStatus
		}
		bounty.Status = models.BountyCancelled
		return repos.Bounties().Transition(ctx, bounty, models.BountyOpen)
	})
	if err != nil {
		slog.Error("failed to cancel bounty", "method", "CancelBounty", "bounty_id", bountyID, "author_id", authorID, "error", err)
		return nil, fail(span, err, "cancel bounty failed")
	}

	transitioned("bounty", models.BountyCancelled)
	s.events.Publish(ctx, newEvent(models.EventBountyCancelled, authorID, bounty.ID, nil))

	slog.Info("bounty cancelled", "bounty_id", bounty.ID)
	return bounty, nil
}
