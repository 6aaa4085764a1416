package service

import (
	"context"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, buyerID, orderID int64, rating int, content string) (*models.Review, error)
	ProductReviews(ctx context.Context, productID int64) ([]models.Review, error)
}

type reviewService struct {
	uow    repository.UnitOfWork
	events *EventPublisher
}

func NewReviewService(uow repository.UnitOfWork, events *EventPublisher) *reviewService {
	return &reviewService{uow: uow, events: events}
}

// CreditDelta is the change a rating makes to the seller's credit score.
func CreditDelta(rating int) int {
	switch {
	case rating >= 4:
		return 5
	case rating <= 2:
		return -5
	}
	return 0
}

func (s *reviewService) SubmitReview(ctx context.Context, buyerID, orderID int64, rating int, content string) (*models.Review, error) {
	ctx, span := startSpan(ctx, "SubmitReview")
	defer span.End()
	span.SetAttributes(attribute.Int64("buyer_id", buyerID), attribute.Int64("order_id", orderID), attribute.Int("rating", rating))

	if rating < models.MinRating || rating > models.MaxRating {
		return nil, fail(span, pkgerrors.Invalid("rating must be between %d and %d", models.MinRating, models.MaxRating), "invalid review")
	}
	content, err := textField("content", content, 5, 500)
	if err != nil {
		return nil, fail(span, err, "invalid review")
	}

	var (
		review *models.Review
		score  int
	)
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		order, err := repos.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.BuyerID != buyerID {
			return pkgerrors.ErrNotOrderBuyer
		}
		if order.Status != models.OrderComplete {
			return pkgerrors.ErrOrderNotComplete
		}
		if order.IsBountyOrder || order.ProductID == nil {
			return pkgerrors.ErrNotReviewable
		}

		reviewed, err := repos.Reviews().Exists(ctx, buyerID, *order.ProductID)
		if err != nil {
			return err
		}
		if reviewed {
			return pkgerrors.ErrAlreadyReviewed
		}

		review = &models.Review{
			BuyerID:   buyerID,
			SellerID:  order.SellerID,
			ProductID: *order.ProductID,
			Rating:    rating,
			Content:   content,
		}
		if err := repos.Reviews().Create(ctx, review); err != nil {
			return err
		}

		if delta := CreditDelta(rating); delta != 0 {
			score, err = repos.Users().AdjustCreditScore(ctx, order.SellerID, delta)
			return err
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to submit review", "method", "SubmitReview", "order_id", orderID, "buyer_id", buyerID, "error", err)
		return nil, fail(span, err, "submit review failed")
	}

	s.events.Publish(ctx, newEvent(models.EventReviewSubmitted, buyerID, review.ID, map[string]any{
		"seller_id":  review.SellerID,
		"product_id": review.ProductID,
		"rating":     rating,
	}))

	slog.Info("review submitted", "review_id", review.ID, "seller_id", review.SellerID, "rating", rating, "credit_score", score)
	return review, nil
}

func (s *reviewService) ProductReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	ctx, span := startSpan(ctx, "ProductReviews")
	defer span.End()

	var out []models.Review
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		out, err = repos.Reviews().ListByProduct(ctx, productID)
		return err
	})
	if err != nil {
		return nil, fail(span, err, "list reviews failed")
	}
	return out, nil
}
