package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

type BountyRepository interface {
	Create(ctx context.Context, b *models.Bounty) error
	GetByID(ctx context.Context, id int64) (*models.Bounty, error)
	// Transition persists status, accepter and order fields of b, provided the
	// stored status still equals from. Otherwise it returns ErrStaleState.
	Transition(ctx context.Context, b *models.Bounty, from models.BountyStatus) error
	ListOpen(ctx context.Context, limit int) ([]models.Bounty, error)
	ListByAuthor(ctx context.Context, userID int64) ([]models.Bounty, error)
	ListByAccepter(ctx context.Context, userID int64) ([]models.Bounty, error)
	Count(ctx context.Context) (int, error)
	CountByAuthor(ctx context.Context, userID int64) (int, error)
}
