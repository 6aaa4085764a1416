package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks github.com/honeynil/CampusMarket/internal/repository UserRepository,ProductRepository,BountyRepository,OrderRepository,MessageRepository,ReviewRepository,CartRepository,FavoriteRepository,HistoryRepository,ActivityRepository

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	// AdjustCreditScore adds delta to the score, never going below zero.
	AdjustCreditScore(ctx context.Context, userID int64, delta int) (int, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
