package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	ListByParticipant(ctx context.Context, userID int64) ([]models.Message, error)
	ListProductThread(ctx context.Context, productID, userA, userB int64) ([]models.Message, error)
	ListBountyThread(ctx context.Context, bountyID int64) ([]models.Message, error)
	MarkRead(ctx context.Context, receiverID int64, ids []int64) error
	CountUnread(ctx context.Context, receiverID int64) (int, error)
}
