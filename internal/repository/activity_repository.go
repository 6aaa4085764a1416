package repository

import (
	"context"

	"github.com/honeynil/CampusMarket/internal/models"
)

type ActivityRepository interface {
	Append(ctx context.Context, e *models.ActivityEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
