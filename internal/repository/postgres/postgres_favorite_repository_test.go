package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/honeynil/CampusMarket/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
)

func TestPostgresFavoriteRepository_Get(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, user_id, product_id, created_at FROM favorites WHERE user_id = $1 AND product_id = $2`)

	t.Run("absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := postgres.NewPostgresFavoriteRepository(db)

		mock.ExpectQuery(query).WithArgs(int64(1), int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "created_at"}))

		fav, err := repo.Get(context.Background(), 1, 5)
		assert.NoError(t, err)
		assert.Nil(t, fav)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("present", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := postgres.NewPostgresFavoriteRepository(db)

		mock.ExpectQuery(query).WithArgs(int64(1), int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "created_at"}).AddRow(9, 1, 5, time.Now()))

		fav, err := repo.Get(context.Background(), 1, 5)
		assert.NoError(t, err)
		if assert.NotNil(t, fav) {
			assert.Equal(t, int64(9), fav.ID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresHistoryRepository_Touch(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresHistoryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id, product_id) DO UPDATE SET viewed_at = NOW()`)).
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Touch(context.Background(), 1, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresHistoryRepository_ListOnlyListed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresHistoryRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE h.user_id = $1 AND p.status = $2`)).
		WithArgs(int64(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "viewed_at", "id", "seller_id", "title", "price", "image_url", "category", "status",
			"description", "origin_bounty_id", "created_at",
		}).AddRow(1, now, 5, 2, "Desk lamp", "35.00", "img", "second", 1, "", nil, now))

	records, err := repo.List(context.Background(), 1)
	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		assert.Equal(t, "Desk lamp", records[0].Product.Title)
		assert.Nil(t, records[0].Product.Attributes.OriginBountyID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
