package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
)

func TestPostgresActivityRepository_Append(t *testing.T) {
	at := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		payload     []byte
		wantPayload string
	}{
		{"with payload", []byte(`{"forced":true}`), `{"forced":true}`},
		{"empty payload", nil, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()
			repo := postgres.NewPostgresActivityRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO activity_log`)).
				WithArgs("product.deleted", int64(1), int64(10), tt.wantPayload, at).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

			e := &models.ActivityEntry{Type: models.EventProductDeleted, ActorID: 1, SubjectID: 10, Payload: tt.payload, OccurredAt: at}
			assert.NoError(t, repo.Append(context.Background(), e))
			assert.Equal(t, int64(3), e.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresActivityRepository_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresActivityRepository(db)

	at := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM activity_log ORDER BY occurred_at DESC, id DESC LIMIT $1`)).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_type", "actor_id", "subject_id", "payload", "occurred_at"}).
			AddRow(2, "order.placed", 1, 7, []byte(`{}`), at).
			AddRow(1, "user.registered", 1, 1, []byte(`{}`), at.Add(-time.Hour)))

	entries, err := repo.ListRecent(context.Background(), 20)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, models.EventOrderPlaced, entries[0].Type)
	assert.JSONEq(t, `{}`, string(entries[0].Payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}
