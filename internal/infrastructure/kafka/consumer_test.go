package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	repositorymocks "github.com/honeynil/CampusMarket/internal/repository/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityOnly struct {
	repository.Repositories
	activity repository.ActivityRepository
}

func (r activityOnly) Activity() repository.ActivityRepository { return r.activity }

type directUnitOfWork struct {
	repos repository.Repositories
}

func (u directUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return fn(ctx, u.repos)
}

// sliceReader serves queued messages, then blocks until ctx is done.
type sliceReader struct {
	msgs []kafka.Message
}

func (r *sliceReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *sliceReader) Close() error { return nil }

// failingReader fails every read and counts the attempts.
type failingReader struct {
	reads atomic.Int32
}

func (r *failingReader) ReadMessage(context.Context) (kafka.Message, error) {
	r.reads.Add(1)
	return kafka.Message{}, errors.New("broker unavailable")
}

func (r *failingReader) Close() error { return nil }

func newTestConsumer(t *testing.T, reader MessageReader) (*Consumer, *repositorymocks.MockActivityRepository) {
	ctrl := gomock.NewController(t)
	activity := repositorymocks.NewMockActivityRepository(ctrl)
	uow := directUnitOfWork{repos: activityOnly{activity: activity}}
	c := NewConsumerWithReader(reader, uow)
	c.backoff = 10 * time.Millisecond
	return c, activity
}

func runConsumer(t *testing.T, c *Consumer, ctx context.Context) {
	t.Helper()
	runConsumer(t, c, ctx)
}

func TestConsumer_RetriesStoreFailures(t *testing.T) {
	reader := &sliceReader{msgs: []kafka.Message{
		{Value: []byte(`{"type":"order.shipped","actor_id":2,"subject_id":7}`)},
	}}
	c, activity := newTestConsumer(t, reader)

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(2),
		activity.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *models.ActivityEntry) error {
			cancel()
			return nil
		}),
	)

	runConsumer(t, c, ctx)
}

func TestConsumer_GivesUpAfterAttempts(t *testing.T) {
	c, activity := newTestConsumer(t, &sliceReader{})

	activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(defaultAttempts)

	err := c.handleWithRetry(context.Background(), kafka.Message{Value: []byte(`{"type":"order.shipped"}`)})
	assert.EqualError(t, err, "db down")
}

func TestConsumer_BacksOffOnReadErrors(t *testing.T) {
	reader := &failingReader{}
	c, _ := newTestConsumer(t, reader)
	c.backoff = 50 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()
	runConsumer(t, c, ctx)

	assert.LessOrEqual(t, reader.reads.Load(), int32(4))
	assert.GreaterOrEqual(t, reader.reads.Load(), int32(1))
}

func TestConsumer_Handle(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	t.Run("appends activity", func(t *testing.T) {
		c, activity := newTestConsumer(t, &sliceReader{})
		value, err := json.Marshal(models.Event{
			Type:       models.EventOrderPlaced,
			ActorID:    1,
			SubjectID:  100,
			Payload:    json.RawMessage(`{"product_id":10}`),
			OccurredAt: occurred,
		})
		require.NoError(t, err)

		activity.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *models.ActivityEntry) error {
			assert.Equal(t, models.EventOrderPlaced, e.Type)
			assert.Equal(t, int64(1), e.ActorID)
			assert.Equal(t, int64(100), e.SubjectID)
			assert.JSONEq(t, `{"product_id":10}`, string(e.Payload))
			assert.True(t, occurred.Equal(e.OccurredAt))
			return nil
		})

		assert.NoError(t, c.Handle(ctx, kafka.Message{Value: value}))
	})

	t.Run("falls back to message time", func(t *testing.T) {
		c, activity := newTestConsumer(t, &sliceReader{})

		activity.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *models.ActivityEntry) error {
			assert.True(t, occurred.Equal(e.OccurredAt))
			return nil
		})

		msg := kafka.Message{Value: []byte(`{"type":"user.registered","actor_id":3,"subject_id":3}`), Time: occurred}
		assert.NoError(t, c.Handle(ctx, msg))
	})

	t.Run("bad json", func(t *testing.T) {
		c, _ := newTestConsumer(t, &sliceReader{})

		err := c.Handle(ctx, kafka.Message{Value: []byte("not json")})
		assert.ErrorContains(t, err, "failed to unmarshal event")
		assert.ErrorIs(t, err, ErrUndecodable)
	})

	t.Run("missing type", func(t *testing.T) {
		c, _ := newTestConsumer(t, &sliceReader{})

		err := c.Handle(ctx, kafka.Message{Value: []byte(`{"actor_id":3}`)})
		assert.ErrorIs(t, err, ErrUndecodable)
	})

	t.Run("store failure", func(t *testing.T) {
		c, activity := newTestConsumer(t, &sliceReader{})

		activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		err := c.Handle(ctx, kafka.Message{Value: []byte(`{"type":"order.shipped"}`)})
		assert.EqualError(t, err, "db down")
	})
}

func TestConsumer_Consume(t *testing.T) {
	reader := &sliceReader{msgs: []kafka.Message{
		{Value: []byte("garbage")},
		{Value: []byte(`{"type":"bounty.posted","actor_id":1,"subject_id":5}`)},
	}}
	c, activity := newTestConsumer(t, reader)

	ctx, cancel := context.WithCancel(context.Background())
	activity.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *models.ActivityEntry) error {
		cancel()
		return nil
	})

	done := make(chan struct{})
	go func() {
		c.Consume(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
