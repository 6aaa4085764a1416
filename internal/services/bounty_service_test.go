package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBountyService_AcceptThenOrder(t *testing.T) {
	f := newFixture(t)
	svc := NewBountyService(f.uow, f.events)
	ctx := context.Background()

	const author, accepter = int64(1), int64(2)
	bounty := &models.Bounty{
		ID:     20,
		UserID: author,
		Title:  "Calculus textbook",
		Budget: decimal.RequireFromString("500"),
		Status: models.BountyOpen,
	}

	f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).Return(bounty, nil)
	f.bounties.EXPECT().Transition(gomock.Any(), bounty, models.BountyOpen).Return(nil)
	f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.Message) error {
		assert.Equal(t, accepter, m.SenderID)
		assert.Equal(t, author, m.ReceiverID)
		require.NotNil(t, m.BountyID)
		assert.Equal(t, int64(20), *m.BountyID)
		assert.Nil(t, m.ProductID)
		assert.Contains(t, m.Content, "Calculus textbook")
		return nil
	})
	f.expectEvent(20)

	accepted, err := svc.AcceptBounty(ctx, accepter, 20)
	require.NoError(t, err)
	assert.Equal(t, models.BountyInDiscussion, accepted.Status)
	require.NotNil(t, accepted.AccepterID)
	assert.Equal(t, accepter, *accepted.AccepterID)
	assert.Equal(t, fixedNow, *accepted.AcceptedAt)

	price := decimal.RequireFromString("450")
	f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).Return(bounty, nil)
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Order) error {
		o.ID = 300
		return nil
	})
	f.bounties.EXPECT().Transition(gomock.Any(), bounty, models.BountyInDiscussion).Return(nil)
	f.expectEvent(20)
	f.expectEvent(300)

	order, err := svc.CreateBountyOrder(ctx, author, 20, &price, testShipping)
	require.NoError(t, err)
	assert.True(t, order.IsBountyOrder)
	assert.Nil(t, order.ProductID)
	assert.Equal(t, author, order.BuyerID)
	assert.Equal(t, accepter, order.SellerID)
	assert.Equal(t, models.OrderToShip, order.Status)
	assert.True(t, order.Price.Equal(price))
	assert.Equal(t, models.BountyFulfilled, bounty.Status)
	assert.Equal(t, int64(300), *bounty.OrderID)
}

func TestBountyService_AcceptBounty_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  models.BountyStatus
		userID  int64
		wantErr error
	}{
		{name: "own bounty", status: models.BountyOpen, userID: 1, wantErr: pkgerrors.ErrSelfAccept},
		{name: "already accepted", status: models.BountyInDiscussion, userID: 2, wantErr: pkgerrors.ErrInvalidBountyStatus},
		{name: "cancelled", status: models.BountyCancelled, userID: 2, wantErr: pkgerrors.ErrInvalidBountyStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := NewBountyService(f.uow, f.events)

			f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).
				Return(&models.Bounty{ID: 20, UserID: 1, Status: tt.status}, nil)

			_, err := svc.AcceptBounty(context.Background(), tt.userID, 20)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, f.uow.rollbacks)
		})
	}
}

func TestBountyService_CreateBountyOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to budget", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)
		bounty := &models.Bounty{
			ID: 20, UserID: 1, Budget: decimal.RequireFromString("500"),
			Status: models.BountyInDiscussion, AccepterID: ptr(int64(2)),
		}

		f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).Return(bounty, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.bounties.EXPECT().Transition(gomock.Any(), bounty, models.BountyInDiscussion).Return(nil)
		f.kafka.EXPECT().Send(gomock.Any(), testTopic, gomock.Any(), gomock.Any()).Return(nil).Times(2)

		order, err := svc.CreateBountyOrder(ctx, 1, 20, nil, testShipping)
		require.NoError(t, err)
		assert.True(t, order.Price.Equal(decimal.RequireFromString("500")))
	})

	t.Run("not the author", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)

		f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).
			Return(&models.Bounty{ID: 20, UserID: 1, Status: models.BountyInDiscussion, AccepterID: ptr(int64(2))}, nil)

		_, err := svc.CreateBountyOrder(ctx, 2, 20, nil, testShipping)
		assert.ErrorIs(t, err, pkgerrors.ErrNotBountyAuthor)
	})

	t.Run("still open", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)

		f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).
			Return(&models.Bounty{ID: 20, UserID: 1, Status: models.BountyOpen}, nil)

		_, err := svc.CreateBountyOrder(ctx, 1, 20, nil, testShipping)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidBountyStatus)
	})

	t.Run("price outside the money range", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)

		for _, raw := range []string{"0", "449.999", "100000000"} {
			price := decimal.RequireFromString(raw)
			_, err := svc.CreateBountyOrder(ctx, 1, 20, &price, testShipping)
			assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err), raw)
		}
	})
}

func TestBountyService_PostAndCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("post", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)

		f.bounties.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *models.Bounty) error {
			b.ID = 5
			return nil
		})
		f.expectEvent(5)

		b, err := svc.PostBounty(ctx, 1, BountyInput{Title: "  Bike lock ", Budget: decimal.NewFromInt(30)})
		require.NoError(t, err)
		assert.Equal(t, "Bike lock", b.Title)
		assert.Equal(t, models.BountyOpen, b.Status)
	})

	t.Run("post without budget", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)

		_, err := svc.PostBounty(ctx, 1, BountyInput{Title: "Bike lock"})
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))

		_, err = svc.PostBounty(ctx, 1, BountyInput{Title: "Bike lock", Budget: decimal.RequireFromString("30.005")})
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
	})

	t.Run("cancel in discussion", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)

		f.bounties.EXPECT().GetByID(gomock.Any(), int64(5)).
			Return(&models.Bounty{ID: 5, UserID: 1, Status: models.BountyInDiscussion}, nil)

		_, err := svc.CancelBounty(ctx, 1, 5)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidBountyStatus)
	})

	t.Run("cancel open", func(t *testing.T) {
		f := newFixture(t)
		svc := NewBountyService(f.uow, f.events)
		bounty := &models.Bounty{ID: 5, UserID: 1, Status: models.BountyOpen}

		f.bounties.EXPECT().GetByID(gomock.Any(), int64(5)).Return(bounty, nil)
		f.bounties.EXPECT().Transition(gomock.Any(), bounty, models.BountyOpen).Return(nil)
		f.expectEvent(5)

		got, err := svc.CancelBounty(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, models.BountyCancelled, got.Status)
	})
}
