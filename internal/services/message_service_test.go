package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_AcceptOffer(t *testing.T) {
	f := newFixture(t)
	svc := NewMessageService(f.uow, f.redis, f.events)
	ctx := context.Background()

	const buyer, seller = int64(1), int64(2)
	product := listedProduct(10, seller, "200.0")

	f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(product, nil)
	f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.Message) error {
		m.ID = 40
		return nil
	})

	offer, err := svc.SendPriceOffer(ctx, buyer, 10, decimal.RequireFromString("150.0"), "")
	require.NoError(t, err)
	assert.Equal(t, models.MessagePriceOffer, offer.Type)
	assert.Equal(t, seller, offer.ReceiverID)
	assert.Equal(t, "I would like to buy this for ¥150.00", offer.Content)

	f.messages.EXPECT().GetByID(gomock.Any(), int64(40)).Return(offer, nil)
	f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(product, nil)
	f.products.EXPECT().UpdatePrice(gomock.Any(), int64(10), decimal.RequireFromString("150.0")).Return(nil)
	f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.Message) error {
		m.ID = 41
		return nil
	})
	f.messages.EXPECT().MarkRead(gomock.Any(), seller, []int64{40}).Return(nil)
	f.redis.EXPECT().Del(gomock.Any(), "product:10").Return(nil)
	f.expectEvent(10)

	res, err := svc.AcceptOffer(ctx, seller, 40)
	require.NoError(t, err)
	assert.True(t, res.Product.Price.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, int64(41), res.Confirmation.ID)
	assert.Equal(t, buyer, res.Confirmation.ReceiverID)
	assert.Equal(t, "I have accepted your offer of ¥150.00, the price is updated!", res.Confirmation.Content)
	assert.Equal(t, 2, f.uow.commits)
}

func TestMessageService_AcceptOffer_Rejections(t *testing.T) {
	offer := func() *models.Message {
		return &models.Message{
			ID: 40, ProductID: ptr(int64(10)), SenderID: 1, ReceiverID: 2,
			Type: models.MessagePriceOffer, OfferPrice: decimal.NewNullDecimal(decimal.NewFromInt(150)),
		}
	}

	t.Run("not the receiver", func(t *testing.T) {
		f := newFixture(t)
		svc := NewMessageService(f.uow, nil, f.events)
		f.messages.EXPECT().GetByID(gomock.Any(), int64(40)).Return(offer(), nil)

		_, err := svc.AcceptOffer(context.Background(), 3, 40)
		assert.ErrorIs(t, err, pkgerrors.ErrNotOfferReceiver)
	})

	t.Run("plain text message", func(t *testing.T) {
		f := newFixture(t)
		svc := NewMessageService(f.uow, nil, f.events)
		m := offer()
		m.Type = models.MessageText
		m.OfferPrice = decimal.NullDecimal{}
		f.messages.EXPECT().GetByID(gomock.Any(), int64(40)).Return(m, nil)

		_, err := svc.AcceptOffer(context.Background(), 2, 40)
		assert.ErrorIs(t, err, pkgerrors.ErrNotPriceOffer)
	})

	t.Run("product no longer listed", func(t *testing.T) {
		f := newFixture(t)
		svc := NewMessageService(f.uow, nil, f.events)
		product := listedProduct(10, 2, "200")
		product.Status = models.ProductOrdered
		f.messages.EXPECT().GetByID(gomock.Any(), int64(40)).Return(offer(), nil)
		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(product, nil)

		_, err := svc.AcceptOffer(context.Background(), 2, 40)
		assert.ErrorIs(t, err, pkgerrors.ErrProductUnavailable)
		assert.Equal(t, 1, f.uow.rollbacks)
	})
}

func TestMessageService_SendProductMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("buyer writes to seller", func(t *testing.T) {
		f := newFixture(t)
		svc := NewMessageService(f.uow, nil, f.events)

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "10"), nil)
		f.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2}, nil)
		f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		msg, err := svc.SendProductMessage(ctx, 1, 10, nil, " still available? ")
		require.NoError(t, err)
		assert.Equal(t, int64(2), msg.ReceiverID)
		assert.Equal(t, "still available?", msg.Content)
		assert.Equal(t, models.MessageText, msg.Type)
	})

	t.Run("seller must name the buyer", func(t *testing.T) {
		f := newFixture(t)
		svc := NewMessageService(f.uow, nil, f.events)
		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "10"), nil)

		_, err := svc.SendProductMessage(ctx, 2, 10, nil, "yes")
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
	})

	t.Run("seller to self", func(t *testing.T) {
		f := newFixture(t)
		svc := NewMessageService(f.uow, nil, f.events)
		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "10"), nil)

		_, err := svc.SendProductMessage(ctx, 2, 10, ptr(int64(2)), "yes")
		assert.ErrorIs(t, err, pkgerrors.ErrSelfMessage)
	})

	t.Run("blank content", func(t *testing.T) {
		f := newFixture(t)
		svc := NewMessageService(f.uow, nil, f.events)

		_, err := svc.SendProductMessage(ctx, 1, 10, nil, "   ")
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
		assert.Zero(t, f.uow.commits+f.uow.rollbacks)
	})
}

func TestMessageService_SendPriceOffer_Rejections(t *testing.T) {
	f := newFixture(t)
	svc := NewMessageService(f.uow, nil, f.events)
	ctx := context.Background()

	for _, offer := range []string{"0", "0.001", "123456789"} {
		_, err := svc.SendPriceOffer(ctx, 1, 10, decimal.RequireFromString(offer), "")
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err), offer)
	}

	f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 1, "10"), nil)
	_, err := svc.SendPriceOffer(ctx, 1, 10, decimal.NewFromInt(5), "")
	assert.ErrorIs(t, err, pkgerrors.ErrSelfMessage)
}

func TestMessageService_SendBountyMessage(t *testing.T) {
	tests := []struct {
		name     string
		bounty   models.Bounty
		sender   int64
		receiver int64
		wantErr  error
	}{
		{
			name:     "author to accepter",
			bounty:   models.Bounty{ID: 20, UserID: 1, AccepterID: ptr(int64(2)), Status: models.BountyInDiscussion},
			sender:   1,
			receiver: 2,
		},
		{
			name:     "accepter to author",
			bounty:   models.Bounty{ID: 20, UserID: 1, AccepterID: ptr(int64(2)), Status: models.BountyInDiscussion},
			sender:   2,
			receiver: 1,
		},
		{
			name:    "outsider",
			bounty:  models.Bounty{ID: 20, UserID: 1, AccepterID: ptr(int64(2)), Status: models.BountyInDiscussion},
			sender:  3,
			wantErr: pkgerrors.ErrNotBountyMember,
		},
		{
			name:    "author before acceptance",
			bounty:  models.Bounty{ID: 20, UserID: 1, Status: models.BountyOpen},
			sender:  1,
			wantErr: pkgerrors.ErrInvalidBountyStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := NewMessageService(f.uow, nil, f.events)
			bounty := tt.bounty

			f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).Return(&bounty, nil)
			if tt.wantErr == nil {
				f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			msg, err := svc.SendBountyMessage(context.Background(), tt.sender, 20, "when can we meet?")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.receiver, msg.ReceiverID)
			assert.Equal(t, int64(20), *msg.BountyID)
		})
	}
}

func TestGroupConversations(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		{ID: 1, ProductID: ptr(int64(10)), SenderID: 2, ReceiverID: 1, CreatedAt: base},
		{ID: 2, ProductID: ptr(int64(10)), SenderID: 1, ReceiverID: 2, CreatedAt: base.Add(time.Minute), IsRead: true},
		{ID: 3, ProductID: ptr(int64(10)), SenderID: 3, ReceiverID: 1, CreatedAt: base.Add(2 * time.Minute)},
		{ID: 4, BountyID: ptr(int64(20)), SenderID: 2, ReceiverID: 1, CreatedAt: base.Add(3 * time.Minute)},
		{ID: 5, BountyID: ptr(int64(20)), SenderID: 2, ReceiverID: 1, CreatedAt: base.Add(4 * time.Minute), IsRead: true},
		{ID: 6, ProductID: ptr(int64(11)), SenderID: 4, ReceiverID: 5, CreatedAt: base},
	}

	got := GroupConversations(1, msgs)
	require.Len(t, got, 3)

	assert.Equal(t, models.ConversationKey{Kind: models.ContextBounty, ContextID: 20, CounterpartID: 2}, got[0].Key)
	assert.Equal(t, int64(5), got[0].LastMessage.ID)
	assert.Equal(t, 1, got[0].UnreadCount)

	assert.Equal(t, models.ConversationKey{Kind: models.ContextProduct, ContextID: 10, CounterpartID: 3}, got[1].Key)
	assert.Equal(t, 1, got[1].UnreadCount)

	assert.Equal(t, models.ConversationKey{Kind: models.ContextProduct, ContextID: 10, CounterpartID: 2}, got[2].Key)
	assert.Equal(t, int64(2), got[2].LastMessage.ID)
	assert.Equal(t, 1, got[2].UnreadCount)
}

func TestMessageService_ProductThread_MarksRead(t *testing.T) {
	f := newFixture(t)
	svc := NewMessageService(f.uow, nil, f.events)

	thread := []models.Message{
		{ID: 1, ProductID: ptr(int64(10)), SenderID: 1, ReceiverID: 2},
		{ID: 2, ProductID: ptr(int64(10)), SenderID: 2, ReceiverID: 1},
		{ID: 3, ProductID: ptr(int64(10)), SenderID: 2, ReceiverID: 1, IsRead: true},
	}
	f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "10"), nil)
	f.messages.EXPECT().ListProductThread(gomock.Any(), int64(10), int64(1), int64(2)).Return(thread, nil)
	f.messages.EXPECT().MarkRead(gomock.Any(), int64(1), []int64{2}).Return(nil)

	got, err := svc.ProductThread(context.Background(), 1, 10, nil)
	require.NoError(t, err)
	for _, m := range got {
		if m.ReceiverID == 1 {
			assert.True(t, m.IsRead)
		}
	}
}

func TestMessageService_BountyThread_Outsider(t *testing.T) {
	f := newFixture(t)
	svc := NewMessageService(f.uow, nil, f.events)

	f.bounties.EXPECT().GetByID(gomock.Any(), int64(20)).
		Return(&models.Bounty{ID: 20, UserID: 1, AccepterID: ptr(int64(2))}, nil)

	_, err := svc.BountyThread(context.Background(), 3, 20)
	assert.ErrorIs(t, err, pkgerrors.ErrNotBountyMember)
}
