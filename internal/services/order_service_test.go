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

var testShipping = models.Shipping{Address: "Dorm 7, Room 301", Contact: "13800138000"}

func listedProduct(id, sellerID int64, price string) *models.Product {
	return &models.Product{
		ID:       id,
		SellerID: sellerID,
		Title:    "Desk lamp",
		Price:    decimal.RequireFromString(price),
		Category: models.CategorySecondHand,
		Status:   models.ProductListed,
	}
}

func TestOrderService_BuyThenCancel(t *testing.T) {
	f := newFixture(t)
	svc := NewOrderService(f.uow, f.redis, f.events)
	ctx := context.Background()

	product := listedProduct(10, 2, "199.0")

	f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(product, nil)
	f.products.EXPECT().SetStatus(gomock.Any(), int64(10), models.ProductListed, models.ProductOrdered).Return(nil)
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Order) error {
		o.ID = 100
		return nil
	})
	f.redis.EXPECT().Del(gomock.Any(), "product:10").Return(nil)
	f.expectEvent(100)

	order, err := svc.PlaceOrder(ctx, 1, 10, testShipping)
	require.NoError(t, err)
	assert.Equal(t, models.OrderToShip, order.Status)
	assert.True(t, order.Price.Equal(decimal.RequireFromString("199.0")))
	assert.Equal(t, int64(2), order.SellerID)
	assert.Len(t, order.OrderNo, 12)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, fixedNow, *order.PaidAt)
	assert.Equal(t, models.ProductOrdered, product.Status)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(100)).Return(order, nil)
	f.orders.EXPECT().Transition(gomock.Any(), gomock.Any(), models.OrderToShip).Return(nil)
	f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(product, nil)
	f.products.EXPECT().SetStatus(gomock.Any(), int64(10), models.ProductOrdered, models.ProductListed).Return(nil)
	f.redis.EXPECT().Del(gomock.Any(), "product:10").Return(nil)
	f.expectEvent(100)

	cancelled, err := svc.CancelOrder(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)
	assert.Equal(t, 2, f.uow.commits)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid shipping", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, f.redis, f.events)

		_, err := svc.PlaceOrder(ctx, 1, 10, models.Shipping{Address: "x", Contact: "13800138000"})
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
		assert.Zero(t, f.uow.commits+f.uow.rollbacks)
	})

	t.Run("product not listed", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, f.redis, f.events)
		product := listedProduct(10, 2, "50")
		product.Status = models.ProductOrdered

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(product, nil)

		_, err := svc.PlaceOrder(ctx, 1, 10, testShipping)
		assert.ErrorIs(t, err, pkgerrors.ErrProductUnavailable)
		assert.Equal(t, 1, f.uow.rollbacks)
	})

	t.Run("own product", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, f.redis, f.events)

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 1, "50"), nil)

		_, err := svc.PlaceOrder(ctx, 1, 10, testShipping)
		assert.ErrorIs(t, err, pkgerrors.ErrSelfPurchase)
	})

	t.Run("lost race", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, f.redis, f.events)

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "50"), nil)
		f.products.EXPECT().SetStatus(gomock.Any(), int64(10), models.ProductListed, models.ProductOrdered).Return(pkgerrors.ErrStaleState)

		_, err := svc.PlaceOrder(ctx, 1, 10, testShipping)
		assert.ErrorIs(t, err, pkgerrors.ErrStaleState)
		assert.Equal(t, pkgerrors.KindConflict, pkgerrors.KindOf(err))
		assert.Equal(t, 1, f.uow.rollbacks)
	})
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("orders valid lines and clears cart", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, nil, f.events)

		own := listedProduct(12, 1, "10")
		sold := listedProduct(13, 3, "10")
		sold.Status = models.ProductSold
		lines := []models.CartLine{
			{CartItem: models.CartItem{ID: 1, UserID: 1, ProductID: 11, Quantity: 2}, Product: *listedProduct(11, 2, "25.50")},
			{CartItem: models.CartItem{ID: 2, UserID: 1, ProductID: 12, Quantity: 1}, Product: *own},
			{CartItem: models.CartItem{ID: 3, UserID: 1, ProductID: 13, Quantity: 1}, Product: *sold},
		}

		f.carts.EXPECT().ListLines(gomock.Any(), int64(1)).Return(lines, nil)
		f.products.EXPECT().SetStatus(gomock.Any(), int64(11), models.ProductListed, models.ProductOrdered).Return(nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Order) error {
			o.ID = 7
			return nil
		})
		f.carts.EXPECT().Clear(gomock.Any(), int64(1)).Return(3, nil)
		f.expectEvent(7)

		orders, err := svc.Checkout(ctx, 1, testShipping)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].Price.Equal(decimal.RequireFromString("51")))
		assert.Equal(t, int64(11), *orders[0].ProductID)
		assert.Equal(t, 1, f.uow.commits)
	})

	t.Run("total too large for the ledger", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, nil, f.events)

		lines := []models.CartLine{
			{CartItem: models.CartItem{ID: 1, UserID: 1, ProductID: 11, Quantity: 20}, Product: *listedProduct(11, 2, "9999999.99")},
		}
		f.carts.EXPECT().ListLines(gomock.Any(), int64(1)).Return(lines, nil)

		_, err := svc.Checkout(ctx, 1, testShipping)
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
		assert.Equal(t, 1, f.uow.rollbacks)
	})

	t.Run("nothing purchasable", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, nil, f.events)

		f.carts.EXPECT().ListLines(gomock.Any(), int64(1)).Return(nil, nil)

		_, err := svc.Checkout(ctx, 1, testShipping)
		assert.ErrorIs(t, err, pkgerrors.ErrCartEmpty)
		assert.Equal(t, 1, f.uow.rollbacks)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		order   models.Order
		buyerID int64
		wantErr error
	}{
		{
			name:    "not the buyer",
			order:   models.Order{ID: 1, BuyerID: 5, Status: models.OrderToShip},
			buyerID: 1,
			wantErr: pkgerrors.ErrNotOrderBuyer,
		},
		{
			name:    "already shipped",
			order:   models.Order{ID: 1, BuyerID: 1, Status: models.OrderToReceive},
			buyerID: 1,
			wantErr: pkgerrors.ErrInvalidOrderStatus,
		},
		{
			name:    "already complete",
			order:   models.Order{ID: 1, BuyerID: 1, Status: models.OrderComplete},
			buyerID: 1,
			wantErr: pkgerrors.ErrInvalidOrderStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := NewOrderService(f.uow, nil, f.events)
			order := tt.order

			f.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(&order, nil)

			_, err := svc.CancelOrder(ctx, tt.buyerID, order.ID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, f.uow.rollbacks)
		})
	}

	t.Run("bounty order has no product", func(t *testing.T) {
		f := newFixture(t)
		svc := NewOrderService(f.uow, nil, f.events)
		order := &models.Order{ID: 3, BuyerID: 1, Status: models.OrderToShip, IsBountyOrder: true}

		f.orders.EXPECT().GetByID(gomock.Any(), int64(3)).Return(order, nil)
		f.orders.EXPECT().Transition(gomock.Any(), order, models.OrderToShip).Return(nil)
		f.expectEvent(3)

		got, err := svc.CancelOrder(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, models.OrderCancelled, got.Status)
	})
}

func TestOrderService_ShipAndConfirm(t *testing.T) {
	f := newFixture(t)
	svc := NewOrderService(f.uow, f.redis, f.events)
	ctx := context.Background()

	order := &models.Order{ID: 4, BuyerID: 1, SellerID: 2, ProductID: ptr(int64(10)), Status: models.OrderToShip}

	f.orders.EXPECT().GetByID(gomock.Any(), int64(4)).Return(order, nil)
	_, err := svc.ShipOrder(ctx, 9, 4)
	assert.ErrorIs(t, err, pkgerrors.ErrNotOrderSeller)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(4)).Return(order, nil)
	_, err = svc.ConfirmReceipt(ctx, 1, 4)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidOrderStatus)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(4)).Return(order, nil)
	f.orders.EXPECT().Transition(gomock.Any(), order, models.OrderToShip).Return(nil)
	f.expectEvent(4)
	shipped, err := svc.ShipOrder(ctx, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, models.OrderToReceive, shipped.Status)
	assert.Equal(t, fixedNow, *shipped.ShippedAt)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(4)).Return(order, nil)
	f.orders.EXPECT().Transition(gomock.Any(), order, models.OrderToReceive).Return(nil)
	f.products.EXPECT().SetStatus(gomock.Any(), int64(10), models.ProductOrdered, models.ProductSold).Return(nil)
	f.redis.EXPECT().Del(gomock.Any(), "product:10").Return(nil)
	f.expectEvent(4)
	done, err := svc.ConfirmReceipt(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, models.OrderComplete, done.Status)
	assert.Equal(t, fixedNow, *done.CompletedAt)
}

func TestOrderService_BuyerOrders(t *testing.T) {
	f := newFixture(t)
	svc := NewOrderService(f.uow, nil, f.events)

	orders := []models.Order{
		{ID: 1, BuyerID: 1, ProductID: ptr(int64(10)), Status: models.OrderComplete},
		{ID: 2, BuyerID: 1, ProductID: ptr(int64(11)), Status: models.OrderToShip},
		{ID: 3, BuyerID: 1, Status: models.OrderComplete, IsBountyOrder: true},
	}
	f.orders.EXPECT().ListByBuyer(gomock.Any(), int64(1)).Return(orders, nil)
	f.reviews.EXPECT().Exists(gomock.Any(), int64(1), int64(10)).Return(true, nil)

	got, err := svc.BuyerOrders(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].HasReviewed)
	assert.False(t, got[1].HasReviewed)
	assert.False(t, got[2].HasReviewed)
}

func TestOrderService_GetOrder(t *testing.T) {
	f := newFixture(t)
	svc := NewOrderService(f.uow, nil, f.events)
	order := &models.Order{ID: 1, BuyerID: 1, SellerID: 2}

	f.orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(order, nil).Times(2)

	_, err := svc.GetOrder(context.Background(), 3, 1)
	assert.ErrorIs(t, err, pkgerrors.ErrForbidden)

	got, err := svc.GetOrder(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}
