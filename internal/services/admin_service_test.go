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

var testAdmin = models.Principal{UserID: 99, Role: models.RoleAdmin}

func TestAdminService_Dashboard(t *testing.T) {
	f := newFixture(t)
	svc := NewAdminService(f.uow, f.redis, f.events)
	ctx := context.Background()

	_, err := svc.Dashboard(ctx, models.Principal{UserID: 2, Role: models.RoleSeller})
	assert.ErrorIs(t, err, pkgerrors.ErrForbidden)

	f.users.EXPECT().Count(gomock.Any()).Return(10, nil)
	f.products.EXPECT().Count(gomock.Any()).Return(30, nil)
	f.bounties.EXPECT().Count(gomock.Any()).Return(5, nil)
	f.products.EXPECT().SumSold(gomock.Any(), gomock.Nil()).Return(decimal.NewFromInt(1000), nil)
	f.products.EXPECT().ListRecent(gomock.Any(), 20).Return(nil, nil)
	f.activity.EXPECT().ListRecent(gomock.Any(), 20).Return([]models.ActivityEntry{{ID: 1, Type: models.EventOrderPlaced}}, nil)

	dash, err := svc.Dashboard(ctx, testAdmin)
	require.NoError(t, err)
	assert.Equal(t, 10, dash.UserCount)
	assert.Equal(t, 30, dash.ProductCount)
	assert.Equal(t, 5, dash.BountyCount)
	assert.Len(t, dash.RecentActivity, 1)
}

func TestAdminService_BanUser(t *testing.T) {
	ctx := context.Background()

	t.Run("cannot ban admin", func(t *testing.T) {
		f := newFixture(t)
		svc := NewAdminService(f.uow, f.redis, f.events)

		f.users.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.User{ID: 5, Role: models.RoleAdmin}, nil)

		err := svc.BanUser(ctx, testAdmin, 5)
		assert.ErrorIs(t, err, pkgerrors.ErrCannotBanAdmin)
		assert.Equal(t, 1, f.uow.rollbacks)
	})

	t.Run("bans and revokes token", func(t *testing.T) {
		f := newFixture(t)
		svc := NewAdminService(f.uow, f.redis, f.events)

		f.users.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.User{ID: 5, Role: models.RoleBuyer}, nil)
		f.orders.EXPECT().ListByBuyer(gomock.Any(), int64(5)).Return(nil, nil)
		f.users.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
		f.redis.EXPECT().Del(gomock.Any(), "user:5:token").Return(nil)
		f.expectEvent(5)

		require.NoError(t, svc.BanUser(ctx, testAdmin, 5))
	})

	t.Run("releases products reserved by the banned buyer", func(t *testing.T) {
		f := newFixture(t)
		svc := NewAdminService(f.uow, f.redis, f.events)

		reserved := listedProduct(10, 2, "199")
		reserved.Status = models.ProductOrdered
		shipped := listedProduct(11, 3, "40")
		shipped.Status = models.ProductOrdered
		orders := []models.Order{
			{ID: 1, BuyerID: 5, SellerID: 2, ProductID: ptr(int64(10)), Status: models.OrderToShip},
			{ID: 2, BuyerID: 5, SellerID: 3, ProductID: ptr(int64(11)), Status: models.OrderToReceive},
			{ID: 3, BuyerID: 5, SellerID: 4, ProductID: ptr(int64(12)), Status: models.OrderComplete},
		}

		f.users.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.User{ID: 5, Role: models.RoleBuyer}, nil)
		f.orders.EXPECT().ListByBuyer(gomock.Any(), int64(5)).Return(orders, nil)
		gomock.InOrder(
			f.orders.EXPECT().Transition(gomock.Any(), gomock.Any(), models.OrderToShip).
				DoAndReturn(func(_ context.Context, o *models.Order, _ models.OrderStatus) error {
					assert.Equal(t, int64(1), o.ID)
					assert.Equal(t, models.OrderCancelled, o.Status)
					return nil
				}),
			f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(reserved, nil),
			f.products.EXPECT().SetStatus(gomock.Any(), int64(10), models.ProductOrdered, models.ProductListed).Return(nil),
			f.products.EXPECT().GetByID(gomock.Any(), int64(11)).Return(shipped, nil),
			f.products.EXPECT().SetStatus(gomock.Any(), int64(11), models.ProductOrdered, models.ProductSold).Return(nil),
			f.users.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil),
		)
		f.redis.EXPECT().Del(gomock.Any(), "product:10").Return(nil)
		f.redis.EXPECT().Del(gomock.Any(), "product:11").Return(nil)
		f.redis.EXPECT().Del(gomock.Any(), "user:5:token").Return(nil)
		f.expectEvent(5)

		require.NoError(t, svc.BanUser(ctx, testAdmin, 5))
		assert.Equal(t, 1, f.uow.commits)
	})

	t.Run("not an admin", func(t *testing.T) {
		f := newFixture(t)
		svc := NewAdminService(f.uow, f.redis, f.events)

		err := svc.BanUser(ctx, models.Principal{UserID: 1, Role: models.RoleBuyer}, 5)
		assert.Equal(t, pkgerrors.KindForbidden, pkgerrors.KindOf(err))
	})
}

func TestAdminService_ForceDeleteProduct(t *testing.T) {
	f := newFixture(t)
	svc := NewAdminService(f.uow, f.redis, f.events)

	f.products.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)
	f.redis.EXPECT().Del(gomock.Any(), "product:10").Return(nil)
	f.expectEvent(10)

	require.NoError(t, svc.ForceDeleteProduct(context.Background(), testAdmin, 10))
}
