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

func TestCartService_AddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("adds listed product", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "5"), nil)
		f.carts.EXPECT().AddOrIncrement(gomock.Any(), int64(1), int64(10)).
			Return(&models.CartItem{ID: 1, UserID: 1, ProductID: 10, Quantity: 2}, nil)

		item, err := svc.AddToCart(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("own product", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 1, "5"), nil)

		_, err := svc.AddToCart(ctx, 1, 10)
		assert.ErrorIs(t, err, pkgerrors.ErrSelfPurchase)
	})

	t.Run("sold product", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)
		p := listedProduct(10, 2, "5")
		p.Status = models.ProductSold

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(p, nil)

		_, err := svc.AddToCart(ctx, 1, 10)
		assert.ErrorIs(t, err, pkgerrors.ErrProductUnavailable)
	})
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity below one", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		_, err := svc.UpdateCartQuantity(ctx, 1, 5, 0)
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
	})

	t.Run("someone else's line", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		f.carts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.CartItem{ID: 5, UserID: 9}, nil)

		_, err := svc.UpdateCartQuantity(ctx, 1, 5, 3)
		assert.ErrorIs(t, err, pkgerrors.ErrForbidden)
	})

	t.Run("update", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		f.carts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.CartItem{ID: 5, UserID: 1, Quantity: 1}, nil)
		f.carts.EXPECT().UpdateQuantity(gomock.Any(), int64(5), 3).Return(nil)

		item, err := svc.UpdateCartQuantity(ctx, 1, 5, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("remove", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		f.carts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.CartItem{ID: 5, UserID: 1}, nil)
		f.carts.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		require.NoError(t, svc.RemoveFromCart(ctx, 1, 5))
	})
}

func TestCartService_ViewCart(t *testing.T) {
	f := newFixture(t)
	svc := NewCartService(f.uow)

	delisted := listedProduct(12, 3, "100")
	delisted.Status = models.ProductDelisted
	lines := []models.CartLine{
		{CartItem: models.CartItem{ID: 1, Quantity: 2}, Product: *listedProduct(10, 2, "12.50")},
		{CartItem: models.CartItem{ID: 2, Quantity: 1}, Product: *listedProduct(11, 3, "3")},
		{CartItem: models.CartItem{ID: 3, Quantity: 1}, Product: *delisted},
	}
	f.carts.EXPECT().ListLines(gomock.Any(), int64(1)).Return(lines, nil)

	view, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("28")), view.Total.String())
}

func TestCartService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("adds", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "5"), nil)
		f.favorites.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(nil, nil)
		f.favorites.EXPECT().Create(gomock.Any(), &models.Favorite{UserID: 1, ProductID: 10}).Return(nil)

		added, err := svc.ToggleFavorite(ctx, 1, 10)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("removes", func(t *testing.T) {
		f := newFixture(t)
		svc := NewCartService(f.uow)

		f.products.EXPECT().GetByID(gomock.Any(), int64(10)).Return(listedProduct(10, 2, "5"), nil)
		f.favorites.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&models.Favorite{ID: 4, UserID: 1, ProductID: 10}, nil)
		f.favorites.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

		added, err := svc.ToggleFavorite(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, added)
	})
}

func TestCartService_ListFavorites(t *testing.T) {
	f := newFixture(t)
	svc := NewCartService(f.uow)

	sold := listedProduct(11, 2, "5")
	sold.Status = models.ProductSold
	f.favorites.EXPECT().ListProducts(gomock.Any(), int64(1)).
		Return([]models.Product{*listedProduct(10, 2, "5"), *sold}, nil)

	got, err := svc.ListFavorites(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(10), got[0].ID)
}
