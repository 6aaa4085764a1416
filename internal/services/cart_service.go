package service

import (
	"context"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
)

// CartService covers the per-user lists: cart, favorites and browsing history.
type CartService interface {
	AddToCart(ctx context.Context, userID, productID int64) (*models.CartItem, error)
	UpdateCartQuantity(ctx context.Context, userID, itemID int64, quantity int) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, itemID int64) error
	ViewCart(ctx context.Context, userID int64) (*models.CartView, error)
	CartCount(ctx context.Context, userID int64) (int, error)
	ToggleFavorite(ctx context.Context, userID, productID int64) (bool, error)
	ListFavorites(ctx context.Context, userID int64) ([]models.Product, error)
	History(ctx context.Context, userID int64) ([]models.BrowsingRecord, error)
	ClearHistory(ctx context.Context, userID int64) error
}

type cartService struct {
	uow repository.UnitOfWork
}

func NewCartService(uow repository.UnitOfWork) *cartService {
	return &cartService{uow: uow}
}

func (s *cartService) AddToCart(ctx context.Context, userID, productID int64) (*models.CartItem, error) {
	ctx, span := startSpan(ctx, "AddToCart")
	defer span.End()

	var item *models.CartItem
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		product, err := repos.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product.Status != models.ProductListed {
			return pkgerrors.ErrProductUnavailable
		}
		if product.SellerID == userID {
			return pkgerrors.ErrSelfPurchase
		}
		item, err = repos.Carts().AddOrIncrement(ctx, userID, productID)
		return err
	})
	if err != nil {
		slog.Error("failed to add to cart", "method", "AddToCart", "user_id", userID, "product_id", productID, "error", err)
		return nil, fail(span, err, "add to cart failed")
	}

	slog.Info("added to cart", "user_id", userID, "product_id", productID, "quantity", item.Quantity)
	return item, nil
}

// ownedItem loads a cart item and checks it belongs to userID.
func ownedItem(ctx context.Context, repos repository.Repositories, userID, itemID int64) (*models.CartItem, error) {
	item, err := repos.Carts().GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, pkgerrors.ErrForbidden
	}
	return item, nil
}

func (s *cartService) UpdateCartQuantity(ctx context.Context, userID, itemID int64, quantity int) (*models.CartItem, error) {
	ctx, span := startSpan(ctx, "UpdateCartQuantity")
	defer span.End()

	if quantity < 1 {
		return nil, fail(span, pkgerrors.Invalid("quantity must be at least 1"), "invalid quantity")
	}

	var item *models.CartItem
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		item, err = ownedItem(ctx, repos, userID, itemID)
		if err != nil {
			return err
		}
		if err := repos.Carts().UpdateQuantity(ctx, itemID, quantity); err != nil {
			return err
		}
		item.Quantity = quantity
		return nil
	})
	if err != nil {
		slog.Error("failed to update cart", "method", "UpdateCartQuantity", "user_id", userID, "item_id", itemID, "error", err)
		return nil, fail(span, err, "update cart failed")
	}
	return item, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID, itemID int64) error {
	ctx, span := startSpan(ctx, "RemoveFromCart")
	defer span.End()

	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := ownedItem(ctx, repos, userID, itemID); err != nil {
			return err
		}
		return repos.Carts().Delete(ctx, itemID)
	})
	if err != nil {
		slog.Error("failed to remove cart item", "method", "RemoveFromCart", "user_id", userID, "item_id", itemID, "error", err)
		return fail(span, err, "remove from cart failed")
	}
	return nil
}

// ViewCart lists the lines that can still be bought and their total.
func (s *cartService) ViewCart(ctx context.Context, userID int64) (*models.CartView, error) {
	ctx, span := startSpan(ctx, "ViewCart")
	defer span.End()

	var lines []models.CartLine
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		lines, err = repos.Carts().ListLines(ctx, userID)
		return err
	})
	if err != nil {
		slog.Error("failed to load cart", "method", "ViewCart", "user_id", userID, "error", err)
		return nil, fail(span, err, "view cart failed")
	}

	view := &models.CartView{Lines: []models.CartLine{}, Total: decimal.Zero}
	for _, l := range lines {
		if l.Product.Status != models.ProductListed || l.Product.SellerID == userID {
			continue
		}
		view.Lines = append(view.Lines, l)
		view.Total = view.Total.Add(l.Subtotal())
	}
	return view, nil
}

func (s *cartService) CartCount(ctx context.Context, userID int64) (int, error) {
	ctx, span := startSpan(ctx, "CartCount")
	defer span.End()

	var n int
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		n, err = repos.Carts().Count(ctx, userID)
		return err
	})
	if err != nil {
		return 0, fail(span, err, "count cart failed")
	}
	return n, nil
}

// ToggleFavorite adds the product to favorites, or removes it when present.
// It reports whether the product is a favorite afterwards.
func (s *cartService) ToggleFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	ctx, span := startSpan(ctx, "ToggleFavorite")
	defer span.End()

	var added bool
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Products().GetByID(ctx, productID); err != nil {
			return err
		}
		fav, err := repos.Favorites().Get(ctx, userID, productID)
		if err != nil {
			return err
		}
		if fav != nil {
			return repos.Favorites().Delete(ctx, fav.ID)
		}
		added = true
		return repos.Favorites().Create(ctx, &models.Favorite{UserID: userID, ProductID: productID})
	})
	if err != nil {
		slog.Error("failed to toggle favorite", "method", "ToggleFavorite", "user_id", userID, "product_id", productID, "error", err)
		return false, fail(span, err, "toggle favorite failed")
	}

	slog.Info("favorite toggled", "user_id", userID, "product_id", productID, "added", added)
	return added, nil
}

func (s *cartService) ListFavorites(ctx context.Context, userID int64) ([]models.Product, error) {
	ctx, span := startSpan(ctx, "ListFavorites")
	defer span.End()

	var all []models.Product
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		all, err = repos.Favorites().ListProducts(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fail(span, err, "list favorites failed")
	}

	out := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.Status == models.ProductListed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *cartService) History(ctx context.Context, userID int64) ([]models.BrowsingRecord, error) {
	ctx, span := startSpan(ctx, "History")
	defer span.End()

	var out []models.BrowsingRecord
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		out, err = repos.History().List(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fail(span, err, "list history failed")
	}
	return out, nil
}

func (s *cartService) ClearHistory(ctx context.Context, userID int64) error {
	ctx, span := startSpan(ctx, "ClearHistory")
	defer span.End()

	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.History().Clear(ctx, userID)
	})
	if err != nil {
		return fail(span, err, "clear history failed")
	}
	slog.Info("history cleared", "user_id", userID)
	return nil
}
