package service

import (
	"context"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const dashboardRecent = 20

type AdminService interface {
	Dashboard(ctx context.Context, p models.Principal) (*models.AdminDashboard, error)
	ForceDeleteProduct(ctx context.Context, p models.Principal, productID int64) error
	BanUser(ctx context.Context, p models.Principal, userID int64) error
}

type adminService struct {
	uow         repository.UnitOfWork
	redisClient redis.RedisClient
	events      *EventPublisher
	cache       productCache
}

func NewAdminService(uow repository.UnitOfWork, redisClient redis.RedisClient, events *EventPublisher) *adminService {
	return &adminService{uow: uow, redisClient: redisClient, events: events, cache: productCache{client: redisClient}}
}

func (s *adminService) Dashboard(ctx context.Context, p models.Principal) (*models.AdminDashboard, error) {
	ctx, span := startSpan(ctx, "AdminDashboard")
	defer span.End()

	if err := models.Authorize(p.Role, models.CapAdminister).Err(); err != nil {
		return nil, fail(span, err, "not allowed")
	}

	dash := &models.AdminDashboard{}
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		if dash.UserCount, err = repos.Users().Count(ctx); err != nil {
			return err
		}
		if dash.ProductCount, err = repos.Products().Count(ctx); err != nil {
			return err
		}
		if dash.BountyCount, err = repos.Bounties().Count(ctx); err != nil {
			return err
		}
		if dash.TotalSales, err = repos.Products().SumSold(ctx, nil); err != nil {
			return err
		}
		if dash.RecentProducts, err = repos.Products().ListRecent(ctx, dashboardRecent); err != nil {
			return err
		}
		dash.RecentActivity, err = repos.Activity().ListRecent(ctx, dashboardRecent)
		return err
	})
	if err != nil {
		slog.Error("failed to load admin dashboard", "method", "Dashboard", "admin_id", p.UserID, "error", err)
		return nil, fail(span, err, "admin dashboard failed")
	}
	return dash, nil
}

// ForceDeleteProduct removes a product in any status. Orders keep their row
// with a null product reference.
func (s *adminService) ForceDeleteProduct(ctx context.Context, p models.Principal, productID int64) error {
	ctx, span := startSpan(ctx, "ForceDeleteProduct")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID))

	if err := models.Authorize(p.Role, models.CapAdminister).Err(); err != nil {
		return fail(span, err, "not allowed")
	}

	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Products().Delete(ctx, productID)
	})
	if err != nil {
		slog.Error("failed to force delete product", "method", "ForceDeleteProduct", "product_id", productID, "error", err)
		return fail(span, err, "force delete failed")
	}

	s.cache.invalidate(ctx, productID)
	s.events.Publish(ctx, newEvent(models.EventProductDeleted, p.UserID, productID, map[string]any{"forced": true}))
	slog.Info("product force deleted", "product_id", productID, "admin_id", p.UserID)
	return nil
}

// settlePurchases resolves the open orders of a buyer about to be deleted, whose
// order rows go with the account. Unshipped orders are cancelled and their
// products relisted; products already shipped are marked sold. It returns the
// ids of the products it changed.
func settlePurchases(ctx context.Context, repos repository.Repositories, buyerID int64) ([]int64, error) {
	orders, err := repos.Orders().ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	var changed []int64
	for i := range orders {
		o := &orders[i]
		switch {
		case o.Status.Cancellable():
			relisted, err := cancelOrder(ctx, repos, o)
			if err != nil {
				return nil, err
			}
			if relisted {
				changed = append(changed, *o.ProductID)
			}
		case o.Status == models.OrderToReceive && o.ProductID != nil:
			product, err := repos.Products().GetByID(ctx, *o.ProductID)
			if err != nil {
				return nil, err
			}
			if product.Status != models.ProductOrdered {
				continue
			}
			if err := repos.Products().SetStatus(ctx, product.ID, models.ProductOrdered, models.ProductSold); err != nil {
				return nil, err
			}
			changed = append(changed, product.ID)
		}
	}
	return changed, nil
}

func (s *adminService) BanUser(ctx context.Context, p models.Principal, userID int64) error {
	ctx, span := startSpan(ctx, "BanUser")
	defer span.End()
	span.SetAttributes(attribute.Int64("user_id", userID))

	if err := models.Authorize(p.Role, models.CapAdminister).Err(); err != nil {
		return fail(span, err, "not allowed")
	}

	var released []int64
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		user, err := repos.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.Role == models.RoleAdmin {
			return pkgerrors.ErrCannotBanAdmin
		}
		if released, err = settlePurchases(ctx, repos, userID); err != nil {
			return err
		}
		return repos.Users().Delete(ctx, userID)
	})
	if err != nil {
		slog.Error("failed to ban user", "method", "BanUser", "user_id", userID, "error", err)
		return fail(span, err, "ban user failed")
	}

	s.cache.invalidate(ctx, released...)
	if s.redisClient != nil {
		if err := s.redisClient.Del(ctx, redis.TokenKey(userID)); err != nil {
			slog.Warn("failed to revoke banned user token", "user_id", userID, "error", err)
		}
	}
	s.events.Publish(ctx, newEvent(models.EventUserBanned, p.UserID, userID, nil))
	slog.Info("user banned", "user_id", userID, "admin_id", p.UserID)
	return nil
}
