package service

import (
	"context"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, buyerID, productID int64, ship models.Shipping) (*models.Order, error)
	Checkout(ctx context.Context, buyerID int64, ship models.Shipping) ([]models.Order, error)
	CancelOrder(ctx context.Context, buyerID, orderID int64) (*models.Order, error)
	ShipOrder(ctx context.Context, sellerID, orderID int64) (*models.Order, error)
	ConfirmReceipt(ctx context.Context, buyerID, orderID int64) (*models.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*models.Order, error)
	BuyerOrders(ctx context.Context, buyerID int64) ([]models.BuyerOrder, error)
	SellerOrders(ctx context.Context, sellerID int64) ([]models.Order, error)
}

type orderService struct {
	uow    repository.UnitOfWork
	events *EventPublisher
	cache  productCache
}

func NewOrderService(uow repository.UnitOfWork, redisClient redis.RedisClient, events *EventPublisher) *orderService {
	return &orderService{uow: uow, events: events, cache: productCache{client: redisClient}}
}

func validateShipping(ship models.Shipping) (models.Shipping, error) {
	address, err := textField("address", ship.Address, 5, 200)
	if err != nil {
		return ship, err
	}
	contact, err := textField("contact", ship.Contact, 5, 64)
	if err != nil {
		return ship, err
	}
	return models.Shipping{Address: address, Contact: contact}, nil
}

// reserve moves a listed product to ordered and builds the paid order for it.
func reserve(ctx context.Context, repos repository.Repositories, buyerID int64, product *models.Product, quantity int, ship models.Shipping) (*models.Order, error) {
	if product.Status != models.ProductListed {
		return nil, pkgerrors.ErrProductUnavailable
	}
	if product.SellerID == buyerID {
		return nil, pkgerrors.ErrSelfPurchase
	}
	if err := repos.Products().SetStatus(ctx, product.ID, models.ProductListed, models.ProductOrdered); err != nil {
		return nil, err
	}
	product.Status = models.ProductOrdered

	paidAt := timeNow()
	order := &models.Order{
		OrderNo:   newOrderNo(),
		BuyerID:   buyerID,
		SellerID:  product.SellerID,
		ProductID: ptr(product.ID),
		Price:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:    models.OrderToShip,
		Address:   ship.Address,
		Contact:   ship.Contact,
		PaidAt:    &paidAt,
	}
	if err := repos.Orders().Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// cancelOrder moves o to Cancelled and relists its product if it is still reserved.
func cancelOrder(ctx context.Context, repos repository.Repositories, o *models.Order) (relisted bool, err error) {
	from := o.Status
	o.Status = models.OrderCancelled
	if err := repos.Orders().Transition(ctx, o, from); err != nil {
		return false, err
	}
	if o.ProductID == nil {
		return false, nil
	}
	product, err := repos.Products().GetByID(ctx, *o.ProductID)
	if err != nil {
		return false, err
	}
	if product.Status != models.ProductOrdered {
		return false, nil
	}
	if err := repos.Products().SetStatus(ctx, product.ID, models.ProductOrdered, models.ProductListed); err != nil {
		return false, err
	}
	return true, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, buyerID, productID int64, ship models.Shipping) (*models.Order, error) {
	ctx, span := startSpan(ctx, "PlaceOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("buyer_id", buyerID), attribute.Int64("product_id", productID))

	ship, err := validateShipping(ship)
	if err != nil {
		return nil, fail(span, err, "invalid shipping")
	}

	var order *models.Order
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		product, err := repos.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		order, err = reserve(ctx, repos, buyerID, product, 1, ship)
		return err
	})
	if err != nil {
		slog.Error("failed to place order", "method", "PlaceOrder", "buyer_id", buyerID, "product_id", productID, "error", err)
		return nil, fail(span, err, "place order failed")
	}

	transitioned("product", models.ProductOrdered)
	transitioned("order", models.OrderToShip)
	s.cache.invalidate(ctx, productID)
	s.events.Publish(ctx, newEvent(models.EventOrderPlaced, buyerID, order.ID, map[string]any{
		"order_no":   order.OrderNo,
		"product_id": productID,
		"seller_id":  order.SellerID,
		"price":      order.Price,
	}))

	slog.Info("order placed", "order_id", order.ID, "order_no", order.OrderNo, "buyer_id", buyerID, "product_id", productID)
	return order, nil
}

// Checkout turns every purchasable cart line into its own order and empties
// the cart in the same transaction.
func (s *orderService) Checkout(ctx context.Context, buyerID int64, ship models.Shipping) ([]models.Order, error) {
	ctx, span := startSpan(ctx, "Checkout")
	defer span.End()
	span.SetAttributes(attribute.Int64("buyer_id", buyerID))

	ship, err := validateShipping(ship)
	if err != nil {
		return nil, fail(span, err, "invalid shipping")
	}

	var orders []models.Order
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		lines, err := repos.Carts().ListLines(ctx, buyerID)
		if err != nil {
			return err
		}
		for i := range lines {
			line := &lines[i]
			if line.Product.Status != models.ProductListed || line.Product.SellerID == buyerID {
				continue
			}
			if line.Subtotal().GreaterThanOrEqual(maxAmount) {
				return pkgerrors.Invalid("order total for product %d is too large", line.Product.ID)
			}
			order, err := reserve(ctx, repos, buyerID, &line.Product, line.Quantity, ship)
			if err != nil {
				return err
			}
			orders = append(orders, *order)
		}
		if len(orders) == 0 {
			return pkgerrors.ErrCartEmpty
		}
		_, err = repos.Carts().Clear(ctx, buyerID)
		return err
	})
	if err != nil {
		slog.Error("checkout failed", "method", "Checkout", "buyer_id", buyerID, "error", err)
		return nil, fail(span, err, "checkout failed")
	}

	events := make([]models.Event, 0, len(orders))
	for _, o := range orders {
		transitioned("product", models.ProductOrdered)
		transitioned("order", models.OrderToShip)
		s.cache.invalidate(ctx, *o.ProductID)
		events = append(events, newEvent(models.EventOrderPlaced, buyerID, o.ID, map[string]any{
			"order_no":   o.OrderNo,
			"product_id": *o.ProductID,
			"seller_id":  o.SellerID,
			"price":      o.Price,
		}))
	}
	s.events.Publish(ctx, events...)

	slog.Info("checkout completed", "buyer_id", buyerID, "orders", len(orders))
	return orders, nil
}

func (s *orderService) CancelOrder(ctx context.Context, buyerID, orderID int64) (*models.Order, error) {
	ctx, span := startSpan(ctx, "CancelOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("buyer_id", buyerID), attribute.Int64("order_id", orderID))

	var (
		order    *models.Order
		relisted bool
	)
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		order, err = repos.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.BuyerID != buyerID {
			return pkgerrors.ErrNotOrderBuyer
		}
		if !order.Status.Cancellable() {
			return pkgerrors.ErrInvalidOrderStatus
		}
		relisted, err = cancelOrder(ctx, repos, order)
		return err
	})
	if err != nil {
		slog.Error("failed to cancel order", "method", "CancelOrder", "order_id", orderID, "buyer_id", buyerID, "error", err)
		return nil, fail(span, err, "cancel order failed")
	}

	transitioned("order", models.OrderCancelled)
	if relisted {
		transitioned("product", models.ProductListed)
		s.cache.invalidate(ctx, *order.ProductID)
	}
	s.events.Publish(ctx, newEvent(models.EventOrderCancelled, buyerID, order.ID, map[string]any{
		"order_no":   order.OrderNo,
		"product_id": order.ProductID,
	}))

	slog.Info("order cancelled", "order_id", order.ID, "buyer_id", buyerID, "relisted", relisted)
	return order, nil
}

func (s *orderService) ShipOrder(ctx context.Context, sellerID, orderID int64) (*models.Order, error) {
	ctx, span := startSpan(ctx, "ShipOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("seller_id", sellerID), attribute.Int64("order_id", orderID))

	var order *models.Order
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		order, err = repos.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.SellerID != sellerID {
			return pkgerrors.ErrNotOrderSeller
		}
		if order.Status != models.OrderToShip {
			return pkgerrors.ErrInvalidOrderStatus
		}
		order.Status = models.OrderToReceive
		order.ShippedAt = ptr(timeNow())
		return repos.Orders().Transition(ctx, order, models.OrderToShip)
	})
	if err != nil {
		slog.Error("failed to ship order", "method", "ShipOrder", "order_id", orderID, "seller_id", sellerID, "error", err)
		return nil, fail(span, err, "ship order failed")
	}

	transitioned("order", models.OrderToReceive)
	s.events.Publish(ctx, newEvent(models.EventOrderShipped, sellerID, order.ID, map[string]any{
		"order_no": order.OrderNo,
		"buyer_id": order.BuyerID,
	}))

	slog.Info("order shipped", "order_id", order.ID, "seller_id", sellerID)
	return order, nil
}

func (s *orderService) ConfirmReceipt(ctx context.Context, buyerID, orderID int64) (*models.Order, error) {
	ctx, span := startSpan(ctx, "ConfirmReceipt")
	defer span.End()
	span.SetAttributes(attribute.Int64("buyer_id", buyerID), attribute.Int64("order_id", orderID))

	var order *models.Order
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		order, err = repos.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.BuyerID != buyerID {
			return pkgerrors.ErrNotOrderBuyer
		}
		if order.Status != models.OrderToReceive {
			return pkgerrors.ErrInvalidOrderStatus
		}
		order.Status = models.OrderComplete
		order.CompletedAt = ptr(timeNow())
		if err := repos.Orders().Transition(ctx, order, models.OrderToReceive); err != nil {
			return err
		}
		if order.ProductID == nil {
			return nil
		}
		return repos.Products().SetStatus(ctx, *order.ProductID, models.ProductOrdered, models.ProductSold)
	})
	if err != nil {
		slog.Error("failed to confirm receipt", "method", "ConfirmReceipt", "order_id", orderID, "buyer_id", buyerID, "error", err)
		return nil, fail(span, err, "confirm receipt failed")
	}

	transitioned("order", models.OrderComplete)
	if order.ProductID != nil {
		transitioned("product", models.ProductSold)
		s.cache.invalidate(ctx, *order.ProductID)
	}
	s.events.Publish(ctx, newEvent(models.EventOrderCompleted, buyerID, order.ID, map[string]any{
		"order_no":  order.OrderNo,
		"seller_id": order.SellerID,
		"price":     order.Price,
	}))

	slog.Info("order completed", "order_id", order.ID, "buyer_id", buyerID)
	return order, nil
}

// GetOrder is visible to the order's buyer and seller only.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID int64) (*models.Order, error) {
	ctx, span := startSpan(ctx, "GetOrder")
	defer span.End()

	var order *models.Order
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		order, err = repos.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.BuyerID != userID && order.SellerID != userID {
			return pkgerrors.ErrForbidden
		}
		return nil
	})
	if err != nil {
		return nil, fail(span, err, "get order failed")
	}
	return order, nil
}

func (s *orderService) BuyerOrders(ctx context.Context, buyerID int64) ([]models.BuyerOrder, error) {
	ctx, span := startSpan(ctx, "BuyerOrders")
	defer span.End()

	var out []models.BuyerOrder
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		orders, err := repos.Orders().ListByBuyer(ctx, buyerID)
		if err != nil {
			return err
		}
		out = make([]models.BuyerOrder, 0, len(orders))
		for _, o := range orders {
			bo := models.BuyerOrder{Order: o}
			if o.Status == models.OrderComplete && o.ProductID != nil && !o.IsBountyOrder {
				bo.HasReviewed, err = repos.Reviews().Exists(ctx, buyerID, *o.ProductID)
				if err != nil {
					return err
				}
			}
			out = append(out, bo)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to list buyer orders", "method", "BuyerOrders", "buyer_id", buyerID, "error", err)
		return nil, fail(span, err, "list buyer orders failed")
	}
	return out, nil
}

func (s *orderService) SellerOrders(ctx context.Context, sellerID int64) ([]models.Order, error) {
	ctx, span := startSpan(ctx, "SellerOrders")
	defer span.End()

	var out []models.Order
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		out, err = repos.Orders().ListBySeller(ctx, sellerID)
		return err
	})
	if err != nil {
		slog.Error("failed to list seller orders", "method", "SellerOrders", "seller_id", sellerID, "error", err)
		return nil, fail(span, err, "list seller orders failed")
	}
	return out, nil
}
