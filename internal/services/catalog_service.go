package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const placeholderImage = "https://via.placeholder.com/300?text=Campus+Market"

type ListingInput struct {
	Title          string          `json:"title"`
	Price          decimal.Decimal `json:"price"`
	Category       models.Category `json:"category"`
	ImageURL       string          `json:"image_url"`
	Description    string          `json:"description"`
	OriginBountyID *int64          `json:"origin_bounty_id"`
}

type CatalogService interface {
	CreateListing(ctx context.Context, p models.Principal, in ListingInput) (*models.Product, error)
	UpdateListing(ctx context.Context, sellerID, productID int64, in ListingInput) (*models.Product, error)
	UpdatePrice(ctx context.Context, sellerID, productID int64, price decimal.Decimal) (*models.PriceChange, error)
	ToggleListing(ctx context.Context, sellerID, productID int64) (*models.Product, error)
	DeleteListing(ctx context.Context, sellerID, productID int64) error
	Browse(ctx context.Context, f models.ProductFilter) (*models.CatalogPage, error)
	ProductDetail(ctx context.Context, viewerID *int64, productID int64) (*models.ProductView, error)
	SellerDashboard(ctx context.Context, p models.Principal) (*models.SellerDashboard, error)
}

type catalogService struct {
	uow    repository.UnitOfWork
	events *EventPublisher
	cache  productCache
}

func NewCatalogService(uow repository.UnitOfWork, redisClient redis.RedisClient, events *EventPublisher) *catalogService {
	return &catalogService{uow: uow, events: events, cache: productCache{client: redisClient}}
}

func validateListing(in ListingInput) (ListingInput, error) {
	title, err := textField("title", in.Title, 1, 100)
	if err != nil {
		return in, err
	}
	in.Title = title
	if err := validateAmount("price", in.Price); err != nil {
		return in, err
	}
	if !in.Category.Valid() {
		return in, pkgerrors.Invalid("unknown category %q", in.Category)
	}
	if in.Description, err = textField("description", in.Description, 0, 1000); err != nil {
		return in, err
	}
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.ImageURL == "" {
		in.ImageURL = placeholderImage
	}
	return in, nil
}

// checkOrigin verifies the seller accepted the bounty the listing answers.
func checkOrigin(ctx context.Context, repos repository.Repositories, sellerID int64, bountyID *int64) error {
	if bountyID == nil {
		return nil
	}
	bounty, err := repos.Bounties().GetByID(ctx, *bountyID)
	if err != nil {
		return err
	}
	if bounty.AccepterID == nil || *bounty.AccepterID != sellerID {
		return pkgerrors.Invalid("origin bounty %d was not accepted by this seller", *bountyID)
	}
	return nil
}

// ownedProduct loads a product and checks that sellerID owns it.
func ownedProduct(ctx context.Context, repos repository.Repositories, sellerID, productID int64) (*models.Product, error) {
	product, err := repos.Products().GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, pkgerrors.ErrNotProductOwner
	}
	return product, nil
}

func (s *catalogService) CreateListing(ctx context.Context, p models.Principal, in ListingInput) (*models.Product, error) {
	ctx, span := startSpan(ctx, "CreateListing")
	defer span.End()
	span.SetAttributes(attribute.Int64("seller_id", p.UserID))

	if err := models.Authorize(p.Role, models.CapManageListings).Err(); err != nil {
		return nil, fail(span, err, "not allowed")
	}
	in, err := validateListing(in)
	if err != nil {
		return nil, fail(span, err, "invalid listing")
	}

	product := &models.Product{
		SellerID: p.UserID,
		Title:    in.Title,
		Price:    in.Price,
		ImageURL: in.ImageURL,
		Category: in.Category,
		Status:   models.ProductListed,
		Attributes: models.ProductAttributes{
			Description:    in.Description,
			OriginBountyID: in.OriginBountyID,
		},
	}
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := checkOrigin(ctx, repos, p.UserID, in.OriginBountyID); err != nil {
			return err
		}
		return repos.Products().Create(ctx, product)
	})
	if err != nil {
		slog.Error("failed to create listing", "method", "CreateListing", "seller_id", p.UserID, "error", err)
		return nil, fail(span, err, "create listing failed")
	}

	transitioned("product", product.Status)
	slog.Info("listing created", "product_id", product.ID, "seller_id", p.UserID, "price", product.Price.String())
	return product, nil
}

func (s *catalogService) UpdateListing(ctx context.Context, sellerID, productID int64, in ListingInput) (*models.Product, error) {
	ctx, span := startSpan(ctx, "UpdateListing")
	defer span.End()
	span.SetAttributes(attribute.Int64("seller_id", sellerID), attribute.Int64("product_id", productID))

	in, err := validateListing(in)
	if err != nil {
		return nil, fail(span, err, "invalid listing")
	}

	var product *models.Product
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		product, err = ownedProduct(ctx, repos, sellerID, productID)
		if err != nil {
			return err
		}
		if err := checkOrigin(ctx, repos, sellerID, in.OriginBountyID); err != nil {
			return err
		}
		product.Title = in.Title
		product.Price = in.Price
		product.ImageURL = in.ImageURL
		product.Category = in.Category
		product.Attributes = models.ProductAttributes{Description: in.Description, OriginBountyID: in.OriginBountyID}
		return repos.Products().Update(ctx, product)
	})
	if err != nil {
		slog.Error("failed to update listing", "method", "UpdateListing", "product_id", productID, "seller_id", sellerID, "error", err)
		return nil, fail(span, err, "update listing failed")
	}

	s.cache.invalidate(ctx, productID)
	slog.Info("listing updated", "product_id", productID)
	return product, nil
}

func (s *catalogService) UpdatePrice(ctx context.Context, sellerID, productID int64, price decimal.Decimal) (*models.PriceChange, error) {
	ctx, span := startSpan(ctx, "UpdatePrice")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID), attribute.String("price", price.String()))

	if err := validateAmount("price", price); err != nil {
		return nil, fail(span, err, "invalid price")
	}

	change := &models.PriceChange{ProductID: productID, NewPrice: price}
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		product, err := ownedProduct(ctx, repos, sellerID, productID)
		if err != nil {
			return err
		}
		if product.Status != models.ProductListed {
			return pkgerrors.ErrProductUnavailable
		}
		change.OldPrice = product.Price
		return repos.Products().UpdatePrice(ctx, productID, price)
	})
	if err != nil {
		slog.Error("failed to update price", "method", "UpdatePrice", "product_id", productID, "seller_id", sellerID, "error", err)
		return nil, fail(span, err, "update price failed")
	}

	s.cache.invalidate(ctx, productID)
	slog.Info("price updated", "product_id", productID, "old", change.OldPrice.String(), "new", price.String())
	return change, nil
}

// ToggleListing switches a product between listed and delisted.
func (s *catalogService) ToggleListing(ctx context.Context, sellerID, productID int64) (*models.Product, error) {
	ctx, span := startSpan(ctx, "ToggleListing")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID))

	var product *models.Product
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		product, err = ownedProduct(ctx, repos, sellerID, productID)
		if err != nil {
			return err
		}
		var to models.ProductStatus
		switch product.Status {
		case models.ProductListed:
			to = models.ProductDelisted
		case models.ProductDelisted:
			to = models.ProductListed
		default:
			return pkgerrors.ErrProductStatusLocked
		}
		if err := repos.Products().SetStatus(ctx, productID, product.Status, to); err != nil {
			return err
		}
		product.Status = to
		return nil
	})
	if err != nil {
		slog.Error("failed to toggle listing", "method", "ToggleListing", "product_id", productID, "seller_id", sellerID, "error", err)
		return nil, fail(span, err, "toggle listing failed")
	}

	transitioned("product", product.Status)
	s.cache.invalidate(ctx, productID)
	slog.Info("listing toggled", "product_id", productID, "status", product.Status)
	return product, nil
}

func (s *catalogService) DeleteListing(ctx context.Context, sellerID, productID int64) error {
	ctx, span := startSpan(ctx, "DeleteListing")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID))

	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := ownedProduct(ctx, repos, sellerID, productID); err != nil {
			return err
		}
		n, err := repos.Orders().CountByProduct(ctx, productID)
		if err != nil {
			return err
		}
		if n > 0 {
			return pkgerrors.ErrProductHasOrders
		}
		return repos.Products().Delete(ctx, productID)
	})
	if err != nil {
		slog.Error("failed to delete listing", "method", "DeleteListing", "product_id", productID, "seller_id", sellerID, "error", err)
		return fail(span, err, "delete listing failed")
	}

	s.cache.invalidate(ctx, productID)
	s.events.Publish(ctx, newEvent(models.EventProductDeleted, sellerID, productID, nil))
	slog.Info("listing deleted", "product_id", productID, "seller_id", sellerID)
	return nil
}

func (s *catalogService) Browse(ctx context.Context, f models.ProductFilter) (*models.CatalogPage, error) {
	ctx, span := startSpan(ctx, "Browse")
	defer span.End()

	f.Query = strings.TrimSpace(f.Query)
	switch f.Sort {
	case "":
		f.Sort = models.SortLatest
	case models.SortLatest, models.SortPriceAsc, models.SortPriceDesc:
	default:
		return nil, fail(span, pkgerrors.Invalid("unknown sort %q", f.Sort), "invalid filter")
	}
	if f.Category != "" && !f.Category.Valid() {
		return nil, fail(span, pkgerrors.Invalid("unknown category %q", f.Category), "invalid filter")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return nil, fail(span, pkgerrors.Invalid("min price is greater than max price"), "invalid filter")
	}
	if f.Page < 1 {
		f.Page = 1
	}

	page := &models.CatalogPage{Page: f.Page, PageSize: models.CatalogPageSize}
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		page.Products, page.Total, err = repos.Products().Search(ctx, f)
		if err != nil {
			return err
		}
		page.PriceRange, err = repos.Products().ListedPriceRange(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to browse catalog", "method", "Browse", "query", f.Query, "error", err)
		return nil, fail(span, err, "browse failed")
	}

	if page.Products == nil {
		page.Products = []models.Product{}
	}
	page.Pages = (page.Total + models.CatalogPageSize - 1) / models.CatalogPageSize
	return page, nil
}

func (s *catalogService) ProductDetail(ctx context.Context, viewerID *int64, productID int64) (*models.ProductView, error) {
	ctx, span := startSpan(ctx, "ProductDetail")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID))

	product, cached := s.cache.get(ctx, productID)
	view := &models.ProductView{}
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		if !cached {
			if product, err = repos.Products().GetByID(ctx, productID); err != nil {
				return err
			}
		}
		if view.Reviews, err = repos.Reviews().ListByProduct(ctx, productID); err != nil {
			return err
		}
		if viewerID == nil {
			return nil
		}
		fav, err := repos.Favorites().Get(ctx, *viewerID, productID)
		if err != nil {
			return err
		}
		view.IsFavorited = fav != nil
		if view.HasReviewed, err = repos.Reviews().Exists(ctx, *viewerID, productID); err != nil {
			return err
		}
		return repos.History().Touch(ctx, *viewerID, productID)
	})
	if err != nil {
		slog.Error("failed to load product", "method", "ProductDetail", "product_id", productID, "error", err)
		return nil, fail(span, err, "product detail failed")
	}

	if !cached {
		s.cache.put(ctx, product)
	}
	view.Product = *product
	if view.Reviews == nil {
		view.Reviews = []models.Review{}
	}
	return view, nil
}

func (s *catalogService) SellerDashboard(ctx context.Context, p models.Principal) (*models.SellerDashboard, error) {
	ctx, span := startSpan(ctx, "SellerDashboard")
	defer span.End()
	span.SetAttributes(attribute.Int64("seller_id", p.UserID))

	if err := models.Authorize(p.Role, models.CapSellerCenter).Err(); err != nil {
		return nil, fail(span, err, "not allowed")
	}

	dash := &models.SellerDashboard{}
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		if dash.Products, err = repos.Products().ListBySeller(ctx, p.UserID); err != nil {
			return err
		}
		if dash.TotalSales, err = repos.Products().SumSold(ctx, &p.UserID); err != nil {
			return err
		}
		if dash.PendingShipped, err = repos.Orders().CountBySellerAndStatus(ctx, p.UserID, models.OrderToShip); err != nil {
			return err
		}
		dash.UnreadMessages, err = repos.Messages().CountUnread(ctx, p.UserID)
		return err
	})
	if err != nil {
		slog.Error("failed to load seller dashboard", "method", "SellerDashboard", "seller_id", p.UserID, "error", err)
		return nil, fail(span, err, "seller dashboard failed")
	}
	if dash.Products == nil {
		dash.Products = []models.Product{}
	}
	return dash, nil
}
