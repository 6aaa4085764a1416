package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const productColumns = `id, seller_id, title, price, image_url, category, status, description, origin_bounty_id, created_at`

type PostgresProductRepository struct {
	db DBTX
}

func NewPostgresProductRepository(db DBTX) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID,
		&p.SellerID,
		&p.Title,
		&p.Price,
		&p.ImageURL,
		&p.Category,
		&p.Status,
		&p.Attributes.Description,
		&p.Attributes.OriginBountyID,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	defer rows.Close()
	var out []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PostgresProductRepository) Create(ctx context.Context, p *models.Product) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "CreateProduct")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("seller_id", p.SellerID))

	query := `
		INSERT INTO products (seller_id, title, price, image_url, category, status, description, origin_bounty_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		p.SellerID, p.Title, p.Price, p.ImageURL, p.Category, p.Status,
		p.Attributes.Description, p.Attributes.OriginBountyID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		slog.Error("failed to create product", "method", "Create", "seller_id", p.SellerID, "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int64) (p *models.Product, err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "GetProductByID")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("product_id", id))

	p, err = scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) Update(ctx context.Context, p *models.Product) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "UpdateProduct")
	defer func() { done(err) }()

	query := `
		UPDATE products
		SET title = $1, price = $2, image_url = $3, category = $4, description = $5, origin_bounty_id = $6
		WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		p.Title, p.Price, p.ImageURL, p.Category, p.Attributes.Description, p.Attributes.OriginBountyID, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return expectOneRow(res, pkgerrors.ErrProductNotFound)
}

func (r *PostgresProductRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "UpdateProductPrice")
	defer func() { done(err) }()

	res, err := r.db.ExecContext(ctx, `UPDATE products SET price = $1 WHERE id = $2`, price, id)
	if err != nil {
		return fmt.Errorf("failed to update product price: %w", err)
	}
	return expectOneRow(res, pkgerrors.ErrProductNotFound)
}

func (r *PostgresProductRepository) SetStatus(ctx context.Context, id int64, from, to models.ProductStatus) (err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "SetProductStatus")
	defer func() { done(err) }()
	span.SetAttributes(
		attribute.Int64("product_id", id),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)

	res, err := r.db.ExecContext(ctx, `UPDATE products SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to set product status: %w", err)
	}
	if err = expectOneRow(res, pkgerrors.ErrStaleState); err != nil {
		slog.Warn("product status changed concurrently", "method", "SetStatus", "product_id", id, "from", from, "to", to)
		return err
	}
	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "DeleteProduct")
	defer func() { done(err) }()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return expectOneRow(res, pkgerrors.ErrProductNotFound)
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *PostgresProductRepository) Search(ctx context.Context, f models.ProductFilter) (products []models.Product, total int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "SearchProducts")
	defer func() { done(err) }()

	args := []any{models.ProductListed}
	where := []string{"status = $1"}
	if f.Query != "" {
		args = append(args, "%"+likeEscaper.Replace(f.Query)+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		where = append(where, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		where = append(where, fmt.Sprintf("price <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	total, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM products WHERE `+cond, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	order := "created_at DESC"
	switch f.Sort {
	case models.SortPriceAsc:
		order = "price ASC"
	case models.SortPriceDesc:
		order = "price DESC"
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY %s LIMIT %d OFFSET %d`,
		productColumns, cond, order, models.CatalogPageSize, (page-1)*models.CatalogPageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	products, err = scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, total, nil
}

func (r *PostgresProductRepository) ListedPriceRange(ctx context.Context) (pr models.PriceRange, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListedPriceRange")
	defer func() { done(err) }()

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0) FROM products WHERE status = $1`,
		models.ProductListed,
	).Scan(&pr.Min, &pr.Max)
	if err != nil {
		return pr, fmt.Errorf("failed to get price range: %w", err)
	}
	return pr, nil
}

func (r *PostgresProductRepository) ListBySeller(ctx context.Context, sellerID int64) (products []models.Product, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListProductsBySeller")
	defer func() { done(err) }()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller products: %w", err)
	}
	return scanProducts(rows)
}

func (r *PostgresProductRepository) ListRecent(ctx context.Context, limit int) (products []models.Product, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "ListRecentProducts")
	defer func() { done(err) }()

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent products: %w", err)
	}
	return scanProducts(rows)
}

func (r *PostgresProductRepository) Count(ctx context.Context) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountProducts")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM products`)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *PostgresProductRepository) CountBySeller(ctx context.Context, sellerID int64) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountProductsBySeller")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM products WHERE seller_id = $1`, sellerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count seller products: %w", err)
	}
	return n, nil
}

// SumSold totals the price of sold products, for one seller or for everyone.
func (r *PostgresProductRepository) SumSold(ctx context.Context, sellerID *int64) (total decimal.Decimal, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "SumSoldProducts")
	defer func() { done(err) }()

	query := `SELECT COALESCE(SUM(price), 0) FROM products WHERE status = $1`
	args := []any{models.ProductSold}
	if sellerID != nil {
		query += ` AND seller_id = $2`
		args = append(args, *sellerID)
	}
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales: %w", err)
	}
	return total, nil
}
