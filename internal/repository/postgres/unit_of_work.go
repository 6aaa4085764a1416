package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/repository"
)

type UnitOfWork struct {
	db *sql.DB
}

func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "UnitOfWork")
	defer func() { done(err) }()

	dbTx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "method", "Do", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = dbTx.Rollback()
			panic(p)
		}
	}()

	if err = fn(ctx, newTxRepositories(dbTx)); err != nil {
		if rbErr := dbTx.Rollback(); rbErr != nil {
			slog.Error("rollback failed", "method", "Do", "error", rbErr)
			return fmt.Errorf("rollback failed: %v; original error: %w", rbErr, err)
		}
		return err
	}

	if err = dbTx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "method", "Do", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type txRepositories struct {
	users     *PostgresUserRepository
	products  *PostgresProductRepository
	bounties  *PostgresBountyRepository
	orders    *PostgresOrderRepository
	messages  *PostgresMessageRepository
	reviews   *PostgresReviewRepository
	carts     *PostgresCartRepository
	favorites *PostgresFavoriteRepository
	history   *PostgresHistoryRepository
	activity  *PostgresActivityRepository
}

func newTxRepositories(db DBTX) *txRepositories {
	return &txRepositories{
		users:     NewPostgresUserRepository(db),
		products:  NewPostgresProductRepository(db),
		bounties:  NewPostgresBountyRepository(db),
		orders:    NewPostgresOrderRepository(db),
		messages:  NewPostgresMessageRepository(db),
		reviews:   NewPostgresReviewRepository(db),
		carts:     NewPostgresCartRepository(db),
		favorites: NewPostgresFavoriteRepository(db),
		history:   NewPostgresHistoryRepository(db),
		activity:  NewPostgresActivityRepository(db),
	}
}

func (r *txRepositories) Users() repository.UserRepository         { return r.users }
func (r *txRepositories) Products() repository.ProductRepository   { return r.products }
func (r *txRepositories) Bounties() repository.BountyRepository    { return r.bounties }
func (r *txRepositories) Orders() repository.OrderRepository       { return r.orders }
func (r *txRepositories) Messages() repository.MessageRepository   { return r.messages }
func (r *txRepositories) Reviews() repository.ReviewRepository     { return r.reviews }
func (r *txRepositories) Carts() repository.CartRepository         { return r.carts }
func (r *txRepositories) Favorites() repository.FavoriteRepository { return r.favorites }
func (r *txRepositories) History() repository.HistoryRepository    { return r.history }
func (r *txRepositories) Activity() repository.ActivityRepository  { return r.activity }
