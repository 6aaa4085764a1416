package repository

import "context"

// Repositories exposes every repository bound to a single transaction.
type Repositories interface {
	Users() UserRepository
	Products() ProductRepository
	Bounties() BountyRepository
	Orders() OrderRepository
	Messages() MessageRepository
	Reviews() ReviewRepository
	Carts() CartRepository
	Favorites() FavoriteRepository
	History() HistoryRepository
	Activity() ActivityRepository
}

// UnitOfWork runs fn inside one transaction. The transaction commits when fn
// returns nil and rolls back on any error, including precondition failures.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
