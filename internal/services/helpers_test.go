package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	kafkamocks "github.com/honeynil/CampusMarket/internal/infrastructure/kafka/mocks"
	redismocks "github.com/honeynil/CampusMarket/internal/infrastructure/redis/mocks"
	"github.com/honeynil/CampusMarket/internal/repository"
	repositorymocks "github.com/honeynil/CampusMarket/internal/repository/mocks"
)

const testTopic = "marketplace.events"

var fixedNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

// mockRepos hands out the gomock repositories as one transaction's view.
type mockRepos struct {
	users     *repositorymocks.MockUserRepository
	products  *repositorymocks.MockProductRepository
	bounties  *repositorymocks.MockBountyRepository
	orders    *repositorymocks.MockOrderRepository
	messages  *repositorymocks.MockMessageRepository
	reviews   *repositorymocks.MockReviewRepository
	carts     *repositorymocks.MockCartRepository
	favorites *repositorymocks.MockFavoriteRepository
	history   *repositorymocks.MockHistoryRepository
	activity  *repositorymocks.MockActivityRepository
}

func (r *mockRepos) Users() repository.UserRepository         { return r.users }
func (r *mockRepos) Products() repository.ProductRepository   { return r.products }
func (r *mockRepos) Bounties() repository.BountyRepository    { return r.bounties }
func (r *mockRepos) Orders() repository.OrderRepository       { return r.orders }
func (r *mockRepos) Messages() repository.MessageRepository   { return r.messages }
func (r *mockRepos) Reviews() repository.ReviewRepository     { return r.reviews }
func (r *mockRepos) Carts() repository.CartRepository         { return r.carts }
func (r *mockRepos) Favorites() repository.FavoriteRepository { return r.favorites }
func (r *mockRepos) History() repository.HistoryRepository    { return r.history }
func (r *mockRepos) Activity() repository.ActivityRepository  { return r.activity }

// fakeUnitOfWork runs fn against the mocks and counts the outcome.
type fakeUnitOfWork struct {
	repos     *mockRepos
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if err := fn(ctx, u.repos); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

type fixture struct {
	*mockRepos
	uow    *fakeUnitOfWork
	redis  *redismocks.MockRedisClient
	kafka  *kafkamocks.MockKafkaProducer
	events *EventPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	repos := &mockRepos{
		users:     repositorymocks.NewMockUserRepository(ctrl),
		products:  repositorymocks.NewMockProductRepository(ctrl),
		bounties:  repositorymocks.NewMockBountyRepository(ctrl),
		orders:    repositorymocks.NewMockOrderRepository(ctrl),
		messages:  repositorymocks.NewMockMessageRepository(ctrl),
		reviews:   repositorymocks.NewMockReviewRepository(ctrl),
		carts:     repositorymocks.NewMockCartRepository(ctrl),
		favorites: repositorymocks.NewMockFavoriteRepository(ctrl),
		history:   repositorymocks.NewMockHistoryRepository(ctrl),
		activity:  repositorymocks.NewMockActivityRepository(ctrl),
	}
	producer := kafkamocks.NewMockKafkaProducer(ctrl)

	prev := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = prev })

	return &fixture{
		mockRepos: repos,
		uow:       &fakeUnitOfWork{repos: repos},
		redis:     redismocks.NewMockRedisClient(ctrl),
		kafka:     producer,
		events:    NewEventPublisher(producer, testTopic),
	}
}

// expectEvent expects one publish keyed by subjectID.
func (f *fixture) expectEvent(subjectID int64) {
	f.kafka.EXPECT().Send(gomock.Any(), testTopic, subjectID, gomock.Any()).Return(nil)
}
