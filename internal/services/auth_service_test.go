package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/CampusMarket/internal/infrastructure/auth"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccountFixture(t *testing.T) (*fixture, *accountService) {
	f := newFixture(t)
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	return f, NewAccountService(f.uow, f.redis, issuer, f.events)
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		f, svc := newAccountFixture(t)

		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")))
			u.ID = 1
			return nil
		})
		f.expectEvent(1)

		user, err := svc.Register(ctx, "alice", "pass123", "seller")
		require.NoError(t, err)
		assert.Equal(t, models.RoleSeller, user.Role)
		assert.Equal(t, models.DefaultCreditScore, user.CreditScore)
	})

	t.Run("username taken", func(t *testing.T) {
		f, svc := newAccountFixture(t)

		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(pkgerrors.ErrUsernameExists)

		_, err := svc.Register(ctx, "alice", "pass123", "buyer")
		assert.ErrorIs(t, err, pkgerrors.ErrUsernameExists)
	})

	invalid := []struct {
		name     string
		username string
		password string
		role     string
	}{
		{"short username", "a", "pass123", "buyer"},
		{"long username", "abcdefghijklmnopqrstu", "pass123", "buyer"},
		{"empty password", "alice", "", "buyer"},
		{"password over bcrypt limit", "alice", strings.Repeat("x", 73), "buyer"},
		{"unknown role", "alice", "pass123", "moderator"},
		{"admin role", "alice", "pass123", "admin"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newAccountFixture(t)

			_, err := svc.Register(ctx, tt.username, tt.password, tt.role)
			assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 1, Username: "testuser", PasswordHash: string(hash), Role: models.RoleBuyer}

	t.Run("successful login", func(t *testing.T) {
		f, svc := newAccountFixture(t)

		f.users.EXPECT().GetByUsername(gomock.Any(), "testuser").Return(user, nil)
		f.redis.EXPECT().Set(gomock.Any(), "user:1:token", gomock.Any(), time.Hour).Return(nil)

		token, err := svc.Login(ctx, "testuser", "testpass")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		f, svc := newAccountFixture(t)

		f.users.EXPECT().GetByUsername(gomock.Any(), "testuser").Return(user, nil)

		token, err := svc.Login(ctx, "testuser", "wrongpass")
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("unknown user", func(t *testing.T) {
		f, svc := newAccountFixture(t)

		f.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, pkgerrors.ErrUserNotFound)

		_, err := svc.Login(ctx, "ghost", "testpass")
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidCredentials)
	})

	t.Run("token store down", func(t *testing.T) {
		f, svc := newAccountFixture(t)

		f.users.EXPECT().GetByUsername(gomock.Any(), "testuser").Return(user, nil)
		f.redis.EXPECT().Set(gomock.Any(), "user:1:token", gomock.Any(), time.Hour).Return(errors.New("connection refused"))

		_, err := svc.Login(ctx, "testuser", "testpass")
		assert.Error(t, err)
		assert.Equal(t, pkgerrors.KindInternal, pkgerrors.KindOf(err))
	})
}

func TestAccountService_Logout(t *testing.T) {
	f, svc := newAccountFixture(t)

	f.redis.EXPECT().Del(gomock.Any(), "user:7:token").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), 7))
}

func TestAccountService_Profile(t *testing.T) {
	f, svc := newAccountFixture(t)

	f.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)
	f.orders.EXPECT().CountByBuyer(gomock.Any(), int64(2)).Return(3, nil)
	f.favorites.EXPECT().Count(gomock.Any(), int64(2)).Return(1, nil)
	f.products.EXPECT().CountBySeller(gomock.Any(), int64(2)).Return(4, nil)
	f.bounties.EXPECT().CountByAuthor(gomock.Any(), int64(2)).Return(0, nil)
	f.reviews.EXPECT().AverageForSeller(gomock.Any(), int64(2)).Return(0.0, 0, nil)

	p, err := svc.Profile(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.OrderCount)
	assert.Equal(t, 4, p.ProductCount)
	assert.Equal(t, DefaultAverageRating, p.AverageRating)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("bad email", func(t *testing.T) {
		_, svc := newAccountFixture(t)

		_, err := svc.UpdateProfile(ctx, 1, ProfileInput{Username: "alice", Email: "not-an-email"})
		assert.Equal(t, pkgerrors.KindInvalid, pkgerrors.KindOf(err))
	})

	t.Run("updates", func(t *testing.T) {
		f, svc := newAccountFixture(t)

		f.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1, Username: "alice"}, nil)
		f.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

		u, err := svc.UpdateProfile(ctx, 1, ProfileInput{Username: "alice2", Email: "alice@campus.edu"})
		require.NoError(t, err)
		assert.Equal(t, "alice2", u.Username)
		assert.Equal(t, "alice@campus.edu", u.Email)
	})
}
