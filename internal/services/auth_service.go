package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/honeynil/CampusMarket/internal/infrastructure/auth"
	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAverageRating is reported for sellers nobody has reviewed yet.
const DefaultAverageRating = 5.0

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

type ProfileInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type AccountService interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, userID int64) error
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (*models.User, error)
}

type accountService struct {
	uow         repository.UnitOfWork
	redisClient redis.RedisClient
	issuer      *auth.TokenIssuer
	events      *EventPublisher
}

func NewAccountService(uow repository.UnitOfWork, redisClient redis.RedisClient, issuer *auth.TokenIssuer, events *EventPublisher) *accountService {
	return &accountService{uow: uow, redisClient: redisClient, issuer: issuer, events: events}
}

func (s *accountService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	ctx, span := startSpan(ctx, "Register")
	defer span.End()

	username, err := textField("username", username, 2, 20)
	if err != nil {
		return nil, fail(span, err, "invalid username")
	}
	if password == "" {
		return nil, fail(span, pkgerrors.Invalid("password is required"), "empty password")
	}
	if len(password) > maxPasswordBytes {
		return nil, fail(span, pkgerrors.Invalid("password must be at most %d bytes", maxPasswordBytes), "password too long")
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return nil, fail(span, err, "invalid role")
	}
	if r == models.RoleAdmin {
		return nil, fail(span, pkgerrors.Invalid("admin accounts cannot be registered"), "invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "username", username, "error", err)
		return nil, fail(span, fmt.Errorf("%w: failed to hash password", pkgerrors.ErrInternal), "password hashing failed")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         r,
		CreditScore:  models.DefaultCreditScore,
	}
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Users().Create(ctx, user)
	})
	if err != nil {
		slog.Error("failed to create user", "method", "Register", "username", username, "error", err)
		return nil, fail(span, err, "user creation failed")
	}

	s.events.Publish(ctx, newEvent(models.EventUserRegistered, user.ID, user.ID, map[string]any{
		"username": user.Username,
		"role":     user.Role,
	}))

	slog.Info("user registered successfully", "user_id", user.ID, "username", username, "role", r)
	return user, nil
}

// Login checks the credentials and stores the issued token so that logout can
// revoke it.
func (s *accountService) Login(ctx context.Context, username, password string) (string, error) {
	ctx, span := startSpan(ctx, "Login")
	defer span.End()

	var user *models.User
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		user, err = repos.Users().GetByUsername(ctx, strings.TrimSpace(username))
		return err
	})
	if err != nil {
		if stderrors.Is(err, pkgerrors.ErrUserNotFound) {
			slog.Warn("login for unknown user", "username", username)
			return "", fail(span, pkgerrors.ErrInvalidCredentials, "unknown user")
		}
		slog.Error("failed to login", "username", username, "error", err)
		return "", fail(span, err, "user lookup failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("invalid password", "username", username)
		return "", fail(span, pkgerrors.ErrInvalidCredentials, "invalid password")
	}

	token, err := s.issuer.GenerateToken(user)
	if err != nil {
		slog.Error("failed to generate JWT", "user_id", user.ID, "error", err)
		return "", fail(span, err, "token generation failed")
	}
	if err := s.redisClient.Set(ctx, redis.TokenKey(user.ID), token, s.issuer.TTL()); err != nil {
		slog.Error("failed to store JWT", "user_id", user.ID, "error", err)
		return "", fail(span, fmt.Errorf("failed to store token: %w", err), "token store failed")
	}

	span.SetAttributes(attribute.Int64("user_id", user.ID))
	slog.Info("user logged in", "username", user.Username, "user_id", user.ID)
	return token, nil
}

func (s *accountService) Logout(ctx context.Context, userID int64) error {
	ctx, span := startSpan(ctx, "Logout")
	defer span.End()

	if err := s.redisClient.Del(ctx, redis.TokenKey(userID)); err != nil {
		slog.Error("failed to revoke token", "user_id", userID, "error", err)
		return fail(span, fmt.Errorf("failed to revoke token: %w", err), "logout failed")
	}
	slog.Info("user logged out", "user_id", userID)
	return nil
}

func (s *accountService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	ctx, span := startSpan(ctx, "Profile")
	defer span.End()
	span.SetAttributes(attribute.Int64("user_id", userID))

	profile := &models.Profile{}
	err := s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		user, err := repos.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		profile.User = *user
		if profile.OrderCount, err = repos.Orders().CountByBuyer(ctx, userID); err != nil {
			return err
		}
		if profile.FavoriteCount, err = repos.Favorites().Count(ctx, userID); err != nil {
			return err
		}
		if profile.ProductCount, err = repos.Products().CountBySeller(ctx, userID); err != nil {
			return err
		}
		if profile.BountyCount, err = repos.Bounties().CountByAuthor(ctx, userID); err != nil {
			return err
		}
		profile.AverageRating, profile.ReviewCount, err = repos.Reviews().AverageForSeller(ctx, userID)
		return err
	})
	if err != nil {
		slog.Error("failed to load profile", "method", "Profile", "user_id", userID, "error", err)
		return nil, fail(span, err, "profile failed")
	}

	if profile.ReviewCount == 0 {
		profile.AverageRating = DefaultAverageRating
	}
	return profile, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (*models.User, error) {
	ctx, span := startSpan(ctx, "UpdateProfile")
	defer span.End()

	username, err := textField("username", in.Username, 2, 20)
	if err != nil {
		return nil, fail(span, err, "invalid username")
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fail(span, pkgerrors.Invalid("invalid email address"), "invalid email")
		}
	}

	var user *models.User
	err = s.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		user, err = repos.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		user.Username = username
		user.Email = email
		user.Avatar = strings.TrimSpace(in.Avatar)
		return repos.Users().UpdateProfile(ctx, user)
	})
	if err != nil {
		slog.Error("failed to update profile", "method", "UpdateProfile", "user_id", userID, "error", err)
		return nil, fail(span, err, "update profile failed")
	}

	slog.Info("profile updated", "user_id", userID)
	return user, nil
}
