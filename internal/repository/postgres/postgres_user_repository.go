package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const userColumns = `id, username, password_hash, email, avatar, role, credit_score, created_at`

type PostgresUserRepository struct {
	db DBTX
}

func NewPostgresUserRepository(db DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Avatar, &u.Role, &u.CreditScore, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CreateUser")
	defer func() { done(err) }()

	if user == nil {
		return fmt.Errorf("user is nil")
	}
	if user.Username == "" || user.PasswordHash == "" {
		return fmt.Errorf("username and password are required")
	}
	if user.CreditScore == 0 {
		user.CreditScore = models.DefaultCreditScore
	}

	query := `
	INSERT INTO users (username, password_hash, email, avatar, role, credit_score)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`
	err = r.db.QueryRowContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Avatar,
		user.Role,
		user.CreditScore,
	).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return pkgerrors.ErrUsernameExists
	}
	if err != nil {
		slog.Error("failed to create user", "method", "Create", "username", user.Username, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (user *models.User, err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "GetUserByID")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("user_id", id))

	user, err = scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (user *models.User, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "GetUserByUsername")
	defer func() { done(err) }()

	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	user, err = scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, pkgerrors.ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, user *models.User) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "UpdateUserProfile")
	defer func() { done(err) }()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = $1, email = $2, avatar = $3 WHERE id = $4`,
		user.Username, user.Email, user.Avatar, user.ID)
	if isUniqueViolation(err) {
		return pkgerrors.ErrUsernameExists
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return expectOneRow(res, pkgerrors.ErrUserNotFound)
}

func (r *PostgresUserRepository) AdjustCreditScore(ctx context.Context, userID int64, delta int) (score int, err error) {
	ctx, span, done := observability.StartRepositoryCall(ctx, "AdjustCreditScore")
	defer func() { done(err) }()
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.Int("delta", delta))

	query := `
		UPDATE users
		SET credit_score = GREATEST(credit_score + $1, 0)
		WHERE id = $2
		RETURNING credit_score
		`
	err = r.db.QueryRowContext(ctx, query, delta, userID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, pkgerrors.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust credit score: %w", err)
	}
	return score, nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "DeleteUser")
	defer func() { done(err) }()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return expectOneRow(res, pkgerrors.ErrUserNotFound)
}

func (r *PostgresUserRepository) Count(ctx context.Context) (n int, err error) {
	ctx, _, done := observability.StartRepositoryCall(ctx, "CountUsers")
	defer func() { done(err) }()

	n, err = scanCount(ctx, r.db, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
