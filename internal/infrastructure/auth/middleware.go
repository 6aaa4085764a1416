package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/models"
)

type contextKey struct{}

var principalKey = contextKey{}

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(models.Principal)
	return p, ok
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token.
func AuthMiddleware(redisClient redis.RedisClient, issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := authenticate(r, redisClient, issuer)
			if err != nil {
				writeUnauthorized(w, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// OptionalAuthMiddleware attaches the caller when a valid token is present
// and passes anonymous requests through untouched.
func OptionalAuthMiddleware(redisClient redis.RedisClient, issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			p, err := authenticate(r, redisClient, issuer)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func authenticate(r *http.Request, redisClient redis.RedisClient, issuer *TokenIssuer) (models.Principal, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Principal{}, errors.New("authorization header missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.Principal{}, errors.New("invalid authorization header")
	}

	tokenStr := parts[1]
	claims, err := issuer.ParseToken(tokenStr)
	if err != nil {
		return models.Principal{}, errors.New("invalid token")
	}

	// Токен должен совпадать с последним выданным, иначе он отозван
	storedToken, err := redisClient.Get(r.Context(), redis.TokenKey(claims.UserID))
	if err != nil || storedToken != tokenStr {
		slog.Warn("invalid or revoked token", "user_id", claims.UserID, "error", err)
		return models.Principal{}, errors.New("invalid or revoked token")
	}

	return models.Principal{UserID: claims.UserID, Role: claims.Role}, nil
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}
