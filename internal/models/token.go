package models

import "github.com/golang-jwt/jwt/v5"

type TokenClaims struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
	jwt.RegisteredClaims
}
