package models

import "time"

const DefaultCreditScore = 100

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	Role         Role      `json:"role"`
	CreditScore  int       `json:"credit_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated caller as seen by the service layer.
type Principal struct {
	UserID int64
	Role   Role
}
