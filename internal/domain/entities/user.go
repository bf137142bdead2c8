package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// User represents a registered collector with an ODIN token balance
type User struct {
	ID              uuid.UUID       `json:"id"`
	Username        string          `json:"username"`
	PasswordHash    string          `json:"-"`
	WalletAddress   null.String     `json:"walletAddress"`
	OdinBalance     decimal.Decimal `json:"odinBalance"`
	LastFaucetClaim null.Time       `json:"lastFaucetClaim"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Username      string `json:"username" binding:"required,min=3,max=50"`
	Password      string `json:"password" binding:"required,min=8"`
	WalletAddress string `json:"walletAddress" binding:"omitempty,eth_addr"`
}
