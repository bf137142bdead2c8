package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FaucetClaim is an append-only audit record of a faucet disbursement.
// The wallet address is stored exactly as supplied by the caller.
type FaucetClaim struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	WalletAddress string          `json:"walletAddress"`
	ClaimedAt     time.Time       `json:"claimedAt"`
}

// FaucetClaimInput represents the faucet claim request body
type FaucetClaimInput struct {
	UserID        string `json:"userId" binding:"required,uuid"`
	WalletAddress string `json:"walletAddress" binding:"required,eth_addr"`
}
