package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StakingReward is the accrual ledger entry for one (user, nft) pair.
// At most one record exists per pair; it is created the first time the
// owner stakes the NFT and survives unstaking.
type StakingReward struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	NftID         uuid.UUID       `json:"nftId"`
	RewardsEarned decimal.Decimal `json:"rewardsEarned"`
	LastClaimAt   time.Time       `json:"lastClaimAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ClaimResult reports the outcome of a reward or faucet claim
type ClaimResult struct {
	Amount     string          `json:"amount"`
	NewBalance decimal.Decimal `json:"newBalance"`
}
