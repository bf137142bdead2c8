package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pay-chain.backend/internal/domain/entities"
)

// StakingRewardRepository defines reward ledger operations keyed by the
// unique (user, nft) pair
type StakingRewardRepository interface {
	Create(ctx context.Context, reward *entities.StakingReward) error
	GetByUserAndNft(ctx context.Context, userID, nftID uuid.UUID) (*entities.StakingReward, error)
	// ResetRewards zeroes the accrued amount and stamps lastClaimAt
	ResetRewards(ctx context.Context, userID, nftID uuid.UUID) error
	// AddRewards credits accrued tokens without touching lastClaimAt
	AddRewards(ctx context.Context, userID, nftID uuid.UUID, amount decimal.Decimal) error
	TotalRewards(ctx context.Context) (decimal.Decimal, error)
}

// FaucetClaimRepository defines faucet audit log operations. The log is
// append-only; the newest record per user gates the cooldown.
type FaucetClaimRepository interface {
	Create(ctx context.Context, claim *entities.FaucetClaim) error
	GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.FaucetClaim, error)
}
