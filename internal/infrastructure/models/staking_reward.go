package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StakingReward struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_staking_rewards_user_nft"`
	NftID         uuid.UUID       `gorm:"column:nft_id;type:uuid;not null;uniqueIndex:idx_staking_rewards_user_nft"`
	RewardsEarned decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LastClaimAt   time.Time       `gorm:"not null"`
	CreatedAt     time.Time
}

func (StakingReward) TableName() string { return "staking_rewards" }
