package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FaucetClaim struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	WalletAddress string          `gorm:"type:varchar(42);not null"`
	ClaimedAt     time.Time       `gorm:"not null;index"`
}

func (FaucetClaim) TableName() string { return "faucet_claims" }
