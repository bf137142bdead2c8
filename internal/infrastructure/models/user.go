package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type User struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Username        string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash    string          `gorm:"type:varchar(255);not null"`
	WalletAddress   null.String     `gorm:"type:varchar(42);index"`
	OdinBalance     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LastFaucetClaim null.Time       `gorm:"type:timestamp"`
	CreatedAt       time.Time
}

func (User) TableName() string { return "users" }
