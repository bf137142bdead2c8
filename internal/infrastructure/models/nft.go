package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type Nft struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TokenID    int             `gorm:"column:token_id;uniqueIndex;not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	ImageURL   string          `gorm:"column:image_url;type:text;not null"`
	Rarity     string          `gorm:"type:varchar(20);not null"`
	Category   string          `gorm:"type:varchar(20);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OwnerID    *uuid.UUID      `gorm:"type:uuid;index"`
	IsStaked   bool            `gorm:"not null;default:false;index"`
	StakedAt   null.Time       `gorm:"type:timestamp"`
	Attributes null.JSON       `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

func (Nft) TableName() string { return "nfts" }
