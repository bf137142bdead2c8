package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Rarity represents NFT rarity tiers
type Rarity string

const (
	RarityLegendary Rarity = "Legendary"
	RarityEpic      Rarity = "Epic"
	RarityRare      Rarity = "Rare"
	RarityCommon    Rarity = "Common"
)

// Category represents NFT warrior classes
type Category string

const (
	CategoryBerserker Category = "Berserker"
	CategoryValkyrie  Category = "Valkyrie"
	CategoryJarl      Category = "Jarl"
	CategoryShaman    Category = "Shaman"
)

// Nft represents a collectible with static traits and a staking state.
// TokenID is the public collection number and never changes after mint;
// ID is the storage key.
type Nft struct {
	ID         uuid.UUID          `json:"id"`
	TokenID    int                `json:"tokenId"`
	Name       string             `json:"name"`
	ImageURL   string             `json:"imageUrl"`
	Rarity     Rarity             `json:"rarity"`
	Category   Category           `json:"category"`
	Price      decimal.Decimal    `json:"price"`
	OwnerID    *uuid.UUID         `json:"ownerId"`
	IsStaked   bool               `json:"isStaked"`
	StakedAt   null.Time          `json:"stakedAt"`
	Attributes map[string]float64 `json:"attributes"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// StakedNft is an Nft decorated with its accrued reward state for the
// staking dashboard.
type StakedNft struct {
	Nft
	EarnedRewards   decimal.Decimal `json:"earnedRewards"`
	DaysSinceStaked int             `json:"daysSinceStaked"`
}
