package usecases

import (
	"time"

	"github.com/shopspring/decimal"
)

// Faucet disbursement policy
var FaucetClaimAmount = decimal.NewFromInt(100)

const FaucetCooldown = 24 * time.Hour

// Collection-wide constants reported by stats. Supply is the theoretical
// collection size, independent of how many records were actually minted.
const (
	TotalCollectionSupply = 10000
	FloorPrice            = "0.5"
)
