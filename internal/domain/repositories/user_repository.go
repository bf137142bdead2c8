package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pay-chain.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByWallet(ctx context.Context, walletAddress string) (*entities.User, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) (*entities.User, error)
	UpdateLastFaucetClaim(ctx context.Context, id uuid.UUID, claimTime time.Time) error
}
