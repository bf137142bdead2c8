package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"pay-chain.backend/internal/domain/entities"
)

// NftRepository defines collectible data operations. There is no delete,
// NFTs only change owner and staking state.
type NftRepository interface {
	Create(ctx context.Context, nft *entities.Nft) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Nft, error)
	GetByTokenID(ctx context.Context, tokenID int) (*entities.Nft, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Nft, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Nft, error)
	GetStakedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Nft, error)
	GetAllStaked(ctx context.Context) ([]*entities.Nft, error)
	Stake(ctx context.Context, id uuid.UUID, stakedAt time.Time) (*entities.Nft, error)
	Unstake(ctx context.Context, id uuid.UUID) (*entities.Nft, error)
	CountStaked(ctx context.Context) (int64, error)
	CountDistinctOwners(ctx context.Context) (int64, error)
}
