package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/infrastructure/models"
	"pay-chain.backend/pkg/utils"
)

// FaucetClaimRepository implements the append-only faucet audit log
type FaucetClaimRepository struct {
	db *gorm.DB
}

// NewFaucetClaimRepository creates a new faucet claim repository
func NewFaucetClaimRepository(db *gorm.DB) *FaucetClaimRepository {
	return &FaucetClaimRepository{db: db}
}

// Create appends a claim record. Claims are never updated or deleted.
func (r *FaucetClaimRepository) Create(ctx context.Context, claim *entities.FaucetClaim) error {
	if claim.ID == uuid.Nil {
		claim.ID = utils.GenerateUUIDv7()
	}
	if claim.ClaimedAt.IsZero() {
		claim.ClaimedAt = time.Now()
	}
	m := &models.FaucetClaim{
		ID:            claim.ID,
		UserID:        claim.UserID,
		Amount:        claim.Amount,
		WalletAddress: claim.WalletAddress,
		ClaimedAt:     claim.ClaimedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetLatestByUser returns the user's most recent claim. This record, not
// the cached field on User, gates the cooldown.
func (r *FaucetClaimRepository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.FaucetClaim, error) {
	var m models.FaucetClaim
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("claimed_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.FaucetClaim{
		ID:            m.ID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		WalletAddress: m.WalletAddress,
		ClaimedAt:     m.ClaimedAt,
	}, nil
}
