package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/infrastructure/models"
	"pay-chain.backend/pkg/utils"
)

// StakingRewardRepository implements the reward ledger
type StakingRewardRepository struct {
	db *gorm.DB
}

// NewStakingRewardRepository creates a new staking reward repository
func NewStakingRewardRepository(db *gorm.DB) *StakingRewardRepository {
	return &StakingRewardRepository{db: db}
}

// Create inserts the ledger entry for a (user, nft) pair. The schema's
// unique index on the pair rejects a second record.
func (r *StakingRewardRepository) Create(ctx context.Context, reward *entities.StakingReward) error {
	if reward.ID == uuid.Nil {
		reward.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	if reward.LastClaimAt.IsZero() {
		reward.LastClaimAt = now
	}
	if reward.CreatedAt.IsZero() {
		reward.CreatedAt = now
	}
	m := &models.StakingReward{
		ID:            reward.ID,
		UserID:        reward.UserID,
		NftID:         reward.NftID,
		RewardsEarned: reward.RewardsEarned,
		LastClaimAt:   reward.LastClaimAt,
		CreatedAt:     reward.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByUserAndNft gets the ledger entry for a pair
func (r *StakingRewardRepository) GetByUserAndNft(ctx context.Context, userID, nftID uuid.UUID) (*entities.StakingReward, error) {
	var m models.StakingReward
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND nft_id = ?", userID, nftID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ResetRewards zeroes the accrued amount and stamps lastClaimAt
func (r *StakingRewardRepository) ResetRewards(ctx context.Context, userID, nftID uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	result := db.Model(&models.StakingReward{}).
		Where("user_id = ? AND nft_id = ?", userID, nftID).
		Updates(map[string]interface{}{
			"rewards_earned": decimal.Zero,
			"last_claim_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddRewards credits accrued tokens onto a pair's ledger entry without
// touching lastClaimAt
func (r *StakingRewardRepository) AddRewards(ctx context.Context, userID, nftID uuid.UUID, amount decimal.Decimal) error {
	reward, err := r.GetByUserAndNft(ctx, userID, nftID)
	if err != nil {
		return err
	}
	db := GetDB(ctx, r.db).WithContext(ctx)
	result := db.Model(&models.StakingReward{}).
		Where("user_id = ? AND nft_id = ?", userID, nftID).
		Update("rewards_earned", reward.RewardsEarned.Add(amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// TotalRewards sums accrued rewards across every ledger entry
func (r *StakingRewardRepository) TotalRewards(ctx context.Context) (decimal.Decimal, error) {
	var rows []models.StakingReward
	if err := GetDB(ctx, r.db).WithContext(ctx).Find(&rows).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].RewardsEarned)
	}
	return total, nil
}

func (r *StakingRewardRepository) toEntity(m *models.StakingReward) *entities.StakingReward {
	return &entities.StakingReward{
		ID:            m.ID,
		UserID:        m.UserID,
		NftID:         m.NftID,
		RewardsEarned: m.RewardsEarned,
		LastClaimAt:   m.LastClaimAt,
		CreatedAt:     m.CreatedAt,
	}
}
