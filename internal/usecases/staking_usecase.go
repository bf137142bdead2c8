package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/domain/repositories"
	"pay-chain.backend/internal/metrics"
	"pay-chain.backend/pkg/utils"
)

// StakingUsecase handles stake/unstake transitions and reward claims
type StakingUsecase struct {
	nftRepo    repositories.NftRepository
	rewardRepo repositories.StakingRewardRepository
	userRepo   repositories.UserRepository
	uow        repositories.UnitOfWork
}

// NewStakingUsecase creates a new staking usecase
func NewStakingUsecase(
	nftRepo repositories.NftRepository,
	rewardRepo repositories.StakingRewardRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *StakingUsecase {
	return &StakingUsecase{
		nftRepo:    nftRepo,
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
		uow:        uow,
	}
}

// Stake marks the NFT staked and makes sure exactly one reward ledger
// entry exists for the (owner, nft) pair. Re-staking refreshes the
// stakedAt timestamp and leaves any accrued rewards alone.
func (u *StakingUsecase) Stake(ctx context.Context, nftID uuid.UUID) (*entities.Nft, error) {
	nft, err := u.nftRepo.Stake(ctx, nftID, time.Now())
	if err != nil {
		metrics.StakeOperations.WithLabelValues("stake", "error").Inc()
		return nil, err
	}

	if nft.OwnerID != nil {
		_, err := u.rewardRepo.GetByUserAndNft(ctx, *nft.OwnerID, nft.ID)
		if errors.Is(err, domainerrors.ErrNotFound) {
			err = u.rewardRepo.Create(ctx, &entities.StakingReward{
				UserID:        *nft.OwnerID,
				NftID:         nft.ID,
				RewardsEarned: decimal.Zero,
			})
		}
		if err != nil {
			metrics.StakeOperations.WithLabelValues("stake", "error").Inc()
			return nil, err
		}
	}

	metrics.StakeOperations.WithLabelValues("stake", "success").Inc()
	return nft, nil
}

// Unstake clears the staking state. The reward ledger entry survives, so
// unclaimed tokens are still there on the next stake.
func (u *StakingUsecase) Unstake(ctx context.Context, nftID uuid.UUID) (*entities.Nft, error) {
	nft, err := u.nftRepo.Unstake(ctx, nftID)
	if err != nil {
		metrics.StakeOperations.WithLabelValues("unstake", "error").Inc()
		return nil, err
	}
	metrics.StakeOperations.WithLabelValues("unstake", "success").Inc()
	return nft, nil
}

// ClaimRewards drains the accrued rewards of every staked NFT the user
// owns into their balance. The drain and the balance credit commit in
// one transaction. A user with nothing staked claims zero.
func (u *StakingUsecase) ClaimRewards(ctx context.Context, userID uuid.UUID) (*entities.ClaimResult, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	var result entities.ClaimResult
	total := decimal.Zero
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		staked, err := u.nftRepo.GetStakedByOwner(txCtx, userID)
		if err != nil {
			return err
		}
		for _, nft := range staked {
			reward, err := u.rewardRepo.GetByUserAndNft(txCtx, userID, nft.ID)
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			total = total.Add(reward.RewardsEarned)
			if err := u.rewardRepo.ResetRewards(txCtx, userID, nft.ID); err != nil {
				return err
			}
		}

		user, err := u.userRepo.GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		updated, err := u.userRepo.UpdateBalance(txCtx, userID, user.OdinBalance.Add(total))
		if err != nil {
			return err
		}

		result = entities.ClaimResult{
			Amount:     utils.FormatAmount(total),
			NewBalance: updated.OdinBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RewardsClaimed.Observe(total.InexactFloat64())
	return &result, nil
}

// GetStakedWithRewards returns the user's staked NFTs decorated with
// their accrued rewards and whole days since staking
func (u *StakingUsecase) GetStakedWithRewards(ctx context.Context, userID uuid.UUID) ([]*entities.StakedNft, error) {
	staked, err := u.nftRepo.GetStakedByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.StakedNft, 0, len(staked))
	now := time.Now()
	for _, nft := range staked {
		earned := decimal.Zero
		reward, err := u.rewardRepo.GetByUserAndNft(ctx, userID, nft.ID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if reward != nil {
			earned = reward.RewardsEarned
		}

		days := 0
		if nft.StakedAt.Valid {
			days = int(now.Sub(nft.StakedAt.Time).Hours() / 24)
		}

		out = append(out, &entities.StakedNft{
			Nft:             *nft,
			EarnedRewards:   earned,
			DaysSinceStaked: days,
		})
	}
	return out, nil
}
