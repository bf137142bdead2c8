package usecases

import (
	"context"

	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/internal/domain/repositories"
	"pay-chain.backend/pkg/utils"
)

// StatsUsecase derives collection-wide counters. Every call scans the
// store fresh; nothing is cached.
type StatsUsecase struct {
	nftRepo    repositories.NftRepository
	rewardRepo repositories.StakingRewardRepository
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(nftRepo repositories.NftRepository, rewardRepo repositories.StakingRewardRepository) *StatsUsecase {
	return &StatsUsecase{nftRepo: nftRepo, rewardRepo: rewardRepo}
}

// GlobalStats returns the collection dashboard counters
func (u *StatsUsecase) GlobalStats(ctx context.Context) (*entities.GlobalStats, error) {
	staked, err := u.nftRepo.CountStaked(ctx)
	if err != nil {
		return nil, err
	}
	holders, err := u.nftRepo.CountDistinctOwners(ctx)
	if err != nil {
		return nil, err
	}
	totalRewards, err := u.rewardRepo.TotalRewards(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.GlobalStats{
		TotalNfts:    TotalCollectionSupply,
		TotalStaked:  staked,
		TotalHolders: holders,
		FloorPrice:   FloorPrice,
		TotalRewards: utils.FormatAmount(totalRewards),
	}, nil
}
