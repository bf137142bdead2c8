package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/domain/repositories"
	"pay-chain.backend/internal/metrics"
	"pay-chain.backend/pkg/logger"
)

var hoursPerDay = decimal.NewFromInt(24)

// RewardAccrualJob periodically credits staking rewards to every staked,
// owned NFT. Each sweep adds dailyRate scaled to the elapsed interval,
// so an hourly sweep at 5.2/day credits 5.2/24 per NFT.
type RewardAccrualJob struct {
	nftRepo    repositories.NftRepository
	rewardRepo repositories.StakingRewardRepository
	dailyRate  decimal.Decimal
	interval   time.Duration
	stop       chan struct{}
}

func NewRewardAccrualJob(
	nftRepo repositories.NftRepository,
	rewardRepo repositories.StakingRewardRepository,
	dailyRate decimal.Decimal,
	interval time.Duration,
) *RewardAccrualJob {
	return &RewardAccrualJob{
		nftRepo:    nftRepo,
		rewardRepo: rewardRepo,
		dailyRate:  dailyRate,
		interval:   interval,
		stop:       make(chan struct{}),
	}
}

func (j *RewardAccrualJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting reward accrual job",
		zap.String("daily_rate", j.dailyRate.String()),
		zap.Duration("interval", j.interval),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Reward accrual job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Reward accrual job stopped")
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

func (j *RewardAccrualJob) Stop() {
	close(j.stop)
}

// Sweep runs one accrual pass. Exported so a deployment can trigger an
// off-schedule pass and tests can drive the job without the ticker.
func (j *RewardAccrualJob) Sweep(ctx context.Context) {
	staked, err := j.nftRepo.GetAllStaked(ctx)
	if err != nil {
		logger.Error(ctx, "Reward accrual sweep failed to list staked NFTs", zap.Error(err))
		return
	}
	if len(staked) == 0 {
		return
	}

	perSweep := j.dailyRate.Mul(decimal.NewFromFloat(j.interval.Hours())).Div(hoursPerDay)

	credited := 0
	for _, nft := range staked {
		if nft.OwnerID == nil {
			continue
		}
		err := j.rewardRepo.AddRewards(ctx, *nft.OwnerID, nft.ID, perSweep)
		if errors.Is(err, domainerrors.ErrNotFound) {
			// Staked before the ledger entry existed (seeded state)
			err = j.rewardRepo.Create(ctx, &entities.StakingReward{
				UserID:        *nft.OwnerID,
				NftID:         nft.ID,
				RewardsEarned: perSweep,
			})
		}
		if err != nil {
			logger.Error(ctx, "Reward accrual failed for NFT",
				zap.String("nft_id", nft.ID.String()),
				zap.Error(err),
			)
			continue
		}
		credited++
	}

	metrics.RewardsAccrued.Inc()
	logger.Debug(ctx, "Reward accrual sweep complete",
		zap.Int("staked", len(staked)),
		zap.Int("credited", credited),
		zap.String("per_nft", perSweep.String()),
	)
}
