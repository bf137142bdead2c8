package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/domain/repositories"
	"pay-chain.backend/internal/metrics"
	"pay-chain.backend/pkg/utils"
)

// FaucetUsecase handles the cooldown-gated token disbursement
type FaucetUsecase struct {
	userRepo  repositories.UserRepository
	claimRepo repositories.FaucetClaimRepository
	uow       repositories.UnitOfWork
}

// NewFaucetUsecase creates a new faucet usecase
func NewFaucetUsecase(
	userRepo repositories.UserRepository,
	claimRepo repositories.FaucetClaimRepository,
	uow repositories.UnitOfWork,
) *FaucetUsecase {
	return &FaucetUsecase{
		userRepo:  userRepo,
		claimRepo: claimRepo,
		uow:       uow,
	}
}

// Claim disburses the fixed faucet amount to the wallet's owner, at most
// once per cooldown window. The newest audit log record gates the
// window; User.LastFaucetClaim is only a mirror written here.
func (u *FaucetUsecase) Claim(ctx context.Context, input *entities.FaucetClaimInput) (*entities.ClaimResult, error) {
	address := input.WalletAddress
	// Reject malformed addresses before touching the store
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		metrics.FaucetClaims.WithLabelValues("invalid_address").Inc()
		return nil, domainerrors.BadRequest("Invalid wallet address")
	}

	user, err := u.userRepo.GetByWallet(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			metrics.FaucetClaims.WithLabelValues("unknown_wallet").Inc()
			return nil, domainerrors.NotFound("User not found for this wallet address")
		}
		return nil, err
	}

	last, err := u.claimRepo.GetLatestByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if last != nil {
		elapsed := time.Since(last.ClaimedAt)
		if elapsed < FaucetCooldown {
			metrics.FaucetClaims.WithLabelValues("cooldown").Inc()
			return nil, domainerrors.Cooldown(renderTimeLeft(FaucetCooldown - elapsed))
		}
	}

	now := time.Now()
	var result entities.ClaimResult
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.claimRepo.Create(txCtx, &entities.FaucetClaim{
			UserID:        user.ID,
			Amount:        FaucetClaimAmount,
			WalletAddress: address,
			ClaimedAt:     now,
		}); err != nil {
			return err
		}

		current, err := u.userRepo.GetByID(txCtx, user.ID)
		if err != nil {
			return err
		}
		updated, err := u.userRepo.UpdateBalance(txCtx, user.ID, current.OdinBalance.Add(FaucetClaimAmount))
		if err != nil {
			return err
		}
		if err := u.userRepo.UpdateLastFaucetClaim(txCtx, user.ID, now); err != nil {
			return err
		}

		result = entities.ClaimResult{
			Amount:     utils.FormatAmount(FaucetClaimAmount),
			NewBalance: updated.OdinBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.FaucetClaims.WithLabelValues("success").Inc()
	return &result, nil
}

// GetUserByWallet looks a user up by wallet address
func (u *FaucetUsecase) GetUserByWallet(ctx context.Context, address string) (*entities.User, error) {
	return u.userRepo.GetByWallet(ctx, address)
}

// renderTimeLeft formats a remaining wait as whole hours and minutes,
// flooring both, e.g. "23h 59m"
func renderTimeLeft(remaining time.Duration) string {
	hours := int(remaining / time.Hour)
	minutes := int((remaining % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
