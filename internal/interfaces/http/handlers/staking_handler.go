package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/interfaces/http/response"
	"pay-chain.backend/internal/usecases"
)

type stakingService interface {
	Stake(ctx context.Context, nftID uuid.UUID) (*entities.Nft, error)
	Unstake(ctx context.Context, nftID uuid.UUID) (*entities.Nft, error)
	ClaimRewards(ctx context.Context, userID uuid.UUID) (*entities.ClaimResult, error)
	GetStakedWithRewards(ctx context.Context, userID uuid.UUID) ([]*entities.StakedNft, error)
}

// StakingHandler handles stake/unstake and reward claim endpoints
type StakingHandler struct {
	stakingUsecase stakingService
}

// NewStakingHandler creates a new staking handler
func NewStakingHandler(stakingUsecase *usecases.StakingUsecase) *StakingHandler {
	return &StakingHandler{stakingUsecase: stakingUsecase}
}

// StakeNft sends an NFT to the training grounds
// POST /api/nfts/:id/stake
func (h *StakingHandler) StakeNft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("NFT not found"))
		return
	}

	nft, err := h.stakingUsecase.Stake(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("NFT not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "NFT staked successfully",
		"nft":     nft,
	})
}

// UnstakeNft recalls an NFT from staking
// POST /api/nfts/:id/unstake
func (h *StakingHandler) UnstakeNft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("NFT not found"))
		return
	}

	nft, err := h.stakingUsecase.Unstake(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("NFT not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "NFT unstaked successfully",
		"nft":     nft,
	})
}

// ClaimRewards drains accrued staking rewards into the user's balance
// POST /api/users/:userId/claim-rewards
func (h *StakingHandler) ClaimRewards(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	result, err := h.stakingUsecase.ClaimRewards(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Rewards claimed successfully",
		"amount":     result.Amount,
		"newBalance": result.NewBalance,
	})
}

// GetStakedNfts lists the user's staked NFTs with reward state
// GET /api/users/:userId/staked
func (h *StakingHandler) GetStakedNfts(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	staked, err := h.stakingUsecase.GetStakedWithRewards(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, staked)
}
