package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/interfaces/http/response"
	"pay-chain.backend/internal/usecases"
)

type faucetService interface {
	Claim(ctx context.Context, input *entities.FaucetClaimInput) (*entities.ClaimResult, error)
	GetUserByWallet(ctx context.Context, address string) (*entities.User, error)
}

// FaucetHandler handles faucet claims and wallet lookups
type FaucetHandler struct {
	faucetUsecase faucetService
}

// NewFaucetHandler creates a new faucet handler
func NewFaucetHandler(faucetUsecase *usecases.FaucetUsecase) *FaucetHandler {
	return &FaucetHandler{faucetUsecase: faucetUsecase}
}

// Claim disburses faucet tokens to the wallet's owner
// POST /api/faucet/claim
func (h *FaucetHandler) Claim(c *gin.Context) {
	var input entities.FaucetClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request data"))
		return
	}

	result, err := h.faucetUsecase.Claim(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Faucet claim successful",
		"amount":     result.Amount,
		"newBalance": result.NewBalance,
	})
}

// GetUserByWallet returns the user record behind a wallet address
// GET /api/users/wallet/:address
func (h *FaucetHandler) GetUserByWallet(c *gin.Context) {
	user, err := h.faucetUsecase.GetUserByWallet(c.Request.Context(), c.Param("address"))
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
