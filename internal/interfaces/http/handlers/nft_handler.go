package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/domain/repositories"
	"pay-chain.backend/internal/interfaces/http/response"
	"pay-chain.backend/pkg/utils"
)

// NftHandler serves the collection browsing endpoints straight from the
// repository; there is no business logic between them
type NftHandler struct {
	nftRepo repositories.NftRepository
}

// NewNftHandler creates a new NFT handler
func NewNftHandler(nftRepo repositories.NftRepository) *NftHandler {
	return &NftHandler{nftRepo: nftRepo}
}

// ListNfts returns a page of the collection
// GET /api/nfts?limit&offset
func (h *NftHandler) ListNfts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	params := utils.NormalizeListParams(limit, offset)

	nfts, err := h.nftRepo.List(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, nfts)
}

// GetNft returns a single NFT
// GET /api/nfts/:id
func (h *NftHandler) GetNft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot reference anything in the store
		response.Error(c, domainerrors.NotFound("NFT not found"))
		return
	}

	nft, err := h.nftRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("NFT not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, nft)
}

// GetUserNfts returns all NFTs a user owns
// GET /api/users/:userId/nfts
func (h *NftHandler) GetUserNfts(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	nfts, err := h.nftRepo.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, nfts)
}
