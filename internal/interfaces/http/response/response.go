package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "pay-chain.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error to its JSON envelope. Cooldown errors carry
// the remaining wait; anything unrecognized collapses to a generic 500
// so internals never leak.
func Error(c *gin.Context, err error) {
	var cooldownErr *domainerrors.CooldownError
	if errors.As(err, &cooldownErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"message":  "Faucet claim on cooldown",
			"timeLeft": cooldownErr.TimeLeft,
		})
		return
	}

	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
