package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pay-chain.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	statsHandler   *handlers.StatsHandler
	nftHandler     *handlers.NftHandler
	stakingHandler *handlers.StakingHandler
	faucetHandler  *handlers.FaucetHandler
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		api.GET("/stats", d.statsHandler.GetStats)

		nfts := api.Group("/nfts")
		{
			nfts.GET("", d.nftHandler.ListNfts)
			nfts.GET("/:id", d.nftHandler.GetNft)
			nfts.POST("/:id/stake", d.stakingHandler.StakeNft)
			nfts.POST("/:id/unstake", d.stakingHandler.UnstakeNft)
		}

		users := api.Group("/users")
		{
			users.GET("/wallet/:address", d.faucetHandler.GetUserByWallet)
			users.GET("/:userId/nfts", d.nftHandler.GetUserNfts)
			users.GET("/:userId/staked", d.stakingHandler.GetStakedNfts)
			users.POST("/:userId/claim-rewards", d.stakingHandler.ClaimRewards)
		}

		api.POST("/faucet/claim", d.faucetHandler.Claim)
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		} else {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "valhalla-odin-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
