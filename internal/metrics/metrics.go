package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency per route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "odin_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// StakeOperations counts stake and unstake transitions by outcome
	StakeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odin_stake_operations_total",
			Help: "Total number of stake/unstake operations",
		},
		[]string{"operation", "status"},
	)

	// RewardsClaimed tracks claimed reward amounts
	RewardsClaimed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "odin_rewards_claimed",
			Help:    "Amount of ODIN claimed from staking rewards",
			Buckets: []float64{1, 10, 50, 100, 500, 1000},
		},
	)

	// FaucetClaims counts faucet attempts by outcome
	FaucetClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odin_faucet_claims_total",
			Help: "Total number of faucet claim attempts",
		},
		[]string{"status"},
	)

	// RewardsAccrued counts accrual job sweeps
	RewardsAccrued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "odin_reward_accrual_sweeps_total",
			Help: "Total number of reward accrual sweeps",
		},
	)
)
