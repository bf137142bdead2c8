package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		wallet_address TEXT,
		odin_balance TEXT NOT NULL DEFAULT '0',
		last_faucet_claim DATETIME,
		created_at DATETIME
	);`)
}

func createNftTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE nfts (
		id TEXT PRIMARY KEY,
		token_id INTEGER UNIQUE NOT NULL,
		name TEXT NOT NULL,
		image_url TEXT NOT NULL,
		rarity TEXT NOT NULL,
		category TEXT NOT NULL,
		price TEXT NOT NULL,
		owner_id TEXT,
		is_staked BOOLEAN NOT NULL DEFAULT FALSE,
		staked_at DATETIME,
		attributes TEXT,
		created_at DATETIME
	);`)
}

func createStakingRewardTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE staking_rewards (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		nft_id TEXT NOT NULL,
		rewards_earned TEXT NOT NULL DEFAULT '0',
		last_claim_at DATETIME NOT NULL,
		created_at DATETIME,
		UNIQUE(user_id, nft_id)
	);`)
}

func createFaucetClaimTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE faucet_claims (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		wallet_address TEXT NOT NULL,
		claimed_at DATETIME NOT NULL
	);`)
}
