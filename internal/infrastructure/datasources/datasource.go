package datasources

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pay-chain.backend/internal/config"
	"pay-chain.backend/internal/infrastructure/models"
)

// sqlite in-memory DSN; shared cache so every connection in the pool
// sees the same store for the lifetime of the process
const memoryDSN = "file:valhalla?mode=memory&cache=shared"

// Open connects the entity store. DB_DRIVER=sqlite (the default) keeps
// everything in process memory; postgres is for deployments that want
// the state to survive a restart.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return gorm.Open(sqlite.Open(memoryDSN), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.URL(),
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates the four entity tables and their indexes
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Nft{},
		&models.StakingReward{},
		&models.FaucetClaim{},
	)
}
