package datasources

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/internal/infrastructure/models"
	"pay-chain.backend/internal/infrastructure/repositories"
)

// Seed loads the demo fixture: one collector and three warriors, the
// first of them already staked with accrued rewards waiting to be
// claimed. Runs only when the users table is empty.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	nftRepo := repositories.NewNftRepository(db)
	rewardRepo := repositories.NewStakingRewardRepository(db)

	now := time.Now()
	user := &entities.User{
		Username:        "viking_warrior",
		PasswordHash:    string(hash),
		WalletAddress:   null.StringFrom("0x1234567890abcdef1234567890abcdef12345678"),
		OdinBalance:     decimal.RequireFromString("450.25"),
		LastFaucetClaim: null.TimeFrom(now.Add(-25 * time.Hour)),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	stakedAt := now.Add(-15 * 24 * time.Hour)
	warriors := []*entities.Nft{
		{
			TokenID:  1247,
			Name:     "Ragnar the Fierce #1247",
			ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=600&h=600&fit=crop",
			Rarity:   entities.RarityLegendary,
			Category: entities.CategoryBerserker,
			Price:    decimal.RequireFromString("2.5"),
			OwnerID:  &user.ID,
			IsStaked: true,
			StakedAt: null.TimeFrom(stakedAt),
			Attributes: map[string]float64{
				"strength": 95, "wisdom": 45, "magic": 30, "speed": 80,
			},
		},
		{
			TokenID:  892,
			Name:     "Freydis the Bold #892",
			ImageURL: "https://images.unsplash.com/photo-1544723795-3fb6469f5b39?w=600&h=600&fit=crop",
			Rarity:   entities.RarityEpic,
			Category: entities.CategoryValkyrie,
			Price:    decimal.RequireFromString("1.8"),
			OwnerID:  &user.ID,
			Attributes: map[string]float64{
				"strength": 85, "wisdom": 70, "magic": 90, "speed": 95,
			},
		},
		{
			TokenID:  456,
			Name:     "Olaf the Wise #456",
			ImageURL: "https://images.unsplash.com/photo-1566492031773-4f4e44671d66?w=600&h=600&fit=crop",
			Rarity:   entities.RarityRare,
			Category: entities.CategoryJarl,
			Price:    decimal.RequireFromString("3.2"),
			OwnerID:  &user.ID,
			Attributes: map[string]float64{
				"strength": 70, "wisdom": 95, "magic": 60, "speed": 50,
			},
		},
	}

	for _, nft := range warriors {
		if err := nftRepo.Create(ctx, nft); err != nil {
			return err
		}
		if nft.IsStaked {
			reward := &entities.StakingReward{
				UserID:        user.ID,
				NftID:         nft.ID,
				RewardsEarned: decimal.RequireFromString("78.0"),
			}
			if err := rewardRepo.Create(ctx, reward); err != nil {
				return err
			}
		}
	}

	return nil
}
