package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/infrastructure/models"
	"pay-chain.backend/pkg/utils"
)

// NftRepository implements collectible data operations
type NftRepository struct {
	db *gorm.DB
}

// NewNftRepository creates a new NFT repository
func NewNftRepository(db *gorm.DB) *NftRepository {
	return &NftRepository{db: db}
}

// Create creates a new NFT record
func (r *NftRepository) Create(ctx context.Context, nft *entities.Nft) error {
	if nft.ID == uuid.Nil {
		nft.ID = utils.GenerateUUIDv7()
	}
	if nft.CreatedAt.IsZero() {
		nft.CreatedAt = time.Now()
	}
	m, err := r.toModel(nft)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an NFT by its storage id
func (r *NftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Nft, error) {
	var m models.Nft
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// GetByTokenID gets an NFT by its public collection number
func (r *NftRepository) GetByTokenID(ctx context.Context, tokenID int) (*entities.Nft, error) {
	var m models.Nft
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("token_id = ?", tokenID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// List returns a page of NFTs in mint order
func (r *NftRepository) List(ctx context.Context, limit, offset int) ([]*entities.Nft, error) {
	var rows []models.Nft
	query := GetDB(ctx, r.db).WithContext(ctx).Order("token_id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toEntities(rows)
}

// GetByOwner returns all NFTs owned by a user
func (r *NftRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Nft, error) {
	var rows []models.Nft
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("owner_id = ?", ownerID).Order("token_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toEntities(rows)
}

// GetStakedByOwner returns the owner's NFTs currently staked
func (r *NftRepository) GetStakedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Nft, error) {
	var rows []models.Nft
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("owner_id = ? AND is_staked = ?", ownerID, true).Order("token_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toEntities(rows)
}

// GetAllStaked returns every staked NFT, for the accrual sweep
func (r *NftRepository) GetAllStaked(ctx context.Context) ([]*entities.Nft, error) {
	var rows []models.Nft
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("is_staked = ?", true).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toEntities(rows)
}

// Stake marks the NFT staked and stamps stakedAt. Staking an already
// staked NFT just refreshes the timestamp.
func (r *NftRepository) Stake(ctx context.Context, id uuid.UUID, stakedAt time.Time) (*entities.Nft, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	result := db.Model(&models.Nft{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_staked": true,
		"staked_at": stakedAt,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Unstake clears the staking state. The reward record for the pair is
// left alone so accrued tokens survive.
func (r *NftRepository) Unstake(ctx context.Context, id uuid.UUID) (*entities.Nft, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	result := db.Model(&models.Nft{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_staked": false,
		"staked_at": nil,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// CountStaked counts NFTs currently staked
func (r *NftRepository) CountStaked(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Nft{}).Where("is_staked = ?", true).Count(&count).Error
	return count, err
}

// CountDistinctOwners counts distinct non-null owners across the collection
func (r *NftRepository) CountDistinctOwners(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Nft{}).
		Where("owner_id IS NOT NULL").
		Distinct("owner_id").
		Count(&count).Error
	return count, err
}

func (r *NftRepository) toModel(nft *entities.Nft) (*models.Nft, error) {
	m := &models.Nft{
		ID:        nft.ID,
		TokenID:   nft.TokenID,
		Name:      nft.Name,
		ImageURL:  nft.ImageURL,
		Rarity:    string(nft.Rarity),
		Category:  string(nft.Category),
		Price:     nft.Price,
		OwnerID:   nft.OwnerID,
		IsStaked:  nft.IsStaked,
		StakedAt:  nft.StakedAt,
		CreatedAt: nft.CreatedAt,
	}
	if nft.Attributes != nil {
		raw, err := json.Marshal(nft.Attributes)
		if err != nil {
			return nil, err
		}
		m.Attributes = null.JSONFrom(raw)
	}
	return m, nil
}

func (r *NftRepository) toEntity(m *models.Nft) (*entities.Nft, error) {
	nft := &entities.Nft{
		ID:        m.ID,
		TokenID:   m.TokenID,
		Name:      m.Name,
		ImageURL:  m.ImageURL,
		Rarity:    entities.Rarity(m.Rarity),
		Category:  entities.Category(m.Category),
		Price:     m.Price,
		OwnerID:   m.OwnerID,
		IsStaked:  m.IsStaked,
		StakedAt:  m.StakedAt,
		CreatedAt: m.CreatedAt,
	}
	if m.Attributes.Valid && len(m.Attributes.JSON) > 0 {
		attrs := map[string]float64{}
		if err := json.Unmarshal(m.Attributes.JSON, &attrs); err != nil {
			return nil, err
		}
		nft.Attributes = attrs
	}
	return nft, nil
}

func (r *NftRepository) toEntities(rows []models.Nft) ([]*entities.Nft, error) {
	out := make([]*entities.Nft, 0, len(rows))
	for i := range rows {
		nft, err := r.toEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, nft)
	}
	return out, nil
}
