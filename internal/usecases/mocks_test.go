package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"pay-chain.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByWallet(ctx context.Context, walletAddress string) (*entities.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) (*entities.User, error) {
	args := m.Called(ctx, id, balance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastFaucetClaim(ctx context.Context, id uuid.UUID, claimTime time.Time) error {
	return m.Called(ctx, id, claimTime).Error(0)
}

// Mock NftRepository
type MockNftRepository struct {
	mock.Mock
}

func (m *MockNftRepository) Create(ctx context.Context, nft *entities.Nft) error {
	return m.Called(ctx, nft).Error(0)
}

func (m *MockNftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Nft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) GetByTokenID(ctx context.Context, tokenID int) (*entities.Nft, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) List(ctx context.Context, limit, offset int) ([]*entities.Nft, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Nft, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) GetStakedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Nft, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) GetAllStaked(ctx context.Context) ([]*entities.Nft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) Stake(ctx context.Context, id uuid.UUID, stakedAt time.Time) (*entities.Nft, error) {
	args := m.Called(ctx, id, stakedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) Unstake(ctx context.Context, id uuid.UUID) (*entities.Nft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Nft), args.Error(1)
}

func (m *MockNftRepository) CountStaked(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNftRepository) CountDistinctOwners(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock StakingRewardRepository
type MockStakingRewardRepository struct {
	mock.Mock
}

func (m *MockStakingRewardRepository) Create(ctx context.Context, reward *entities.StakingReward) error {
	return m.Called(ctx, reward).Error(0)
}

func (m *MockStakingRewardRepository) GetByUserAndNft(ctx context.Context, userID, nftID uuid.UUID) (*entities.StakingReward, error) {
	args := m.Called(ctx, userID, nftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StakingReward), args.Error(1)
}

func (m *MockStakingRewardRepository) ResetRewards(ctx context.Context, userID, nftID uuid.UUID) error {
	return m.Called(ctx, userID, nftID).Error(0)
}

func (m *MockStakingRewardRepository) AddRewards(ctx context.Context, userID, nftID uuid.UUID, amount decimal.Decimal) error {
	return m.Called(ctx, userID, nftID, amount).Error(0)
}

func (m *MockStakingRewardRepository) TotalRewards(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Mock FaucetClaimRepository
type MockFaucetClaimRepository struct {
	mock.Mock
}

func (m *MockFaucetClaimRepository) Create(ctx context.Context, claim *entities.FaucetClaim) error {
	return m.Called(ctx, claim).Error(0)
}

func (m *MockFaucetClaimRepository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.FaucetClaim, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FaucetClaim), args.Error(1)
}
