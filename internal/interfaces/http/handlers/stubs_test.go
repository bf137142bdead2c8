package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/pkg/utils"
)

type nftRepoStub struct {
	items map[uuid.UUID]*entities.Nft
}

func newNftRepoStub() *nftRepoStub {
	return &nftRepoStub{items: map[uuid.UUID]*entities.Nft{}}
}

func (s *nftRepoStub) Create(_ context.Context, nft *entities.Nft) error {
	if nft.ID == uuid.Nil {
		nft.ID = utils.GenerateUUIDv7()
	}
	cpy := *nft
	s.items[nft.ID] = &cpy
	return nil
}

func (s *nftRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Nft, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *item
	return &cpy, nil
}

func (s *nftRepoStub) GetByTokenID(_ context.Context, tokenID int) (*entities.Nft, error) {
	for _, item := range s.items {
		if item.TokenID == tokenID {
			cpy := *item
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *nftRepoStub) sorted() []*entities.Nft {
	out := make([]*entities.Nft, 0, len(s.items))
	for _, item := range s.items {
		cpy := *item
		out = append(out, &cpy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TokenID < out[j].TokenID })
	return out
}

func (s *nftRepoStub) List(_ context.Context, limit, offset int) ([]*entities.Nft, error) {
	all := s.sorted()
	if offset >= len(all) {
		return []*entities.Nft{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *nftRepoStub) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Nft, error) {
	out := []*entities.Nft{}
	for _, item := range s.sorted() {
		if item.OwnerID != nil && *item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *nftRepoStub) GetStakedByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Nft, error) {
	out := []*entities.Nft{}
	for _, item := range s.sorted() {
		if item.IsStaked && item.OwnerID != nil && *item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *nftRepoStub) GetAllStaked(_ context.Context) ([]*entities.Nft, error) {
	out := []*entities.Nft{}
	for _, item := range s.sorted() {
		if item.IsStaked {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *nftRepoStub) Stake(_ context.Context, id uuid.UUID, stakedAt time.Time) (*entities.Nft, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	item.IsStaked = true
	item.StakedAt.SetValid(stakedAt)
	cpy := *item
	return &cpy, nil
}

func (s *nftRepoStub) Unstake(_ context.Context, id uuid.UUID) (*entities.Nft, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	item.IsStaked = false
	item.StakedAt.Valid = false
	cpy := *item
	return &cpy, nil
}

func (s *nftRepoStub) CountStaked(_ context.Context) (int64, error) {
	var n int64
	for _, item := range s.items {
		if item.IsStaked {
			n++
		}
	}
	return n, nil
}

func (s *nftRepoStub) CountDistinctOwners(_ context.Context) (int64, error) {
	owners := map[uuid.UUID]struct{}{}
	for _, item := range s.items {
		if item.OwnerID != nil {
			owners[*item.OwnerID] = struct{}{}
		}
	}
	return int64(len(owners)), nil
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = utils.GenerateUUIDv7()
	}
	cpy := *user
	s.users[user.ID] = &cpy
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *user
	return &cpy, nil
}

func (s *userRepoStub) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			cpy := *user
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByWallet(_ context.Context, walletAddress string) (*entities.User, error) {
	for _, user := range s.users {
		if user.WalletAddress.Valid && user.WalletAddress.String == walletAddress {
			cpy := *user
			return &cpy, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdateBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) (*entities.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	user.OdinBalance = balance
	cpy := *user
	return &cpy, nil
}

func (s *userRepoStub) UpdateLastFaucetClaim(_ context.Context, id uuid.UUID, claimTime time.Time) error {
	user, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	user.LastFaucetClaim.SetValid(claimTime)
	return nil
}

type rewardKey struct {
	userID uuid.UUID
	nftID  uuid.UUID
}

type rewardRepoStub struct {
	rewards map[rewardKey]*entities.StakingReward
}

func newRewardRepoStub() *rewardRepoStub {
	return &rewardRepoStub{rewards: map[rewardKey]*entities.StakingReward{}}
}

func (s *rewardRepoStub) Create(_ context.Context, reward *entities.StakingReward) error {
	key := rewardKey{reward.UserID, reward.NftID}
	if _, ok := s.rewards[key]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if reward.ID == uuid.Nil {
		reward.ID = utils.GenerateUUIDv7()
	}
	cpy := *reward
	s.rewards[key] = &cpy
	return nil
}

func (s *rewardRepoStub) GetByUserAndNft(_ context.Context, userID, nftID uuid.UUID) (*entities.StakingReward, error) {
	reward, ok := s.rewards[rewardKey{userID, nftID}]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *reward
	return &cpy, nil
}

func (s *rewardRepoStub) ResetRewards(_ context.Context, userID, nftID uuid.UUID) error {
	reward, ok := s.rewards[rewardKey{userID, nftID}]
	if !ok {
		return domainerrors.ErrNotFound
	}
	reward.RewardsEarned = decimal.Zero
	reward.LastClaimAt = time.Now()
	return nil
}

func (s *rewardRepoStub) AddRewards(_ context.Context, userID, nftID uuid.UUID, amount decimal.Decimal) error {
	reward, ok := s.rewards[rewardKey{userID, nftID}]
	if !ok {
		return domainerrors.ErrNotFound
	}
	reward.RewardsEarned = reward.RewardsEarned.Add(amount)
	return nil
}

func (s *rewardRepoStub) TotalRewards(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, reward := range s.rewards {
		total = total.Add(reward.RewardsEarned)
	}
	return total, nil
}

type faucetClaimRepoStub struct {
	claims []*entities.FaucetClaim
}

func (s *faucetClaimRepoStub) Create(_ context.Context, claim *entities.FaucetClaim) error {
	if claim.ID == uuid.Nil {
		claim.ID = utils.GenerateUUIDv7()
	}
	cpy := *claim
	s.claims = append(s.claims, &cpy)
	return nil
}

func (s *faucetClaimRepoStub) GetLatestByUser(_ context.Context, userID uuid.UUID) (*entities.FaucetClaim, error) {
	var latest *entities.FaucetClaim
	for _, claim := range s.claims {
		if claim.UserID != userID {
			continue
		}
		if latest == nil || claim.ClaimedAt.After(latest.ClaimedAt) {
			latest = claim
		}
	}
	if latest == nil {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *latest
	return &cpy, nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
