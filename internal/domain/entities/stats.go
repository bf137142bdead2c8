package entities

// GlobalStats holds collection-wide counters derived from the store.
// TotalNfts is the theoretical collection supply, not the number of
// minted records.
type GlobalStats struct {
	TotalNfts    int    `json:"totalNfts"`
	TotalStaked  int64  `json:"totalStaked"`
	TotalHolders int64  `json:"totalHolders"`
	FloorPrice   string `json:"floorPrice"`
	TotalRewards string `json:"totalRewards"`
}
