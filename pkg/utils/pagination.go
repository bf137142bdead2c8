package utils

const (
	// DefaultListLimit is applied when the caller omits or botches limit
	DefaultListLimit = 20
	// MaxListLimit caps a single page
	MaxListLimit = 100
)

// ListParams holds limit/offset pagination parameters
type ListParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// NormalizeListParams clamps limit and offset to usable values
func NormalizeListParams(limit, offset int) ListParams {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return ListParams{Limit: limit, Offset: offset}
}
