package repositories

import (
	"context"
)

// UnitOfWork executes a function within a single transaction scope.
// Multi-step claim sequences run through this so a failure never leaves
// a drained reward record without the matching balance credit.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
