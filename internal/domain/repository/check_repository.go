package repository

import (
	"context"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
)

// CheckRepository persists check records, always scoped to their owner.
type CheckRepository interface {
	Create(ctx context.Context, c *entity.Check) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Check, error)
	StatsByUser(ctx context.Context, userID string) (total int, last *entity.Check, err error)
}
