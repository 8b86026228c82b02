package repository

import (
	"context"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
)

// CodeRepository persists one-time verification codes. Consume is the only
// read path: it atomically deletes a matching unexpired row so a code can
// never authenticate twice.
type CodeRepository interface {
	Create(ctx context.Context, code *entity.VerificationCode) error
	Consume(ctx context.Context, email, code string) (bool, error)
}
