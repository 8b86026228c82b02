package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
	"github.com/checkpass/checkpass-server/internal/domain/repository"
)

type CodeRepository struct {
	pool *pgxpool.Pool
}

func NewCodeRepository(pool *pgxpool.Pool) *CodeRepository {
	return &CodeRepository{pool: pool}
}

func (r *CodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO verification_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, code.Email, code.Code, code.ExpiresAt)
	return row.Scan(&code.ID, &code.CreatedAt)
}

// Consume deletes one matching unexpired code and reports whether a row was
// found. Delete-and-return in a single statement makes the code single-use
// even when two verification requests race.
func (r *CodeRepository) Consume(ctx context.Context, email, code string) (bool, error) {
	var id int64
	row := r.pool.QueryRow(ctx, `
		DELETE FROM verification_codes
		WHERE id = (
			SELECT id FROM verification_codes
			WHERE email = $1 AND code = $2 AND expires_at > now()
			LIMIT 1
		)
		RETURNING id
	`, email, code)
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ repository.CodeRepository = (*CodeRepository)(nil)
