package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
	"github.com/checkpass/checkpass-server/internal/domain/repository"
)

type CheckRepository struct {
	pool *pgxpool.Pool
}

func NewCheckRepository(pool *pgxpool.Pool) *CheckRepository {
	return &CheckRepository{pool: pool}
}

func (r *CheckRepository) Create(ctx context.Context, c *entity.Check) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO checks (user_id, type, status, result)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.UserID, c.Type, c.Status, c.Result)
	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CheckRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Check, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, status, result, created_at
		FROM checks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := make([]*entity.Check, 0)
	for rows.Next() {
		c := &entity.Check{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Type, &c.Status, &c.Result, &c.CreatedAt); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// StatsByUser returns the total check count and the most recent check, if any.
func (r *CheckRepository) StatsByUser(ctx context.Context, userID string) (int, *entity.Check, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM checks WHERE user_id = $1
	`, userID).Scan(&total); err != nil {
		return 0, nil, err
	}
	if total == 0 {
		return 0, nil, nil
	}

	last := &entity.Check{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, type, status, result, created_at
		FROM checks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	if err := row.Scan(&last.ID, &last.UserID, &last.Type, &last.Status, &last.Result, &last.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return total, nil, nil
		}
		return 0, nil, err
	}
	return total, last, nil
}

var _ repository.CheckRepository = (*CheckRepository)(nil)
