package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
	"github.com/checkpass/checkpass-server/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "id, email, first_name, last_name, phone, avatar, role, created_at, last_login"

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
		&u.Avatar, &u.Role, &u.CreatedAt, &u.LastLogin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// FindOrCreate inserts the user if the email is new and returns the stored
// row either way. ON CONFLICT DO NOTHING plus a lookup fallback keeps two
// concurrent first logins for the same email down to a single row.
func (r *UserRepository) FindOrCreate(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, first_name, last_name, phone, avatar)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING `+userColumns+`
	`, u.Email, u.FirstName, u.LastName, u.Phone, u.Avatar)

	created, err := scanUser(row)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	// Conflict swallowed the insert; the row already exists.
	return r.GetByEmail(ctx, u.Email)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

// UpdateProfile overwrites only the fields present in the patch.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, patch repository.ProfilePatch) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
		    last_name  = COALESCE($3, last_name),
		    phone      = COALESCE($4, phone),
		    avatar     = COALESCE($5, avatar)
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, patch.FirstName, patch.LastName, patch.Phone, patch.Avatar)
	return scanUser(row)
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET last_login = now() WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
