package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = ? OR id = ?)`,
		u.Email, u.ID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return store.ErrAlreadyExists
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Password, string(u.Role), u.CreatedAt,
	)
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, password, role, created_at FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, password, role, created_at FROM users WHERE email = ?`, email))
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, password, role, created_at FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		var role string
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = domain.Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &role, &u.CreatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	return u, nil
}
