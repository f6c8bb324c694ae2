package memory

import (
	"context"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
)

type usersRepo struct {
	s *Store
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.usersByEmail[u.Email]; ok {
		return store.ErrAlreadyExists
	}
	if _, ok := r.s.usersByID[u.ID]; ok {
		return store.ErrAlreadyExists
	}

	r.s.users = append(r.s.users, u)
	idx := len(r.s.users) - 1
	r.s.usersByID[u.ID] = idx
	r.s.usersByEmail[u.Email] = idx
	return nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	idx, ok := r.s.usersByID[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return r.s.users[idx], nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	idx, ok := r.s.usersByEmail[email]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return r.s.users[idx], nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.User, len(r.s.users))
	copy(out, r.s.users)
	return out, nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}
