package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/pkg/idx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// ErrDuplicateEmail reports a registration attempt with an email that is
// already taken. Surfaced as a boolean failure to the caller; no audit
// entry is produced for it.
var ErrDuplicateEmail = errors.New("email already registered")

// UserService owns the Users collection: registration and credential
// lookups. Registration provisions the signup consent and a zeroed mirror
// for the new id, then audits the event.
type UserService struct {
	Store store.Store
	Audit *AuditService
	Gate  *Gate
}

// Register creates a new user. Fails with ErrDuplicateEmail when the email
// is already present (exact, case-sensitive comparison); on failure
// nothing is written and nothing is audited. It never logs the new user
// in.
func (s *UserService) Register(ctx context.Context, email, password string, role domain.Role) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user := domain.User{
		ID:        idx.New().String(),
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	err := s.Gate.Do(func() error {
		if err := s.Store.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateEmail
			}
			return err
		}

		// Provision the new identity's rows up front so later reads and
		// merges start from a known base.
		if err := s.Store.Consents().PutConsent(ctx, user.ID, domain.SignupConsent()); err != nil {
			return err
		}
		if err := s.Store.Mirrors().PutMirror(ctx, user.ID, domain.DefaultMirror()); err != nil {
			return err
		}

		_, err := s.Audit.Append(ctx, domain.ActionUserRegistration, map[string]any{
			"email": user.Email,
			"role":  string(user.Role),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateEmail) {
			log.Error("user registration failed", slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}

// FindByCredentials performs the exact-match credential lookup. It does
// not mutate state and does not audit; the session service audits the
// login event itself.
func (s *UserService) FindByCredentials(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if user.Password != password {
		return domain.User{}, store.ErrNotFound
	}
	return user, nil
}

// GetByID fetches a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// List returns all registered users in insertion order. Guest identities
// never appear here.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
