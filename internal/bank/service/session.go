package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/pkg/idx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// ErrInvalidCredentials reports a login lookup miss. Failed logins are not
// audited; only successful identity changes are.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SessionService tracks the single active identity for the process: a
// two-state machine, anonymous or authenticated. Logging in while already
// authenticated silently replaces the identity without a logout entry for
// the one replaced.
type SessionService struct {
	Store store.Store
	Users *UserService
	Audit *AuditService
	Gate  *Gate

	mu      sync.RWMutex
	current *domain.User
}

// Current returns the active identity, or nil when anonymous.
func (s *SessionService) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Login authenticates with an exact-match credential check. On success the
// session transitions to the matched identity and a login entry is
// audited. On a miss the session is untouched and nothing is audited.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	var user domain.User
	err := s.Gate.Do(func() error {
		var err error
		user, err = s.Users.FindByCredentials(ctx, email, password)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}

		s.setCurrent(&user)
		_, err = s.Audit.AppendAs(ctx, domain.ActionUserLogin, user, map[string]any{
			"email": user.Email,
			"role":  string(user.Role),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Info("login rejected", slog.String("email", email))
		} else {
			log.Error("login failed", slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, nil
}

// LoginAsGuest always succeeds: it mints a fresh guest identity with a new
// id, provisions its consent and mirror rows, and authenticates it. Guest
// users are never written to the Users collection, but their consent and
// mirror rows stay behind after logout; each guest login adds a new pair
// rather than reusing an old one.
func (s *SessionService) LoginAsGuest(ctx context.Context) (domain.User, error) {
	guest := domain.User{
		ID:        "guest-" + idx.New().String(),
		Email:     "Guest User",
		Role:      domain.RoleGuest,
		CreatedAt: time.Now().UTC(),
	}

	err := s.Gate.Do(func() error {
		if err := s.Store.Consents().PutConsent(ctx, guest.ID, domain.SignupConsent()); err != nil {
			return err
		}
		if err := s.Store.Mirrors().PutMirror(ctx, guest.ID, domain.GuestMirror()); err != nil {
			return err
		}

		s.setCurrent(&guest)
		_, err := s.Audit.AppendAs(ctx, domain.ActionGuestLogin, guest, nil)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("guest session started", slog.String("user_id", guest.ID))
	return guest, nil
}

// Logout ends the active session. A no-op when already anonymous;
// otherwise the logout entry is attributed to the identity about to be
// cleared.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.Gate.Do(func() error {
		user := s.Current()
		if user == nil {
			return nil
		}

		if _, err := s.Audit.AppendAs(ctx, domain.ActionUserLogout, *user, nil); err != nil {
			return err
		}
		s.setCurrent(nil)
		return nil
	})
}

// Register creates an account without logging it in. Session state is
// never touched, even on success.
func (s *SessionService) Register(ctx context.Context, email, password string, role domain.Role) (domain.User, error) {
	return s.Users.Register(ctx, email, password, role)
}

func (s *SessionService) setCurrent(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
}
