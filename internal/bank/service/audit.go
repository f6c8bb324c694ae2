package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/pkg/idx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// AuditService appends the immutable, insertion-ordered trail of every
// state-changing action. Entries attribute the acting identity at append
// time; when no session is active they attribute the literal system actor.
type AuditService struct {
	Store store.Store
	Gate  *Gate

	// Actor resolves the current acting identity. Wired to the session
	// service after both are constructed; nil (or a nil result) falls
	// back to the system actor.
	Actor func() *domain.User
}

// Append writes one audit entry. The caller must already hold the write
// gate; every mutating service operation calls this inside its own gated
// section so the entry lands adjacent to the mutation it describes.
func (s *AuditService) Append(ctx context.Context, action string, details map[string]any) (domain.AuditLog, error) {
	actor := domain.SystemActor
	if s.Actor != nil {
		if u := s.Actor(); u != nil {
			actor = *u
		}
	}
	return s.appendAs(ctx, action, actor, details)
}

// AppendAs is like Append but attributes an explicit actor. Used by the
// session service, where the entry must name the identity being logged in
// or out rather than whatever the session held before.
func (s *AuditService) AppendAs(ctx context.Context, action string, actor domain.User, details map[string]any) (domain.AuditLog, error) {
	return s.appendAs(ctx, action, actor, details)
}

func (s *AuditService) appendAs(ctx context.Context, action string, actor domain.User, details map[string]any) (domain.AuditLog, error) {
	entry := domain.AuditLog{
		ID:        idx.New().String(),
		Timestamp: time.Now().UTC(),
		UserID:    actor.ID,
		UserEmail: actor.Email,
		UserRole:  actor.Role,
		Action:    action,
		Details:   details,
	}

	if err := s.Store.AuditLogs().AppendAuditLog(ctx, entry); err != nil {
		slogx.FromContext(ctx).Error("failed to append audit entry",
			slog.String("action", action),
			slog.Any("error", err),
		)
		return domain.AuditLog{}, err
	}
	return entry, nil
}

// Log is the public audit surface (the addLog operation): it takes the
// write gate itself and appends one entry attributed to the current actor.
func (s *AuditService) Log(ctx context.Context, action string, details map[string]any) (domain.AuditLog, error) {
	var entry domain.AuditLog
	err := s.Gate.Do(func() error {
		var err error
		entry, err = s.Append(ctx, action, details)
		return err
	})
	return entry, err
}

// List returns the trail newest-first.
func (s *AuditService) List(ctx context.Context) ([]domain.AuditLog, error) {
	return s.Store.AuditLogs().ListAuditLogs(ctx)
}

// Count returns the number of entries in the trail.
func (s *AuditService) Count(ctx context.Context) (int, error) {
	return s.Store.AuditLogs().CountAuditLogs(ctx)
}
