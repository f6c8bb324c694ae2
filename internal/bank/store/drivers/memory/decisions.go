package memory

import (
	"context"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
)

type decisionsRepo struct {
	s *Store
}

func (r *decisionsRepo) CreateDecision(ctx context.Context, d domain.Decision) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Prepend so the newest decision is always first.
	r.s.decisions = append([]domain.Decision{d}, r.s.decisions...)
	return nil
}

func (r *decisionsRepo) ListDecisions(ctx context.Context) ([]domain.Decision, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Decision, len(r.s.decisions))
	copy(out, r.s.decisions)
	return out, nil
}

func (r *decisionsRepo) CountDecisions(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.decisions), nil
}

type auditLogsRepo struct {
	s *Store
}

func (r *auditLogsRepo) AppendAuditLog(ctx context.Context, e domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.Details = cloneDetails(e.Details)
	r.s.logs = append([]domain.AuditLog{e}, r.s.logs...)
	return nil
}

func (r *auditLogsRepo) ListAuditLogs(ctx context.Context) ([]domain.AuditLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.AuditLog, len(r.s.logs))
	for i, e := range r.s.logs {
		e.Details = cloneDetails(e.Details)
		out[i] = e
	}
	return out, nil
}

func (r *auditLogsRepo) CountAuditLogs(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.logs), nil
}
