package service

import (
	"context"
	"sort"
	"sync"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
)

// GroupRate is the approval rate for one job-type cohort. Groups with no
// decisions are still reported, with a rate of 0.
type GroupRate struct {
	JobType  domain.JobType
	Rate     float64
	Total    int
	Approved int
}

// Metrics is the fairness snapshot derived from the decision set.
// DemographicParity is nil when the highest approval rate is 0 (the ratio
// is undefined, not zero).
type Metrics struct {
	DemographicParity *float64
	Privileged        GroupRate
	Unprivileged      GroupRate

	// Groups holds all cohorts sorted by descending rate, ties broken by
	// job-type declaration order.
	Groups []GroupRate
}

// ComputeMetrics derives fairness statistics from a decision set. Returns
// nil for an empty set, or when fewer than two cohorts exist (impossible
// with the fixed enum, but checked generically). Pure: never mutates or
// audits anything.
func ComputeMetrics(decisions []domain.Decision) *Metrics {
	if len(decisions) == 0 {
		return nil
	}

	counts := make(map[domain.JobType]*GroupRate, len(domain.JobTypes()))
	groups := make([]GroupRate, 0, len(domain.JobTypes()))
	for _, jt := range domain.JobTypes() {
		counts[jt] = &GroupRate{JobType: jt}
	}

	for _, d := range decisions {
		g, ok := counts[d.JobType]
		if !ok {
			continue
		}
		g.Total++
		if d.Approved {
			g.Approved++
		}
	}

	// Build in declaration order so the stable sort breaks rate ties the
	// same way every time.
	for _, jt := range domain.JobTypes() {
		g := *counts[jt]
		if g.Total > 0 {
			g.Rate = float64(g.Approved) / float64(g.Total)
		}
		groups = append(groups, g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Rate > groups[j].Rate
	})

	if len(groups) < 2 {
		return nil
	}

	m := &Metrics{
		Privileged:   groups[0],
		Unprivileged: groups[len(groups)-1],
		Groups:       groups,
	}
	if m.Privileged.Rate > 0 {
		parity := m.Unprivileged.Rate / m.Privileged.Rate
		m.DemographicParity = &parity
	}
	return m
}

// FairnessService recomputes metrics from the live decision set on every
// read; nothing is cached. The scan counter exists purely as an explicit,
// audited "run scan" action for consumers that memoize metrics; it never
// influences the metrics themselves.
type FairnessService struct {
	Store store.Store
	Audit *AuditService
	Gate  *Gate

	mu    sync.Mutex
	scans int
}

// Metrics derives fairness statistics from the current decision
// collection. Returns nil when there are no decisions.
func (s *FairnessService) Metrics(ctx context.Context) (*Metrics, error) {
	decisions, err := s.Store.Decisions().ListDecisions(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeMetrics(decisions), nil
}

// RunScan increments the monotonic scan counter and audits the scan. It
// never touches the decision collection.
func (s *FairnessService) RunScan(ctx context.Context) (int, error) {
	var count int
	err := s.Gate.Do(func() error {
		if _, err := s.Audit.Append(ctx, domain.ActionBiasScan, nil); err != nil {
			return err
		}
		s.mu.Lock()
		s.scans++
		count = s.scans
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ScanCount returns how many scans have run in this process.
func (s *FairnessService) ScanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scans
}
