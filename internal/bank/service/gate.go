package service

import "sync"

// Gate serializes every mutating operation across the record store. A
// mutation and the audit entry describing it run as one critical section,
// so the audit trail can never interleave out of order with the changes it
// records, even under concurrent HTTP requests.
//
// One Gate is shared by all services over the same store.
type Gate struct {
	mu sync.Mutex
}

// Do runs fn while holding the gate. fn must not call back into another
// gated operation.
func (g *Gate) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
