package domain

import "time"

// Decision is a recorded loan decision. Immutable once created; the
// collection is append-only and held newest-first for display. Analytics
// treat it as an unordered set.
type Decision struct {
	ID     string
	UserID string // reference by id only; the user is not required to exist

	Income      float64
	LoanAmount  float64
	CreditScore int
	Age         int
	JobType     JobType

	Approved  bool
	Timestamp time.Time
}

// DecisionInput is a decision before the store assigns its id and
// timestamp.
type DecisionInput struct {
	UserID      string
	Income      float64
	LoanAmount  float64
	CreditScore int
	Age         int
	JobType     JobType
	Approved    bool
}
