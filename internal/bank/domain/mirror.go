package domain

// Mirror is the stored "AI mirror" profile snapshot: what the system
// currently believes about a user's financial attributes. Same lazy-row
// discipline as Consent, with a zeroed/unemployed default.
type Mirror struct {
	Income      float64
	LoanAmount  float64
	CreditScore int
	Age         int
	JobType     JobType
}

// DefaultMirror is the fallback for ids with no row: zeroed figures and an
// unemployed job type.
func DefaultMirror() Mirror {
	return Mirror{JobType: JobUnemployed}
}

// GuestMirror is the profile provisioned on guest login.
func GuestMirror() Mirror {
	return Mirror{Income: 50000, LoanAmount: 10000, CreditScore: 650, Age: 28, JobType: JobFreelance}
}

// MirrorPatch is a partial mirror update. Nil fields keep their prior
// value; set fields overwrite.
type MirrorPatch struct {
	Income      *float64
	LoanAmount  *float64
	CreditScore *int
	Age         *int
	JobType     *JobType
}

// IsZero reports whether the patch carries no fields at all.
func (p MirrorPatch) IsZero() bool {
	return p.Income == nil && p.LoanAmount == nil && p.CreditScore == nil &&
		p.Age == nil && p.JobType == nil
}

// Apply merges the patch onto m and returns the result.
func (m Mirror) Apply(p MirrorPatch) Mirror {
	if p.Income != nil {
		m.Income = *p.Income
	}
	if p.LoanAmount != nil {
		m.LoanAmount = *p.LoanAmount
	}
	if p.CreditScore != nil {
		m.CreditScore = *p.CreditScore
	}
	if p.Age != nil {
		m.Age = *p.Age
	}
	if p.JobType != nil {
		m.JobType = *p.JobType
	}
	return m
}

// Fields returns only the fields present in the patch, keyed the way the
// audit trail records them.
func (p MirrorPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.Income != nil {
		out["income"] = *p.Income
	}
	if p.LoanAmount != nil {
		out["loanAmount"] = *p.LoanAmount
	}
	if p.CreditScore != nil {
		out["creditScore"] = *p.CreditScore
	}
	if p.Age != nil {
		out["age"] = *p.Age
	}
	if p.JobType != nil {
		out["jobType"] = string(*p.JobType)
	}
	return out
}
