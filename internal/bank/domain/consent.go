package domain

// Consent holds a user's data-processing preferences, one row per user id.
// Rows are created lazily; a lookup for an id with no row resolves to
// DefaultConsent rather than an error.
type Consent struct {
	FraudDetection  bool
	Marketing       bool
	CreditScoring   bool
	Personalization bool
}

// DefaultConsent is the all-false fallback used when no row exists for an
// id. Callers never observe absence, only this value.
func DefaultConsent() Consent {
	return Consent{}
}

// SignupConsent is the consent row provisioned for freshly registered
// users and for guest logins: fraud detection and credit scoring on,
// everything else off.
func SignupConsent() Consent {
	return Consent{FraudDetection: true, CreditScoring: true}
}

// ConsentPatch is a partial consent update. Nil fields keep their prior
// value; set fields overwrite.
type ConsentPatch struct {
	FraudDetection  *bool
	Marketing       *bool
	CreditScoring   *bool
	Personalization *bool
}

// IsZero reports whether the patch carries no fields at all.
func (p ConsentPatch) IsZero() bool {
	return p.FraudDetection == nil && p.Marketing == nil &&
		p.CreditScoring == nil && p.Personalization == nil
}

// Apply merges the patch onto c and returns the result. Fields absent from
// the patch are never dropped.
func (c Consent) Apply(p ConsentPatch) Consent {
	if p.FraudDetection != nil {
		c.FraudDetection = *p.FraudDetection
	}
	if p.Marketing != nil {
		c.Marketing = *p.Marketing
	}
	if p.CreditScoring != nil {
		c.CreditScoring = *p.CreditScoring
	}
	if p.Personalization != nil {
		c.Personalization = *p.Personalization
	}
	return c
}

// Fields returns only the fields present in the patch, keyed the way the
// audit trail records them.
func (p ConsentPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.FraudDetection != nil {
		out["fraudDetection"] = *p.FraudDetection
	}
	if p.Marketing != nil {
		out["marketing"] = *p.Marketing
	}
	if p.CreditScoring != nil {
		out["creditScoring"] = *p.CreditScoring
	}
	if p.Personalization != nil {
		out["personalization"] = *p.Personalization
	}
	return out
}
