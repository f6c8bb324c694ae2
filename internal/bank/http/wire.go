package http

import (
	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
)

// Conversions between domain entities and banksdk wire types. Passwords
// never leave this boundary.

func toUserInfo(u domain.User) banksdk.UserInfo {
	return banksdk.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toConsentInfo(c domain.Consent) banksdk.ConsentInfo {
	return banksdk.ConsentInfo{
		FraudDetection:  c.FraudDetection,
		Marketing:       c.Marketing,
		CreditScoring:   c.CreditScoring,
		Personalization: c.Personalization,
	}
}

func toConsentPatch(p banksdk.ConsentPatch) domain.ConsentPatch {
	return domain.ConsentPatch{
		FraudDetection:  p.FraudDetection,
		Marketing:       p.Marketing,
		CreditScoring:   p.CreditScoring,
		Personalization: p.Personalization,
	}
}

func toMirrorInfo(m domain.Mirror) banksdk.MirrorInfo {
	return banksdk.MirrorInfo{
		Income:      m.Income,
		LoanAmount:  m.LoanAmount,
		CreditScore: m.CreditScore,
		Age:         m.Age,
		JobType:     string(m.JobType),
	}
}

// toMirrorPatch validates the optional jobType against the fixed enum.
func toMirrorPatch(p banksdk.MirrorPatch) (domain.MirrorPatch, error) {
	patch := domain.MirrorPatch{
		Income:      p.Income,
		LoanAmount:  p.LoanAmount,
		CreditScore: p.CreditScore,
		Age:         p.Age,
	}
	if p.JobType != nil {
		jt, err := domain.ParseJobType(*p.JobType)
		if err != nil {
			return domain.MirrorPatch{}, err
		}
		patch.JobType = &jt
	}
	return patch, nil
}

func toDecisionInfo(d domain.Decision) banksdk.DecisionInfo {
	return banksdk.DecisionInfo{
		ID:          d.ID,
		UserID:      d.UserID,
		Income:      d.Income,
		LoanAmount:  d.LoanAmount,
		CreditScore: d.CreditScore,
		Age:         d.Age,
		JobType:     string(d.JobType),
		Approved:    d.Approved,
		Timestamp:   d.Timestamp,
	}
}

func toAuditLogInfo(e domain.AuditLog) banksdk.AuditLogInfo {
	return banksdk.AuditLogInfo{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		UserID:    e.UserID,
		UserEmail: e.UserEmail,
		UserRole:  string(e.UserRole),
		Action:    e.Action,
		Details:   e.Details,
	}
}

func toGroupRate(g service.GroupRate) banksdk.GroupRate {
	return banksdk.GroupRate{
		JobType:  string(g.JobType),
		Rate:     g.Rate,
		Total:    g.Total,
		Approved: g.Approved,
	}
}

func toFairnessMetrics(m service.Metrics) banksdk.FairnessMetrics {
	groups := make([]banksdk.GroupRate, 0, len(m.Groups))
	for _, g := range m.Groups {
		groups = append(groups, toGroupRate(g))
	}
	return banksdk.FairnessMetrics{
		DemographicParity: m.DemographicParity,
		Privileged:        toGroupRate(m.Privileged),
		Unprivileged:      toGroupRate(m.Unprivileged),
		Groups:            groups,
	}
}
