package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
)

type consentsRepo struct {
	db *sql.DB
}

func (r *consentsRepo) GetConsent(ctx context.Context, userID string) (domain.Consent, error) {
	var c domain.Consent
	err := r.db.QueryRowContext(ctx,
		`SELECT fraud_detection, marketing, credit_scoring, personalization
		 FROM consents WHERE user_id = ?`, userID,
	).Scan(&c.FraudDetection, &c.Marketing, &c.CreditScoring, &c.Personalization)
	if err != nil {
		return domain.Consent{}, mapNotFound(err)
	}
	return c, nil
}

func (r *consentsRepo) PutConsent(ctx context.Context, userID string, c domain.Consent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO consents (user_id, fraud_detection, marketing, credit_scoring, personalization)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   fraud_detection = excluded.fraud_detection,
		   marketing       = excluded.marketing,
		   credit_scoring  = excluded.credit_scoring,
		   personalization = excluded.personalization`,
		userID, c.FraudDetection, c.Marketing, c.CreditScoring, c.Personalization,
	)
	return err
}

type mirrorsRepo struct {
	db *sql.DB
}

func (r *mirrorsRepo) GetMirror(ctx context.Context, userID string) (domain.Mirror, error) {
	var m domain.Mirror
	var jobType string
	err := r.db.QueryRowContext(ctx,
		`SELECT income, loan_amount, credit_score, age, job_type
		 FROM mirrors WHERE user_id = ?`, userID,
	).Scan(&m.Income, &m.LoanAmount, &m.CreditScore, &m.Age, &jobType)
	if err != nil {
		return domain.Mirror{}, mapNotFound(err)
	}
	m.JobType = domain.JobType(jobType)
	return m, nil
}

func (r *mirrorsRepo) PutMirror(ctx context.Context, userID string, m domain.Mirror) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mirrors (user_id, income, loan_amount, credit_score, age, job_type)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   income       = excluded.income,
		   loan_amount  = excluded.loan_amount,
		   credit_score = excluded.credit_score,
		   age          = excluded.age,
		   job_type     = excluded.job_type`,
		userID, m.Income, m.LoanAmount, m.CreditScore, m.Age, string(m.JobType),
	)
	return err
}
