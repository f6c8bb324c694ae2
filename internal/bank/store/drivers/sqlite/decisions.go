package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
)

type decisionsRepo struct {
	db *sql.DB
}

func (r *decisionsRepo) CreateDecision(ctx context.Context, d domain.Decision) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decisions (id, user_id, income, loan_amount, credit_score, age, job_type, approved, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.Income, d.LoanAmount, d.CreditScore, d.Age,
		string(d.JobType), d.Approved, d.Timestamp,
	)
	return err
}

// ListDecisions returns decisions newest-first. Ids are monotonic ULIDs,
// so descending id order matches reverse insertion order.
func (r *decisionsRepo) ListDecisions(ctx context.Context) ([]domain.Decision, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, income, loan_amount, credit_score, age, job_type, approved, created_at
		 FROM decisions ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Decision
	for rows.Next() {
		var d domain.Decision
		var jobType string
		if err := rows.Scan(&d.ID, &d.UserID, &d.Income, &d.LoanAmount,
			&d.CreditScore, &d.Age, &jobType, &d.Approved, &d.Timestamp); err != nil {
			return nil, err
		}
		d.JobType = domain.JobType(jobType)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *decisionsRepo) CountDecisions(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM decisions`).Scan(&n)
	return n, err
}

type auditLogsRepo struct {
	db *sql.DB
}

func (r *auditLogsRepo) AppendAuditLog(ctx context.Context, e domain.AuditLog) error {
	details, err := marshalDetails(e.Details)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, created_at, user_id, user_email, user_role, action, details)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Timestamp, e.UserID, e.UserEmail, string(e.UserRole), e.Action, details,
	)
	return err
}

func (r *auditLogsRepo) ListAuditLogs(ctx context.Context) ([]domain.AuditLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, user_id, user_email, user_role, action, details
		 FROM audit_logs ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditLog
	for rows.Next() {
		var e domain.AuditLog
		var role string
		var details sql.NullString
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.UserID, &e.UserEmail,
			&role, &e.Action, &details); err != nil {
			return nil, err
		}
		e.UserRole = domain.Role(role)
		if e.Details, err = unmarshalDetails(details); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *auditLogsRepo) CountAuditLogs(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&n)
	return n, err
}
