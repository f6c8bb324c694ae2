package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/aussiebroadwan/seeka/internal/bank/store"

	_ "modernc.org/sqlite"
)

// Store is the sqlite driver. The default DSN is ":memory:", which keeps
// the no-persistence contract of the record store while letting
// deployments opt into a database file.
type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection; pin the pool to one so
	// every repository sees the same collections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Users() store.Users         { return &usersRepo{db: s.db} }
func (s *Store) Consents() store.Consents   { return &consentsRepo{db: s.db} }
func (s *Store) Mirrors() store.Mirrors     { return &mirrorsRepo{db: s.db} }
func (s *Store) Decisions() store.Decisions { return &decisionsRepo{db: s.db} }
func (s *Store) AuditLogs() store.AuditLogs { return &auditLogsRepo{db: s.db} }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func marshalDetails(details map[string]any) (sql.NullString, error) {
	if details == nil {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func unmarshalDetails(ns sql.NullString) (map[string]any, error) {
	if !ns.Valid {
		return nil, nil
	}
	var details map[string]any
	if err := json.Unmarshal([]byte(ns.String), &details); err != nil {
		return nil, err
	}
	return details, nil
}
