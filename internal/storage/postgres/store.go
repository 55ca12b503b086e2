package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicbase/medrec-be/internal/storage"
)

// Ensure Store satisfies the aggregate storage interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for users, medical records,
// patients, and visits. Each operation runs as a single statement against a
// pool-scoped connection; concurrent requests are isolated by the database's
// own transaction semantics.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to the database and applies migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
		`CREATE TABLE IF NOT EXISTS medical_records (
			id BIGSERIAL PRIMARY KEY,
			patient_id BIGINT NOT NULL REFERENCES users(id),
			created_by BIGINT NOT NULL REFERENCES users(id),
			patient_name TEXT NOT NULL,
			patient_age INT NOT NULL,
			patient_gender TEXT NOT NULL,
			patient_contact TEXT NOT NULL DEFAULT '',
			diagnosis TEXT NOT NULL,
			symptoms TEXT NOT NULL DEFAULT '',
			treatment_plan TEXT NOT NULL DEFAULT '',
			medications TEXT NOT NULL DEFAULT '',
			allergies TEXT NOT NULL DEFAULT '',
			vital_signs TEXT NOT NULL DEFAULT '',
			lab_results TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			is_confidential BOOLEAN NOT NULL DEFAULT FALSE,
			record_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS medical_records_patient_idx ON medical_records (patient_id);`,
		`CREATE TABLE IF NOT EXISTS patients (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			date_of_birth DATE NOT NULL,
			gender TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			emergency_contact TEXT NOT NULL DEFAULT '',
			insurance_info TEXT NOT NULL DEFAULT '',
			medical_history TEXT NOT NULL DEFAULT '',
			created_by BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS visits (
			id BIGSERIAL PRIMARY KEY,
			patient_id BIGINT NOT NULL REFERENCES patients(id),
			visit_date DATE NOT NULL,
			visit_type TEXT NOT NULL DEFAULT '',
			diagnosis TEXT NOT NULL DEFAULT '',
			prescription TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_by BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		);`,
		`CREATE INDEX IF NOT EXISTS visits_patient_idx ON visits (patient_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
