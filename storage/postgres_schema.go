package storage

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
)

// CreateSchema creates the tables used by the Postgres backend.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(postgresSchema); err != nil {
		return pkgerrors.Wrap(err, "failed to create schema")
	}
	return nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    device_id TEXT NOT NULL,
    team_id INTEGER NOT NULL REFERENCES teams(id),
    score INTEGER NOT NULL CHECK (score BETWEEN 1 AND 10),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (device_id, team_id)
);

CREATE TABLE IF NOT EXISTS predictions (
    id TEXT PRIMARY KEY,
    emp_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    top1 INTEGER NOT NULL,
    top2 INTEGER NOT NULL,
    top3 INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS judges (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    submitted BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS judge_votes (
    id TEXT PRIMARY KEY,
    judge_id TEXT NOT NULL REFERENCES judges(id),
    team_id INTEGER NOT NULL REFERENCES teams(id),
    feasibility INTEGER NOT NULL CHECK (feasibility BETWEEN 1 AND 5),
    technical_approach INTEGER NOT NULL CHECK (technical_approach BETWEEN 1 AND 5),
    innovation INTEGER NOT NULL CHECK (innovation BETWEEN 1 AND 5),
    pitch_presentation INTEGER NOT NULL CHECK (pitch_presentation BETWEEN 1 AND 5),
    comments TEXT NOT NULL DEFAULT '',
    total_score INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (judge_id, team_id)
);

CREATE INDEX IF NOT EXISTS idx_judge_votes_team_id ON judge_votes(team_id);
`

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	return hasSQLState(err, pqUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasSQLState(err, pqForeignKeyViolation)
}

func hasSQLState(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
