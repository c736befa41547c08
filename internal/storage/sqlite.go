package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite" // CGO-free SQLite driver

	"github.com/codewithboateng/pyreview/internal/issue"
)

// DB is the concrete storage backed by SQLite.
type DB struct {
	conn *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite DB at path.
func OpenSQLite(path string) (*DB, error) {
	// Pragmas via DSN keep it portable with the modernc driver.
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	c, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &DB{conn: c}, nil
}

func (db *DB) Close() error { return db.conn.Close() }

// CreateSchema ensures all tables exist.
func (db *DB) CreateSchema() error {
	_, err := db.conn.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id           TEXT PRIMARY KEY,
  started_at   TEXT,          -- RFC3339
  source       TEXT,
  tool_version TEXT,
  min_priority TEXT,
  merged       INTEGER NOT NULL DEFAULT 0,
  run_json     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS issues (
  run_id           TEXT NOT NULL,
  seq              INTEGER NOT NULL,  -- position within the run's report
  file             TEXT,
  category         TEXT,
  priority         TEXT,
  impacted_lines   TEXT,
  potential_impact TEXT,
  description      TEXT,
  PRIMARY KEY (run_id, seq),
  FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_issues_run ON issues(run_id);
CREATE INDEX IF NOT EXISTS idx_issues_category ON issues(category);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'viewer',
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
  token TEXT PRIMARY KEY,
  user_id INTEGER NOT NULL,
  expires_at TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS audit (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts TEXT NOT NULL,
  username TEXT,
  action TEXT NOT NULL,
  resource TEXT,
  meta_json TEXT
);

CREATE TABLE IF NOT EXISTS suppressions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category    TEXT NOT NULL,
  file        TEXT,              -- optional exact match; NULL = any
  pattern_sub TEXT,              -- optional substring over the description
  reason      TEXT NOT NULL,
  expires_at  TEXT NOT NULL,     -- RFC3339Nano
  created_by  TEXT NOT NULL,
  created_at  TEXT NOT NULL,
  revoked_at  TEXT               -- NULL = active
);
`)
	return err
}

// SaveRun upserts a run JSON and (re)writes its issue rows.
func (db *DB) SaveRun(run *issue.Run) error {
	b, err := json.Marshal(run)
	if err != nil {
		return err
	}
	ts := run.StartedAt.UTC().Format(time.RFC3339Nano)

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	merged := 0
	if run.Merged {
		merged = 1
	}
	if _, err := tx.Exec(
		`INSERT INTO runs (id, started_at, source, tool_version, min_priority, merged, run_json)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET started_at=excluded.started_at, source=excluded.source,
           tool_version=excluded.tool_version, min_priority=excluded.min_priority,
           merged=excluded.merged, run_json=excluded.run_json`,
		run.ID, ts, run.Source, run.ToolVersion, run.MinPriority, merged, string(b),
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM issues WHERE run_id = ?`, run.ID); err != nil {
		return err
	}
	if len(run.Issues) > 0 {
		stmt, err := tx.Prepare(`
			INSERT INTO issues
			(run_id, seq, file, category, priority, impacted_lines, potential_impact, description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, fi := range run.Issues {
			if _, err := stmt.Exec(
				run.ID,
				i,
				fi.File,
				fi.Category,
				fi.Priority,
				fi.ImpactedLines,
				fi.PotentialImpact,
				fi.Description,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadRun returns the full run from its stored JSON.
func (db *DB) LoadRun(id string) (issue.Run, error) {
	var s string
	row := db.conn.QueryRow(`SELECT run_json FROM runs WHERE id = ?`, id)
	if err := row.Scan(&s); err != nil {
		return issue.Run{}, err
	}
	var run issue.Run
	if err := json.Unmarshal([]byte(s), &run); err != nil {
		return issue.Run{}, err
	}
	return run, nil
}
