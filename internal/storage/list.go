package storage

import (
	"database/sql"
	"time"

	"github.com/codewithboateng/pyreview/internal/issue"
)

// RunRow is a lightweight listing row for /runs.
type RunRow struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	Source      string    `json:"source,omitempty"`
	ToolVersion string    `json:"tool_version,omitempty"`
	Issues      int       `json:"issues"`
}

// ListRuns returns a lightweight list of runs with counts.
func (db *DB) ListRuns(limit, offset int) ([]RunRow, error) {
	const q = `
		SELECT r.id, r.started_at, r.source, r.tool_version,
		       (SELECT COUNT(1) FROM issues i WHERE i.run_id = r.id) AS issues
		  FROM runs r
		 ORDER BY r.started_at DESC, r.id DESC
		 LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var rr RunRow
		var startedAtStr string
		if err := rows.Scan(&rr.ID, &startedAtStr, &rr.Source, &rr.ToolVersion, &rr.Issues); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, startedAtStr); err == nil {
			rr.StartedAt = t
		} else if t2, err2 := time.Parse(time.RFC3339, startedAtStr); err2 == nil {
			rr.StartedAt = t2
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// ListIssues returns a run's issues at or above a minimum priority, in
// the order the report produced them.
func (db *DB) ListIssues(runID, minPriority string) ([]issue.FileIssue, error) {
	const q = `
		SELECT file, category, priority, impacted_lines, potential_impact, description
		  FROM issues
		 WHERE run_id = ?
		   AND (CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END)
		       >= (CASE ? WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END)
		 ORDER BY seq`
	rows, err := db.conn.Query(q, runID, minPriority)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []issue.FileIssue
	for rows.Next() {
		var fi issue.FileIssue
		if err := rows.Scan(&fi.File, &fi.Category, &fi.Priority, &fi.ImpactedLines, &fi.PotentialImpact, &fi.Description); err != nil {
			return nil, err
		}
		out = append(out, fi)
	}
	return out, rows.Err()
}

// HasRun reports whether a run with the given id exists.
func (db *DB) HasRun(id string) (bool, error) {
	const q = `SELECT 1 FROM runs WHERE id = ? LIMIT 1`
	var one int
	err := db.conn.QueryRow(q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}
