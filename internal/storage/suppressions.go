package storage

import (
	"database/sql"
	"time"
)

// Suppression mutes findings of one category, optionally narrowed to a
// file and a description substring, until it expires or is revoked.
type Suppression struct {
	ID         int64      `json:"id"`
	Category   string     `json:"category"`
	File       string     `json:"file,omitempty"`
	PatternSub string     `json:"pattern_sub,omitempty"`
	Reason     string     `json:"reason"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

func (db *DB) CreateSuppression(category, file, pattern, reason, createdBy string, expires time.Time) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := db.conn.Exec(`
INSERT INTO suppressions(category, file, pattern_sub, reason, expires_at, created_by, created_at)
VALUES(?,?,?,?,?,?,?)`,
		category, nz(file), nz(pattern), reason, expires.UTC().Format(time.RFC3339Nano), createdBy, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) RevokeSuppression(id int64) error {
	_, err := db.conn.Exec(`UPDATE suppressions SET revoked_at=? WHERE id=? AND revoked_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339Nano), id)
	return err
}

func (db *DB) ListSuppressions(activeOnly bool) ([]Suppression, error) {
	q := `
SELECT id, category, COALESCE(file,''), COALESCE(pattern_sub,''),
       reason, expires_at, created_by, created_at, revoked_at
FROM suppressions`
	args := []any{}
	if activeOnly {
		q += ` WHERE (revoked_at IS NULL) AND (expires_at > ?)`
		args = append(args, time.Now().UTC().Format(time.RFC3339Nano))
	}
	q += ` ORDER BY id DESC`
	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Suppression
	for rows.Next() {
		var (
			s           Suppression
			exp, ca, ra sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Category, &s.File, &s.PatternSub, &s.Reason, &exp, &s.CreatedBy, &ca, &ra); err != nil {
			return nil, err
		}
		if exp.Valid {
			if t, e := time.Parse(time.RFC3339Nano, exp.String); e == nil {
				s.ExpiresAt = t
			}
		}
		if ca.Valid {
			if t, e := time.Parse(time.RFC3339Nano, ca.String); e == nil {
				s.CreatedAt = t
			}
		}
		if ra.Valid {
			if t, e := time.Parse(time.RFC3339Nano, ra.String); e == nil {
				s.RevokedAt = &t
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func nz(s string) any {
	if s == "" {
		return nil
	}
	return s
}
