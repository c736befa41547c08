package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithboateng/pyreview/internal/issue"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "pyreview.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.CreateSchema())
	return db
}

func testRun(id string, started time.Time) *issue.Run {
	return &issue.Run{
		ID:          id,
		StartedAt:   started,
		Source:      "app.py",
		ToolVersion: issue.Version,
		MinPriority: issue.Low,
		Issues: []issue.FileIssue{
			{File: "app.py", Issue: issue.Issue{
				Category: "Error Handling", Priority: issue.High,
				ImpactedLines: "12", PotentialImpact: "Swallows every error",
				Description: "Bare 'except:' clause",
			}},
			{File: "app.py", Issue: issue.Issue{
				Category: "Correctness", Priority: issue.Medium,
				ImpactedLines: "4-6", PotentialImpact: "KeyError at runtime",
				Description: "Unchecked dict access",
			}},
			{File: "app.py", Issue: issue.Issue{
				Category: "Code Cleanliness", Priority: issue.Low,
				ImpactedLines: "1", PotentialImpact: "Noise",
				Description: "print() call",
			}},
		},
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.CreateSchema())
}

func TestSaveRun_LoadRun(t *testing.T) {
	db := newTestDB(t)
	run := testRun("run-1", time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, db.SaveRun(run))

	got, err := db.LoadRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, "app.py", got.Source)
	assert.Equal(t, issue.Version, got.ToolVersion)
	require.Len(t, got.Issues, 3)
	assert.Equal(t, "Bare 'except:' clause", got.Issues[0].Description)
	assert.True(t, got.StartedAt.Equal(run.StartedAt))
}

func TestSaveRun_UpsertReplacesIssues(t *testing.T) {
	db := newTestDB(t)
	run := testRun("run-1", time.Now().UTC())
	require.NoError(t, db.SaveRun(run))

	run.Issues = run.Issues[:1]
	run.Merged = true
	require.NoError(t, db.SaveRun(run))

	got, err := db.LoadRun("run-1")
	require.NoError(t, err)
	assert.True(t, got.Merged)
	assert.Len(t, got.Issues, 1)

	rows, err := db.ListIssues("run-1", issue.Low)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLoadRun_Missing(t *testing.T) {
	db := newTestDB(t)
	_, err := db.LoadRun("nope")
	assert.Error(t, err)
}

func TestListRuns(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SaveRun(testRun("run-old", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, db.SaveRun(testRun("run-new", time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))))

	rows, err := db.ListRuns(10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// newest first
	assert.Equal(t, "run-new", rows[0].ID)
	assert.Equal(t, "run-old", rows[1].ID)
	assert.Equal(t, 3, rows[0].Issues)

	page, err := db.ListRuns(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "run-old", page[0].ID)
}

func TestListIssues_MinPriority(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SaveRun(testRun("run-1", time.Now().UTC())))

	all, err := db.ListIssues("run-1", issue.Low)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	med, err := db.ListIssues("run-1", issue.Medium)
	require.NoError(t, err)
	require.Len(t, med, 2)
	assert.Equal(t, issue.High, med[0].Priority)
	assert.Equal(t, issue.Medium, med[1].Priority)

	high, err := db.ListIssues("run-1", issue.High)
	require.NoError(t, err)
	require.Len(t, high, 1)
	assert.Equal(t, "Bare 'except:' clause", high[0].Description)
}

func TestHasRun(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SaveRun(testRun("run-1", time.Now().UTC())))

	ok, err := db.HasRun("run-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.HasRun("run-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUsersAndSessions(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateUser("alice", "hash-value", "admin")
	require.NoError(t, err)
	assert.Positive(t, id)

	// unique usernames
	_, err = db.CreateUser("alice", "other", "viewer")
	assert.Error(t, err)

	u, hash, err := db.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, "hash-value", hash)
	assert.False(t, u.CreatedAt.IsZero())

	_, _, err = db.GetUserByUsername("nobody")
	assert.Error(t, err)

	require.NoError(t, db.CreateSession(id, "tok-1", time.Now().Add(time.Hour)))
	su, err := db.GetSession("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", su.Username)

	// expired sessions do not resolve
	require.NoError(t, db.CreateSession(id, "tok-stale", time.Now().Add(-time.Minute)))
	_, err = db.GetSession("tok-stale")
	assert.Error(t, err)

	require.NoError(t, db.DeleteSession("tok-1"))
	_, err = db.GetSession("tok-1")
	assert.Error(t, err)
}

func TestLogAudit(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.LogAudit("alice", "login", "", map[string]any{"remote": "127.0.0.1"}))
	require.NoError(t, db.LogAudit("", "analyze", "run-1", nil))
}

func TestSuppressions(t *testing.T) {
	db := newTestDB(t)

	future := time.Now().Add(24 * time.Hour)
	id, err := db.CreateSuppression("Style/Maintainability", "legacy.py", "magic", "grandfathered module", "alice", future)
	require.NoError(t, err)
	assert.Positive(t, id)

	expiredID, err := db.CreateSuppression("Security", "", "", "was a false positive", "bob", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	active, err := db.ListSuppressions(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, "legacy.py", active[0].File)
	assert.Equal(t, "magic", active[0].PatternSub)
	assert.Nil(t, active[0].RevokedAt)

	all, err := db.ListSuppressions(false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	assert.Equal(t, expiredID, all[0].ID)

	require.NoError(t, db.RevokeSuppression(id))
	active, err = db.ListSuppressions(true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err = db.ListSuppressions(false)
	require.NoError(t, err)
	for _, s := range all {
		if s.ID == id {
			require.NotNil(t, s.RevokedAt)
		}
	}
}
