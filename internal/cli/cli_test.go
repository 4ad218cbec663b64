package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeviz"
	"github.com/SeamusWaldron/cubeviz/internal/recorder"
	"github.com/SeamusWaldron/cubeviz/internal/storage"
)

// run executes the root command with a fresh config and database under dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "cubeviz.db"),
	}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

// seedSession journals R, U and an undo of U into a new session.
func seedSession(t *testing.T, dir string) string {
	t.Helper()
	db, err := storage.OpenMigrated(filepath.Join(dir, "cubeviz.db"))
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	j := recorder.NewJournal(db, nil, nil)
	id, err := j.Start(start, 360, version)
	require.NoError(t, err)

	require.NoError(t, j.Record(cubeviz.Commit{Move: cubeviz.R.WithTime(start.Add(time.Second))}))
	require.NoError(t, j.Record(cubeviz.Commit{Move: cubeviz.U.WithTime(start.Add(2 * time.Second))}))
	require.NoError(t, j.Record(cubeviz.Commit{Move: cubeviz.UPrime.WithTime(start.Add(3 * time.Second)), Undo: true}))
	require.NoError(t, j.End(start.Add(4*time.Second)))
	return id
}

func TestApply(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "apply", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: R U R' U'")
	assert.Contains(t, out, "Solved: no")

	out, err = run(t, dir, "apply", "R", "R'")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved: yes")
	assert.Contains(t, out, "W W W")
}

func TestApplyRejectsBadNotation(t *testing.T) {
	_, err := run(t, t.TempDir(), "apply", "R2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cubeviz.ErrInvalidNotation))
}

func TestHistoryEmpty(t *testing.T) {
	out, err := run(t, t.TempDir(), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded yet")
}

func TestHistoryListAndShow(t *testing.T) {
	dir := t.TempDir()
	id := seedSession(t, dir)

	out, err := run(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "4.00s")

	out, err = run(t, dir, "history", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Turns: 3")
	assert.Contains(t, out, "U' (undo)")
	assert.Contains(t, out, "Sequence: R U U'")

	t.Cleanup(func() { historyLast = false })
	out, err = run(t, dir, "history", "show", "--last")
	require.NoError(t, err)
	assert.Contains(t, out, "Session: "+id)

	_, err = run(t, dir, "history", "show", "missing")
	assert.Error(t, err)
}

func TestExportTurns(t *testing.T) {
	dir := t.TempDir()
	id := seedSession(t, dir)
	t.Cleanup(func() {
		exportSessionID, exportFormat, exportOutput = "", "txt", ""
	})

	out, err := run(t, dir, "export", "turns", "--id", id, "--format", "json")
	require.NoError(t, err)

	var turns []turnJSON
	require.NoError(t, json.Unmarshal([]byte(out), &turns))
	require.Len(t, turns, 3)
	assert.Equal(t, "R", turns[0].Notation)
	assert.Equal(t, int64(1000), turns[0].TsMs)
	assert.True(t, turns[2].Undo)

	file := filepath.Join(dir, "out", "turns.txt")
	_, err = run(t, dir, "export", "turns", "--id", id, "--format", "txt", "-o", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "R U U'\n", string(data))
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	_, err = run(t, dir, "config", "init")
	assert.Error(t, err, "init should not overwrite without --force")

	out, err := run(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "anim_speed: 360")
	assert.Contains(t, out, "fps: 60")
}

func TestStatus(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total sessions: 0")
	assert.Contains(t, out, "No sessions played yet")

	id := seedSession(t, dir)
	out, err = run(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total sessions: 1")
	assert.Contains(t, out, "Last session: "+id)
}

// seedBadSession stores a session whose start time cannot be parsed.
func seedBadSession(t *testing.T, dir string) {
	t.Helper()
	db, err := storage.OpenMigrated(filepath.Join(dir, "cubeviz.db"))
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`INSERT INTO sessions (session_id, started_at, anim_speed) VALUES ('bad', 'yesterday', 360)`)
	require.NoError(t, err)
}

func TestStatusReportsQueryErrors(t *testing.T) {
	dir := t.TempDir()
	seedBadSession(t, dir)

	out, err := run(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total sessions: 1")
	assert.Contains(t, out, "Database error:")
	assert.Contains(t, out, "failed to parse session time")
	assert.NotContains(t, out, "Last session:")
}

func TestHistoryReportsQueryErrors(t *testing.T) {
	dir := t.TempDir()
	seedBadSession(t, dir)

	_, err := run(t, dir, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse session time")
}
