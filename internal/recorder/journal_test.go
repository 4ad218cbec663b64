package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeviz"
	"github.com/SeamusWaldron/cubeviz/internal/storage"
)

func TestJournalRecordsEngineCommits(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.OpenMigrated(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	defer db.Close()

	sf, err := NewStateFile(StatePath(dir))
	require.NoError(t, err)

	j := NewJournal(db, sf, nil)
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	id, err := j.Start(start, 360, "test")
	require.NoError(t, err)
	assert.Equal(t, StateRecording, j.State())

	now := start
	var recordErr error
	eng := cubeviz.NewEngine(
		cubeviz.WithClock(func() time.Time { return now }),
		cubeviz.WithCommitCallback(func(c cubeviz.Commit) {
			if err := j.Record(c); err != nil {
				recordErr = err
			}
		}),
	)

	for _, m := range []cubeviz.Move{cubeviz.R, cubeviz.FPrime} {
		now = now.Add(time.Second)
		require.True(t, eng.Command(m))
		for eng.Busy() {
			eng.Tick(50 * time.Millisecond)
		}
	}
	now = now.Add(time.Second)
	require.True(t, eng.Undo())
	for eng.Busy() {
		eng.Tick(50 * time.Millisecond)
	}
	require.NoError(t, recordErr)
	assert.Equal(t, 3, j.TurnCount())

	require.NoError(t, j.End(now))
	assert.Equal(t, StateEnded, j.State())

	turns, err := storage.NewTurnRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, []string{"R", "F'", "F"}, []string{turns[0].Notation, turns[1].Notation, turns[2].Notation})
	assert.Equal(t, int64(1000), turns[0].TsMs)
	assert.True(t, turns[2].Undo)

	// Recording after the session ended is ignored.
	require.NoError(t, j.Record(cubeviz.Commit{Move: cubeviz.U.WithTime(now)}))
	n, err := storage.NewTurnRepository(db).Count(id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	reloaded, err := NewStateFile(StatePath(dir))
	require.NoError(t, err)
	assert.Equal(t, id, reloaded.LastSessionID())
}

func TestJournalStartTwice(t *testing.T) {
	db, err := storage.OpenMigrated(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer db.Close()

	j := NewJournal(db, nil, nil)
	_, err = j.Start(time.Now(), 360, "")
	require.NoError(t, err)
	_, err = j.Start(time.Now(), 360, "")
	assert.Error(t, err)

	assert.Error(t, NewJournal(db, nil, nil).End(time.Now()))
}
