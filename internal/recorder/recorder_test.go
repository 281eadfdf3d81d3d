package recorder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

var errStoreDown = errors.New("store down")

type fakeStore struct {
	mu sync.Mutex

	history     []entity.HistoryEntry
	leaderboard map[string][2]int
	sessions    map[entity.Username]entity.SessionRecord

	failHistory bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		leaderboard: make(map[string][2]int),
		sessions:    make(map[entity.Username]entity.SessionRecord),
	}
}

func (that *fakeStore) Append(_ context.Context, entry entity.HistoryEntry) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.failHistory {
		return errStoreDown
	}

	that.history = append(that.history, entry)

	return nil
}

func (that *fakeStore) Upsert(_ context.Context, username string, pointsDelta, winIncrement int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	current := that.leaderboard[username]
	that.leaderboard[username] = [2]int{current[0] + pointsDelta, current[1] + winIncrement}

	return nil
}

func (that *fakeStore) Save(_ context.Context, record entity.SessionRecord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[record.Username] = record

	return nil
}

func (that *fakeStore) Clear(_ context.Context, username entity.Username) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, username)

	return nil
}

func (that *fakeStore) snapshot() ([]entity.HistoryEntry, map[string][2]int, map[entity.Username]entity.SessionRecord) {
	that.mu.Lock()
	defer that.mu.Unlock()

	leaderboard := make(map[string][2]int, len(that.leaderboard))
	for k, v := range that.leaderboard {
		leaderboard[k] = v
	}

	sessions := make(map[entity.Username]entity.SessionRecord, len(that.sessions))
	for k, v := range that.sessions {
		sessions[k] = v
	}

	return append([]entity.HistoryEntry(nil), that.history...), leaderboard, sessions
}

func newTestRecorder(store *fakeStore, opts Options) *Recorder {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, store, store, store, opts)
}

func runRecorder(t *testing.T, rec *Recorder) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- rec.Run(ctx)
	}()

	return func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestRecorder_RecordResult(t *testing.T) {
	t.Run("Win writes two history rows and winner points", func(t *testing.T) {
		store := newFakeStore()
		rec := newTestRecorder(store, Options{Workers: 2})
		stop := runRecorder(t, rec)

		// When: a win is recorded
		rec.RecordResult(entity.MatchResult{
			Room: "r", Mode: entity.ModeMultiplayer, BoardSize: 3,
			Winner: "alice", Loser: "bob", Players: []entity.Username{"alice", "bob"}, At: time.Now(),
		})

		// Then: the writes land in the store
		require.Eventually(t, func() bool {
			history, leaderboard, _ := store.snapshot()
			return len(history) == 2 && leaderboard["alice"] == [2]int{10, 1}
		}, time.Second, 10*time.Millisecond)

		stop()

		_, leaderboard, _ := store.snapshot()
		assert.NotContains(t, leaderboard, "bob")
	})

	t.Run("Draw writes one history row and no points", func(t *testing.T) {
		store := newFakeStore()
		rec := newTestRecorder(store, Options{})

		// Given: the recorder is not running yet, so writes wait in the queue
		rec.RecordResult(entity.MatchResult{
			Room: "r", Mode: entity.ModeMultiplayer, BoardSize: 3, Players: []entity.Username{"alice", "bob"}, At: time.Now(),
		})

		// When: it runs and is stopped
		stop := runRecorder(t, rec)
		stop()

		// Then: the queued write was drained
		history, leaderboard, _ := store.snapshot()
		require.Len(t, history, 1)
		assert.Equal(t, entity.ResultDraw, history[0].Result)
		assert.Empty(t, leaderboard)
	})

	t.Run("Failing history store does not block leaderboard writes", func(t *testing.T) {
		store := newFakeStore()
		store.failHistory = true
		rec := newTestRecorder(store, Options{})

		rec.RecordResult(entity.MatchResult{Winner: "alice", Loser: "bob", Players: []entity.Username{"alice", "bob"}})

		stop := runRecorder(t, rec)
		stop()

		history, leaderboard, _ := store.snapshot()
		assert.Empty(t, history)
		assert.Equal(t, [2]int{10, 1}, leaderboard["alice"])
	})
}

func TestRecorder_Sessions(t *testing.T) {
	store := newFakeStore()
	rec := newTestRecorder(store, Options{})

	rec.SaveSession(entity.SessionRecord{Username: "alice", Room: "1"})
	rec.SaveSession(entity.SessionRecord{Username: "bob", Room: "1"})
	rec.ClearSession("bob")

	stop := runRecorder(t, rec)
	stop()

	_, _, sessions := store.snapshot()
	require.Len(t, sessions, 1)
	assert.Equal(t, entity.RoomCode("1"), sessions["alice"].Room)
}

func TestRecorder_DropsWhenQueueIsFull(t *testing.T) {
	store := newFakeStore()
	rec := newTestRecorder(store, Options{QueueSize: 1})

	// Given: nothing drains the queue
	rec.SaveSession(entity.SessionRecord{Username: "alice"})

	// When: a second write arrives
	rec.SaveSession(entity.SessionRecord{Username: "bob"})

	// Then: it is dropped instead of blocking the caller
	assert.Len(t, rec.jobs, 1)
}
