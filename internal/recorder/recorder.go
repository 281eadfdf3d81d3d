package recorder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

const (
	defaultQueueSize    = 256
	defaultWorkers      = 1
	defaultWriteTimeout = 5 * time.Second
)

type historyRepo interface {
	Append(ctx context.Context, entry entity.HistoryEntry) error
}

type leaderboardRepo interface {
	Upsert(ctx context.Context, username string, pointsDelta, winIncrement int) error
}

type sessionRepo interface {
	Save(ctx context.Context, record entity.SessionRecord) error
	Clear(ctx context.Context, username entity.Username) error
}

type Options struct {
	QueueSize    int
	Workers      int
	WriteTimeout time.Duration
}

// job is one outbound write. attrs end up in the log line if the write fails.
type job struct {
	name  string
	attrs []any
	run   func(ctx context.Context) error
}

// Recorder persists match results and session bookkeeping off the event path.
// Failed writes are logged and dropped.
type Recorder struct {
	logger *slog.Logger

	history     historyRepo
	leaderboard leaderboardRepo
	sessions    sessionRepo

	jobs         chan job
	workers      int
	writeTimeout time.Duration
}

func New(logger *slog.Logger, history historyRepo, leaderboard leaderboardRepo, sessions sessionRepo, opts Options) *Recorder {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}

	return &Recorder{
		logger:       logger.With("component", "recorder"),
		history:      history,
		leaderboard:  leaderboard,
		sessions:     sessions,
		jobs:         make(chan job, opts.QueueSize),
		workers:      opts.Workers,
		writeTimeout: opts.WriteTimeout,
	}
}

// Run - processes queued writes until ctx is done, then drains whatever is still queued.
func (that *Recorder) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for i := 0; i < that.workers; i++ {
		group.Go(func() error {
			that.work(groupCtx)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("recorder stopped: %w", err)
	}

	return nil
}

// RecordResult - queues history rows for every participant and the winner's leaderboard points.
func (that *Recorder) RecordResult(result entity.MatchResult) {
	attrs := []any{"room", result.Room, "winner", result.Winner, "loser", result.Loser}

	for _, entry := range result.HistoryEntries() {
		that.enqueue(job{
			name:  "append history",
			attrs: append(slices.Clone(attrs), "username", entry.Username, "result", entry.Result),
			run: func(ctx context.Context) error {
				return that.history.Append(ctx, entry)
			},
		})
	}

	if result.IsDraw() {
		return
	}

	winner := string(result.Winner)
	that.enqueue(job{
		name:  "update leaderboard",
		attrs: attrs,
		run: func(ctx context.Context) error {
			return that.leaderboard.Upsert(ctx, winner, entity.WinPoints, 1)
		},
	})
}

// SaveSession - queues the last known room of a player.
func (that *Recorder) SaveSession(record entity.SessionRecord) {
	that.enqueue(job{
		name:  "save session",
		attrs: []any{"username", record.Username, "room", record.Room},
		run: func(ctx context.Context) error {
			return that.sessions.Save(ctx, record)
		},
	})
}

// ClearSession - queues removal of a player's session.
func (that *Recorder) ClearSession(username entity.Username) {
	that.enqueue(job{
		name:  "clear session",
		attrs: []any{"username", username},
		run: func(ctx context.Context) error {
			return that.sessions.Clear(ctx, username)
		},
	})
}

func (that *Recorder) enqueue(item job) {
	select {
	case that.jobs <- item:
	default:
		that.logger.Error("recorder queue is full, dropping write", append(item.attrs, "job", item.name)...)
	}
}

func (that *Recorder) work(ctx context.Context) {
	for {
		select {
		case item := <-that.jobs:
			that.execute(item)
		case <-ctx.Done():
			that.drain()
			return
		}
	}
}

func (that *Recorder) drain() {
	for {
		select {
		case item := <-that.jobs:
			that.execute(item)
		default:
			return
		}
	}
}

// execute - runs one write on its own deadline so shutdown does not cut it short.
func (that *Recorder) execute(item job) {
	ctx, cancel := context.WithTimeout(context.Background(), that.writeTimeout)
	defer cancel()

	if err := item.run(ctx); err != nil {
		that.logger.Error("failed to "+item.name, append(item.attrs, "error", err)...)
	}
}
