package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/xo-backend/internal/config"
	"github.com/rocketscienceinc/xo-backend/internal/recorder"
	"github.com/rocketscienceinc/xo-backend/internal/registry"
	"github.com/rocketscienceinc/xo-backend/internal/repository"
	"github.com/rocketscienceinc/xo-backend/internal/repository/storage"
	"github.com/rocketscienceinc/xo-backend/internal/usecase"
	"github.com/rocketscienceinc/xo-backend/transport/rest"
	"github.com/rocketscienceinc/xo-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err := sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	sessionRepo := repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL)
	historyRepo := repository.NewHistoryRepository(sqliteStorage.Connection)
	leaderboardRepo := repository.NewLeaderboardRepository(sqliteStorage.Connection)

	resultRecorder := recorder.New(logger, historyRepo, leaderboardRepo, sessionRepo, recorder.Options{
		QueueSize:    conf.Recorder.QueueSize,
		Workers:      conf.Recorder.Workers,
		WriteTimeout: conf.Recorder.WriteTimeout,
	})

	gameUseCase := usecase.NewGameManager(logger, registry.New(), resultRecorder, usecase.BoardSizes{
		Min:     conf.Game.MinBoardSize,
		Max:     conf.Game.MaxBoardSize,
		Default: conf.Game.DefaultBoardSize,
	})
	sessionUseCase := usecase.NewSessionUseCase(logger, sessionRepo)
	historyUseCase := usecase.NewHistoryUseCase(logger, historyRepo, leaderboardRepo, usecase.Limits{
		Default: conf.History.DefaultLimit,
		Max:     conf.History.MaxLimit,
	})

	// the recorder is stopped only after both servers returned
	recorderCtx, stopRecorder := context.WithCancel(context.Background())
	defer stopRecorder()

	recorderDone := make(chan error, 1)
	go func() {
		recorderDone <- resultRecorder.Run(recorderCtx)
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)

		router := rest.NewRouter(rest.NewHandlers(logger, historyUseCase, sessionUseCase, gameUseCase))
		if err := rest.Start(groupCtx, conf.HTTPPort, router); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)

		wsServer := websocket.New(logger, gameUseCase)
		if err := wsServer.Start(groupCtx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}

		return nil
	})

	err = group.Wait()

	stopRecorder()
	if recorderErr := <-recorderDone; recorderErr != nil {
		log.Error("recorder stopped with error", "error", recorderErr)
	}

	if err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
