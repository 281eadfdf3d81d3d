package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - registers the HTTP routes served next to the websocket gateway.
func NewRouter(handlers *Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/ping", handlers.Ping).Methods(http.MethodGet)
	router.HandleFunc("/history", handlers.GetHistory).Methods(http.MethodGet)
	router.HandleFunc("/history", handlers.PostHistory).Methods(http.MethodPost)
	router.HandleFunc("/recover-session", handlers.RecoverSession).Methods(http.MethodGet)
	router.HandleFunc("/leaderboard", handlers.Leaderboard).Methods(http.MethodGet)
	router.HandleFunc("/rooms", handlers.CreateRoom).Methods(http.MethodPost)

	return router
}

// Start - serves handler on port until ctx is done. In-flight requests finish before it returns.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	<-stopped

	return nil
}
