package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
	"github.com/rocketscienceinc/xo-backend/internal/registry"
	"github.com/rocketscienceinc/xo-backend/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/xo-backend/mocks/usecase"
)

var errStorageDown = errors.New("storage down")

type testDeps struct {
	router      *mux.Router
	history     *mockedUseCase.MockhistoryRepoDep
	leaderboard *mockedUseCase.MockleaderboardRepoDep
	sessions    *mockedUseCase.MocksessionRepoDep
}

func newTestRouter(t *testing.T) testDeps {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps := testDeps{
		history:     mockedUseCase.NewMockhistoryRepoDep(t),
		leaderboard: mockedUseCase.NewMockleaderboardRepoDep(t),
		sessions:    mockedUseCase.NewMocksessionRepoDep(t),
	}

	historyUseCase := usecase.NewHistoryUseCase(logger, deps.history, deps.leaderboard, usecase.Limits{Default: 100, Max: 500})
	sessionUseCase := usecase.NewSessionUseCase(logger, deps.sessions)
	gameManager := usecase.NewGameManager(logger, registry.New(), mockedUseCase.NewMockrecorderDep(t), usecase.BoardSizes{Min: 3, Max: 10, Default: 3})

	deps.router = NewRouter(NewHandlers(logger, historyUseCase, sessionUseCase, gameManager))

	return deps
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) statusResponse {
	t.Helper()

	var status statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	return status
}

func TestHandlers_Ping(t *testing.T) {
	deps := newTestRouter(t)

	rec := serve(deps.router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_GetHistory(t *testing.T) {
	t.Run("No username returns an empty list", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := serve(deps.router, http.MethodGet, "/history", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Entries of the player", func(t *testing.T) {
		// Given: alice has one recorded win
		deps := newTestRouter(t)
		date := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
		deps.history.EXPECT().GetByUsername(mock.Anything, "alice", 5).Return([]entity.HistoryEntry{{
			Username:  "alice",
			Opponent:  "bob",
			Mode:      entity.ModeMultiplayer,
			Result:    entity.ResultWin,
			BoardSize: 3,
			Date:      date,
		}}, nil).Once()

		// When: her history is requested
		rec := serve(deps.router, http.MethodGet, "/history?username=alice&limit=5", "")

		// Then: the entry is returned as JSON
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var entries []entity.HistoryEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "bob", entries[0].Opponent)
		assert.Equal(t, entity.ResultWin, entries[0].Result)
		assert.True(t, date.Equal(entries[0].Date))
	})

	t.Run("Bad limit", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := serve(deps.router, http.MethodGet, "/history?username=alice&limit=ten", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, statusError, decodeStatus(t, rec).Status)
	})

	t.Run("Storage failure", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.history.EXPECT().GetByUsername(mock.Anything, "alice", 100).Return(nil, errStorageDown).Once()

		rec := serve(deps.router, http.MethodGet, "/history?username=alice", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandlers_PostHistory(t *testing.T) {
	t.Run("Entry from the client is stored", func(t *testing.T) {
		// Given: a local game result with a string board size and a zone-less date
		deps := newTestRouter(t)
		deps.history.EXPECT().Append(mock.Anything, mock.MatchedBy(func(entry entity.HistoryEntry) bool {
			return entry.Username == "alice" &&
				entry.Opponent == "bot" &&
				entry.Mode == "local" &&
				entry.Result == entity.ResultLoss &&
				entry.BoardSize == 4 &&
				entry.Date.Equal(time.Date(2024, 10, 1, 12, 0, 0, 123456000, time.UTC))
		})).Return(nil).Once()

		// When: it is posted
		rec := serve(deps.router, http.MethodPost, "/history",
			`{"username":"alice","opponent":"bot","mode":"local","result":"loss","board_size":"4","date":"2024-10-01T12:00:00.123456"}`)

		// Then: the client is told it was stored
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, statusOK, decodeStatus(t, rec).Status)
	})

	t.Run("Defaults are applied", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.history.EXPECT().Append(mock.Anything, mock.MatchedBy(func(entry entity.HistoryEntry) bool {
			return entry.Mode == entity.ModeMultiplayer && entry.BoardSize == 3 && !entry.Date.IsZero()
		})).Return(nil).Once()

		rec := serve(deps.router, http.MethodPost, "/history", `{"username":"alice","opponent":"bob","result":"draw"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid input is rejected before storage", func(t *testing.T) {
		deps := newTestRouter(t)

		for _, body := range []string{
			`{"username":"alice","result":"victory"}`,
			`{"result":"win"}`,
			`{"username":"alice","result":"win","board_size":"big"}`,
			`{"username":"alice","result":"win","date":"yesterday"}`,
			`{"username":`,
		} {
			rec := serve(deps.router, http.MethodPost, "/history", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, statusError, decodeStatus(t, rec).Status, body)
		}
	})

	t.Run("Storage failure", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.history.EXPECT().Append(mock.Anything, mock.Anything).Return(errStorageDown).Once()

		rec := serve(deps.router, http.MethodPost, "/history", `{"username":"alice","result":"win"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandlers_RecoverSession(t *testing.T) {
	t.Run("Missing username", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := serve(deps.router, http.MethodGet, "/recover-session", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Known player", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.sessions.EXPECT().Get(mock.Anything, entity.Username("alice")).Return(&entity.SessionRecord{
			Username:  "alice",
			Room:      "4321",
			BoardSize: 5,
			Mode:      entity.ModeMultiplayer,
		}, nil).Once()

		rec := serve(deps.router, http.MethodGet, "/recover-session?username=alice", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var record entity.SessionRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
		assert.Equal(t, entity.RoomCode("4321"), record.Room)
		assert.Equal(t, 5, record.BoardSize)
	})

	t.Run("Unknown player", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.sessions.EXPECT().Get(mock.Anything, entity.Username("bob")).Return(nil, apperror.ErrSessionNotFound).Once()

		rec := serve(deps.router, http.MethodGet, "/recover-session?username=bob", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, statusNotFound, decodeStatus(t, rec).Status)
	})

	t.Run("Storage failure", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.sessions.EXPECT().Get(mock.Anything, entity.Username("bob")).Return(nil, errStorageDown).Once()

		rec := serve(deps.router, http.MethodGet, "/recover-session?username=bob", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandlers_Leaderboard(t *testing.T) {
	t.Run("Top players", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.leaderboard.EXPECT().Top(mock.Anything, 100).Return([]entity.LeaderboardRecord{
			{Username: "alice", Score: 30, Wins: 3},
			{Username: "bob", Score: 10, Wins: 1},
		}, nil).Once()

		rec := serve(deps.router, http.MethodGet, "/leaderboard", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"username":"alice","score":30,"wins":3},{"username":"bob","score":10,"wins":1}]`, rec.Body.String())
	})

	t.Run("Empty board is a list", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.leaderboard.EXPECT().Top(mock.Anything, 500).Return(nil, nil).Once()

		rec := serve(deps.router, http.MethodGet, "/leaderboard?limit=9000", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandlers_CreateRoom(t *testing.T) {
	deps := newTestRouter(t)

	rec := serve(deps.router, http.MethodPost, "/rooms", "")

	require.Equal(t, http.StatusCreated, rec.Code)

	var body roomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, string(body.Room), 4)

	code, err := strconv.Atoi(string(body.Room))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, code, 1000)
	assert.LessOrEqual(t, code, 9999)
}

func TestNewRouter_MethodNotAllowed(t *testing.T) {
	deps := newTestRouter(t)

	rec := serve(deps.router, http.MethodGet, "/rooms", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
