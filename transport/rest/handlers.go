package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

const (
	statusOK       = "ok"
	statusError    = "error"
	statusNotFound = "not_found"

	maxBodySize = 1 << 16
)

// clientDateLayout is the timestamp format browsers of the old client sent, without a zone.
const clientDateLayout = "2006-01-02T15:04:05.999999"

type historyUseCase interface {
	History(ctx context.Context, username string, limit int) ([]entity.HistoryEntry, error)
	AddHistory(ctx context.Context, entry entity.HistoryEntry) error
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error)
}

type sessionUseCase interface {
	Recover(ctx context.Context, username entity.Username) (*entity.SessionRecord, error)
}

type roomAllocator interface {
	AllocateRoomCode(ctx context.Context) (entity.RoomCode, error)
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type roomResponse struct {
	Room entity.RoomCode `json:"room"`
}

// historyRequest is the body of POST /history. Board size may arrive as a number or a numeric string.
type historyRequest struct {
	Username  string      `json:"username"`
	Opponent  string      `json:"opponent"`
	Mode      string      `json:"mode"`
	Result    string      `json:"result"`
	BoardSize json.Number `json:"board_size"`
	Date      string      `json:"date"`
}

type Handlers struct {
	logger *slog.Logger

	history  historyUseCase
	sessions sessionUseCase
	rooms    roomAllocator
}

func NewHandlers(logger *slog.Logger, history historyUseCase, sessions sessionUseCase, rooms roomAllocator) *Handlers {
	return &Handlers{
		logger:   logger.With("component", "rest"),
		history:  history,
		sessions: sessions,
		rooms:    rooms,
	}
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// GetHistory - lists the finished games of a player, newest first.
func (that *Handlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetHistory")

	query := r.URL.Query()

	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: err.Error()})
		return
	}

	entries, err := that.history.History(r.Context(), strings.TrimSpace(query.Get("username")), limit)
	if err != nil {
		log.Error("failed to get history", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: statusError})
		return
	}

	that.writeJSON(w, http.StatusOK, entries)
}

// PostHistory - stores a game the client finished on its own, typically a LOCAL match.
func (that *Handlers) PostHistory(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "PostHistory")

	var body historyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&body); err != nil {
		that.writeJSON(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: "malformed body"})
		return
	}

	entry, err := body.toEntry()
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: err.Error()})
		return
	}

	err = that.history.AddHistory(r.Context(), entry)
	if errors.Is(err, apperror.ErrInvalidResult) {
		that.writeJSON(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: err.Error()})
		return
	}

	if err != nil {
		log.Error("failed to add history", "username", entry.Username, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: statusError})
		return
	}

	that.writeJSON(w, http.StatusOK, statusResponse{Status: statusOK})
}

// RecoverSession - tells a reconnecting client which room it was last in.
func (that *Handlers) RecoverSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "RecoverSession")

	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		that.writeJSON(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: "username is required"})
		return
	}

	record, err := that.sessions.Recover(r.Context(), entity.Username(username))
	if errors.Is(err, apperror.ErrSessionNotFound) {
		that.writeJSON(w, http.StatusNotFound, statusResponse{Status: statusNotFound})
		return
	}

	if err != nil {
		log.Error("failed to recover session", "username", username, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: statusError})
		return
	}

	that.writeJSON(w, http.StatusOK, record)
}

func (that *Handlers) Leaderboard(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Leaderboard")

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: err.Error()})
		return
	}

	records, err := that.history.Leaderboard(r.Context(), limit)
	if err != nil {
		log.Error("failed to get leaderboard", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: statusError})
		return
	}

	if records == nil {
		records = []entity.LeaderboardRecord{}
	}

	that.writeJSON(w, http.StatusOK, records)
}

// CreateRoom - hands out a room code nobody is playing in.
func (that *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "CreateRoom")

	code, err := that.rooms.AllocateRoomCode(r.Context())
	if err != nil {
		log.Error("failed to allocate room code", "error", err)
		that.writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "no free room code"})
		return
	}

	that.writeJSON(w, http.StatusCreated, roomResponse{Room: code})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that historyRequest) toEntry() (entity.HistoryEntry, error) {
	entry := entity.HistoryEntry{
		Username: strings.TrimSpace(that.Username),
		Opponent: that.Opponent,
		Mode:     that.Mode,
		Result:   that.Result,
	}

	if that.BoardSize != "" {
		size, err := strconv.Atoi(that.BoardSize.String())
		if err != nil {
			return entity.HistoryEntry{}, errors.New("board_size must be an integer")
		}

		entry.BoardSize = size
	}

	if that.Date != "" {
		date, err := parseDate(that.Date)
		if err != nil {
			return entity.HistoryEntry{}, errors.New("date must be an ISO 8601 timestamp")
		}

		entry.Date = date
	}

	return entry, nil
}

func parseDate(raw string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return date.UTC(), nil
	}

	date, err := time.Parse(clientDateLayout, raw)
	if err != nil {
		return time.Time{}, err
	}

	return date.UTC(), nil
}

// parseLimit - an absent limit is 0 and lets the use case pick its default.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}

	return limit, nil
}
