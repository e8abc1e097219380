package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/habitsync/internal/server/storage"
	"github.com/iudanet/habitsync/internal/validation"
	"github.com/iudanet/habitsync/pkg/api"
)

// LogsHandler handles completion log endpoints
type LogsHandler struct {
	logger *slog.Logger
	store  storage.HabitStorage
}

// NewLogsHandler creates a new logs handler
func NewLogsHandler(logger *slog.Logger, store storage.HabitStorage) *LogsHandler {
	return &LogsHandler{
		logger: logger,
		store:  store,
	}
}

// List handles GET /api/v1/logs, returning every completion mark of
// the caller across all habits
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logs, err := h.store.ListLogs(ctx, userID(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list logs", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.HabitLog, 0, len(logs))
	for _, log := range logs {
		resp = append(resp, toAPILog(log))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create handles POST /api/v1/habits/{habitID}/logs.
// Idempotent per (habit, date): a duplicate returns the existing mark
// with 200 instead of an error, so two devices marking the same day
// both converge on one log.
func (h *LogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	habitID := chi.URLParam(r, "habitID")

	var req api.HabitLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDate(req.Date); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	log := &storage.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		UserID:    userID(r),
		Date:      req.Date,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := h.store.CreateLog(ctx, log)
	if errors.Is(err, storage.ErrDuplicateLog) {
		existing, getErr := h.store.GetLogByDate(ctx, userID(r), habitID, req.Date)
		if getErr != nil {
			h.logger.ErrorContext(ctx, "failed to get existing log", slog.Any("error", getErr))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		sendJSON(h.logger, w, toAPILog(existing), http.StatusOK)
		return
	}
	if errors.Is(err, storage.ErrHabitNotFound) {
		sendError(h.logger, w, "habit not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create log", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "log created",
		slog.String("habit_id", habitID),
		slog.String("date", req.Date))

	sendJSON(h.logger, w, toAPILog(log), http.StatusCreated)
}

// Delete handles DELETE /api/v1/habits/{habitID}/logs/{date}.
// Idempotent like habit deletion.
func (h *LogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.store.DeleteLog(ctx, userID(r), chi.URLParam(r, "habitID"), chi.URLParam(r, "date"))
	if err != nil && !errors.Is(err, storage.ErrLogNotFound) {
		h.logger.ErrorContext(ctx, "failed to delete log", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAPILog(log *storage.HabitLog) api.HabitLog {
	return api.HabitLog{
		ID:        log.ID,
		HabitID:   log.HabitID,
		Date:      log.Date,
		CreatedAt: log.CreatedAt,
	}
}
