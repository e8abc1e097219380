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

// HabitsHandler handles the habit CRUD surface
type HabitsHandler struct {
	logger *slog.Logger
	store  storage.HabitStorage
}

// NewHabitsHandler creates a new habits handler
func NewHabitsHandler(logger *slog.Logger, store storage.HabitStorage) *HabitsHandler {
	return &HabitsHandler{
		logger: logger,
		store:  store,
	}
}

// List handles GET /api/v1/habits.
// The listing is authoritative: clients treat habits absent from it as
// deleted.
func (h *HabitsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	habits, err := h.store.ListHabits(ctx, userID(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list habits", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Habit, 0, len(habits))
	for _, habit := range habits {
		resp = append(resp, toAPIHabit(habit))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create handles POST /api/v1/habits
func (h *HabitsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeHabitRequest(w, r)
	if !ok {
		return
	}

	now := time.Now().UnixMilli()
	if req.UpdatedAt == 0 {
		req.UpdatedAt = now
	}

	habit := &storage.Habit{
		ID:          uuid.New().String(),
		UserID:      userID(r),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		CreatedAt:   now,
		UpdatedAt:   req.UpdatedAt,
	}

	if err := h.store.CreateHabit(ctx, habit); err != nil {
		h.logger.ErrorContext(ctx, "failed to create habit", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "habit created",
		slog.String("habit_id", habit.ID),
		slog.String("user_id", habit.UserID))

	sendJSON(h.logger, w, toAPIHabit(habit), http.StatusCreated)
}

// Update handles PUT /api/v1/habits/{habitID}.
// Merge rule: the version with the newer updated_at wins. A stale
// client update is not an error, the response simply carries the
// winning record, so devices converge without retry loops.
func (h *HabitsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeHabitRequest(w, r)
	if !ok {
		return
	}

	existing, err := h.store.GetHabit(ctx, userID(r), chi.URLParam(r, "habitID"))
	if err != nil {
		if errors.Is(err, storage.ErrHabitNotFound) {
			sendError(h.logger, w, "habit not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get habit", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.UpdatedAt > existing.UpdatedAt {
		existing.Name = req.Name
		existing.Description = req.Description
		existing.Color = req.Color
		existing.UpdatedAt = req.UpdatedAt

		if err := h.store.UpdateHabit(ctx, existing); err != nil {
			h.logger.ErrorContext(ctx, "failed to update habit", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
	} else {
		h.logger.DebugContext(ctx, "stale update ignored",
			slog.String("habit_id", existing.ID),
			slog.Int64("incoming", req.UpdatedAt),
			slog.Int64("current", existing.UpdatedAt))
	}

	sendJSON(h.logger, w, toAPIHabit(existing), http.StatusOK)
}

// Delete handles DELETE /api/v1/habits/{habitID}.
// Idempotent: deleting an already-deleted habit is a success, so a
// client retrying after a lost response does not get stuck.
func (h *HabitsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.store.DeleteHabit(ctx, userID(r), chi.URLParam(r, "habitID"))
	if err != nil && !errors.Is(err, storage.ErrHabitNotFound) {
		h.logger.ErrorContext(ctx, "failed to delete habit", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HabitsHandler) decodeHabitRequest(w http.ResponseWriter, r *http.Request) (api.HabitRequest, bool) {
	var req api.HabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return req, false
	}

	if err := validation.ValidateHabitName(req.Name); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	if err := validation.ValidateColor(req.Color); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return req, false
	}

	return req, true
}

func toAPIHabit(habit *storage.Habit) api.Habit {
	return api.Habit{
		ID:          habit.ID,
		Name:        habit.Name,
		Description: habit.Description,
		Color:       habit.Color,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}
