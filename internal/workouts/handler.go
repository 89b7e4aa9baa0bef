package workouts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/store"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/training"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	settings, err := h.service.GetSettings(ctx, userID)
	if err != nil {
		writeError(w, "get settings", err)
		return
	}
	pkg.WriteJSON(w, SettingsInDisplayUnits(*settings), http.StatusOK)
}

func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var update training.Settings
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update settings, unmarshal json: %s", err)
		http.Error(w, "invalid settings", http.StatusBadRequest)
		return
	}

	settings, err := h.service.UpdateSettings(ctx, userID, SettingsFromDisplayUnits(update))
	if err != nil {
		writeError(w, "update settings", err)
		return
	}
	pkg.WriteJSON(w, SettingsInDisplayUnits(*settings), http.StatusOK)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var nw NewWorkout
	if err := json.NewDecoder(r.Body).Decode(&nw); err != nil {
		log.Errorf("start workout, unmarshal json: %s", err)
		http.Error(w, "invalid workout", http.StatusBadRequest)
		return
	}

	workoutLog, err := h.service.StartWorkout(ctx, userID, nw)
	if err != nil {
		writeError(w, "start workout", err)
		return
	}
	pkg.WriteJSON(w, workoutLog, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	workoutLog, err := h.service.GetWorkout(ctx, userID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get workout", err)
		return
	}
	pkg.WriteJSON(w, workoutLog, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var update WorkoutUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update workout, unmarshal json: %s", err)
		http.Error(w, "invalid workout", http.StatusBadRequest)
		return
	}

	workoutLog, err := h.service.UpdateWorkout(ctx, userID, mux.Vars(r)["id"], update)
	if err != nil {
		writeError(w, "update workout", err)
		return
	}
	pkg.WriteJSON(w, workoutLog, http.StatusOK)
}

// HandleComplete accepts an optional final version of notes and entries in the body.
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var final *WorkoutUpdate
	var update WorkoutUpdate
	err := json.NewDecoder(r.Body).Decode(&update)
	switch {
	case err == nil:
		final = &update
	case errors.Is(err, io.EOF):
	default:
		log.Errorf("complete workout, unmarshal json: %s", err)
		http.Error(w, "invalid workout", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompleteWorkout(ctx, userID, mux.Vars(r)["id"], final)
	if err != nil {
		writeError(w, "complete workout", err)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.DeleteWorkout(ctx, userID, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete workout", err)
		return
	}
	pkg.WriteTextResponseOK(w, "deleted")
}

// HandleList filters by ?date=YYYY-MM-DD when given, otherwise returns all logs of the user.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var filter ListFilter
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := training.ParseDate(dateParam)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		filter.Date = &date
	}

	h.writeList(w, userID, r.WithContext(ctx), filter)
}

func (h *Handler) HandleListByWeekDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list.weekday")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	week, err := strconv.Atoi(vars["week"])
	if err != nil || week <= 0 {
		http.Error(w, "invalid week", http.StatusBadRequest)
		return
	}
	day, err := strconv.Atoi(vars["day"])
	if err != nil || day <= 0 {
		http.Error(w, "invalid day", http.StatusBadRequest)
		return
	}

	h.writeList(w, userID, r.WithContext(ctx), ListFilter{Week: week, Day: day})
}

func (h *Handler) writeList(w http.ResponseWriter, userID int, r *http.Request, filter ListFilter) {
	logs, err := h.service.ListWorkouts(r.Context(), userID, filter)
	if err != nil {
		writeError(w, "list workouts", err)
		return
	}
	pkg.WriteJSON(w, logs, http.StatusOK)
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrLogNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
	case errors.Is(err, ErrWorkoutCompleted):
		http.Error(w, "workout already completed", http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
