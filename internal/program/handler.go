package program

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/cache"
	"github.com/2beens/liftlog/internal/loadmath"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dayCacheTTL = 6 * time.Hour

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=program_test

type loadProfiles interface {
	LoadProfile(ctx context.Context, userID int) (LoadProfile, error)
}

// LoadProfile is the part of user settings needed to turn a template into weights.
type LoadProfile struct {
	Units             loadmath.Units
	RoundingIncrement float64
	// TrainingMaxes in pounds
	TrainingMaxes TrainingMaxes
}

func (lp LoadProfile) fingerprint() string {
	return fmt.Sprintf("%s:%g:%g:%g:%g",
		lp.Units, lp.RoundingIncrement,
		lp.TrainingMaxes.Squat, lp.TrainingMaxes.Bench, lp.TrainingMaxes.Deadlift,
	)
}

type WeekSummary struct {
	WeekNumber int          `json:"weekNumber"`
	WeekLabel  string       `json:"weekLabel"`
	Phase      Phase        `json:"phase"`
	Days       []DaySummary `json:"days"`
}

type DaySummary struct {
	DayNumber     int    `json:"dayNumber"`
	DayLabel      string `json:"dayLabel"`
	ExerciseCount int    `json:"exerciseCount"`
}

type Overview struct {
	Meta       Meta          `json:"meta"`
	TotalWeeks int           `json:"totalWeeks"`
	Weeks      []WeekSummary `json:"weeks"`
}

type PrescribedExercise struct {
	ExercisePrescription
	Load *loadmath.Load `json:"load,omitempty"`
}

type DayPlan struct {
	Week      int                  `json:"week"`
	WeekLabel string               `json:"weekLabel"`
	Phase     Phase                `json:"phase"`
	Day       int                  `json:"day"`
	DayLabel  string               `json:"dayLabel"`
	Units     loadmath.Units       `json:"units"`
	Exercises []PrescribedExercise `json:"exercises"`
}

type Handler struct {
	program  *Program
	profiles loadProfiles
	cache    cache.Cache
}

func NewHandler(program *Program, profiles loadProfiles, dayCache cache.Cache) *Handler {
	return &Handler{
		program:  program,
		profiles: profiles,
		cache:    dayCache,
	}
}

func (h *Handler) Overview() Overview {
	weeks := make([]WeekSummary, 0, len(h.program.Weeks))
	for _, w := range h.program.Weeks {
		days := make([]DaySummary, 0, len(w.Days))
		for _, d := range w.Days {
			days = append(days, DaySummary{
				DayNumber:     d.DayNumber,
				DayLabel:      d.DayLabel,
				ExerciseCount: len(d.Exercises),
			})
		}
		weeks = append(weeks, WeekSummary{
			WeekNumber: w.WeekNumber,
			WeekLabel:  w.WeekLabel,
			Phase:      PhaseForWeek(w.WeekNumber),
			Days:       days,
		})
	}
	return Overview{
		Meta:       h.program.Meta,
		TotalWeeks: h.program.TotalWeeks(),
		Weeks:      weeks,
	}
}

// DayPlan resolves every slot of a program day for the given profile.
func (h *Handler) DayPlan(week, day int, profile LoadProfile, topSet *TopSet) (DayPlan, error) {
	w, d, err := h.program.Day(week, day)
	if err != nil {
		return DayPlan{}, err
	}

	units := profile.Units
	if !units.IsValid() {
		units = loadmath.Lbs
	}

	exercises := make([]PrescribedExercise, 0, len(d.Exercises))
	for _, ex := range d.Exercises {
		exercises = append(exercises, PrescribedExercise{
			ExercisePrescription: ex,
			Load:                 Prescribe(ex, profile.TrainingMaxes, units, profile.RoundingIncrement, topSet),
		})
	}

	return DayPlan{
		Week:      w.WeekNumber,
		WeekLabel: w.WeekLabel,
		Phase:     PhaseForWeek(w.WeekNumber),
		Day:       d.DayNumber,
		DayLabel:  d.DayLabel,
		Units:     units,
		Exercises: exercises,
	}, nil
}

func (h *Handler) HandleGetProgram(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.get")
	defer span.End()

	pkg.WriteJSON(w, h.Overview(), http.StatusOK)
}

func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.day")
	defer span.End()

	vars := mux.Vars(r)
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		http.Error(w, "invalid week", http.StatusBadRequest)
		return
	}
	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		http.Error(w, "invalid day", http.StatusBadRequest)
		return
	}

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	topSet, err := topSetFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.profiles.LoadProfile(ctx, userID)
	if err != nil {
		log.Errorf("program day: load profile for user %d: %s", userID, err)
		http.Error(w, "get program day failed", http.StatusInternalServerError)
		return
	}

	// top set driven plans depend on the request, only the plain plan is cached
	cacheKey := fmt.Sprintf("day:%d:%d:%s", week, day, profile.fingerprint())
	if topSet == nil && h.cache != nil {
		if cached, found := h.cache.Get(cacheKey); found {
			log.Tracef("program day %d/%d found in cache", week, day)
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
			return
		}
	}

	plan, err := h.DayPlan(week, day, profile, topSet)
	if err != nil {
		if errors.Is(err, ErrWeekNotFound) || errors.Is(err, ErrDayNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("program day %d/%d: %s", week, day, err)
		http.Error(w, "get program day failed", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal program day: %s", err)
		http.Error(w, "get program day failed", http.StatusInternalServerError)
		return
	}

	if topSet == nil && h.cache != nil {
		h.cache.Set(cacheKey, planJson, dayCacheTTL)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

type e1rmResponse struct {
	E1RM   float64  `json:"e1rm"`
	Weight *float64 `json:"weight,omitempty"`
}

// HandleE1RM estimates a max from weight and reps and, when percent is given,
// the working weight at that percent.
func (h *Handler) HandleE1RM(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.e1rm")
	defer span.End()

	query := r.URL.Query()
	weight, err := strconv.ParseFloat(query.Get("weight"), 64)
	if err != nil || weight < 0 {
		http.Error(w, "invalid weight", http.StatusBadRequest)
		return
	}
	reps, err := strconv.Atoi(query.Get("reps"))
	if err != nil {
		http.Error(w, "invalid reps", http.StatusBadRequest)
		return
	}

	resp := e1rmResponse{E1RM: loadmath.EstimateE1RM(weight, reps)}

	if percentParam := query.Get("percent"); percentParam != "" {
		percent, err := strconv.ParseFloat(percentParam, 64)
		if err != nil || percent < 0 {
			http.Error(w, "invalid percent", http.StatusBadRequest)
			return
		}
		increment := 0.0
		if incParam := query.Get("increment"); incParam != "" {
			increment, err = strconv.ParseFloat(incParam, 64)
			if err != nil || increment < 0 {
				http.Error(w, "invalid increment", http.StatusBadRequest)
				return
			}
		}
		resp.Weight = pkg.Ptr(loadmath.WeightFromE1RM(resp.E1RM, percent, increment))
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func topSetFromQuery(r *http.Request) (*TopSet, error) {
	weightParam := r.URL.Query().Get("top_weight")
	repsParam := r.URL.Query().Get("top_reps")
	if weightParam == "" && repsParam == "" {
		return nil, nil
	}
	weight, err := strconv.ParseFloat(weightParam, 64)
	if err != nil || weight <= 0 {
		return nil, errors.New("invalid top_weight")
	}
	reps, err := strconv.Atoi(repsParam)
	if err != nil || reps <= 0 {
		return nil, errors.New("invalid top_reps")
	}
	return &TopSet{Weight: weight, Reps: reps}, nil
}
