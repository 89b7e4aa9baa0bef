package reactions

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/2beens/liftlog/internal/program"
	"github.com/2beens/liftlog/internal/training"
)

type Trigger string

const (
	TriggerWeightPR         Trigger = "pr-weight"
	TriggerE1RMPR           Trigger = "pr-e1rm"
	TriggerRepPR            Trigger = "pr-reps"
	TriggerRPEDrop          Trigger = "rpe-drop"
	TriggerGrind            Trigger = "grind-complete"
	TriggerSandbag          Trigger = "rpe-sandbag"
	TriggerSkippedAccessory Trigger = "skipped-accessory"
)

func phaseTrigger(phase program.Phase) Trigger {
	return Trigger("phase-" + string(phase))
}

type Category string

const (
	CategoryCelebration   Category = "celebration"
	CategoryEncouragement Category = "encouragement"
	CategoryObservation   Category = "observation"
	CategoryFlavor        Category = "flavor"
)

const (
	PriorityWeightPR         = 100
	PriorityE1RMPR           = 95
	PriorityRepPR            = 90
	PriorityRPEDrop          = 70
	PriorityGrind            = 60
	PrioritySandbag          = 50
	PrioritySkippedAccessory = 30
	PriorityPhase            = 10
)

const (
	grindRPE          = 9.5
	sandbagRPE        = 8.0
	sandbagTMFraction = 0.65
)

// Reaction is a message shown after a workout. It is never persisted.
type Reaction struct {
	Trigger      Trigger  `json:"trigger"`
	Text         string   `json:"text"`
	Category     Category `json:"category"`
	Priority     int      `json:"priority"`
	ExerciseName string   `json:"exerciseName,omitempty"`
}

// Engine turns a completed workout into ranked reactions. It is safe for concurrent use.
type Engine struct {
	catalog Catalog

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewEngine uses rnd to pick phrasings; a nil rnd is seeded from the clock.
func NewEngine(catalog Catalog, rnd *rand.Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		catalog: catalog,
		rnd:     rnd,
	}
}

func NewSeededEngine(catalog Catalog, seed int64) *Engine {
	return NewEngine(catalog, rand.New(rand.NewSource(seed)))
}

type candidate struct {
	trigger  Trigger
	category Category
	priority int
	exercise string
	vars     map[string]string
}

// Evaluate reacts to current. history is every log of the user and may
// include current itself. The result is never nil.
func (e *Engine) Evaluate(current training.WorkoutLog, history []training.WorkoutLog, settings training.Settings) []Reaction {
	reactions := []Reaction{}
	if !settings.Notifications.Reactions ||
		settings.Personality == training.PersonalitySilent ||
		settings.MaxReactionsPerWorkout <= 0 ||
		(current.Week == program.TaperWeek && settings.Notifications.MuteTaper) ||
		!hasCompletedSet(current) {
		return reactions
	}

	var candidates []candidate
	for _, a := range Analyze(current, history) {
		candidates = append(candidates, exerciseCandidates(a, settings)...)
	}

	for _, entry := range current.Entries {
		if entry.Skipped && !program.IsMainLift(entry.ExerciseName) {
			candidates = append(candidates, candidate{
				trigger:  TriggerSkippedAccessory,
				category: CategoryObservation,
				priority: PrioritySkippedAccessory,
				exercise: entry.ExerciseName,
				vars:     map[string]string{"exercise": entry.ExerciseName},
			})
			break
		}
	}

	candidates = append(candidates, candidate{
		trigger:  phaseTrigger(program.PhaseForWeek(current.Week)),
		category: CategoryFlavor,
		priority: PriorityPhase,
		vars:     map[string]string{},
	})

	for _, c := range candidates {
		text, ok := e.render(c, settings.Personality)
		if !ok {
			continue
		}
		reactions = append(reactions, Reaction{
			Trigger:      c.trigger,
			Text:         text,
			Category:     c.category,
			Priority:     c.priority,
			ExerciseName: c.exercise,
		})
	}

	sort.SliceStable(reactions, func(i, j int) bool {
		return reactions[i].Priority > reactions[j].Priority
	})
	if len(reactions) > settings.MaxReactionsPerWorkout {
		reactions = reactions[:settings.MaxReactionsPerWorkout]
	}
	return reactions
}

func hasCompletedSet(l training.WorkoutLog) bool {
	for _, entry := range l.Entries {
		for _, set := range entry.Sets {
			if set.Completed {
				return true
			}
		}
	}
	return false
}

func exerciseCandidates(a ExerciseAnalysis, settings training.Settings) []candidate {
	vars := map[string]string{
		"exercise": a.ExerciseName,
		"weight":   formatNumber(a.BestWeight),
		"unit":     string(a.Units),
		"reps":     strconv.Itoa(a.BestReps),
		"e1rm":     formatNumber(a.E1RM),
	}
	if a.BestRPE != nil {
		vars["rpe"] = formatNumber(*a.BestRPE)
	}
	withPrior := func(prior float64) map[string]string {
		v := make(map[string]string, len(vars)+1)
		for k, val := range vars {
			v[k] = val
		}
		v["prior"] = formatNumber(prior)
		return v
	}

	var out []candidate
	add := func(trigger Trigger, category Category, priority int, v map[string]string) {
		out = append(out, candidate{
			trigger:  trigger,
			category: category,
			priority: priority,
			exercise: a.ExerciseName,
			vars:     v,
		})
	}

	if a.IsWeightPR() {
		add(TriggerWeightPR, CategoryCelebration, PriorityWeightPR, withPrior(a.PriorBestWeight))
	}
	if a.IsE1RMPR() {
		add(TriggerE1RMPR, CategoryCelebration, PriorityE1RMPR, withPrior(a.PriorBestE1RM))
	}
	if a.IsRepPR() {
		add(TriggerRepPR, CategoryCelebration, PriorityRepPR, withPrior(float64(a.PriorBestRepsAtWeight)))
	}

	if a.BestRPE == nil {
		return out
	}
	rpe := *a.BestRPE
	if a.IsRPEDrop() {
		add(TriggerRPEDrop, CategoryEncouragement, PriorityRPEDrop, withPrior(*a.PriorRPE))
	}
	if rpe >= grindRPE {
		add(TriggerGrind, CategoryEncouragement, PriorityGrind, vars)
	}
	if rpe >= sandbagRPE {
		if lift, ok := program.LiftFromName(a.ExerciseName); ok {
			tm := settings.TrainingMaxesIn(a.Units).For(lift)
			if tm > 0 && a.BestWeight < sandbagTMFraction*tm {
				add(TriggerSandbag, CategoryObservation, PrioritySandbag, vars)
			}
		}
	}
	return out
}

func (e *Engine) render(c candidate, personality training.Personality) (string, bool) {
	phrasings := e.catalog.Phrasings(c.trigger, personality)
	if len(phrasings) == 0 {
		return "", false
	}

	e.mu.Lock()
	idx := e.rnd.Intn(len(phrasings))
	e.mu.Unlock()

	pairs := make([]string, 0, len(c.vars)*2)
	for k, v := range c.vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(phrasings[idx]), true
}

// formatNumber prints at most one decimal, dropping a trailing .0.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
