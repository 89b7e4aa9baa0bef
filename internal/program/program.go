package program

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/liftlog/internal/loadmath"
)

var (
	ErrWeekNotFound = errors.New("program week not found")
	ErrDayNotFound  = errors.New("program day not found")
)

// Program is the parsed 16-week template. It is produced offline and never mutated at runtime.
type Program struct {
	Meta  Meta   `json:"meta"`
	Weeks []Week `json:"weeks"`
}

type Meta struct {
	SourceFile           string        `json:"sourceFile"`
	ParsedAt             time.Time     `json:"parsedAt"`
	DefaultTrainingMaxes TrainingMaxes `json:"defaultTrainingMaxes"`
	Formula              Formula       `json:"formula"`
}

type Formula struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type Week struct {
	WeekNumber int    `json:"weekNumber"`
	WeekLabel  string `json:"weekLabel"`
	Days       []Day  `json:"days"`
}

type Day struct {
	DayNumber int                    `json:"dayNumber"`
	DayLabel  string                 `json:"dayLabel"`
	Exercises []ExercisePrescription `json:"exercises"`
}

// ExercisePrescription is one planned exercise slot.
type ExercisePrescription struct {
	Name             string    `json:"name"`
	Sets             FlexValue `json:"sets"`
	Reps             FlexValue `json:"reps"`
	Intensity        FlexValue `json:"intensity"`
	Tempo            string    `json:"tempo,omitempty"`
	RestSeconds      *int      `json:"restSeconds,omitempty"`
	ComputedLoadRule *LoadRule `json:"computedLoadRule,omitempty"`
	// E1RMRelative marks slots loaded off the top set just performed; Intensity holds the percent.
	E1RMRelative bool `json:"isE1RMRelative,omitempty"`
}

type LoadRule struct {
	Lift    Lift    `json:"lift"`
	Percent float64 `json:"percent"`
}

// FlexValue holds a template cell that is either numeric or free text ("1+2F", "RPE 8").
type FlexValue struct {
	Number *float64
	Text   string
}

func (v FlexValue) IsZero() bool {
	return v.Number == nil && v.Text == ""
}

func (v FlexValue) String() string {
	if v.Number != nil {
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	}
	return v.Text
}

// Fraction returns the numeric value, if any.
func (v FlexValue) Fraction() (float64, bool) {
	if v.Number == nil {
		return 0, false
	}
	return *v.Number, true
}

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	if v.Text == "" {
		return []byte("null"), nil
	}
	return json.Marshal(v.Text)
}

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*v = FlexValue{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FlexValue{Text: s}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex value %s: %w", trimmed, err)
	}
	*v = FlexValue{Number: &n}
	return nil
}

// Load reads and validates a program template from disk.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open program template: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Program, error) {
	var p Program
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode program template: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Program) validate() error {
	if len(p.Weeks) == 0 {
		return errors.New("program has no weeks")
	}
	prevWeek := 0
	for _, w := range p.Weeks {
		if w.WeekNumber <= prevWeek {
			return fmt.Errorf("week %d out of order after week %d", w.WeekNumber, prevWeek)
		}
		prevWeek = w.WeekNumber

		seenDays := make(map[int]bool, len(w.Days))
		for _, d := range w.Days {
			if seenDays[d.DayNumber] {
				return fmt.Errorf("week %d: duplicate day %d", w.WeekNumber, d.DayNumber)
			}
			seenDays[d.DayNumber] = true
			for _, ex := range d.Exercises {
				if ex.ComputedLoadRule != nil && !ex.ComputedLoadRule.Lift.IsValid() {
					return fmt.Errorf("week %d day %d: %s: invalid lift %q", w.WeekNumber, d.DayNumber, ex.Name, ex.ComputedLoadRule.Lift)
				}
			}
		}
	}
	return nil
}

func (p *Program) TotalWeeks() int {
	return len(p.Weeks)
}

func (p *Program) Week(week int) (*Week, error) {
	for i := range p.Weeks {
		if p.Weeks[i].WeekNumber == week {
			return &p.Weeks[i], nil
		}
	}
	return nil, ErrWeekNotFound
}

func (p *Program) Day(week, day int) (*Week, *Day, error) {
	w, err := p.Week(week)
	if err != nil {
		return nil, nil, err
	}
	for i := range w.Days {
		if w.Days[i].DayNumber == day {
			return w, &w.Days[i], nil
		}
	}
	return nil, nil, ErrDayNotFound
}

// TopSet is the heaviest set just performed, in display units, used for E1RM-relative slots.
type TopSet struct {
	Weight float64
	Reps   int
}

// Prescribe resolves the load of a slot for the given maxes. It returns nil
// when the slot carries no computable load.
func Prescribe(
	ex ExercisePrescription,
	maxes TrainingMaxes,
	units loadmath.Units,
	roundingIncrement float64,
	topSet *TopSet,
) *loadmath.Load {
	if ex.ComputedLoadRule != nil {
		tm := maxes.For(ex.ComputedLoadRule.Lift)
		if tm <= 0 {
			return nil
		}
		load := loadmath.ComputeLoad(tm, ex.ComputedLoadRule.Percent, roundingIncrement, units)
		return &load
	}

	if ex.E1RMRelative && topSet != nil {
		percent, ok := ex.Intensity.Fraction()
		if !ok {
			return nil
		}
		e1rm := loadmath.EstimateE1RM(topSet.Weight, topSet.Reps)
		if e1rm <= 0 {
			return nil
		}
		return &loadmath.Load{
			Rounded: loadmath.WeightFromE1RM(e1rm, percent, roundingIncrement),
			Exact:   e1rm * percent,
		}
	}

	return nil
}
