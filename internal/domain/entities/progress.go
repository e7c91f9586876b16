package entities

import (
	"fmt"
	"time"
)

const (
	// CourseLengthDays is the fixed length of the detox course.
	CourseLengthDays = 20

	// DefaultCoefficient is the portion multiplier applied until the user picks one.
	DefaultCoefficient = 1.0

	// SchemaVersion is written with every persisted aggregate. Documents stored
	// before versioning was introduced carry no tag and load as version 0.
	SchemaVersion = 1
)

// DateLayout is the date-only format used for all per-day keys.
const DateLayout = "2006-01-02"

// CourseMode describes where the user is in the course overall.
type CourseMode string

const (
	ModeNotStarted CourseMode = "not_started"
	// ModePreparation is part of the mode vocabulary but is never returned:
	// nothing transitions into it.
	ModePreparation CourseMode = "preparation"
	ModeActive      CourseMode = "active"
	ModeCompleted   CourseMode = "completed"
)

// DayStatus describes a single day relative to the user's progress.
type DayStatus string

const (
	// StatusLocked is declared but never produced: days are not gated.
	StatusLocked    DayStatus = "locked"
	StatusCurrent   DayStatus = "current"
	StatusCompleted DayStatus = "completed"
	StatusAvailable DayStatus = "available"
)

// MeasurementSlot names one of the four measurement checkpoints.
type MeasurementSlot string

const (
	SlotInitial MeasurementSlot = "initial"
	SlotWeek1   MeasurementSlot = "week1"
	SlotWeek2   MeasurementSlot = "week2"
	SlotFinal   MeasurementSlot = "final"
)

// Measurement holds body metrics for one checkpoint. Date is stamped on every
// write to the slot, including partial updates.
type Measurement struct {
	Weight *float64 `json:"weight,omitempty"`
	Waist  *float64 `json:"waist,omitempty"`
	Hips   *float64 `json:"hips,omitempty"`
	Date   string   `json:"date,omitempty"`
}

// MeasurementPatch is a partial measurement update. Nil fields keep the
// slot's existing values.
type MeasurementPatch struct {
	Weight *float64
	Waist  *float64
	Hips   *float64
}

// Measurements holds the four fixed checkpoints.
type Measurements struct {
	Initial Measurement `json:"initial"`
	Week1   Measurement `json:"week1"`
	Week2   Measurement `json:"week2"`
	Final   Measurement `json:"final"`
}

// Slot returns a pointer to the named checkpoint, or nil for an unknown slot.
func (m *Measurements) Slot(slot MeasurementSlot) *Measurement {
	switch slot {
	case SlotInitial:
		return &m.Initial
	case SlotWeek1:
		return &m.Week1
	case SlotWeek2:
		return &m.Week2
	case SlotFinal:
		return &m.Final
	}
	return nil
}

// CourseProgress is the persisted per-user course state. Every mutation is a
// total function: no operation fails regardless of input.
type CourseProgress struct {
	Version              int                 `json:"schemaVersion"`
	CurrentDay           int                 `json:"currentDay"`
	StartDate            string              `json:"startDate,omitempty"`
	CompletedDays        []int               `json:"completedDays"`
	CompletedTasks       map[string][]string `json:"completedTasks"`
	Measurements         Measurements        `json:"measurements"`
	Coefficient          float64             `json:"coefficient"`
	PreparationChecklist []string            `json:"preparationChecklist"`
	ShoppingChecklist    []string            `json:"shoppingChecklist"`
	WaterIntake          map[string]int      `json:"waterIntake"`
	StepsCount           map[string]int      `json:"stepsCount"`
	Notes                map[string]string   `json:"notes"`
}

// NewCourseProgress returns the all-empty default aggregate.
func NewCourseProgress() *CourseProgress {
	return &CourseProgress{
		Version:              SchemaVersion,
		CurrentDay:           0,
		CompletedDays:        []int{},
		CompletedTasks:       map[string][]string{},
		Coefficient:          DefaultCoefficient,
		PreparationChecklist: []string{},
		ShoppingChecklist:    []string{},
		WaterIntake:          map[string]int{},
		StepsCount:           map[string]int{},
		Notes:                map[string]string{},
	}
}

// DayKey builds the key under which a day's completed tasks are stored.
func DayKey(day int) string {
	return fmt.Sprintf("day-%d", day)
}

// Normalize fills in anything a partial or pre-versioning stored document may
// lack, so all other methods can assume initialized maps.
func (p *CourseProgress) Normalize() {
	if p.CompletedDays == nil {
		p.CompletedDays = []int{}
	}
	if p.CompletedTasks == nil {
		p.CompletedTasks = map[string][]string{}
	}
	if p.PreparationChecklist == nil {
		p.PreparationChecklist = []string{}
	}
	if p.ShoppingChecklist == nil {
		p.ShoppingChecklist = []string{}
	}
	if p.WaterIntake == nil {
		p.WaterIntake = map[string]int{}
	}
	if p.StepsCount == nil {
		p.StepsCount = map[string]int{}
	}
	if p.Notes == nil {
		p.Notes = map[string]string{}
	}
	if p.Coefficient == 0 {
		p.Coefficient = DefaultCoefficient
	}
	p.Version = SchemaVersion
}

// StartCourse moves the user onto day 1 and stamps the start date. Calling it
// again overwrites the start date; completed days are kept.
func (p *CourseProgress) StartCourse(now time.Time) {
	p.CurrentDay = 1
	p.StartDate = now.Format(DateLayout)
}

// CompleteDay records the day as done and advances the current day. The day
// number is not range-checked and the current day never regresses.
func (p *CourseProgress) CompleteDay(day int) {
	if !containsInt(p.CompletedDays, day) {
		p.CompletedDays = append(p.CompletedDays, day)
	}
	if day+1 > p.CurrentDay {
		p.CurrentDay = day + 1
	}
}

// ToggleTask flips completion of a task within a day: done becomes not done
// and vice versa. Deliberately a toggle, not a one-way mark.
func (p *CourseProgress) ToggleTask(day int, taskID string) {
	key := DayKey(day)
	p.CompletedTasks[key] = toggleString(p.CompletedTasks[key], taskID)
	if len(p.CompletedTasks[key]) == 0 {
		p.CompletedTasks[key] = []string{}
	}
}

// IsTaskCompleted reports whether the task is currently marked done.
func (p *CourseProgress) IsTaskCompleted(day int, taskID string) bool {
	return containsString(p.CompletedTasks[DayKey(day)], taskID)
}

// CompletedTaskCount returns how many tasks are marked done for the day.
func (p *CourseProgress) CompletedTaskCount(day int) int {
	return len(p.CompletedTasks[DayKey(day)])
}

// UpdateMeasurements merges the patch into the slot. Fields absent from the
// patch are preserved; the slot date always advances to now.
func (p *CourseProgress) UpdateMeasurements(slot MeasurementSlot, patch MeasurementPatch, now time.Time) {
	m := p.Measurements.Slot(slot)
	if m == nil {
		return
	}
	if patch.Weight != nil {
		m.Weight = patch.Weight
	}
	if patch.Waist != nil {
		m.Waist = patch.Waist
	}
	if patch.Hips != nil {
		m.Hips = patch.Hips
	}
	m.Date = now.Format(DateLayout)
}

// SetCoefficient overwrites the portion multiplier. No bounds are enforced.
func (p *CourseProgress) SetCoefficient(value float64) {
	p.Coefficient = value
}

// TogglePreparationItem flips a preparation checklist item.
func (p *CourseProgress) TogglePreparationItem(itemID string) {
	p.PreparationChecklist = toggleString(p.PreparationChecklist, itemID)
}

// ToggleShoppingItem flips a shopping checklist item.
func (p *CourseProgress) ToggleShoppingItem(itemID string) {
	p.ShoppingChecklist = toggleString(p.ShoppingChecklist, itemID)
}

// IsPreparationItemDone reports whether the item is checked off.
func (p *CourseProgress) IsPreparationItemDone(itemID string) bool {
	return containsString(p.PreparationChecklist, itemID)
}

// IsShoppingItemDone reports whether the item is checked off.
func (p *CourseProgress) IsShoppingItemDone(itemID string) bool {
	return containsString(p.ShoppingChecklist, itemID)
}

// LogWater adds the amount to the date's running total. Amounts are not
// validated; the callers only ever send positive increments.
func (p *CourseProgress) LogWater(date string, amount int) {
	p.WaterIntake[date] += amount
}

// LogSteps overwrites the step count for the date. Last write wins.
func (p *CourseProgress) LogSteps(date string, count int) {
	p.StepsCount[date] = count
}

// AddNote replaces the note for the date.
func (p *CourseProgress) AddNote(date string, text string) {
	p.Notes[date] = text
}

// Mode derives the overall course mode. The three returned values are
// exhaustive and mutually exclusive for every reachable state.
func (p *CourseProgress) Mode() CourseMode {
	if p.StartDate == "" {
		return ModeNotStarted
	}
	if len(p.CompletedDays) >= CourseLengthDays {
		return ModeCompleted
	}
	return ModeActive
}

// DayStatusFor derives the status of a single day. Days ahead of the current
// one report available rather than locked: any day can always be opened.
func (p *CourseProgress) DayStatusFor(day int) DayStatus {
	if containsInt(p.CompletedDays, day) {
		return StatusCompleted
	}
	if day == p.CurrentDay {
		return StatusCurrent
	}
	return StatusAvailable
}

// CompletionPercent returns completed days as a share of the whole course.
func (p *CourseProgress) CompletionPercent() float64 {
	return float64(len(p.CompletedDays)) / float64(CourseLengthDays) * 100
}

// WaterFor returns the logged milliliters for the date, zero if none.
func (p *CourseProgress) WaterFor(date string) int {
	return p.WaterIntake[date]
}

// StepsFor returns the logged steps for the date, zero if none.
func (p *CourseProgress) StepsFor(date string) int {
	return p.StepsCount[date]
}

// NoteFor returns the note for the date, empty if none.
func (p *CourseProgress) NoteFor(date string) string {
	return p.Notes[date]
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func toggleString(list []string, v string) []string {
	for i, x := range list {
		if x == v {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, v)
}
