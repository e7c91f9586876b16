package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourseProgress_Defaults(t *testing.T) {
	p := NewCourseProgress()

	assert.Equal(t, 0, p.CurrentDay)
	assert.Empty(t, p.StartDate)
	assert.Empty(t, p.CompletedDays)
	assert.Empty(t, p.CompletedTasks)
	assert.Equal(t, DefaultCoefficient, p.Coefficient)
	assert.Equal(t, ModeNotStarted, p.Mode())
}

func TestStartCourse(t *testing.T) {
	p := NewCourseProgress()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	p.StartCourse(now)

	assert.Equal(t, 1, p.CurrentDay)
	assert.Equal(t, "2026-03-01", p.StartDate)
	assert.Equal(t, ModeActive, p.Mode())
}

func TestStartCourse_RestartOverwritesStartDate(t *testing.T) {
	p := NewCourseProgress()
	p.StartCourse(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	p.CompleteDay(1)
	p.CompleteDay(2)

	p.StartCourse(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-04-01", p.StartDate)
	assert.Equal(t, 1, p.CurrentDay)
	// Completed days survive a restart.
	assert.ElementsMatch(t, []int{1, 2}, p.CompletedDays)
}

func TestCompleteDay(t *testing.T) {
	p := NewCourseProgress()
	p.StartCourse(time.Now())

	p.CompleteDay(1)
	assert.Equal(t, []int{1}, p.CompletedDays)
	assert.Equal(t, 2, p.CurrentDay)

	// Idempotent on the set, current day never regresses.
	p.CompleteDay(1)
	assert.Equal(t, []int{1}, p.CompletedDays)
	assert.Equal(t, 2, p.CurrentDay)

	// Completing an earlier day after a later one keeps the max.
	p.CompleteDay(5)
	assert.Equal(t, 6, p.CurrentDay)
	p.CompleteDay(3)
	assert.Equal(t, 6, p.CurrentDay)
	assert.ElementsMatch(t, []int{1, 5, 3}, p.CompletedDays)
}

func TestToggleTask_SelfInverse(t *testing.T) {
	p := NewCourseProgress()

	p.ToggleTask(3, "morning-3-1")
	assert.True(t, p.IsTaskCompleted(3, "morning-3-1"))

	p.ToggleTask(3, "morning-3-1")
	assert.False(t, p.IsTaskCompleted(3, "morning-3-1"))

	// The day key remains with an empty list after the last untoggle.
	assert.Contains(t, p.CompletedTasks, DayKey(3))
	assert.Empty(t, p.CompletedTasks[DayKey(3)])
}

func TestToggleTask_IsolatedPerDay(t *testing.T) {
	p := NewCourseProgress()

	p.ToggleTask(1, "morning-1-1")
	p.ToggleTask(2, "morning-2-1")

	assert.True(t, p.IsTaskCompleted(1, "morning-1-1"))
	assert.False(t, p.IsTaskCompleted(2, "morning-1-1"))
	assert.Equal(t, 1, p.CompletedTaskCount(1))
	assert.Equal(t, 1, p.CompletedTaskCount(2))
	assert.Equal(t, 0, p.CompletedTaskCount(3))
}

func TestUpdateMeasurements_MergesAndStampsDate(t *testing.T) {
	p := NewCourseProgress()
	weight := 65.5
	waist := 70.0

	p.UpdateMeasurements(SlotInitial, MeasurementPatch{Weight: &weight}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	m := p.Measurements.Slot(SlotInitial)
	require.NotNil(t, m.Weight)
	assert.Equal(t, 65.5, *m.Weight)
	assert.Nil(t, m.Waist)
	assert.Equal(t, "2026-03-01", m.Date)

	// A later partial update keeps the weight and advances the date.
	p.UpdateMeasurements(SlotInitial, MeasurementPatch{Waist: &waist}, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, m.Weight)
	assert.Equal(t, 65.5, *m.Weight)
	require.NotNil(t, m.Waist)
	assert.Equal(t, 70.0, *m.Waist)
	assert.Equal(t, "2026-03-02", m.Date)
}

func TestUpdateMeasurements_UnknownSlotIgnored(t *testing.T) {
	p := NewCourseProgress()
	weight := 65.5

	p.UpdateMeasurements(MeasurementSlot("week9"), MeasurementPatch{Weight: &weight}, time.Now())

	assert.Nil(t, p.Measurements.Initial.Weight)
	assert.Empty(t, p.Measurements.Initial.Date)
}

func TestLogWater_Additive(t *testing.T) {
	p := NewCourseProgress()

	p.LogWater("2026-03-01", 250)
	p.LogWater("2026-03-01", 500)
	p.LogWater("2026-03-02", 250)

	assert.Equal(t, 750, p.WaterFor("2026-03-01"))
	assert.Equal(t, 250, p.WaterFor("2026-03-02"))
	assert.Equal(t, 0, p.WaterFor("2026-03-03"))
}

func TestLogSteps_LastWriteWins(t *testing.T) {
	p := NewCourseProgress()

	p.LogSteps("2026-03-01", 5000)
	p.LogSteps("2026-03-01", 12000)

	assert.Equal(t, 12000, p.StepsFor("2026-03-01"))
}

func TestAddNote_Replaces(t *testing.T) {
	p := NewCourseProgress()

	p.AddNote("2026-03-01", "первая")
	p.AddNote("2026-03-01", "вторая")

	assert.Equal(t, "вторая", p.NoteFor("2026-03-01"))
	assert.Empty(t, p.NoteFor("2026-03-02"))
}

func TestToggleChecklists(t *testing.T) {
	p := NewCourseProgress()

	p.TogglePreparationItem("prep-1")
	p.ToggleShoppingItem("veg-1")
	assert.True(t, p.IsPreparationItemDone("prep-1"))
	assert.True(t, p.IsShoppingItemDone("veg-1"))

	p.TogglePreparationItem("prep-1")
	p.ToggleShoppingItem("veg-1")
	assert.False(t, p.IsPreparationItemDone("prep-1"))
	assert.False(t, p.IsShoppingItemDone("veg-1"))
}

func TestMode_Derivation(t *testing.T) {
	p := NewCourseProgress()
	assert.Equal(t, ModeNotStarted, p.Mode())

	p.StartCourse(time.Now())
	assert.Equal(t, ModeActive, p.Mode())

	for day := 1; day <= CourseLengthDays; day++ {
		p.CompleteDay(day)
	}
	assert.Equal(t, ModeCompleted, p.Mode())
}

func TestDayStatusFor(t *testing.T) {
	p := NewCourseProgress()
	p.StartCourse(time.Now())
	p.CompleteDay(1)

	assert.Equal(t, StatusCompleted, p.DayStatusFor(1))
	assert.Equal(t, StatusCurrent, p.DayStatusFor(2))
	// Days ahead are never locked.
	assert.Equal(t, StatusAvailable, p.DayStatusFor(3))
	assert.Equal(t, StatusAvailable, p.DayStatusFor(20))
}

func TestCompletionPercent(t *testing.T) {
	p := NewCourseProgress()
	assert.Equal(t, 0.0, p.CompletionPercent())

	for day := 1; day <= 5; day++ {
		p.CompleteDay(day)
	}
	assert.InDelta(t, 25.0, p.CompletionPercent(), 0.001)
}

func TestSerialization_RoundTrip(t *testing.T) {
	p := NewCourseProgress()
	p.StartCourse(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	p.CompleteDay(1)
	p.ToggleTask(2, "morning-2-1")
	p.LogWater("2026-03-02", 750)
	p.LogSteps("2026-03-02", 11000)
	p.AddNote("2026-03-02", "хороший день")
	p.SetCoefficient(1.2)
	weight := 65.5
	p.UpdateMeasurements(SlotInitial, MeasurementPatch{Weight: &weight}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	restored := NewCourseProgress()
	require.NoError(t, json.Unmarshal(raw, restored))
	restored.Normalize()

	assert.Equal(t, p, restored)
	assert.Equal(t, SchemaVersion, restored.Version)
}

func TestNormalize_FillsPreVersioningDocument(t *testing.T) {
	// A document stored before versioning: no tag, missing maps.
	raw := []byte(`{"currentDay":3,"startDate":"2026-03-01","completedDays":[1,2]}`)

	p := NewCourseProgress()
	require.NoError(t, json.Unmarshal(raw, p))
	p.Normalize()

	assert.Equal(t, SchemaVersion, p.Version)
	assert.Equal(t, 3, p.CurrentDay)
	assert.Equal(t, []int{1, 2}, p.CompletedDays)
	assert.NotNil(t, p.CompletedTasks)
	assert.NotNil(t, p.WaterIntake)
	assert.Equal(t, DefaultCoefficient, p.Coefficient)
	assert.Equal(t, ModeActive, p.Mode())
}
