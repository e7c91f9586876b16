package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionCourse      = "course"
	actionDay         = "day"
	actionDays        = "days"
	actionTask        = "task"
	actionTrackers    = "trackers"
	actionRecipes     = "recipes"
	actionRecipe      = "recipe"
	actionWorkouts    = "workouts"
	actionInfo        = "info"
	actionPrep        = "prep"
	actionShop        = "shop"
	actionProfile     = "profile"
	actionMeasure     = "measure"
	actionCoef        = "coef"
	actionSettings    = "settings"
	actionReset       = "reset"
	actionLeaderboard = "lb"
)

// Course sub-actions.
const (
	courseStart = "start"
)

// Day sub-actions.
const (
	dayComplete = "complete"
	dayWater    = "water"
)

// Trackers sub-actions.
const (
	trackersWater = "water"
	trackersSteps = "steps"
	trackersNote  = "note"
)

// Settings sub-actions.
const (
	settingsTextMode  = "textmode"
	settingsReminders = "reminders"
	settingsCoef      = "coef"
)

// Reminder sub-actions.
const (
	reminderToggle = "toggle"
	reminderHour   = "hour"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

const (
	leaderboardRefresh = "refresh"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildCourseStartCallback() string {
	return callbackData{Action: actionCourse, Params: []string{courseStart}}.encode()
}

// buildDayCallback builds callback data for opening a day page.
func buildDayCallback(day int) string {
	return callbackData{
		Action: actionDay,
		Params: []string{strconv.Itoa(day)},
	}.encode()
}

// buildDayCompleteCallback builds callback data for finishing a day.
func buildDayCompleteCallback(day int) string {
	return callbackData{
		Action: actionDay,
		Params: []string{strconv.Itoa(day), dayComplete},
	}.encode()
}

// buildDayWaterCallback builds callback data for logging water from a day page.
func buildDayWaterCallback(day, amount int) string {
	return callbackData{
		Action: actionDay,
		Params: []string{strconv.Itoa(day), dayWater, strconv.Itoa(amount)},
	}.encode()
}

func buildDaysCallback() string {
	return actionDays
}

// buildTaskCallback builds callback data for toggling one task of a day.
func buildTaskCallback(day int, taskID string) string {
	return callbackData{
		Action: actionTask,
		Params: []string{strconv.Itoa(day), taskID},
	}.encode()
}

func buildTrackersCallback() string {
	return actionTrackers
}

func buildTrackersWaterCallback(amount int) string {
	return callbackData{
		Action: actionTrackers,
		Params: []string{trackersWater, strconv.Itoa(amount)},
	}.encode()
}

func buildTrackersStepsCallback() string {
	return callbackData{Action: actionTrackers, Params: []string{trackersSteps}}.encode()
}

func buildTrackersNoteCallback() string {
	return callbackData{Action: actionTrackers, Params: []string{trackersNote}}.encode()
}

// buildRecipesCallback builds callback data for a recipe category list, or the
// category menu when called without a category.
func buildRecipesCallback(category ...string) string {
	return callbackData{Action: actionRecipes, Params: category}.encode()
}

// buildRecipeCallback builds callback data for opening one recipe.
func buildRecipeCallback(id string) string {
	return callbackData{Action: actionRecipe, Params: []string{id}}.encode()
}

func buildWorkoutsCallback(category ...string) string {
	return callbackData{Action: actionWorkouts, Params: category}.encode()
}

func buildInfoCallback(category ...string) string {
	return callbackData{Action: actionInfo, Params: category}.encode()
}

// buildPrepCallback builds callback data for toggling a preparation item.
func buildPrepCallback(itemID string) string {
	return callbackData{Action: actionPrep, Params: []string{itemID}}.encode()
}

// buildShopCallback builds callback data for the shopping menu, one category,
// or toggling one item inside a category.
func buildShopCallback(params ...string) string {
	return callbackData{Action: actionShop, Params: params}.encode()
}

func buildProfileCallback() string {
	return actionProfile
}

// buildMeasureCallback builds callback data for starting measurement input for
// a checkpoint slot.
func buildMeasureCallback(slot string) string {
	return callbackData{Action: actionMeasure, Params: []string{slot}}.encode()
}

// buildCoefCallback builds callback data for picking a portion coefficient.
func buildCoefCallback(value string) string {
	return callbackData{Action: actionCoef, Params: []string{value}}.encode()
}

func buildSettingsTextModeCallback() string {
	return callbackData{Action: actionSettings, Params: []string{settingsTextMode}}.encode()
}

func buildSettingsCoefCallback() string {
	return callbackData{Action: actionSettings, Params: []string{settingsCoef}}.encode()
}

func buildReminderToggleCallback() string {
	return callbackData{
		Action: actionSettings,
		Params: []string{settingsReminders, reminderToggle},
	}.encode()
}

func buildReminderHourCallback(hour int) string {
	return callbackData{
		Action: actionSettings,
		Params: []string{settingsReminders, reminderHour, strconv.Itoa(hour)},
	}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}

func buildLeaderboardRefreshCallback() string {
	return callbackData{Action: actionLeaderboard, Params: []string{leaderboardRefresh}}.encode()
}
