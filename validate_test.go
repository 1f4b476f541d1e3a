package main

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidateStructReturnsBadRequest(t *testing.T) {
	err := validateStruct(dietEntry{FoodName: "Oats", Meal: "elevenses", Status: statusTaken})
	var se *statusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "meal must be one of: breakfast, lunch, dinner, snack", se.Message)
}

func TestNewDietEntryDefaults(t *testing.T) {
	e, err := newDietEntry(testUserID, createDietEntryRequest{
		FoodName: "Apple", Meal: mealSnack,
		Calories: ptr(95.0), Carbs: ptr(25.0), Protein: ptr(0.5), Fat: ptr(0.3),
	})
	require.NoError(t, err)
	assert.Equal(t, statusTaken, e.Status)
	assert.Equal(t, today().String(), e.Date.String())
	assert.Nil(t, e.GoalID)
}

func TestNewDietEntryAcceptsZeroMacros(t *testing.T) {
	_, err := newDietEntry(testUserID, createDietEntryRequest{
		FoodName: "Water", Meal: mealLunch,
		Calories: ptr(0.0), Carbs: ptr(0.0), Protein: ptr(0.0), Fat: ptr(0.0),
	})
	assert.NoError(t, err)
}

func TestApplyGoalRequestKeepsUnsentFields(t *testing.T) {
	g := goal{
		Title: "Fat", Metric: metricFat, TargetValue: 60, Period: periodWeekly,
		StartDate: DateOnly{mustDate("2024-03-01")}, Status: goalActive,
	}
	got, err := applyGoalRequest(g, goalRequest{TargetValue: ptr(70.0)})
	require.NoError(t, err)
	assert.Equal(t, 70.0, got.TargetValue)
	assert.Equal(t, periodWeekly, got.Period)
	assert.Equal(t, "2024-03-01", got.StartDate.String())

	_, err = applyGoalRequest(g, goalRequest{EndDate: ptr("2024-02-01")})
	assert.Error(t, err)
}

func TestApplySleepRequest(t *testing.T) {
	bed := time.Date(2024, 5, 1, 22, 15, 0, 0, time.UTC)
	r := sleepRecord{Quality: 2}

	got, err := applySleepRequest(r, sleepRequest{BedTime: &bed, WakeTime: ptr(bed.Add(8*time.Hour + 30*time.Second))})
	require.NoError(t, err)
	assert.Equal(t, 480, got.DurationMinutes)

	_, err = applySleepRequest(r, sleepRequest{BedTime: &bed, WakeTime: ptr(bed.Add(30 * time.Second))})
	assert.EqualError(t, err, "sleep must last at least one minute")

	_, err = applySleepRequest(r, sleepRequest{BedTime: &bed, WakeTime: &bed})
	assert.EqualError(t, err, "wake_time must be after bed_time")
}
