package main

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is safe for concurrent use and caches struct metadata, so one
// instance serves the whole process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names ("food_name") instead of Go names ("FoodName").
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct's validate tags and turns the first failure
// into a 400 statusError naming the field.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return badRequest(describeFieldError(verrs[0]))
	}
	return badRequest("invalid request body")
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return field + " must be at least " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "lt":
		return field + " must be less than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must not be empty"
		}
		return field + " must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return field + " must be at most " + fe.Param() + " characters"
		}
		return field + " must be at most " + fe.Param()
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	}
	return field + " is invalid"
}

/* ─── Validated constructors ─────────────────────────────────────────── */

// createDietEntryRequest is the request body for POST /api/diet.
// Macro fields are pointers so a missing value is distinguishable from 0.
type createDietEntryRequest struct {
	Date     string     `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	FoodName string     `json:"food_name" validate:"required,max=200"`
	Meal     string     `json:"meal"      validate:"required,oneof=breakfast lunch dinner snack"`
	Calories *float64   `json:"calories"  validate:"required,gte=0"`
	Carbs    *float64   `json:"carbs"     validate:"required,gte=0"`
	Protein  *float64   `json:"protein"   validate:"required,gte=0"`
	Fat      *float64   `json:"fat"       validate:"required,gte=0"`
	Status   string     `json:"status"    validate:"omitempty,oneof=taken next overdue skipped"`
	GoalID   *uuid.UUID `json:"goal_id"`
}

// newDietEntry builds a validated diet entry for userID. Date defaults to
// today and status to "taken".
func newDietEntry(userID int, req createDietEntryRequest) (dietEntry, error) {
	if err := validateStruct(req); err != nil {
		return dietEntry{}, err
	}

	date := today()
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return dietEntry{}, badRequest("date must be a date in YYYY-MM-DD format")
		}
		date = d
	}
	status := req.Status
	if status == "" {
		status = statusTaken
	}

	e := dietEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date,
		FoodName: strings.TrimSpace(req.FoodName),
		Meal:     req.Meal,
		Calories: *req.Calories,
		Carbs:    *req.Carbs,
		Protein:  *req.Protein,
		Fat:      *req.Fat,
		Status:   status,
		GoalID:   req.GoalID,
	}
	if err := validateStruct(e); err != nil {
		return dietEntry{}, err
	}
	return e, nil
}

// goalRequest is the request body for POST /api/goals and PUT /api/goals/:id.
// On PUT, nil fields keep their stored value.
type goalRequest struct {
	Title       *string  `json:"title"        validate:"omitempty,min=1,max=120"`
	Description *string  `json:"description"  validate:"omitempty,max=1000"`
	Metric      *string  `json:"metric"       validate:"omitempty,oneof=calories carbs protein fat sleep_minutes"`
	TargetValue *float64 `json:"target_value" validate:"omitempty,gt=0"`
	Period      *string  `json:"period"       validate:"omitempty,oneof=daily weekly"`
	StartDate   *string  `json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	Status      *string  `json:"status"       validate:"omitempty,oneof=active completed abandoned"`
}

// newGoal builds a validated goal from a create request. Period defaults to
// daily, start date to today and status to active.
func newGoal(userID int, req goalRequest) (goal, error) {
	if req.Title == nil {
		return goal{}, badRequest("title is required")
	}
	if req.Metric == nil {
		return goal{}, badRequest("metric is required")
	}
	if req.TargetValue == nil {
		return goal{}, badRequest("target_value is required")
	}
	g := goal{
		ID:        uuid.New(),
		UserID:    userID,
		Period:    periodDaily,
		StartDate: today(),
		Status:    goalActive,
	}
	return applyGoalRequest(g, req)
}

// applyGoalRequest merges the non-nil request fields into g and validates
// the result, including the start/end ordering.
func applyGoalRequest(g goal, req goalRequest) (goal, error) {
	if err := validateStruct(req); err != nil {
		return goal{}, err
	}
	if req.Title != nil {
		g.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.Metric != nil {
		g.Metric = *req.Metric
	}
	if req.TargetValue != nil {
		g.TargetValue = *req.TargetValue
	}
	if req.Period != nil {
		g.Period = *req.Period
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return goal{}, badRequest("start_date must be a date in YYYY-MM-DD format")
		}
		g.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return goal{}, badRequest("end_date must be a date in YYYY-MM-DD format")
		}
		g.EndDate = &d
	}
	if req.Status != nil {
		g.Status = *req.Status
	}

	if err := validateStruct(g); err != nil {
		return goal{}, err
	}
	if g.EndDate != nil && g.EndDate.Before(g.StartDate.Time) {
		return goal{}, badRequest("end_date must not be before start_date")
	}
	return g, nil
}

// sleepRequest is the request body for POST /api/sleep and PUT /api/sleep/:id.
type sleepRequest struct {
	Date     *string    `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	BedTime  *time.Time `json:"bed_time"`
	WakeTime *time.Time `json:"wake_time"`
	Quality  *int       `json:"quality"   validate:"omitempty,min=1,max=5"`
	Notes    *string    `json:"notes"     validate:"omitempty,max=1000"`
}

const maxSleepDuration = 24 * time.Hour

// newSleepRecord builds a validated sleep record from a create request.
// Date defaults to the calendar day of the wake time.
func newSleepRecord(userID int, req sleepRequest) (sleepRecord, error) {
	if req.BedTime == nil {
		return sleepRecord{}, badRequest("bed_time is required")
	}
	if req.WakeTime == nil {
		return sleepRecord{}, badRequest("wake_time is required")
	}
	if req.Quality == nil {
		return sleepRecord{}, badRequest("quality is required")
	}
	r := sleepRecord{ID: uuid.New(), UserID: userID}
	if req.Date == nil {
		w := req.WakeTime.UTC()
		r.Date = DateOnly{time.Date(w.Year(), w.Month(), w.Day(), 0, 0, 0, 0, time.UTC)}
	}
	return applySleepRequest(r, req)
}

// applySleepRequest merges the non-nil request fields into r, recomputes the
// duration and validates the result.
func applySleepRequest(r sleepRecord, req sleepRequest) (sleepRecord, error) {
	if err := validateStruct(req); err != nil {
		return sleepRecord{}, err
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			return sleepRecord{}, badRequest("date must be a date in YYYY-MM-DD format")
		}
		r.Date = d
	}
	if req.BedTime != nil {
		r.BedTime = *req.BedTime
	}
	if req.WakeTime != nil {
		r.WakeTime = *req.WakeTime
	}
	if req.Quality != nil {
		r.Quality = *req.Quality
	}
	if req.Notes != nil {
		r.Notes = *req.Notes
	}

	d := r.WakeTime.Sub(r.BedTime)
	if d <= 0 {
		return sleepRecord{}, badRequest("wake_time must be after bed_time")
	}
	if d > maxSleepDuration {
		return sleepRecord{}, badRequest("sleep must not exceed 24 hours")
	}
	r.DurationMinutes = int(d.Minutes())
	if r.DurationMinutes == 0 {
		return sleepRecord{}, badRequest("sleep must last at least one minute")
	}

	if err := validateStruct(r); err != nil {
		return sleepRecord{}, err
	}
	return r, nil
}
