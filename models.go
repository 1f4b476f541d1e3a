package main

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

// Value lets DateOnly be passed straight into query args. The pool runs in
// simple protocol mode, so the text form is what reaches the server.
func (d DateOnly) Value() (driver.Value, error) {
	return d.Time.Format(dateLayout), nil
}

func (d DateOnly) String() string { return d.Time.Format(dateLayout) }

// parseDate parses a YYYY-MM-DD string into a DateOnly.
func parseDate(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{t}, nil
}

// today returns the current UTC date.
func today() DateOnly {
	return DateOnly{time.Now().UTC().Truncate(24 * time.Hour)}
}

/* ─── Enumerations ───────────────────────────────────────────────────── */

// Meal buckets. The order here is the order of the summary breakdown.
const (
	mealBreakfast = "breakfast"
	mealLunch     = "lunch"
	mealDinner    = "dinner"
	mealSnack     = "snack"
)

// Diet entry statuses.
const (
	statusTaken   = "taken"
	statusNext    = "next"
	statusOverdue = "overdue"
	statusSkipped = "skipped"
)

// Goal metrics, periods and statuses.
const (
	metricCalories     = "calories"
	metricCarbs        = "carbs"
	metricProtein      = "protein"
	metricFat          = "fat"
	metricSleepMinutes = "sleep_minutes"

	periodDaily  = "daily"
	periodWeekly = "weekly"

	goalActive    = "active"
	goalCompleted = "completed"
	goalAbandoned = "abandoned"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. Password is hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// dietEntry maps to diet_entries: one logged food intake. The validate tags
// are the write-side contract enforced by newDietEntry; the aggregator reads
// whatever the store hands it.
type dietEntry struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      DateOnly   `json:"date" db:"date"`
	FoodName  string     `json:"food_name" db:"food_name" validate:"required,max=200"`
	Meal      string     `json:"meal" db:"meal" validate:"required,oneof=breakfast lunch dinner snack"`
	Calories  float64    `json:"calories" db:"calories" validate:"gte=0"`
	Carbs     float64    `json:"carbs" db:"carbs" validate:"gte=0"`
	Protein   float64    `json:"protein" db:"protein" validate:"gte=0"`
	Fat       float64    `json:"fat" db:"fat" validate:"gte=0"`
	Status    string     `json:"status" db:"status" validate:"required,oneof=taken next overdue skipped"`
	GoalID    *uuid.UUID `json:"goal_id" db:"goal_id"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// goal maps to goals. Nutrition metrics are tracked against diet entries
// linked by goal_id; sleep_minutes against sleep records.
type goal struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      int        `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title" validate:"required,max=120"`
	Description string     `json:"description" db:"description" validate:"max=1000"`
	Metric      string     `json:"metric" db:"metric" validate:"required,oneof=calories carbs protein fat sleep_minutes"`
	TargetValue float64    `json:"target_value" db:"target_value" validate:"gt=0"`
	Period      string     `json:"period" db:"period" validate:"required,oneof=daily weekly"`
	StartDate   DateOnly   `json:"start_date" db:"start_date"`
	EndDate     *DateOnly  `json:"end_date" db:"end_date"`
	Status      string     `json:"status" db:"status" validate:"required,oneof=active completed abandoned"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// sleepRecord maps to sleep_records. One row per user per date; the
// UNIQUE(user_id, date) constraint makes POST an upsert.
type sleepRecord struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UserID          int        `json:"user_id" db:"user_id"`
	Date            DateOnly   `json:"date" db:"date"`
	BedTime         time.Time  `json:"bed_time" db:"bed_time"`
	WakeTime        time.Time  `json:"wake_time" db:"wake_time"`
	DurationMinutes int        `json:"duration_minutes" db:"duration_minutes"`
	Quality         int        `json:"quality" db:"quality" validate:"min=1,max=5"`
	Notes           string     `json:"notes" db:"notes" validate:"max=1000"`
	CreatedAt       *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at" db:"updated_at"`
}

// profile maps to profiles. All body fields are nullable; a fresh user has
// an empty row and still gets a valid response.
type profile struct {
	UserID         int        `json:"user_id"          db:"user_id"`
	Sex            *string    `json:"sex"              db:"sex"`
	DateOfBirth    *DateOnly  `json:"date_of_birth"    db:"date_of_birth"`
	HeightCM       *float64   `json:"height_cm"        db:"height_cm"`
	WeightKG       *float64   `json:"weight_kg"        db:"weight_kg"`
	ActivityLevel  *string    `json:"activity_level"   db:"activity_level"`
	TargetWeightKG *float64   `json:"target_weight_kg" db:"target_weight_kg"`
	TargetDate     *DateOnly  `json:"target_date"      db:"target_date"`
	UpdatedAt      *time.Time `json:"updated_at"       db:"updated_at"`

	// Computed fields, populated server-side from the body fields.
	// db:"-" tells RowToStructByName to skip these during scanning.
	ComputedBMR         *int     `json:"computed_bmr,omitempty"         db:"-"`
	ComputedTDEE        *int     `json:"computed_tdee,omitempty"        db:"-"`
	RecommendedCalories *int     `json:"recommended_calories,omitempty" db:"-"`
	PaceKGPerWeek       *float64 `json:"pace_kg_per_week,omitempty"     db:"-"`
}

/* ─── Query filters and patches ──────────────────────────────────────── */

// dietFilter narrows ListDietEntries. Empty strings and nil pointers mean
// "no constraint". Start and End are inclusive YYYY-MM-DD bounds.
type dietFilter struct {
	Start  string
	End    string
	Meal   string
	Status string
	GoalID *uuid.UUID
}

// dietEntryPatch is the request body for PUT /api/diet/:id. Nil fields keep
// their stored value.
type dietEntryPatch struct {
	Date     *string    `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	FoodName *string    `json:"food_name" validate:"omitempty,min=1,max=200"`
	Meal     *string    `json:"meal"      validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Calories *float64   `json:"calories"  validate:"omitempty,gte=0"`
	Carbs    *float64   `json:"carbs"     validate:"omitempty,gte=0"`
	Protein  *float64   `json:"protein"   validate:"omitempty,gte=0"`
	Fat      *float64   `json:"fat"       validate:"omitempty,gte=0"`
	Status   *string    `json:"status"    validate:"omitempty,oneof=taken next overdue skipped"`
	GoalID   *uuid.UUID `json:"goal_id"`
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers; only non-nil fields get written to the database.
type patchProfileRequest struct {
	Sex            *string  `json:"sex"              validate:"omitempty,oneof=male female"`
	DateOfBirth    *string  `json:"date_of_birth"    validate:"omitempty,datetime=2006-01-02"`
	HeightCM       *float64 `json:"height_cm"        validate:"omitempty,gt=0,lt=300"`
	WeightKG       *float64 `json:"weight_kg"        validate:"omitempty,gt=0,lt=700"`
	ActivityLevel  *string  `json:"activity_level"   validate:"omitempty,oneof=sedentary light moderate active very_active"`
	TargetWeightKG *float64 `json:"target_weight_kg" validate:"omitempty,gt=0,lt=700"`
	TargetDate     *string  `json:"target_date"      validate:"omitempty,datetime=2006-01-02"`
}
