package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:generate mockgen -source=store.go -destination=store_mock_test.go -package=main store

// store is the persistence boundary for the handlers. Every method is scoped
// to a user; rows owned by someone else behave as missing (errNotFound).
type store interface {
	Ping(ctx context.Context) error

	UserByUsername(ctx context.Context, username string) (user, error)

	ListDietEntries(ctx context.Context, userID int, f dietFilter) ([]dietEntry, error)
	GetDietEntry(ctx context.Context, userID int, id uuid.UUID) (dietEntry, error)
	CreateDietEntry(ctx context.Context, e dietEntry) (dietEntry, error)
	UpdateDietEntry(ctx context.Context, userID int, id uuid.UUID, p dietEntryPatch) (dietEntry, error)
	DeleteDietEntry(ctx context.Context, userID int, id uuid.UUID) error

	ListGoals(ctx context.Context, userID int, status string) ([]goal, error)
	GetGoal(ctx context.Context, userID int, id uuid.UUID) (goal, error)
	ActiveGoal(ctx context.Context, userID int, metric string, on DateOnly) (goal, error)
	CreateGoal(ctx context.Context, g goal) (goal, error)
	UpdateGoal(ctx context.Context, g goal) (goal, error)
	DeleteGoal(ctx context.Context, userID int, id uuid.UUID) error

	ListSleepRecords(ctx context.Context, userID int, start, end string) ([]sleepRecord, error)
	GetSleepRecord(ctx context.Context, userID int, id uuid.UUID) (sleepRecord, error)
	UpsertSleepRecord(ctx context.Context, r sleepRecord) (sleepRecord, error)
	UpdateSleepRecord(ctx context.Context, r sleepRecord) (sleepRecord, error)
	DeleteSleepRecord(ctx context.Context, userID int, id uuid.UUID) error

	GetProfile(ctx context.Context, userID int) (profile, error)
	PatchProfile(ctx context.Context, userID int, p patchProfileRequest) (profile, error)
}

// pgStore implements store on a pgx connection pool.
type pgStore struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func newPGStore(pool *pgxpool.Pool, log *zap.Logger) *pgStore {
	return &pgStore{pool: pool, log: log}
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs scan errors other than no-rows for debugging (e.g. struct/column mismatches).
func queryOne[T any](ctx context.Context, s *pgStore, sql string, args pgx.NamedArgs) (T, error) {
	var zero T
	rows, err := s.pool.Query(ctx, sql, args)
	if err != nil {
		return zero, translateErr(err)
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if isScanErr(err) {
			s.log.Error("scan row", zap.String("type", fmt.Sprintf("%T", zero)), zap.Error(err))
		}
		return zero, translateErr(err)
	}
	return result, nil
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
// Returns an empty slice, never nil, so handlers serialize [] rather than null.
func queryMany[T any](ctx context.Context, s *pgStore, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := s.pool.Query(ctx, sql, args)
	if err != nil {
		return nil, translateErr(err)
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		if isScanErr(err) {
			var zero T
			s.log.Error("scan rows", zap.String("type", fmt.Sprintf("%T", zero)), zap.Error(err))
		}
		return nil, translateErr(err)
	}
	if results == nil {
		results = []T{}
	}
	return results, nil
}

// execOne runs a statement that must touch exactly one row.
func (s *pgStore) execOne(ctx context.Context, sql string, args pgx.NamedArgs) error {
	tag, err := s.pool.Exec(ctx, sql, args)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

// isScanErr reports whether err came from mapping columns onto the struct
// rather than from the server or an empty result.
func isScanErr(err error) bool {
	var pgErr *pgconn.PgError
	return !errors.Is(err, pgx.ErrNoRows) && !errors.As(err, &pgErr) && !errors.Is(err, context.Canceled)
}

// translateErr maps driver errors onto the store's sentinel errors.
func translateErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", errNotFound, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", errConflict, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return badRequest("referenced record does not exist")
		case "23514": // check_violation
			return badRequest("value violates constraint " + pgErr.ConstraintName)
		}
	}
	return err
}

func (s *pgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

/* ─── Users ───────────────────────────────────────────────────────────── */

func (s *pgStore) UserByUsername(ctx context.Context, username string) (user, error) {
	return queryOne[user](ctx, s,
		"SELECT * FROM users WHERE username = @username",
		pgx.NamedArgs{"username": username})
}

/* ─── Diet entries ────────────────────────────────────────────────────── */

func (s *pgStore) ListDietEntries(ctx context.Context, userID int, f dietFilter) ([]dietEntry, error) {
	where := []string{"user_id = @userID"}
	args := pgx.NamedArgs{"userID": userID}

	if f.Start != "" {
		where = append(where, "date >= @start")
		args["start"] = f.Start
	}
	if f.End != "" {
		where = append(where, "date <= @end")
		args["end"] = f.End
	}
	if f.Meal != "" {
		where = append(where, "meal = @meal")
		args["meal"] = f.Meal
	}
	if f.Status != "" {
		where = append(where, "status = @status")
		args["status"] = f.Status
	}
	if f.GoalID != nil {
		where = append(where, "goal_id = @goalID")
		args["goalID"] = *f.GoalID
	}

	return queryMany[dietEntry](ctx, s,
		"SELECT * FROM diet_entries WHERE "+strings.Join(where, " AND ")+
			" ORDER BY date ASC, created_at ASC", args)
}

func (s *pgStore) GetDietEntry(ctx context.Context, userID int, id uuid.UUID) (dietEntry, error) {
	return queryOne[dietEntry](ctx, s,
		"SELECT * FROM diet_entries WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
}

func (s *pgStore) CreateDietEntry(ctx context.Context, e dietEntry) (dietEntry, error) {
	return queryOne[dietEntry](ctx, s,
		`INSERT INTO diet_entries (id, user_id, date, food_name, meal, calories, carbs, protein, fat, status, goal_id)
		 VALUES (@id, @userID, @date, @foodName, @meal, @calories, @carbs, @protein, @fat, @status, @goalID)
		 RETURNING *`,
		pgx.NamedArgs{
			"id": e.ID, "userID": e.UserID, "date": e.Date, "foodName": e.FoodName,
			"meal": e.Meal, "calories": e.Calories, "carbs": e.Carbs,
			"protein": e.Protein, "fat": e.Fat, "status": e.Status, "goalID": e.GoalID,
		})
}

// UpdateDietEntry uses COALESCE so omitted fields keep their current value.
func (s *pgStore) UpdateDietEntry(ctx context.Context, userID int, id uuid.UUID, p dietEntryPatch) (dietEntry, error) {
	return queryOne[dietEntry](ctx, s,
		`UPDATE diet_entries SET
			date       = COALESCE(@date::date, date),
			food_name  = COALESCE(@foodName, food_name),
			meal       = COALESCE(@meal, meal),
			calories   = COALESCE(@calories, calories),
			carbs      = COALESCE(@carbs, carbs),
			protein    = COALESCE(@protein, protein),
			fat        = COALESCE(@fat, fat),
			status     = COALESCE(@status, status),
			goal_id    = COALESCE(@goalID::uuid, goal_id),
			updated_at = now()
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"id": id, "userID": userID,
			"date": p.Date, "foodName": p.FoodName, "meal": p.Meal,
			"calories": p.Calories, "carbs": p.Carbs, "protein": p.Protein,
			"fat": p.Fat, "status": p.Status, "goalID": p.GoalID,
		})
}

func (s *pgStore) DeleteDietEntry(ctx context.Context, userID int, id uuid.UUID) error {
	return s.execOne(ctx,
		"DELETE FROM diet_entries WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
}

/* ─── Goals ───────────────────────────────────────────────────────────── */

func (s *pgStore) ListGoals(ctx context.Context, userID int, status string) ([]goal, error) {
	sql := "SELECT * FROM goals WHERE user_id = @userID"
	args := pgx.NamedArgs{"userID": userID}
	if status != "" {
		sql += " AND status = @status"
		args["status"] = status
	}
	return queryMany[goal](ctx, s, sql+" ORDER BY start_date DESC, created_at DESC", args)
}

func (s *pgStore) GetGoal(ctx context.Context, userID int, id uuid.UUID) (goal, error) {
	return queryOne[goal](ctx, s,
		"SELECT * FROM goals WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
}

// ActiveGoal returns the most recently started active goal for metric whose
// date window contains on.
func (s *pgStore) ActiveGoal(ctx context.Context, userID int, metric string, on DateOnly) (goal, error) {
	return queryOne[goal](ctx, s,
		`SELECT * FROM goals
		 WHERE user_id = @userID AND metric = @metric AND status = 'active'
		   AND start_date <= @on AND (end_date IS NULL OR end_date >= @on)
		 ORDER BY start_date DESC, created_at DESC
		 LIMIT 1`,
		pgx.NamedArgs{"userID": userID, "metric": metric, "on": on})
}

func (s *pgStore) CreateGoal(ctx context.Context, g goal) (goal, error) {
	return queryOne[goal](ctx, s,
		`INSERT INTO goals (id, user_id, title, description, metric, target_value, period, start_date, end_date, status)
		 VALUES (@id, @userID, @title, @description, @metric, @targetValue, @period, @startDate, @endDate, @status)
		 RETURNING *`,
		goalArgs(g))
}

// UpdateGoal writes every mutable column; callers merge and validate first.
func (s *pgStore) UpdateGoal(ctx context.Context, g goal) (goal, error) {
	return queryOne[goal](ctx, s,
		`UPDATE goals SET
			title        = @title,
			description  = @description,
			metric       = @metric,
			target_value = @targetValue,
			period       = @period,
			start_date   = @startDate,
			end_date     = @endDate,
			status       = @status,
			updated_at   = now()
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		goalArgs(g))
}

func goalArgs(g goal) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id": g.ID, "userID": g.UserID, "title": g.Title, "description": g.Description,
		"metric": g.Metric, "targetValue": g.TargetValue, "period": g.Period,
		"startDate": g.StartDate, "endDate": g.EndDate, "status": g.Status,
	}
}

func (s *pgStore) DeleteGoal(ctx context.Context, userID int, id uuid.UUID) error {
	return s.execOne(ctx,
		"DELETE FROM goals WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
}

/* ─── Sleep records ───────────────────────────────────────────────────── */

func (s *pgStore) ListSleepRecords(ctx context.Context, userID int, start, end string) ([]sleepRecord, error) {
	return queryMany[sleepRecord](ctx, s,
		`SELECT * FROM sleep_records
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
}

func (s *pgStore) GetSleepRecord(ctx context.Context, userID int, id uuid.UUID) (sleepRecord, error) {
	return queryOne[sleepRecord](ctx, s,
		"SELECT * FROM sleep_records WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
}

// UpsertSleepRecord relies on UNIQUE(user_id, date): posting the same date
// updates the existing row in place and keeps its id.
func (s *pgStore) UpsertSleepRecord(ctx context.Context, r sleepRecord) (sleepRecord, error) {
	return queryOne[sleepRecord](ctx, s,
		`INSERT INTO sleep_records (id, user_id, date, bed_time, wake_time, duration_minutes, quality, notes)
		 VALUES (@id, @userID, @date, @bedTime, @wakeTime, @durationMinutes, @quality, @notes)
		 ON CONFLICT (user_id, date) DO UPDATE SET
			bed_time         = EXCLUDED.bed_time,
			wake_time        = EXCLUDED.wake_time,
			duration_minutes = EXCLUDED.duration_minutes,
			quality          = EXCLUDED.quality,
			notes            = EXCLUDED.notes,
			updated_at       = now()
		 RETURNING *`,
		sleepArgs(r))
}

// UpdateSleepRecord rewrites a record by id. Moving it onto a date that
// already has a record surfaces as errConflict.
func (s *pgStore) UpdateSleepRecord(ctx context.Context, r sleepRecord) (sleepRecord, error) {
	return queryOne[sleepRecord](ctx, s,
		`UPDATE sleep_records SET
			date             = @date,
			bed_time         = @bedTime,
			wake_time        = @wakeTime,
			duration_minutes = @durationMinutes,
			quality          = @quality,
			notes            = @notes,
			updated_at       = now()
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		sleepArgs(r))
}

func sleepArgs(r sleepRecord) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id": r.ID, "userID": r.UserID, "date": r.Date,
		"bedTime": r.BedTime, "wakeTime": r.WakeTime,
		"durationMinutes": r.DurationMinutes, "quality": r.Quality, "notes": r.Notes,
	}
}

func (s *pgStore) DeleteSleepRecord(ctx context.Context, userID int, id uuid.UUID) error {
	return s.execOne(ctx,
		"DELETE FROM sleep_records WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
}

/* ─── Profile ─────────────────────────────────────────────────────────── */

// GetProfile returns the user's profile, creating an empty row on first use.
func (s *pgStore) GetProfile(ctx context.Context, userID int) (profile, error) {
	return queryOne[profile](ctx, s,
		`INSERT INTO profiles (user_id) VALUES (@userID)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID})
}

// PatchProfile builds the SET clause dynamically so only fields the client
// actually sent are written.
func (s *pgStore) PatchProfile(ctx context.Context, userID int, p patchProfileRequest) (profile, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	set := func(column, name string, v any) {
		setClauses = append(setClauses, column+" = @"+name)
		args[name] = v
	}
	if p.Sex != nil {
		set("sex", "sex", *p.Sex)
	}
	if p.DateOfBirth != nil {
		set("date_of_birth", "dateOfBirth", *p.DateOfBirth)
	}
	if p.HeightCM != nil {
		set("height_cm", "heightCM", *p.HeightCM)
	}
	if p.WeightKG != nil {
		set("weight_kg", "weightKG", *p.WeightKG)
	}
	if p.ActivityLevel != nil {
		set("activity_level", "activityLevel", *p.ActivityLevel)
	}
	if p.TargetWeightKG != nil {
		set("target_weight_kg", "targetWeightKG", *p.TargetWeightKG)
	}
	if p.TargetDate != nil {
		set("target_date", "targetDate", *p.TargetDate)
	}
	if len(setClauses) == 0 {
		return profile{}, badRequest("no fields to update")
	}

	// Upsert so a profile row exists even for users created without one.
	columns, values := []string{"user_id"}, []string{"@userID"}
	for _, c := range setClauses {
		col, param, _ := strings.Cut(c, " = ")
		columns = append(columns, col)
		values = append(values, param)
	}
	query := "INSERT INTO profiles (" + strings.Join(columns, ", ") + ")" +
		" VALUES (" + strings.Join(values, ", ") + ")" +
		" ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(setClauses, ", ") +
		", updated_at = now() RETURNING *"

	return queryOne[profile](ctx, s, query, args)
}
