//go:build integration

package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"

	"lg/diet-tracker-api/internal/migrate"
)

// StoreSuite runs pgStore against a real Postgres with the db/ migrations
// applied. Each test gets fresh users so tests do not see each other's rows.
type StoreSuite struct {
	suite.Suite
	ctr   *tcpostgres.PostgresContainer
	store *pgStore
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("diet"),
		tcpostgres.WithUsername("diet"),
		tcpostgres.WithPassword("diet"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.ctr = ctr

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	pool, err := newDBPool(ctx, dsn)
	s.Require().NoError(err)

	_, err = migrate.Apply(ctx, pool, "db", io.Discard)
	s.Require().NoError(err)
	s.store = newPGStore(pool, zap.NewNop())
}

func (s *StoreSuite) TearDownSuite() {
	if s.store != nil {
		s.store.pool.Close()
	}
	if s.ctr != nil {
		_ = s.ctr.Terminate(context.Background())
	}
}

func (s *StoreSuite) newUser() int {
	var id int
	err := s.store.pool.QueryRow(context.Background(),
		"INSERT INTO users (username, email, password) VALUES ($1, 'x@example.com', 'x') RETURNING id",
		uuid.NewString()).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *StoreSuite) addEntry(userID int, date, meal, status string, calories float64) dietEntry {
	d, err := parseDate(date)
	s.Require().NoError(err)
	e, err := s.store.CreateDietEntry(context.Background(), dietEntry{
		ID: uuid.New(), UserID: userID, Date: d, FoodName: "Food", Meal: meal,
		Calories: calories, Carbs: 1, Protein: 2, Fat: 3, Status: status,
	})
	s.Require().NoError(err)
	return e
}

func (s *StoreSuite) TestApplyIsIdempotent() {
	ran, err := migrate.Apply(context.Background(), s.store.pool, "db", io.Discard)
	s.Require().NoError(err)
	s.Zero(ran)
}

func (s *StoreSuite) TestDietEntriesFilterAndSummary() {
	ctx := context.Background()
	alice, bob := s.newUser(), s.newUser()

	s.addEntry(alice, "2024-01-01", mealBreakfast, statusTaken, 300)
	s.addEntry(alice, "2024-01-01", mealLunch, statusTaken, 500)
	s.addEntry(alice, "2024-01-01", mealDinner, statusNext, 700)
	s.addEntry(alice, "2024-01-02", mealDinner, statusTaken, 900)
	s.addEntry(bob, "2024-01-01", mealLunch, statusTaken, 10000)

	entries, err := s.store.ListDietEntries(ctx, alice, dietFilter{Start: "2024-01-01", End: "2024-01-01", Status: statusTaken})
	s.Require().NoError(err)
	summary := summarizeNutrition(entries)
	s.Equal(800.0, summary.Calories)
	s.Equal(2, summary.EntryCount)
	s.Equal(300.0, summary.MealBreakdown.Breakfast.Calories)

	all, err := s.store.ListDietEntries(ctx, alice, dietFilter{})
	s.Require().NoError(err)
	s.Len(all, 4)
	s.Equal("2024-01-02", all[3].Date.String())

	none, err := s.store.ListDietEntries(ctx, alice, dietFilter{Start: "2023-01-01", End: "2023-01-31"})
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *StoreSuite) TestDietEntryOwnership() {
	ctx := context.Background()
	alice, bob := s.newUser(), s.newUser()
	e := s.addEntry(alice, "2024-01-01", mealSnack, statusTaken, 100)

	_, err := s.store.GetDietEntry(ctx, bob, e.ID)
	s.ErrorIs(err, errNotFound)
	s.ErrorIs(s.store.DeleteDietEntry(ctx, bob, e.ID), errNotFound)
	s.NoError(s.store.DeleteDietEntry(ctx, alice, e.ID))
}

func (s *StoreSuite) TestUpdateDietEntryKeepsOmittedFields() {
	ctx := context.Background()
	alice := s.newUser()
	e := s.addEntry(alice, "2024-01-01", mealSnack, statusNext, 100)

	calories, status := 150.0, statusTaken
	got, err := s.store.UpdateDietEntry(ctx, alice, e.ID, dietEntryPatch{Calories: &calories, Status: &status})
	s.Require().NoError(err)
	s.Equal(150.0, got.Calories)
	s.Equal(statusTaken, got.Status)
	s.Equal(mealSnack, got.Meal)
	s.Equal("2024-01-01", got.Date.String())
}

func (s *StoreSuite) TestNegativeMacrosRejectedByDatabase() {
	alice := s.newUser()
	_, err := s.store.CreateDietEntry(context.Background(), dietEntry{
		ID: uuid.New(), UserID: alice, Date: today(), FoodName: "Bad", Meal: mealLunch,
		Calories: -1, Status: statusTaken,
	})
	var se *statusError
	s.Require().ErrorAs(err, &se)
	s.Equal(400, se.Status)
}

func (s *StoreSuite) TestGoalLinkAndActiveGoal() {
	ctx := context.Background()
	alice := s.newUser()
	g, err := newGoal(alice, goalRequest{
		Title: ptr("Calories"), Metric: ptr(metricCalories), TargetValue: ptr(2000.0),
		StartDate: ptr("2024-01-01"),
	})
	s.Require().NoError(err)
	g, err = s.store.CreateGoal(ctx, g)
	s.Require().NoError(err)

	active, err := s.store.ActiveGoal(ctx, alice, metricCalories, DateOnly{mustDate("2024-03-01")})
	s.Require().NoError(err)
	s.Equal(g.ID, active.ID)

	_, err = s.store.ActiveGoal(ctx, alice, metricCalories, DateOnly{mustDate("2023-12-31")})
	s.ErrorIs(err, errNotFound)

	d, _ := parseDate("2024-01-05")
	e, err := s.store.CreateDietEntry(ctx, dietEntry{
		ID: uuid.New(), UserID: alice, Date: d, FoodName: "Rice", Meal: mealLunch,
		Calories: 400, Status: statusTaken, GoalID: &g.ID,
	})
	s.Require().NoError(err)

	linked, err := s.store.ListDietEntries(ctx, alice, dietFilter{GoalID: &g.ID})
	s.Require().NoError(err)
	s.Len(linked, 1)

	s.Require().NoError(s.store.DeleteGoal(ctx, alice, g.ID))
	e, err = s.store.GetDietEntry(ctx, alice, e.ID)
	s.Require().NoError(err)
	s.Nil(e.GoalID)
}

func (s *StoreSuite) TestSleepUpsertAndConflict() {
	ctx := context.Background()
	alice := s.newUser()
	bed := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)

	r, err := newSleepRecord(alice, sleepRequest{BedTime: &bed, WakeTime: ptr(bed.Add(7 * time.Hour)), Quality: ptr(3)})
	s.Require().NoError(err)
	first, err := s.store.UpsertSleepRecord(ctx, r)
	s.Require().NoError(err)

	r2, err := newSleepRecord(alice, sleepRequest{BedTime: &bed, WakeTime: ptr(bed.Add(8 * time.Hour)), Quality: ptr(5)})
	s.Require().NoError(err)
	second, err := s.store.UpsertSleepRecord(ctx, r2)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(480, second.DurationMinutes)

	other, err := newSleepRecord(alice, sleepRequest{
		Date: ptr("2024-01-05"), BedTime: &bed, WakeTime: ptr(bed.Add(6 * time.Hour)), Quality: ptr(2),
	})
	s.Require().NoError(err)
	other, err = s.store.UpsertSleepRecord(ctx, other)
	s.Require().NoError(err)

	other.Date = second.Date
	_, err = s.store.UpdateSleepRecord(ctx, other)
	s.ErrorIs(err, errConflict)

	records, err := s.store.ListSleepRecords(ctx, alice, "2024-01-01", "2024-01-31")
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StoreSuite) TestProfileCreatedOnFirstReadAndPatched() {
	ctx := context.Background()
	alice := s.newUser()

	p, err := s.store.GetProfile(ctx, alice)
	s.Require().NoError(err)
	s.Equal(alice, p.UserID)
	s.Nil(p.WeightKG)

	p, err = s.store.PatchProfile(ctx, alice, patchProfileRequest{WeightKG: ptr(81.5), Sex: ptr("male")})
	s.Require().NoError(err)
	s.Require().NotNil(p.WeightKG)
	s.Equal(81.5, *p.WeightKG)

	p, err = s.store.PatchProfile(ctx, alice, patchProfileRequest{DateOfBirth: ptr("1990-06-15")})
	s.Require().NoError(err)
	s.Equal("male", *p.Sex)
	s.Equal("1990-06-15", p.DateOfBirth.String())

	_, err = s.store.PatchProfile(ctx, alice, patchProfileRequest{})
	s.Error(err)
}
