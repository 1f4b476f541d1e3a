package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// validMeals and validStatuses back the query-string filters; request bodies
// are checked by the validate tags instead.
var (
	validMeals = map[string]bool{
		mealBreakfast: true, mealLunch: true, mealDinner: true, mealSnack: true,
	}
	validStatuses = map[string]bool{
		statusTaken: true, statusNext: true, statusOverdue: true, statusSkipped: true,
	}
)

// summaryResponse is the body of GET /api/diet/summary.
type summaryResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status,omitempty"`
	nutritionSummary
}

// dailyLog is the body of GET /api/diet/daily: the day's entries, the summary
// of what was actually taken, and progress against the active calorie goal.
type dailyLog struct {
	Date         string           `json:"date"`
	Entries      []dietEntry      `json:"entries"`
	Summary      nutritionSummary `json:"summary"`
	CalorieGoal  *goal            `json:"calorie_goal"`
	CaloriesLeft *float64         `json:"calories_left"`
}

// listDietEntries returns the user's diet entries, oldest first.
//
//	@Summary	List diet entries
//	@Tags		diet
//	@Produce	json
//	@Param		start	query		string	false	"First date, YYYY-MM-DD"
//	@Param		end		query		string	false	"Last date, YYYY-MM-DD"
//	@Param		meal	query		string	false	"breakfast, lunch, dinner or snack"
//	@Param		status	query		string	false	"taken, next, overdue or skipped"
//	@Param		goal_id	query		string	false	"Linked goal id"
//	@Success	200		{array}		dietEntry
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet [get]
func (h *Handler) listDietEntries(c *gin.Context) {
	userID := c.GetInt("user_id")

	f := dietFilter{
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Meal:   c.Query("meal"),
		Status: c.Query("status"),
	}
	if f.Start != "" || f.End != "" {
		// Open-ended ranges are allowed; validate whichever bounds were sent.
		start, end := f.Start, f.End
		if start == "" {
			start = "0001-01-01"
		}
		if end == "" {
			end = "9999-12-31"
		}
		if err := checkDateRange(start, end); err != nil {
			h.respondError(c, err, "diet entry")
			return
		}
	}
	if f.Meal != "" && !validMeals[f.Meal] {
		apiError(c, http.StatusBadRequest, "meal must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if f.Status != "" && !validStatuses[f.Status] {
		apiError(c, http.StatusBadRequest, "status must be one of: taken, next, overdue, skipped")
		return
	}
	if s := c.Query("goal_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid goal_id")
			return
		}
		f.GoalID = &id
	}

	entries, err := h.store.ListDietEntries(c, userID, f)
	if err != nil {
		h.respondError(c, err, "diet entry")
		return
	}
	// Ensure empty array (not null) in JSON
	if entries == nil {
		entries = []dietEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// getDietEntry returns one diet entry.
//
//	@Summary	Get a diet entry
//	@Tags		diet
//	@Produce	json
//	@Param		id	path		string	true	"Entry id"
//	@Success	200	{object}	dietEntry
//	@Failure	404	{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet/{id} [get]
func (h *Handler) getDietEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	e, err := h.store.GetDietEntry(c, c.GetInt("user_id"), id)
	if err != nil {
		h.respondError(c, err, "diet entry")
		return
	}
	c.JSON(http.StatusOK, e)
}

// createDietEntry logs a new diet entry. Date defaults to today, status to taken.
//
//	@Summary	Create a diet entry
//	@Tags		diet
//	@Accept		json
//	@Produce	json
//	@Param		request	body		createDietEntryRequest	true	"Entry"
//	@Success	201		{object}	dietEntry
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet [post]
func (h *Handler) createDietEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createDietEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := newDietEntry(userID, body)
	if err != nil {
		h.respondError(c, err, "diet entry")
		return
	}
	if err := h.checkGoalOwner(c, userID, e.GoalID); err != nil {
		h.respondError(c, err, "goal")
		return
	}

	created, err := h.store.CreateDietEntry(c, e)
	if err != nil {
		h.respondError(c, err, "diet entry")
		return
	}
	h.metrics.dietEntriesCreated.Inc()
	c.JSON(http.StatusCreated, created)
}

// updateDietEntry partially updates a diet entry; omitted fields keep their value.
//
//	@Summary	Update a diet entry
//	@Tags		diet
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Entry id"
//	@Param		request	body		dietEntryPatch	true	"Fields to change"
//	@Success	200		{object}	dietEntry
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet/{id} [put]
func (h *Handler) updateDietEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body dietEntryPatch
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateStruct(body); err != nil {
		h.respondError(c, err, "diet entry")
		return
	}
	if body.FoodName != nil {
		name := strings.TrimSpace(*body.FoodName)
		if name == "" {
			apiError(c, http.StatusBadRequest, "food_name must not be empty")
			return
		}
		body.FoodName = &name
	}
	if err := h.checkGoalOwner(c, userID, body.GoalID); err != nil {
		h.respondError(c, err, "goal")
		return
	}

	e, err := h.store.UpdateDietEntry(c, userID, id, body)
	if err != nil {
		h.respondError(c, err, "diet entry")
		return
	}
	c.JSON(http.StatusOK, e)
}

// deleteDietEntry removes a diet entry. Returns 204 on success.
//
//	@Summary	Delete a diet entry
//	@Tags		diet
//	@Param		id	path	string	true	"Entry id"
//	@Success	204
//	@Failure	404	{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet/{id} [delete]
func (h *Handler) deleteDietEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteDietEntry(c, c.GetInt("user_id"), id); err != nil {
		h.respondError(c, err, "diet entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// getNutritionSummary totals the user's entries over [start, end].
// end defaults to today and start to end; status narrows to one status.
//
//	@Summary	Nutrition summary
//	@Tags		diet
//	@Produce	json
//	@Param		start	query		string	false	"First date, YYYY-MM-DD"
//	@Param		end		query		string	false	"Last date, YYYY-MM-DD (default today)"
//	@Param		status	query		string	false	"Only entries with this status, e.g. taken"
//	@Success	200		{object}	summaryResponse
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet/summary [get]
func (h *Handler) getNutritionSummary(c *gin.Context) {
	userID := c.GetInt("user_id")
	end := c.DefaultQuery("end", today().String())
	start := c.DefaultQuery("start", end)
	status := c.Query("status")

	if err := checkDateRange(start, end); err != nil {
		h.respondError(c, err, "summary")
		return
	}
	if status != "" && !validStatuses[status] {
		apiError(c, http.StatusBadRequest, "status must be one of: taken, next, overdue, skipped")
		return
	}

	entries, err := h.store.ListDietEntries(c, userID, dietFilter{Start: start, End: end, Status: status})
	if err != nil {
		h.respondError(c, err, "summary")
		return
	}

	h.metrics.summariesComputed.Inc()
	c.JSON(http.StatusOK, summaryResponse{
		Start:            start,
		End:              end,
		Status:           status,
		nutritionSummary: summarizeNutrition(entries),
	})
}

// getDailyLog returns one day's entries with the summary of what was taken.
//
//	@Summary	Daily log
//	@Tags		diet
//	@Produce	json
//	@Param		date	query		string	false	"YYYY-MM-DD (default today)"
//	@Success	200		{object}	dailyLog
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet/daily [get]
func (h *Handler) getDailyLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	date, err := parseDate(c.DefaultQuery("date", today().String()))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	day := date.String()

	entries, err := h.store.ListDietEntries(c, userID, dietFilter{Start: day, End: day})
	if err != nil {
		h.respondError(c, err, "diet entry")
		return
	}

	if entries == nil {
		entries = []dietEntry{}
	}
	// Planned, overdue and skipped entries are listed but not counted.
	taken := make([]dietEntry, 0, len(entries))
	for _, e := range entries {
		if e.Status == statusTaken {
			taken = append(taken, e)
		}
	}
	resp := dailyLog{Date: day, Entries: entries, Summary: summarizeNutrition(taken)}

	g, err := h.store.ActiveGoal(c, userID, metricCalories, date)
	switch {
	case err == nil:
		if g.Period == periodDaily {
			left := g.TargetValue - resp.Summary.Calories
			resp.CalorieGoal = &g
			resp.CaloriesLeft = &left
		}
	case errors.Is(err, errNotFound):
	default:
		h.respondError(c, err, "goal")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// checkGoalOwner rejects a goal_id that does not belong to userID.
func (h *Handler) checkGoalOwner(c *gin.Context, userID int, goalID *uuid.UUID) error {
	if goalID == nil {
		return nil
	}
	_, err := h.store.GetGoal(c, userID, *goalID)
	if errors.Is(err, errNotFound) {
		return badRequest("goal_id does not match any of your goals")
	}
	return err
}
