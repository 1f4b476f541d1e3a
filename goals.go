package main

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// goalProgress is the body of GET /api/goals/:id/progress.
// Current is the per-period value (daily average for daily goals, weekly
// average for weekly goals) over the goal's window up to today.
type goalProgress struct {
	Goal    goal              `json:"goal"`
	Start   string            `json:"start"`
	End     string            `json:"end"`
	Current float64           `json:"current"`
	Percent float64           `json:"percent"`
	Summary *nutritionSummary `json:"summary,omitempty"`
	Nights  *int              `json:"nights,omitempty"`
}

// recommendedGoal is the body of GET /api/goals/recommended.
type recommendedGoal struct {
	Metric        string  `json:"metric"`
	Period        string  `json:"period"`
	TargetValue   int     `json:"target_value"`
	BMR           int     `json:"computed_bmr"`
	TDEE          int     `json:"computed_tdee"`
	PaceKGPerWeek float64 `json:"pace_kg_per_week"`
}

// listGoals returns the user's goals, newest first.
//
//	@Summary	List goals
//	@Tags		goals
//	@Produce	json
//	@Param		status	query		string	false	"active, completed or abandoned"
//	@Success	200		{array}		goal
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/goals [get]
func (h *Handler) listGoals(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", goalActive, goalCompleted, goalAbandoned:
	default:
		apiError(c, http.StatusBadRequest, "status must be one of: active, completed, abandoned")
		return
	}
	goals, err := h.store.ListGoals(c, c.GetInt("user_id"), status)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}
	if goals == nil {
		goals = []goal{}
	}
	c.JSON(http.StatusOK, goals)
}

// getGoal returns one goal.
//
//	@Summary	Get a goal
//	@Tags		goals
//	@Produce	json
//	@Param		id	path		string	true	"Goal id"
//	@Success	200	{object}	goal
//	@Failure	404	{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/goals/{id} [get]
func (h *Handler) getGoal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	g, err := h.store.GetGoal(c, c.GetInt("user_id"), id)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}
	c.JSON(http.StatusOK, g)
}

// createGoal creates a goal. title, metric and target_value are required.
//
//	@Summary	Create a goal
//	@Tags		goals
//	@Accept		json
//	@Produce	json
//	@Param		request	body		goalRequest	true	"Goal"
//	@Success	201		{object}	goal
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/goals [post]
func (h *Handler) createGoal(c *gin.Context) {
	var body goalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := newGoal(c.GetInt("user_id"), body)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}
	created, err := h.store.CreateGoal(c, g)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateGoal merges the sent fields into the stored goal and saves it.
//
//	@Summary	Update a goal
//	@Tags		goals
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Goal id"
//	@Param		request	body		goalRequest	true	"Fields to change"
//	@Success	200		{object}	goal
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/goals/{id} [put]
func (h *Handler) updateGoal(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}
	var body goalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	current, err := h.store.GetGoal(c, userID, id)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}
	merged, err := applyGoalRequest(current, body)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}
	updated, err := h.store.UpdateGoal(c, merged)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteGoal removes a goal. Linked diet entries keep existing with goal_id cleared.
//
//	@Summary	Delete a goal
//	@Tags		goals
//	@Param		id	path	string	true	"Goal id"
//	@Success	204
//	@Failure	404	{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/goals/{id} [delete]
func (h *Handler) deleteGoal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteGoal(c, c.GetInt("user_id"), id); err != nil {
		h.respondError(c, err, "goal")
		return
	}
	c.Status(http.StatusNoContent)
}

// getGoalProgress measures a goal over its window, clipped to today.
// Nutrition goals count taken diet entries linked to the goal; sleep goals
// count the user's sleep records.
//
//	@Summary	Goal progress
//	@Tags		goals
//	@Produce	json
//	@Param		id	path		string	true	"Goal id"
//	@Success	200	{object}	goalProgress
//	@Failure	404	{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/goals/{id}/progress [get]
func (h *Handler) getGoalProgress(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}
	g, err := h.store.GetGoal(c, userID, id)
	if err != nil {
		h.respondError(c, err, "goal")
		return
	}

	start, end := goalWindow(g, today())
	p := goalProgress{Goal: g, Start: start.String(), End: end.String()}

	var total float64
	if g.Metric == metricSleepMinutes {
		records, err := h.store.ListSleepRecords(c, userID, p.Start, p.End)
		if err != nil {
			h.respondError(c, err, "sleep record")
			return
		}
		for _, r := range records {
			total += float64(r.DurationMinutes)
		}
		nights := len(records)
		p.Nights = &nights
	} else {
		entries, err := h.store.ListDietEntries(c, userID, dietFilter{
			Start: p.Start, End: p.End, Status: statusTaken, GoalID: &g.ID,
		})
		if err != nil {
			h.respondError(c, err, "diet entry")
			return
		}
		s := summarizeNutrition(entries)
		total, _ = s.metricValue(g.Metric)
		p.Summary = &s
	}

	p.Current = total / periodsIn(g.Period, start, end)
	p.Percent = math.Round(p.Current/g.TargetValue*1000) / 10
	c.JSON(http.StatusOK, p)
}

// goalWindow returns the date range a goal is measured over: start_date to
// the earlier of end_date and asOf, never shorter than one day.
func goalWindow(g goal, asOf DateOnly) (start, end DateOnly) {
	start, end = g.StartDate, asOf
	if g.EndDate != nil && g.EndDate.Before(end.Time) {
		end = *g.EndDate
	}
	if end.Before(start.Time) {
		end = start
	}
	return start, end
}

// periodsIn returns how many goal periods the inclusive range spans, at least one.
func periodsIn(period string, start, end DateOnly) float64 {
	days := end.Sub(start.Time).Hours()/24 + 1
	n := days
	if period == periodWeekly {
		n = days / 7
	}
	return math.Max(n, 1)
}

// getRecommendedGoal suggests a daily calorie target from the user's profile.
//
//	@Summary	Recommended calorie goal
//	@Tags		goals
//	@Produce	json
//	@Success	200	{object}	recommendedGoal
//	@Failure	422	{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/goals/recommended [get]
func (h *Handler) getRecommendedGoal(c *gin.Context) {
	p, err := h.store.GetProfile(c, c.GetInt("user_id"))
	if err != nil {
		h.respondError(c, err, "profile")
		return
	}
	t, ok := computeTDEE(&p, time.Now())
	if !ok {
		apiError(c, http.StatusUnprocessableEntity,
			"profile is incomplete: sex, date_of_birth, height_cm, weight_kg, activity_level, target_weight_kg and a future target_date are required")
		return
	}
	c.JSON(http.StatusOK, recommendedGoal{
		Metric:        metricCalories,
		Period:        periodDaily,
		TargetValue:   t.budget,
		BMR:           t.bmr,
		TDEE:          t.tdee,
		PaceKGPerWeek: t.pace,
	})
}
