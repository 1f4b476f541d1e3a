package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// sleepLog is the body of GET /api/sleep.
type sleepLog struct {
	Records                []sleepRecord `json:"records"`
	AverageDurationMinutes float64       `json:"average_duration_minutes"`
	AverageQuality         float64       `json:"average_quality"`
}

// listSleepRecords returns sleep records for the authenticated user within [start, end].
// Both params required. Averages are zero when there are no records.
//
//	@Summary	List sleep records
//	@Tags		sleep
//	@Produce	json
//	@Param		start	query		string	true	"First date, YYYY-MM-DD"
//	@Param		end		query		string	true	"Last date, YYYY-MM-DD"
//	@Success	200		{object}	sleepLog
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/sleep [get]
func (h *Handler) listSleepRecords(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return
	}
	if err := checkDateRange(start, end); err != nil {
		h.respondError(c, err, "sleep record")
		return
	}

	records, err := h.store.ListSleepRecords(c, c.GetInt("user_id"), start, end)
	if err != nil {
		h.respondError(c, err, "sleep record")
		return
	}
	// Ensure empty array (not null) in JSON
	if records == nil {
		records = []sleepRecord{}
	}

	resp := sleepLog{Records: records}
	if n := len(records); n > 0 {
		var minutes, quality int
		for _, r := range records {
			minutes += r.DurationMinutes
			quality += r.Quality
		}
		resp.AverageDurationMinutes = float64(minutes) / float64(n)
		resp.AverageQuality = float64(quality) / float64(n)
	}
	c.JSON(http.StatusOK, resp)
}

// upsertSleepRecord creates or replaces the sleep record for a date.
// The UNIQUE(user_id, date) constraint means posting the same date updates in place.
//
//	@Summary	Log sleep
//	@Tags		sleep
//	@Accept		json
//	@Produce	json
//	@Param		request	body		sleepRequest	true	"Sleep record"
//	@Success	201		{object}	sleepRecord
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/sleep [post]
func (h *Handler) upsertSleepRecord(c *gin.Context) {
	var body sleepRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	r, err := newSleepRecord(c.GetInt("user_id"), body)
	if err != nil {
		h.respondError(c, err, "sleep record")
		return
	}
	saved, err := h.store.UpsertSleepRecord(c, r)
	if err != nil {
		h.respondError(c, err, "sleep record")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// updateSleepRecord partially updates an existing sleep record; the duration
// is recomputed from the merged bed and wake times.
//
//	@Summary	Update a sleep record
//	@Tags		sleep
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Record id"
//	@Param		request	body		sleepRequest	true	"Fields to change"
//	@Success	200		{object}	sleepRecord
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Failure	409		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/sleep/{id} [put]
func (h *Handler) updateSleepRecord(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}
	var body sleepRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	current, err := h.store.GetSleepRecord(c, userID, id)
	if err != nil {
		h.respondError(c, err, "sleep record")
		return
	}
	merged, err := applySleepRequest(current, body)
	if err != nil {
		h.respondError(c, err, "sleep record")
		return
	}
	// A date collision with another record surfaces as 409 from the store.
	updated, err := h.store.UpdateSleepRecord(c, merged)
	if err != nil {
		h.respondError(c, err, "sleep record for that date")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteSleepRecord removes a sleep record by ID. Returns 204 on success, 404 if not found.
//
//	@Summary	Delete a sleep record
//	@Tags		sleep
//	@Param		id	path	string	true	"Record id"
//	@Success	204
//	@Failure	404	{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/sleep/{id} [delete]
func (h *Handler) deleteSleepRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteSleepRecord(c, c.GetInt("user_id"), id); err != nil {
		h.respondError(c, err, "sleep record")
		return
	}
	c.Status(http.StatusNoContent)
}
