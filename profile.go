package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// getProfile returns the user's body profile. Computed fields (bmr, tdee,
// recommended calories, pace) are populated when all profile fields are present.
//
//	@Summary	Get profile
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	profile
//	@Security	BearerAuth
//	@Router		/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.store.GetProfile(c, c.GetInt("user_id"))
	if err != nil {
		h.respondError(c, err, "profile")
		return
	}
	populateComputedTDEE(&p, time.Now())
	c.JSON(http.StatusOK, p)
}

// patchProfile updates only the provided profile fields. Pointer fields in the
// request body distinguish "not provided" from zero.
//
//	@Summary	Update profile
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		request	body		patchProfileRequest	true	"Fields to change"
//	@Success	200		{object}	profile
//	@Failure	400		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/profile [patch]
func (h *Handler) patchProfile(c *gin.Context) {
	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	// Validate before saving: an unknown activity level silently breaks every
	// later TDEE computation with no visible error.
	if err := validateStruct(body); err != nil {
		h.respondError(c, err, "profile")
		return
	}
	if body.DateOfBirth != nil {
		if dob, _ := parseDate(*body.DateOfBirth); dob.After(time.Now()) {
			apiError(c, http.StatusBadRequest, "date_of_birth must not be in the future")
			return
		}
	}

	p, err := h.store.PatchProfile(c, c.GetInt("user_id"), body)
	if err != nil {
		h.respondError(c, err, "profile")
		return
	}
	populateComputedTDEE(&p, time.Now())
	c.JSON(http.StatusOK, p)
}
