package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetProfile(t *testing.T) {
	t.Run("fresh user", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().GetProfile(gomock.Any(), testUserID).Return(profile{UserID: testUserID}, nil)

		w := env.do(http.MethodGet, "/api/profile", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody[map[string]any](t, w)
		assert.Nil(t, body["sex"])
		assert.NotContains(t, body, "computed_tdee")
	})

	t.Run("complete profile has computed fields", func(t *testing.T) {
		env := newTestEnv(t)
		p := *makeProfile("male", time.Now().Year()-40, 180, 90, 80, "light", time.Now().AddDate(1, 0, 0))
		p.UserID = testUserID
		env.store.EXPECT().GetProfile(gomock.Any(), testUserID).Return(p, nil)

		w := env.do(http.MethodGet, "/api/profile", "")
		require.Equal(t, http.StatusOK, w.Code)

		got := decodeBody[profile](t, w)
		require.NotNil(t, got.ComputedTDEE)
		require.NotNil(t, got.RecommendedCalories)
		assert.Less(t, *got.RecommendedCalories, *got.ComputedTDEE)
	})
}

func TestPatchProfile(t *testing.T) {
	t.Run("passes only sent fields", func(t *testing.T) {
		env := newTestEnv(t)
		weight := 72.5
		env.store.EXPECT().
			PatchProfile(gomock.Any(), testUserID, patchProfileRequest{WeightKG: &weight}).
			Return(profile{UserID: testUserID, WeightKG: &weight}, nil)

		w := env.do(http.MethodPatch, "/api/profile", `{"weight_kg":72.5}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, 72.5, *decodeBody[profile](t, w).WeightKG)
	})

	cases := map[string]struct {
		body string
		want string
	}{
		"unknown activity": {`{"activity_level":"couch"}`, "activity_level must be one of: sedentary, light, moderate, active, very_active"},
		"bad date":         {`{"date_of_birth":"1990/01/01"}`, "date_of_birth must be a date in YYYY-MM-DD format"},
		"future birthday":  {`{"date_of_birth":"2999-01-01"}`, "date_of_birth must not be in the future"},
		"negative height":  {`{"height_cm":-3}`, "height_cm must be greater than 0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.do(http.MethodPatch, "/api/profile", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, errorMessage(t, w))
		})
	}
}
