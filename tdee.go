package main

import (
	"math"
	"time"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	// kcalPerKG is the energy content of one kilogram of body fat.
	kcalPerKG = 7700.0

	maxPaceKGPerWeek = 1.0
	minPaceKGPerWeek = 0.1
)

// tdeeResult is the output of computeTDEE. All energy values are kcal/day.
type tdeeResult struct {
	bmr    int
	tdee   int
	budget int
	pace   float64 // kg per week
}

// computeTDEE computes BMR (Mifflin-St Jeor), TDEE, a recommended daily
// calorie target and weight-change pace (kg/week) from the profile.
// Returns ok=false when any required field is nil, the target date is not
// after now, or the age is implausible.
func computeTDEE(p *profile, now time.Time) (tdeeResult, bool) {
	if p.Sex == nil || p.DateOfBirth == nil || p.HeightCM == nil ||
		p.WeightKG == nil || p.ActivityLevel == nil ||
		p.TargetWeightKG == nil || p.TargetDate == nil {
		return tdeeResult{}, false
	}

	age := now.Year() - p.DateOfBirth.Year()
	if now.Before(p.DateOfBirth.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 || age > 130 {
		return tdeeResult{}, false
	}

	// BMR via Mifflin-St Jeor: different constant for male vs female
	bmrF := 10**p.WeightKG + 6.25**p.HeightCM - 5*float64(age)
	if *p.Sex == "male" {
		bmrF += 5
	} else {
		bmrF -= 161
	}

	mult, found := activityMultipliers[*p.ActivityLevel]
	if !found {
		return tdeeResult{}, false
	}
	tdeeF := bmrF * mult

	weeksUntil := p.TargetDate.Sub(now).Hours() / 24 / 7
	if weeksUntil <= 0 {
		return tdeeResult{}, false
	}
	pace := (*p.WeightKG - *p.TargetWeightKG) / weeksUntil
	pace = math.Min(math.Max(pace, minPaceKGPerWeek), maxPaceKGPerWeek)

	// A weekly loss of pace kg needs a daily deficit of pace*kcalPerKG/7.
	budgetF := tdeeF - pace*kcalPerKG/7
	return tdeeResult{
		bmr:    int(math.Round(bmrF)),
		tdee:   int(math.Round(tdeeF)),
		budget: int(math.Round(budgetF)),
		pace:   pace,
	}, true
}

// populateComputedTDEE fills the computed-only fields on p.
// No-ops if any required profile field is missing.
func populateComputedTDEE(p *profile, now time.Time) {
	if t, ok := computeTDEE(p, now); ok {
		p.ComputedBMR = &t.bmr
		p.ComputedTDEE = &t.tdee
		p.RecommendedCalories = &t.budget
		p.PaceKGPerWeek = &t.pace
	}
}
