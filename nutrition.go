package main

// macroTotals holds the four summed nutrition values for a set of entries.
type macroTotals struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

func (t *macroTotals) add(e dietEntry) {
	t.Calories += e.Calories
	t.Carbs += e.Carbs
	t.Protein += e.Protein
	t.Fat += e.Fat
}

// mealBreakdown always serializes all four meal buckets, zeroed when empty.
type mealBreakdown struct {
	Breakfast macroTotals `json:"breakfast"`
	Lunch     macroTotals `json:"lunch"`
	Dinner    macroTotals `json:"dinner"`
	Snack     macroTotals `json:"snack"`
}

// bucket returns the totals for meal, or nil for an unknown meal.
func (b *mealBreakdown) bucket(meal string) *macroTotals {
	switch meal {
	case mealBreakfast:
		return &b.Breakfast
	case mealLunch:
		return &b.Lunch
	case mealDinner:
		return &b.Dinner
	case mealSnack:
		return &b.Snack
	}
	return nil
}

// nutritionSummary is the response shape for GET /api/diet/summary:
// totals, entry count and the per-meal breakdown.
type nutritionSummary struct {
	macroTotals
	EntryCount    int           `json:"entryCount"`
	MealBreakdown mealBreakdown `json:"mealBreakdown"`
}

// summarizeNutrition totals entries that the caller has already filtered by
// user, date range and status. Values are summed as float64 with no rounding.
// Entries with an unknown meal count toward the totals and entry count but
// are left out of the breakdown. Empty input yields a zero summary.
func summarizeNutrition(entries []dietEntry) nutritionSummary {
	var s nutritionSummary
	for _, e := range entries {
		s.add(e)
		s.EntryCount++
		if b := s.MealBreakdown.bucket(e.Meal); b != nil {
			b.add(e)
		}
	}
	return s
}

// metricValue returns the total for a nutrition goal metric.
// ok is false for metrics that are not nutrition totals.
func (t macroTotals) metricValue(metric string) (float64, bool) {
	switch metric {
	case metricCalories:
		return t.Calories, true
	case metricCarbs:
		return t.Carbs, true
	case metricProtein:
		return t.Protein, true
	case metricFat:
		return t.Fat, true
	}
	return 0, false
}
