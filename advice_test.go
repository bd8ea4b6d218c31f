package healthintel

import (
	"strings"
	"testing"
)

// findSuggestion returns the first suggestion whose message contains the
// given fragment.
func findSuggestion(out []Suggestion, fragment string) (Suggestion, bool) {
	for _, s := range out {
		if strings.Contains(s.Message, fragment) {
			return s, true
		}
	}
	return Suggestion{}, false
}

// baseStats is a neutral day: on-target calories, normal BMI, no trend
// conflict, meal already logged via the meals argument in each test.
func baseStats() DayStats {
	return DayStats{
		TodayCalories:   2000,
		TargetCalories:  2000,
		CurrentWeightKG: 75,
		TargetWeightKG:  75,
		BMI:             22.9,
	}
}

// TestAdvice_CalorieOvershoot verifies the high-priority warning above 120%
// of target.
func TestAdvice_CalorieOvershoot(t *testing.T) {
	stats := baseStats()
	stats.TodayCalories = 2600

	out := Advice(stats, nil, []MealSample{mealAt(0, 2600)}, streakNow)
	s, ok := findSuggestion(out, "exceeded by 30%")
	if !ok {
		t.Fatalf("no overshoot suggestion in %+v", out)
	}
	if s.Priority != PriorityHigh || s.Type != SuggestNutrition {
		t.Errorf("overshoot suggestion = %+v, want high-priority nutrition", s)
	}
}

// TestAdvice_CalorieUndershoot verifies the medium-priority nudge below 80%.
func TestAdvice_CalorieUndershoot(t *testing.T) {
	stats := baseStats()
	stats.TodayCalories = 1000

	out := Advice(stats, nil, []MealSample{mealAt(0, 1000)}, streakNow)
	s, ok := findSuggestion(out, "Only 50%")
	if !ok {
		t.Fatalf("no undershoot suggestion in %+v", out)
	}
	if s.Priority != PriorityMedium {
		t.Errorf("undershoot priority = %s, want medium", s.Priority)
	}
}

// TestAdvice_OnTargetNoCalorieNoise verifies that an on-target day gets no
// calorie suggestion either way.
func TestAdvice_OnTargetNoCalorieNoise(t *testing.T) {
	out := Advice(baseStats(), nil, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "exceeded"); ok {
		t.Error("on-target day got an overshoot warning")
	}
	if _, ok := findSuggestion(out, "Only"); ok {
		t.Error("on-target day got an undershoot nudge")
	}
}

// TestAdvice_TrendAgainstGoal verifies the conflict warnings: gaining while
// aiming down, and losing while aiming up.
func TestAdvice_TrendAgainstGoal(t *testing.T) {
	rising := []WeightSample{wsAt(7, 79), wsAt(0, 80)}
	stats := baseStats()
	stats.CurrentWeightKG = 80
	stats.TargetWeightKG = 75

	out := Advice(stats, rising, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "trending up"); !ok {
		t.Errorf("no trend-conflict warning for rising weight with a loss goal: %+v", out)
	}

	falling := []WeightSample{wsAt(7, 71), wsAt(0, 70)}
	stats.CurrentWeightKG = 70
	stats.TargetWeightKG = 75

	out = Advice(stats, falling, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "goal is to gain"); !ok {
		t.Errorf("no trend-conflict warning for falling weight with a gain goal: %+v", out)
	}
}

// TestAdvice_BMIExtremes verifies the obesity and underweight warnings, and
// that a zeroed BMI stays silent.
func TestAdvice_BMIExtremes(t *testing.T) {
	stats := baseStats()
	stats.BMI = 32

	out := Advice(stats, nil, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "obesity (32.0)"); !ok {
		t.Errorf("no obesity warning at BMI 32: %+v", out)
	}

	stats.BMI = 17.5
	out = Advice(stats, nil, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "underweight (17.5)"); !ok {
		t.Errorf("no underweight warning at BMI 17.5: %+v", out)
	}

	stats.BMI = 0
	out = Advice(stats, nil, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "underweight"); ok {
		t.Error("BMI 0 produced an underweight warning, want silence for missing data")
	}
}

// TestAdvice_NoMealsToday verifies the empty-log nudge and its absence once
// a meal is logged.
func TestAdvice_NoMealsToday(t *testing.T) {
	out := Advice(baseStats(), nil, []MealSample{mealAt(1, 600)}, streakNow)
	if _, ok := findSuggestion(out, "No meals logged today"); !ok {
		t.Errorf("no empty-log nudge when today has no meals: %+v", out)
	}

	out = Advice(baseStats(), nil, []MealSample{mealAt(0, 600)}, streakNow)
	if _, ok := findSuggestion(out, "No meals logged today"); ok {
		t.Error("empty-log nudge present despite a meal logged today")
	}
}

// TestAdvice_StreakPraise verifies praise from 7 days and silence below.
func TestAdvice_StreakPraise(t *testing.T) {
	stats := baseStats()
	stats.Streak = 7

	out := Advice(stats, nil, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "7 consecutive days"); !ok {
		t.Errorf("no streak praise at 7 days: %+v", out)
	}

	stats.Streak = 6
	out = Advice(stats, nil, []MealSample{mealAt(0, 2000)}, streakNow)
	if _, ok := findSuggestion(out, "consecutive days"); ok {
		t.Error("streak praise at 6 days, want none below 7")
	}
}

// TestAdvice_HydrationAlwaysPresent verifies the standing reminder closes
// every advice list.
func TestAdvice_HydrationAlwaysPresent(t *testing.T) {
	out := Advice(baseStats(), nil, []MealSample{mealAt(0, 2000)}, streakNow)
	if len(out) == 0 {
		t.Fatal("empty advice list")
	}
	last := out[len(out)-1]
	if last.Type != SuggestHydration {
		t.Errorf("last suggestion = %+v, want the hydration reminder", last)
	}
}
