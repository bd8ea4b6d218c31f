package healthintel

import (
	"fmt"
	"math"
	"time"
)

// SuggestionType groups advice by the habit it concerns.
type SuggestionType string

const (
	SuggestWeight    SuggestionType = "weight"
	SuggestNutrition SuggestionType = "nutrition"
	SuggestHydration SuggestionType = "hydration"
)

// SuggestionPriority orders advice for display.
type SuggestionPriority string

const (
	PriorityLow    SuggestionPriority = "low"
	PriorityMedium SuggestionPriority = "medium"
	PriorityHigh   SuggestionPriority = "high"
)

// Suggestion is one piece of actionable advice. Rendering is the caller's
// job; this is plain data.
type Suggestion struct {
	Type     SuggestionType     `json:"type"`
	Priority SuggestionPriority `json:"priority"`
	Message  string             `json:"message"`
	Action   string             `json:"action,omitempty"`
}

// DayStats is the day-level snapshot the advice rules read alongside the
// raw histories. The caller assembles it from its own aggregates.
type DayStats struct {
	TodayCalories   int
	TargetCalories  int
	CurrentWeightKG float64
	TargetWeightKG  float64
	BMI             float64
	Streak          int
}

// streakPraiseDays is the run length from which the streak earns a mention.
const streakPraiseDays = 7

// Advice evaluates the day against targets and trends and returns
// prioritized suggestions: calorie budget over- or undershoot (±20%), a
// weight trend contradicting the goal, BMI extremes, an empty meal log for
// today, streak praise, and a standing hydration reminder.
func Advice(stats DayStats, weights []WeightSample, meals []MealSample, now time.Time) []Suggestion {
	var out []Suggestion

	if stats.TargetCalories > 0 {
		pct := float64(stats.TodayCalories) / float64(stats.TargetCalories) * 100
		if pct > 120 {
			out = append(out, Suggestion{
				Type:     SuggestNutrition,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Calorie target exceeded by %d%%", int(math.Round(pct-100))),
				Action:   "Cut portion sizes or add some exercise",
			})
		} else if pct < 80 {
			out = append(out, Suggestion{
				Type:     SuggestNutrition,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("Only %d%% of today's calorie target eaten", int(math.Round(pct))),
				Action:   "Add a healthy snack",
			})
		}
	}

	trend := AnalyzeTrend(weights)
	if trend.Trend == TrendIncreasing && stats.TargetWeightKG < stats.CurrentWeightKG {
		out = append(out, Suggestion{
			Type:     SuggestWeight,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("Weight is trending up (+%.2f kg/week) against a loss goal", trend.WeeklyChangeKG),
			Action:   "Reduce calories or increase activity",
		})
	} else if trend.Trend == TrendDecreasing && stats.TargetWeightKG > stats.CurrentWeightKG {
		out = append(out, Suggestion{
			Type:     SuggestWeight,
			Priority: PriorityHigh,
			Message:  "Weight is dropping while the goal is to gain",
			Action:   "Increase calories and protein",
		})
	}

	switch BMICategoryFor(stats.BMI) {
	case BMIObese:
		out = append(out, Suggestion{
			Type:     SuggestWeight,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("BMI indicates obesity (%.1f)", stats.BMI),
			Action:   "Consider consulting a health professional",
		})
	case BMIUnderweight:
		if stats.BMI > 0 {
			out = append(out, Suggestion{
				Type:     SuggestWeight,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("BMI indicates underweight (%.1f)", stats.BMI),
				Action:   "Increase calorie intake gradually",
			})
		}
	}

	today := DateOf(now).Format("2006-01-02")
	mealsToday := 0
	for _, m := range meals {
		if m.Date.Format("2006-01-02") == today {
			mealsToday++
		}
	}
	if mealsToday == 0 {
		out = append(out, Suggestion{
			Type:     SuggestNutrition,
			Priority: PriorityMedium,
			Message:  "No meals logged today yet",
			Action:   "Log your first meal of the day",
		})
	}

	if stats.Streak >= streakPraiseDays {
		out = append(out, Suggestion{
			Type:     SuggestNutrition,
			Priority: PriorityLow,
			Message:  fmt.Sprintf("%d consecutive days of tracking", stats.Streak),
			Action:   "Keep it up",
		})
	}

	out = append(out, Suggestion{
		Type:     SuggestHydration,
		Priority: PriorityMedium,
		Message:  "Remember to drink about 2 liters of water today",
		Action:   "Have a glass of water now",
	})

	return out
}
