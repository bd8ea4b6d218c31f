package healthintel

import (
	"fmt"
	"math"
	"time"
)

// recalibration constants: the weight swing that justifies touching stored
// goals, the dead band for inferring intent from a stored target, the
// periodic refresh cadence, and the TDEE drift treated as significant.
const (
	DefaultRecalcThresholdKG = 2.0
	goalInferDeadBandKcal    = 200
	recalcIntervalDays       = 7
	tdeeDriftFraction        = 0.05
)

// ShouldRecalculate reports whether a new weigh-in moved far enough from the
// most recent historical sample to justify recomputing stored calorie and
// macro goals. An empty history always recalculates — the first weigh-in is
// the baseline. thresholdKG ≤ 0 uses the 2 kg default.
func ShouldRecalculate(newWeightKG float64, history []WeightSample, thresholdKG float64) bool {
	if thresholdKG <= 0 {
		thresholdKG = DefaultRecalcThresholdKG
	}
	ws := normalizeWeights(history)
	if len(ws) == 0 {
		return true
	}
	return math.Abs(newWeightKG-ws[len(ws)-1].WeightKG) >= thresholdKG
}

// RecalculationMessage formats the weight delta and the resulting calorie
// adjustment for a notification. Positive deltas carry an explicit plus.
func RecalculationMessage(oldWeightKG, newWeightKG float64, oldCalories, newCalories int) string {
	return fmt.Sprintf("Weight %s → target recalculated: %s",
		signedKG(newWeightKG-oldWeightKG), signedKcal(newCalories-oldCalories))
}

func signedKG(delta float64) string {
	if delta > 0 {
		return fmt.Sprintf("+%.1f kg", delta)
	}
	return fmt.Sprintf("%.1f kg", delta)
}

func signedKcal(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d kcal", delta)
	}
	return fmt.Sprintf("%d kcal", delta)
}

// InferGoal reconstructs the goal behind a stored calorie target by
// comparing it to the current TDEE: more than 200 kcal under means lose,
// more than 200 over means gain, anything inside the dead band maintain.
// Used when recalibrating goals that predate explicit goal storage.
func InferGoal(targetCalories, tdee int) Goal {
	switch {
	case targetCalories < tdee-goalInferDeadBandKcal:
		return GoalLose
	case targetCalories > tdee+goalInferDeadBandKcal:
		return GoalGain
	default:
		return GoalMaintain
	}
}

// RecalculateGoals rebuilds the calorie target and macro split for a new
// weight, keeping the intent implied by the previous target. The zero
// CalorieGoal is returned when weight or profile height is missing; callers
// must leave stored goals untouched in that case.
func RecalculateGoals(profile UserProfile, newWeightKG float64, previousTarget int) CalorieGoal {
	if newWeightKG <= 0 || profile.HeightCM <= 0 {
		return CalorieGoal{}
	}

	bmr := BMR(newWeightKG, profile.HeightCM, profile.Age, profile.Sex)
	tdee := TDEE(bmr, profile.ActivityLevel)
	goal := InferGoal(previousTarget, tdee)

	target := tdee
	switch goal {
	case GoalLose:
		target = tdee - goalCalorieOffset
	case GoalGain:
		target = tdee + goalCalorieOffset
	}

	return CalorieGoal{
		Target:      target,
		Macros:      MacroSplit(target, goal),
		TDEE:        tdee,
		BMR:         int(math.Round(bmr)),
		Method:      "mifflin-st-jeor",
		MethodLabel: "Profile estimate (Mifflin-St Jeor)",
	}
}

// RecalcDue reports whether the periodic goal refresh is due: never updated,
// or last updated 7 or more days ago.
func RecalcDue(lastUpdate *time.Time, now time.Time) bool {
	if lastUpdate == nil {
		return true
	}
	return DateOf(now).DaysSince(DateOf(*lastUpdate)) >= recalcIntervalDays
}

// SignificantTDEEChange reports whether expenditure drifted more than 5%
// between estimates, the trigger for notifying the user that their stored
// targets went stale.
func SignificantTDEEChange(oldTDEE, newTDEE int) bool {
	if oldTDEE == 0 {
		return newTDEE != 0
	}
	return math.Abs(float64(newTDEE-oldTDEE))/float64(oldTDEE) > tdeeDriftFraction
}
