package healthintel

import (
	"fmt"
	"math"
	"time"
)

// WeeklyRateKG is the desired pace of weight change used to size the daily
// calorie offset. Only the three listed paces are meaningful; anything else
// falls back to RateGentle.
type WeeklyRateKG float64

const (
	RateGentle     WeeklyRateKG = 0.5
	RateStandard   WeeklyRateKG = 0.7
	RateAggressive WeeklyRateKG = 1.0
)

// kcalPerKG is the energy content of one kg of body fat.
const kcalPerKG = 7700

// normalizeRate collapses unrecognized paces to the gentle default.
func normalizeRate(rate WeeklyRateKG) WeeklyRateKG {
	switch rate {
	case RateGentle, RateStandard, RateAggressive:
		return rate
	}
	return RateGentle
}

// dailyOffset converts a weekly pace into a kcal/day adjustment.
func dailyOffset(rate WeeklyRateKG) int {
	return int(math.Round(float64(rate) * kcalPerKG / 7))
}

// bodyCompMaxAgeDays bounds how old a fat-mass reading may be before the
// selector stops trusting it and falls back to the profile formula.
const bodyCompMaxAgeDays = 30

// confidence checklist for the profile-formula path. Weights sum with the
// base of 50 to at most 100.
const (
	confBaseMifflin = 50
	confBaseKatch   = 75
	confCapped      = 100
)

type confidenceSignal struct {
	weight  int
	missing string
	met     func(p progression) bool
}

var confidenceSignals = []confidenceSignal{
	{15, "at least 3 weigh-ins in the last week", func(p progression) bool { return p.weighInsLastWeek >= 3 }},
	{15, "meals logged on 5 or more days in the last week", func(p progression) bool { return p.mealDaysLastWeek >= 5 }},
	{10, "at least 14 days of tracking history", func(p progression) bool { return p.daysTracked >= 14 }},
	{10, "a body-composition measurement", func(p progression) bool { return p.hasBodyComp }},
}

// progression summarizes tracking maturity over the trailing week and the
// whole history.
type progression struct {
	weighInsLastWeek int
	mealDaysLastWeek int
	daysTracked      int
	hasBodyComp      bool
}

func progressionOf(hist History, now time.Time) progression {
	today := DateOf(now)
	weekAgo := DateOnly{today.AddDate(0, 0, -6)}

	var p progression
	var first *DateOnly
	for _, w := range normalizeWeights(hist.Weights) {
		if !w.Date.Before(weekAgo.Time) {
			p.weighInsLastWeek++
		}
		if w.hasBodyComp() {
			p.hasBodyComp = true
		}
		if first == nil {
			d := w.Date
			first = &d
		}
	}

	mealDays := make(map[string]bool)
	for _, m := range hist.Meals {
		if !m.Date.Before(weekAgo.Time) {
			mealDays[m.Date.Format("2006-01-02")] = true
		}
		if first == nil || m.Date.Before(first.Time) {
			d := m.Date
			first = &d
		}
	}
	p.mealDaysLastWeek = len(mealDays)

	if first != nil {
		p.daysTracked = today.DaysSince(*first) + 1
	}
	return p
}

// recentBodyComp returns the newest sample carrying a fat-mass reading no
// older than 30 days, if any.
func recentBodyComp(weights []WeightSample, now time.Time) (WeightSample, bool) {
	ws := normalizeWeights(weights)
	today := DateOf(now)
	for i := len(ws) - 1; i >= 0; i-- {
		if !ws[i].hasBodyComp() {
			continue
		}
		if today.DaysSince(ws[i].Date) <= bodyCompMaxAgeDays {
			return ws[i], true
		}
		break
	}
	return WeightSample{}, false
}

// OptimalCalorieTarget picks the best available estimation path for a daily
// calorie target and reports how much to trust it.
//
// With a fat-mass reading from the last 30 days the BMR comes from
// Katch-McArdle, which measures metabolically active mass directly and earns
// a higher base confidence. Otherwise Mifflin-St Jeor is used and confidence
// is built up from an explicit tracking-maturity checklist; the unmet
// criteria come back in MissingSignals so a caller can tell the user how to
// improve the estimate.
//
// The goal offset is the selected weekly pace converted to kcal/day, and
// macros are split from the final target rather than raw TDEE. An empty
// weight history returns the zero CalorieGoal, which callers must treat as
// "cannot compute".
func OptimalCalorieTarget(profile UserProfile, goal Goal, rate WeeklyRateKG, hist History, now time.Time) CalorieGoal {
	rate = normalizeRate(rate)
	ws := normalizeWeights(hist.Weights)
	if len(ws) == 0 {
		return CalorieGoal{}
	}
	current := ws[len(ws)-1].WeightKG
	if current <= 0 {
		return CalorieGoal{}
	}

	var (
		bmr         float64
		method      string
		methodLabel string
		confidence  int
		missing     []string
	)

	prog := progressionOf(hist, now)

	if comp, ok := recentBodyComp(hist.Weights, now); ok {
		bmr = BMRKatchMcArdle(comp.WeightKG, *comp.FatMassPercent)
		method = "katch-mcardle"
		methodLabel = "Body composition (Katch-McArdle)"
		confidence = confBaseKatch
	} else {
		bmr = BMR(current, profile.HeightCM, profile.Age, profile.Sex)
		method = "mifflin-st-jeor"
		methodLabel = "Profile estimate (Mifflin-St Jeor)"
		confidence = confBaseMifflin
	}

	for _, sig := range confidenceSignals {
		if sig.met(prog) {
			confidence += sig.weight
		} else {
			missing = append(missing, sig.missing)
		}
	}
	if confidence > confCapped {
		confidence = confCapped
	}

	tdee := TDEE(bmr, profile.ActivityLevel)
	offset := dailyOffset(rate)
	target := tdee
	switch goal {
	case GoalLose:
		target = tdee - offset
	case GoalGain:
		target = tdee + offset
	}

	return CalorieGoal{
		Target:         target,
		Macros:         MacroSplit(target, goal),
		TDEE:           tdee,
		BMR:            int(math.Round(bmr)),
		Method:         method,
		MethodLabel:    methodLabel,
		Confidence:     confidence,
		Explanation:    targetExplanation(methodLabel, tdee, target, goal, rate),
		MissingSignals: missing,
	}
}

func targetExplanation(methodLabel string, tdee, target int, goal Goal, rate WeeklyRateKG) string {
	switch goal {
	case GoalLose:
		return fmt.Sprintf("%s puts daily expenditure at %d kcal; eating %d kcal targets a loss of about %.1f kg/week.",
			methodLabel, tdee, target, float64(rate))
	case GoalGain:
		return fmt.Sprintf("%s puts daily expenditure at %d kcal; eating %d kcal targets a gain of about %.1f kg/week.",
			methodLabel, tdee, target, float64(rate))
	default:
		return fmt.Sprintf("%s puts daily expenditure at %d kcal; eat about that much to hold steady.", methodLabel, tdee)
	}
}
