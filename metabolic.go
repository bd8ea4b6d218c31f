package healthintel

import "math"

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid activity levels — callers
// validating profile input should check against it too.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// calorie offset applied to TDEE for lose/gain goals: ~0.5 kg/week at
// 7700 kcal per kg of body fat.
const goalCalorieOffset = 500

/* ─── BMI ────────────────────────────────────────────────────────────── */

// BMI returns weight(kg) / height(m)², rounded to one decimal.
func BMI(weightKG, heightCM float64) float64 {
	heightM := heightCM / 100
	return round1(weightKG / (heightM * heightM))
}

// BMICategory is the WHO BMI classification.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// BMICategoryFor classifies a BMI value. Boundaries are inclusive on the
// upper category: 18.5 is normal, 25.0 overweight, 30.0 obese.
func BMICategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

/* ─── Energy expenditure ─────────────────────────────────────────────── */

// BMR computes the basal metabolic rate via Mifflin-St Jeor.
// Male: 10w + 6.25h − 5a + 5. Female and other: 10w + 6.25h − 5a − 161.
func BMR(weightKG, heightCM float64, age int, sex Sex) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// TDEE multiplies a BMR by the activity-level factor and rounds to the
// nearest kcal. An unrecognized level uses the sedentary multiplier: a
// conservative estimate beats no estimate for a continuously-running engine.
func TDEE(bmr float64, level ActivityLevel) int {
	mult, found := activityMultipliers[level]
	if !found {
		mult = activityMultipliers[ActivitySedentary]
	}
	return int(math.Round(bmr * mult))
}

// RecommendedCalories is the goal-adjusted daily budget: TDEE −500 for lose,
// +500 for gain, unchanged for maintain.
func RecommendedCalories(profile UserProfile, weightKG float64, goal Goal) int {
	tdee := TDEE(BMR(weightKG, profile.HeightCM, profile.Age, profile.Sex), profile.ActivityLevel)
	switch goal {
	case GoalLose:
		return tdee - goalCalorieOffset
	case GoalGain:
		return tdee + goalCalorieOffset
	default:
		return tdee
	}
}

/* ─── Macro split ────────────────────────────────────────────────────── */

// macroRatio is a protein/carbs/fat calorie split that sums to 1.
type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

// macroRatios maps each goal to its calorie split: losing biases toward
// protein to preserve muscle, gaining toward carbs for energy.
var macroRatios = map[Goal]macroRatio{
	GoalLose:     {protein: 0.35, carbs: 0.35, fat: 0.30},
	GoalMaintain: {protein: 0.30, carbs: 0.40, fat: 0.30},
	GoalGain:     {protein: 0.25, carbs: 0.50, fat: 0.25},
}

// ratioFor returns the macro split for goal, defaulting to maintain.
func ratioFor(goal Goal) macroRatio {
	if r, ok := macroRatios[goal]; ok {
		return r
	}
	return macroRatios[GoalMaintain]
}

// MacroSplit converts a calorie budget into gram targets using the
// goal-specific ratio table. Protein and carbs count 4 kcal/g, fat 9 kcal/g;
// each figure is rounded to whole grams independently.
func MacroSplit(calories int, goal Goal) MacroTargets {
	r := ratioFor(goal)
	return MacroTargets{
		ProteinG: int(math.Round(float64(calories) * r.protein / 4)),
		CarbsG:   int(math.Round(float64(calories) * r.carbs / 4)),
		FatG:     int(math.Round(float64(calories) * r.fat / 9)),
	}
}

/* ─── Body composition ───────────────────────────────────────────────── */

// BMRKatchMcArdle computes BMR from lean body mass: 370 + 21.6 × lean kg.
// Preferred over Mifflin-St Jeor when a fat-mass percentage is available,
// since it measures the metabolically active mass directly.
func BMRKatchMcArdle(weightKG, fatMassPercent float64) float64 {
	leanMass := weightKG * (1 - fatMassPercent/100)
	return 370 + 21.6*leanMass
}
