package healthintel

import (
	"math"
	"testing"
)

/* ─── BMI tests ──────────────────────────────────────────────────────── */

// TestBMI verifies the weight/height² computation and its 1-decimal rounding.
func TestBMI(t *testing.T) {
	cases := []struct {
		weightKG float64
		heightCM float64
		want     float64
	}{
		{70, 175, 22.9},
		{80, 175, 26.1},
		{55, 160, 21.5},
		{100, 180, 30.9},
	}
	for _, tc := range cases {
		if got := BMI(tc.weightKG, tc.heightCM); got != tc.want {
			t.Errorf("BMI(%v, %v) = %v, want %v", tc.weightKG, tc.heightCM, got, tc.want)
		}
	}
}

// TestBMICategoryBoundaries verifies that 18.5, 25, and 30 land in the upper
// category.
func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want BMICategory
	}{
		{18.4, BMIUnderweight},
		{18.5, BMINormal},
		{24.9, BMINormal},
		{25.0, BMIOverweight},
		{29.9, BMIOverweight},
		{30.0, BMIObese},
	}
	for _, tc := range cases {
		if got := BMICategoryFor(tc.bmi); got != tc.want {
			t.Errorf("BMICategoryFor(%v) = %s, want %s", tc.bmi, got, tc.want)
		}
	}
}

/* ─── BMR / TDEE tests ───────────────────────────────────────────────── */

// TestBMR verifies the Mifflin-St Jeor constants for each sex category using
// 70 kg / 175 cm / age 30: male 1648.75, female and other 1482.75.
func TestBMR(t *testing.T) {
	cases := []struct {
		sex  Sex
		want float64
	}{
		{SexMale, 1648.75},
		{SexFemale, 1482.75},
		{SexOther, 1482.75},
	}
	for _, tc := range cases {
		if got := BMR(70, 175, 30, tc.sex); got != tc.want {
			t.Errorf("BMR(70, 175, 30, %s) = %v, want %v", tc.sex, got, tc.want)
		}
	}
}

// TestTDEE verifies the activity multiplier table against a 1500 kcal BMR,
// and that an unknown level falls back to the sedentary multiplier.
func TestTDEE(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  int
	}{
		{ActivitySedentary, 1800},
		{ActivityLight, 2063},
		{ActivityModerate, 2325},
		{ActivityActive, 2588},
		{ActivityVeryActive, 2850},
		{ActivityLevel("couch"), 1800},
	}
	for _, tc := range cases {
		if got := TDEE(1500, tc.level); got != tc.want {
			t.Errorf("TDEE(1500, %s) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

// TestRecommendedCalories verifies the fixed ±500 kcal goal offset around
// TDEE. Profile: 175 cm, age 30, male, moderate; weight 80 kg → BMR 1748.75,
// TDEE 2711.
func TestRecommendedCalories(t *testing.T) {
	profile := UserProfile{HeightCM: 175, Age: 30, Sex: SexMale, ActivityLevel: ActivityModerate}

	cases := []struct {
		goal Goal
		want int
	}{
		{GoalLose, 2211},
		{GoalMaintain, 2711},
		{GoalGain, 3211},
	}
	for _, tc := range cases {
		if got := RecommendedCalories(profile, 80, tc.goal); got != tc.want {
			t.Errorf("RecommendedCalories(80kg, %s) = %d, want %d", tc.goal, got, tc.want)
		}
	}
}

/* ─── Macro split tests ──────────────────────────────────────────────── */

// TestMacroSplit verifies the per-goal ratio table on a 2000 kcal budget.
func TestMacroSplit(t *testing.T) {
	cases := []struct {
		goal Goal
		want MacroTargets
	}{
		{GoalMaintain, MacroTargets{ProteinG: 150, CarbsG: 200, FatG: 67}},
		{GoalLose, MacroTargets{ProteinG: 175, CarbsG: 175, FatG: 67}},
		{GoalGain, MacroTargets{ProteinG: 125, CarbsG: 250, FatG: 56}},
	}
	for _, tc := range cases {
		if got := MacroSplit(2000, tc.goal); got != tc.want {
			t.Errorf("MacroSplit(2000, %s) = %+v, want %+v", tc.goal, got, tc.want)
		}
	}
}

// TestMacroSplit_UnknownGoal verifies that an unrecognized goal uses the
// maintain ratios.
func TestMacroSplit_UnknownGoal(t *testing.T) {
	got := MacroSplit(2000, Goal("bulk"))
	want := MacroTargets{ProteinG: 150, CarbsG: 200, FatG: 67}
	if got != want {
		t.Errorf("MacroSplit(2000, unknown) = %+v, want maintain split %+v", got, want)
	}
}

/* ─── Katch-McArdle tests ────────────────────────────────────────────── */

// TestBMRKatchMcArdle verifies the lean-mass formula: 70 kg at 20% fat →
// 56 kg lean → 370 + 21.6·56 = 1579.6.
func TestBMRKatchMcArdle(t *testing.T) {
	if got := BMRKatchMcArdle(70, 20); math.Abs(got-1579.6) > 1e-9 {
		t.Errorf("BMRKatchMcArdle(70, 20) = %v, want 1579.6", got)
	}
}
