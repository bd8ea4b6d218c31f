// Package healthintel turns raw tracking data — body-weight samples, logged
// meals, and a static user profile — into actionable numbers: daily
// calorie/macro targets, weight-trend classification, anomaly flags,
// goal-date predictions, and auto-generated meal compositions.
//
// Every entry point is a pure function over its arguments: the package never
// touches storage, the network, or the clock behind the caller's back
// (functions that depend on "today" take an explicit now). Missing or
// insufficient data degrades to a documented sentinel (zero value, nil, or
// TrendStable) rather than an error — these functions run continuously
// against partially-populated histories.
package healthintel

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

// NewDate builds a DateOnly at midnight UTC.
func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) DateOnly {
	return NewDate(t.UTC().Date())
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DaysSince returns the whole calendar days from o to d (positive when d is later).
func (d DateOnly) DaysSince(o DateOnly) int {
	return int(d.Time.Truncate(24*time.Hour).Sub(o.Time.Truncate(24*time.Hour)).Hours() / 24)
}

/* ─── Enumerations ───────────────────────────────────────────────────── */

// Sex is the biological sex category used by the Mifflin-St Jeor formula.
// SexOther uses the female constant, matching the source formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel selects the TDEE multiplier. Unknown values fall back to
// sedentary rather than failing — see TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal is the user's weight objective.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// MealSlot is the meal-of-day category.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// SlotForTime infers the meal slot from a "HH:MM" clock time:
// 06–11 breakfast, 11–15 lunch, 18–22 dinner, anything else a snack.
// Unparseable input counts as a snack.
func SlotForTime(hhmm string) MealSlot {
	hourStr, _, ok := strings.Cut(hhmm, ":")
	if !ok {
		return SlotSnack
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return SlotSnack
	}
	switch {
	case hour >= 6 && hour < 11:
		return SlotBreakfast
	case hour >= 11 && hour < 15:
		return SlotLunch
	case hour >= 18 && hour < 22:
		return SlotDinner
	default:
		return SlotSnack
	}
}

/* ─── Input types ────────────────────────────────────────────────────── */

// UserProfile is the static profile supplied by the caller. Magnitudes are
// validated at the boundary (height > 0, age > 0); this package does not
// re-check them.
type UserProfile struct {
	HeightCM      float64       `json:"height_cm"`
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`

	// TargetWeightKG is optional; nil means no goal weight is set.
	TargetWeightKG *float64 `json:"target_weight_kg,omitempty"`
}

// WeightSample is one weigh-in. Date is the unique key within a series —
// when a caller supplies two samples for the same day, the later one in
// input order wins. Optional body-composition fields come from smart scales.
type WeightSample struct {
	Date     DateOnly `json:"date"`
	WeightKG float64  `json:"weight_kg"`
	Note     string   `json:"note,omitempty"`

	FatMassPercent *float64 `json:"fat_mass_percent,omitempty"`
	MuscleMassKG   *float64 `json:"muscle_mass_kg,omitempty"`
	BoneMassKG     *float64 `json:"bone_mass_kg,omitempty"`
	WaterPercent   *float64 `json:"water_percent,omitempty"`
	HeartRateBPM   *int     `json:"heart_rate_bpm,omitempty"`

	// Source tags where the sample came from, e.g. "manual" or "scale".
	Source string `json:"source,omitempty"`
}

// hasBodyComp reports whether the sample carries a usable fat-mass reading.
func (w WeightSample) hasBodyComp() bool {
	return w.FatMassPercent != nil && *w.FatMassPercent > 0
}

// FoodPortion references a catalogue item by id with a gram quantity.
type FoodPortion struct {
	FoodID string  `json:"food_id"`
	Grams  float64 `json:"grams"`
}

// MealSample is one logged meal. Macro fields are optional because older
// entries may predate macro tracking.
type MealSample struct {
	Date     DateOnly `json:"date"`
	Time     string   `json:"time"` // HH:MM
	Slot     MealSlot `json:"slot"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`

	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatG     *float64 `json:"fat_g,omitempty"`
	FiberG   *float64 `json:"fiber_g,omitempty"`

	Foods []FoodPortion `json:"foods,omitempty"`
}

/* ─── Output types ───────────────────────────────────────────────────── */

// MacroTargets is a macro split in whole grams. Each value is rounded
// independently; the small calorie drift that introduces is accepted, not
// redistributed.
type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// CalorieGoal is the full output of the optimal-target selector.
// A zero CalorieGoal means "cannot compute" (no current weight), not a valid
// target of zero calories.
type CalorieGoal struct {
	Target      int          `json:"target"`
	Macros      MacroTargets `json:"macros"`
	TDEE        int          `json:"tdee"`
	BMR         int          `json:"bmr"`
	Method      string       `json:"method"`
	MethodLabel string       `json:"method_label"`
	Confidence  int          `json:"confidence"` // 0–100
	Explanation string       `json:"explanation"`

	// MissingSignals lists the unmet confidence criteria in plain language,
	// so a UI can tell the user how to improve estimate accuracy.
	MissingSignals []string `json:"missing_signals,omitempty"`
}

// TrendDirection classifies a weight series.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// TrendResult is the output of AnalyzeTrend. Rates are signed kg figures.
type TrendResult struct {
	Trend            TrendDirection `json:"trend"`
	WeeklyChangeKG   float64        `json:"weekly_change_kg"`
	AvgDailyChangeKG float64        `json:"avg_daily_change_kg"`
}

// AnomalySeverity grades a detected weight anomaly.
type AnomalySeverity string

const (
	SeverityWarning AnomalySeverity = "warning"
	SeverityDanger  AnomalySeverity = "danger"
)

// Anomaly describes an abnormal week-over-week weight change.
type Anomaly struct {
	Severity   AnomalySeverity `json:"severity"`
	Message    string          `json:"message"`
	Suggestion string          `json:"suggestion"`
}

// Prediction projects when the target weight will be reached at the current
// weekly rate.
type Prediction struct {
	WeeksToGoal    int      `json:"weeks_to_goal"`
	PredictedDate  DateOnly `json:"predicted_date"`
	WeeklyChangeKG float64  `json:"weekly_change_kg"`
}

// GeneratedMeal is a meal composition produced by the generator. Totals are
// always recomputed from Foods through Catalog scaling — never copied from
// the requested target — so line items and aggregates agree.
type GeneratedMeal struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Foods    []FoodPortion `json:"foods"`
	Calories int           `json:"calories"`
	ProteinG float64       `json:"protein_g"`
	CarbsG   float64       `json:"carbs_g"`
	FatG     float64       `json:"fat_g"`
	FiberG   float64       `json:"fiber_g"`
}

// History bundles the chronological inputs the selector and advice functions
// consume. Order does not matter; the engine re-sorts defensively.
type History struct {
	Weights []WeightSample `json:"weights"`
	Meals   []MealSample   `json:"meals"`
}

/* ─── Series normalization ───────────────────────────────────────────── */

// normalizeWeights resolves duplicate dates (last write in input order wins)
// and returns the series sorted by date ascending. Callers must not assume
// input order, so every series consumer starts here.
func normalizeWeights(samples []WeightSample) []WeightSample {
	if len(samples) == 0 {
		return nil
	}
	byDate := make(map[string]WeightSample, len(samples))
	for _, s := range samples {
		byDate[s.Date.Format("2006-01-02")] = s
	}
	out := make([]WeightSample, 0, len(byDate))
	for _, s := range byDate {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out
}

// round1 rounds to one decimal place, the precision used for macro grams.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// round2 rounds to two decimal places, the precision used for kg/week rates.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
