package healthintel

import (
	"strings"
	"testing"
	"time"
)

// wsAt builds a weight sample n days before the fixed reference date, so
// fixtures are deterministic regardless of when tests run.
func wsAt(daysAgo int, weightKG float64) WeightSample {
	ref := NewDate(2026, 8, 28)
	return WeightSample{Date: DateOnly{ref.AddDate(0, 0, -daysAgo)}, WeightKG: weightKG}
}

/* ─── AnalyzeTrend tests ─────────────────────────────────────────────── */

// TestAnalyzeTrend_InsufficientData verifies the stable/zero sentinel for
// empty, single-sample, and duplicate-date series.
func TestAnalyzeTrend_InsufficientData(t *testing.T) {
	cases := []struct {
		name    string
		samples []WeightSample
	}{
		{"empty", nil},
		{"single", []WeightSample{wsAt(0, 80)}},
		{"same date twice", []WeightSample{wsAt(0, 80), wsAt(0, 81)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AnalyzeTrend(tc.samples)
			if got.Trend != TrendStable || got.WeeklyChangeKG != 0 {
				t.Errorf("AnalyzeTrend = %+v, want stable/zero", got)
			}
		})
	}
}

// TestAnalyzeTrend_Increasing verifies classification and rate for three
// weekly samples rising 1 kg/week.
func TestAnalyzeTrend_Increasing(t *testing.T) {
	samples := []WeightSample{wsAt(14, 78), wsAt(7, 79), wsAt(0, 80)}

	got := AnalyzeTrend(samples)
	if got.Trend != TrendIncreasing {
		t.Errorf("trend = %s, want increasing", got.Trend)
	}
	if got.WeeklyChangeKG != 1.0 {
		t.Errorf("weekly change = %v, want 1.0", got.WeeklyChangeKG)
	}
	if got.AvgDailyChangeKG != 0.14 {
		t.Errorf("daily change = %v, want 0.14", got.AvgDailyChangeKG)
	}
}

// TestAnalyzeTrend_StableWithinThreshold verifies that drift under
// 0.1 kg/week classifies as stable.
func TestAnalyzeTrend_StableWithinThreshold(t *testing.T) {
	samples := []WeightSample{wsAt(14, 80), wsAt(7, 80.02), wsAt(0, 80.05)}

	got := AnalyzeTrend(samples)
	if got.Trend != TrendStable {
		t.Errorf("trend = %s for 0.025 kg/week drift, want stable", got.Trend)
	}
}

// TestAnalyzeTrend_ShortSpanNoExtrapolation verifies that a span under a
// week reports the raw change as the weekly figure instead of scaling it up.
func TestAnalyzeTrend_ShortSpanNoExtrapolation(t *testing.T) {
	samples := []WeightSample{wsAt(3, 80), wsAt(0, 80.5)}

	got := AnalyzeTrend(samples)
	if got.WeeklyChangeKG != 0.5 {
		t.Errorf("weekly change = %v over a 3-day span, want raw 0.5", got.WeeklyChangeKG)
	}
	if got.Trend != TrendIncreasing {
		t.Errorf("trend = %s, want increasing", got.Trend)
	}
}

// TestAnalyzeTrend_WindowLimit verifies that only the most recent 14 samples
// count: an old decline followed by 14 flat daily samples reads stable.
func TestAnalyzeTrend_WindowLimit(t *testing.T) {
	var samples []WeightSample
	for daysAgo := 19; daysAgo >= 14; daysAgo-- {
		samples = append(samples, wsAt(daysAgo, 85-float64(19-daysAgo))) // old drop
	}
	for daysAgo := 13; daysAgo >= 0; daysAgo-- {
		samples = append(samples, wsAt(daysAgo, 75))
	}

	got := AnalyzeTrend(samples)
	if got.Trend != TrendStable {
		t.Errorf("trend = %s, want stable from the last 14 samples only", got.Trend)
	}
}

/* ─── DetectAnomaly tests ────────────────────────────────────────────── */

// dailyFlat builds count daily samples at a constant weight, newest on the
// reference date.
func dailyFlat(count int, weightKG float64) []WeightSample {
	samples := make([]WeightSample, 0, count)
	for daysAgo := count - 1; daysAgo >= 0; daysAgo-- {
		samples = append(samples, wsAt(daysAgo, weightKG))
	}
	return samples
}

// TestDetectAnomaly_None verifies nil for flat and sparse series.
func TestDetectAnomaly_None(t *testing.T) {
	if got := DetectAnomaly(dailyFlat(28, 80)); got != nil {
		t.Errorf("flat series anomaly = %+v, want nil", got)
	}
	if got := DetectAnomaly(dailyFlat(7, 80)); got != nil {
		t.Errorf("7-sample series anomaly = %+v, want nil (needs 8)", got)
	}
}

// TestDetectAnomaly_Warning verifies the warning tier: a +1.5 kg final week
// against a near-flat rolling average.
func TestDetectAnomaly_Warning(t *testing.T) {
	samples := dailyFlat(28, 80)
	samples[len(samples)-1].WeightKG = 81.5

	got := DetectAnomaly(samples)
	if got == nil {
		t.Fatal("anomaly = nil, want warning")
	}
	if got.Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning", got.Severity)
	}
	if !strings.HasPrefix(got.Message, "Rapid gain: +1.5 kg") {
		t.Errorf("message = %q, want gain direction and magnitude", got.Message)
	}
	if !strings.Contains(got.Suggestion, "weigh-ins") {
		t.Errorf("suggestion = %q, want the logging recheck hint", got.Suggestion)
	}
}

// TestDetectAnomaly_Danger verifies escalation above 2 kg and the
// professional-consultation suggestion.
func TestDetectAnomaly_Danger(t *testing.T) {
	samples := dailyFlat(28, 80)
	samples[len(samples)-1].WeightKG = 83

	got := DetectAnomaly(samples)
	if got == nil {
		t.Fatal("anomaly = nil, want danger")
	}
	if got.Severity != SeverityDanger {
		t.Errorf("severity = %s, want danger", got.Severity)
	}
	if !strings.Contains(got.Suggestion, "professional") {
		t.Errorf("suggestion = %q, want professional-consultation hint", got.Suggestion)
	}
}

// TestDetectAnomaly_LossDirection verifies the loss wording for a -2 kg week.
func TestDetectAnomaly_LossDirection(t *testing.T) {
	samples := dailyFlat(28, 80)
	samples[len(samples)-1].WeightKG = 78

	got := DetectAnomaly(samples)
	if got == nil {
		t.Fatal("anomaly = nil, want warning")
	}
	if !strings.HasPrefix(got.Message, "Rapid loss: 2.0 kg") {
		t.Errorf("message = %q, want loss direction", got.Message)
	}
}

/* ─── PredictGoalDate tests ──────────────────────────────────────────── */

// TestPredictGoalDate verifies the projection math: 8 samples losing 0.2 kg
// every 2 days is a -0.7 kg/week trend; 1.6 kg above target → 3 weeks out.
func TestPredictGoalDate(t *testing.T) {
	var samples []WeightSample
	for i := 0; i < 8; i++ {
		samples = append(samples, wsAt(14-2*i, 80-0.2*float64(i)))
	}
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	got := PredictGoalDate(samples, 77, now)
	if got == nil {
		t.Fatal("prediction = nil, want a projection")
	}
	if got.WeeklyChangeKG != -0.7 {
		t.Errorf("weekly rate = %v, want -0.7", got.WeeklyChangeKG)
	}
	if got.WeeksToGoal != 3 {
		t.Errorf("weeks to goal = %d, want 3", got.WeeksToGoal)
	}
	want := NewDate(2026, 9, 18)
	if !got.PredictedDate.Equal(want.Time) {
		t.Errorf("predicted date = %s, want %s", got.PredictedDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

// TestPredictGoalDate_NoTrend verifies nil for a flat series and for a
// series with too few samples.
func TestPredictGoalDate_NoTrend(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	if got := PredictGoalDate(dailyFlat(28, 80), 75, now); got != nil {
		t.Errorf("flat series prediction = %+v, want nil under 0.1 kg/week", got)
	}
	if got := PredictGoalDate(dailyFlat(7, 80), 75, now); got != nil {
		t.Errorf("sparse series prediction = %+v, want nil", got)
	}
}
