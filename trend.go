package healthintel

import (
	"fmt"
	"math"
	"time"
)

// trendWindowSamples caps how far back AnalyzeTrend looks. Older samples
// describe a previous regime and would dilute the current rate.
const trendWindowSamples = 14

// trendThresholdKG is the weekly rate below which a series counts as stable.
const trendThresholdKG = 0.1

// analysisWindowDays is the trailing calendar window for anomaly detection
// and goal prediction: four weeks, anchored at the most recent sample.
const analysisWindowDays = 28

/* ─── Trend classification ───────────────────────────────────────────── */

// AnalyzeTrend classifies a weight series. Fewer than two distinct dates
// yields stable/zero. The rate comes from the most recent 14 samples: total
// change over elapsed days, scaled to a week. When the samples span less
// than a week the raw change is reported as the weekly figure — a two-day
// blip must not be extrapolated into a dramatic weekly rate.
func AnalyzeTrend(samples []WeightSample) TrendResult {
	ws := normalizeWeights(samples)
	if len(ws) < 2 {
		return TrendResult{Trend: TrendStable}
	}
	if len(ws) > trendWindowSamples {
		ws = ws[len(ws)-trendWindowSamples:]
	}

	first, last := ws[0], ws[len(ws)-1]
	total := last.WeightKG - first.WeightKG
	days := last.Date.DaysSince(first.Date)

	daily := total / float64(days)
	weekly := daily * 7
	if days < 7 {
		weekly = total
	}

	trend := TrendStable
	switch {
	case weekly > trendThresholdKG:
		trend = TrendIncreasing
	case weekly < -trendThresholdKG:
		trend = TrendDecreasing
	}

	return TrendResult{
		Trend:            trend,
		WeeklyChangeKG:   round2(weekly),
		AvgDailyChangeKG: round2(daily),
	}
}

// analysisWindow returns the normalized samples inside the trailing 28-day
// window anchored at the latest sample, provided the series has at least
// eight samples and the window spans at least 14 days. The nil return is the
// shared "not enough data" sentinel for anomaly and prediction.
func analysisWindow(samples []WeightSample) []WeightSample {
	ws := normalizeWeights(samples)
	if len(ws) < 8 {
		return nil
	}

	latest := ws[len(ws)-1].Date
	start := DateOnly{latest.AddDate(0, 0, -(analysisWindowDays - 1))}
	window := ws
	for i, s := range ws {
		if !s.Date.Before(start.Time) {
			window = ws[i:]
			break
		}
	}
	if window[len(window)-1].Date.DaysSince(window[0].Date) < 14 {
		return nil
	}
	return window
}

/* ─── Anomaly detection ──────────────────────────────────────────────── */

// anomaly thresholds, in kg over one week.
const (
	anomalyMinChangeKG = 1.0
	anomalyDangerKG    = 2.0
)

// DetectAnomaly flags an abnormal last-week weight change: one whose
// magnitude exceeds twice the rolling weekly average of the trailing four
// weeks and is over 1 kg in absolute terms. Above 2 kg the severity
// escalates to danger. Returns nil when the series is too sparse or the
// last week is unremarkable.
func DetectAnomaly(samples []WeightSample) *Anomaly {
	window := analysisWindow(samples)
	if window == nil {
		return nil
	}

	avg, ok := avgWeeklyChange(window)
	if !ok {
		return nil
	}

	// Change across the trailing 7 calendar days; needs at least two
	// weigh-ins inside that stretch to mean anything.
	latest := window[len(window)-1]
	weekStart := latest.Date.AddDate(0, 0, -6)
	var lastWeek []WeightSample
	for _, s := range window {
		if !s.Date.Before(weekStart) {
			lastWeek = append(lastWeek, s)
		}
	}
	if len(lastWeek) < 2 {
		return nil
	}
	lastChange := lastWeek[len(lastWeek)-1].WeightKG - lastWeek[0].WeightKG

	if math.Abs(lastChange) <= 2*math.Abs(avg) || math.Abs(lastChange) <= anomalyMinChangeKG {
		return nil
	}

	severity := SeverityWarning
	suggestion := "Double-check your weigh-ins and food logging."
	if math.Abs(lastChange) > anomalyDangerKG {
		severity = SeverityDanger
		suggestion = "Consult a health professional if this continues."
	}

	var message string
	if lastChange < 0 {
		message = fmt.Sprintf("Rapid loss: %.1f kg this week (rolling average %.1f kg)",
			math.Abs(lastChange), math.Abs(avg))
	} else {
		message = fmt.Sprintf("Rapid gain: +%.1f kg this week (rolling average +%.1f kg)",
			lastChange, math.Abs(avg))
	}

	return &Anomaly{Severity: severity, Message: message, Suggestion: suggestion}
}

// avgWeeklyChange chains week-over-week deltas across the window: samples
// are bucketed into 7-day stretches from the window start, each bucket
// represented by its last weigh-in, and the deltas between consecutive
// occupied buckets are averaged.
func avgWeeklyChange(window []WeightSample) (float64, bool) {
	start := window[0].Date
	buckets := make([]*float64, analysisWindowDays/7)
	for _, s := range window {
		idx := s.Date.DaysSince(start) / 7
		if idx >= len(buckets) {
			idx = len(buckets) - 1
		}
		w := s.WeightKG
		buckets[idx] = &w
	}

	var deltas []float64
	var prev *float64
	for _, b := range buckets {
		if b == nil {
			continue
		}
		if prev != nil {
			deltas = append(deltas, *b-*prev)
		}
		prev = b
	}
	if len(deltas) == 0 {
		return 0, false
	}

	var sum float64
	for _, d := range deltas {
		sum += d
	}
	return sum / float64(len(deltas)), true
}

/* ─── Goal-date prediction ───────────────────────────────────────────── */

// PredictGoalDate projects when targetWeight will be reached at the weekly
// rate observed over the trailing four weeks. Returns nil when the series
// is too sparse or the rate is under 0.1 kg/week — there is no meaningful
// trend to extrapolate. The projection runs forward from now in whole weeks.
func PredictGoalDate(samples []WeightSample, targetWeight float64, now time.Time) *Prediction {
	window := analysisWindow(samples)
	if window == nil {
		return nil
	}

	first, last := window[0], window[len(window)-1]
	days := last.Date.DaysSince(first.Date)
	weekly := (last.WeightKG - first.WeightKG) / float64(days) * 7
	if math.Abs(weekly) < trendThresholdKG {
		return nil
	}

	remaining := math.Abs(targetWeight - last.WeightKG)
	weeks := int(math.Ceil(remaining / math.Abs(weekly)))

	return &Prediction{
		WeeksToGoal:    weeks,
		PredictedDate:  DateOnly{DateOf(now).AddDate(0, 0, weeks*7)},
		WeeklyChangeKG: round2(weekly),
	}
}
