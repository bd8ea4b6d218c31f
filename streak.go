package healthintel

import "time"

// TrackingStreak counts consecutive calendar days, ending today, on which at
// least one weigh-in or meal was logged. Multiple entries on a day count
// once; the first missing day breaks the streak. A gap today means zero —
// yesterday's run does not carry over.
func TrackingStreak(weights []WeightSample, meals []MealSample, now time.Time) int {
	days := make(map[string]bool)
	for _, w := range weights {
		days[w.Date.Format("2006-01-02")] = true
	}
	for _, m := range meals {
		days[m.Date.Format("2006-01-02")] = true
	}
	if len(days) == 0 {
		return 0
	}

	streak := 0
	day := DateOf(now)
	for days[day.Format("2006-01-02")] {
		streak++
		day = DateOnly{day.AddDate(0, 0, -1)}
	}
	return streak
}
