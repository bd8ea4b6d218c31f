package healthintel

import (
	"encoding/json"
	"testing"
)

/* ─── Slot inference tests ───────────────────────────────────────────── */

// TestSlotForTime verifies the hour windows and the snack fallback for
// off-hours and unparseable input.
func TestSlotForTime(t *testing.T) {
	cases := []struct {
		hhmm string
		want MealSlot
	}{
		{"06:00", SlotBreakfast},
		{"10:59", SlotBreakfast},
		{"11:00", SlotLunch},
		{"14:30", SlotLunch},
		{"15:00", SlotSnack},
		{"18:00", SlotDinner},
		{"21:45", SlotDinner},
		{"22:00", SlotSnack},
		{"03:00", SlotSnack},
		{"notatime", SlotSnack},
		{"", SlotSnack},
	}
	for _, tc := range cases {
		if got := SlotForTime(tc.hhmm); got != tc.want {
			t.Errorf("SlotForTime(%q) = %s, want %s", tc.hhmm, got, tc.want)
		}
	}
}

/* ─── DateOnly tests ─────────────────────────────────────────────────── */

// TestDateOnly_JSON verifies the YYYY-MM-DD wire format in both directions.
func TestDateOnly_JSON(t *testing.T) {
	d := NewDate(2026, 8, 28)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2026-08-28"` {
		t.Errorf("marshal = %s, want \"2026-08-28\"", raw)
	}

	var back DateOnly
	if err := json.Unmarshal([]byte(`"2026-08-28"`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"28/08/2026"`), &back); err == nil {
		t.Error("unmarshal of a non-ISO date succeeded, want error")
	}
}

// TestDateOnly_DaysSince verifies whole-day arithmetic including negative
// spans.
func TestDateOnly_DaysSince(t *testing.T) {
	a := NewDate(2026, 8, 28)
	b := NewDate(2026, 8, 21)

	if got := a.DaysSince(b); got != 7 {
		t.Errorf("DaysSince = %d, want 7", got)
	}
	if got := b.DaysSince(a); got != -7 {
		t.Errorf("reverse DaysSince = %d, want -7", got)
	}
	if got := a.DaysSince(a); got != 0 {
		t.Errorf("same-day DaysSince = %d, want 0", got)
	}
}

/* ─── Series normalization tests ─────────────────────────────────────── */

// TestNormalizeWeights verifies duplicate resolution (last write in input
// order wins) and ascending date order regardless of input order.
func TestNormalizeWeights(t *testing.T) {
	samples := []WeightSample{
		wsAt(0, 80),
		wsAt(5, 82),
		wsAt(0, 79.5), // same day as the first entry, logged later
		wsAt(2, 81),
	}

	got := normalizeWeights(samples)
	if len(got) != 3 {
		t.Fatalf("normalized length = %d, want 3 distinct dates", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Date.Before(got[i].Date.Time) {
			t.Fatalf("dates not ascending: %v before %v", got[i-1].Date, got[i].Date)
		}
	}
	if last := got[len(got)-1]; last.WeightKG != 79.5 {
		t.Errorf("duplicate date resolved to %v kg, want the later write 79.5", last.WeightKG)
	}
}

// TestNormalizeWeights_Empty verifies the nil sentinel.
func TestNormalizeWeights_Empty(t *testing.T) {
	if got := normalizeWeights(nil); got != nil {
		t.Errorf("normalizeWeights(nil) = %v, want nil", got)
	}
}
