package analytics

import (
	"testing"
	"time"
)

func TestResolveAllTimeNoCustom(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	r, err := Resolve(RangeAllTime, nil, now)
	if err != nil {
		t.Fatalf("Resolve(all_time) returned error: %v", err)
	}
	if !r.Lifetime() {
		t.Fatalf("expected lifetime range, got %+v", r)
	}
	if r.HasComparison() {
		t.Fatalf("lifetime range must not have a comparison period")
	}
}

func TestResolveAllTimeCustomRange(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	from := time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC)

	r, err := Resolve(RangeAllTime, &CustomRange{From: &from}, now)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	wantStart := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 2, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	if !r.CurrentStart.Equal(wantStart) {
		t.Errorf("CurrentStart = %v, want %v", r.CurrentStart, wantStart)
	}
	if !r.CurrentEnd.Equal(wantEnd) {
		t.Errorf("CurrentEnd = %v, want %v", r.CurrentEnd, wantEnd)
	}
	if r.HasComparison() {
		t.Errorf("custom ranges must not have a comparison period")
	}
}

func TestCustomRangeIsNotLifetime(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	r, err := Resolve(RangeAllTime, &CustomRange{From: &from, To: &to}, now)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	// A bounded custom window has no comparison period, but it is not the
	// lifetime view: change labels must follow the zero-previous rules.
	if r.Lifetime() {
		t.Fatalf("bounded custom range reported as lifetime: %+v", r)
	}
	if r.HasComparison() {
		t.Fatalf("custom ranges must not have a comparison period")
	}
	if got := PercentChange(500, 0, r.Lifetime()); got != "+100%" {
		t.Errorf("PercentChange(500, 0) for custom range = %q, want %q", got, "+100%")
	}
	if got := PercentChange(0, 0, r.Lifetime()); got != "0%" {
		t.Errorf("PercentChange(0, 0) for custom range = %q, want %q", got, "0%")
	}
}

func TestResolveLast7DaysSymmetry(t *testing.T) {
	now := time.Date(2024, 3, 20, 9, 45, 0, 0, time.UTC)

	r, err := Resolve(RangeLast7Days, nil, now)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	curLen := r.CurrentEnd.Sub(*r.CurrentStart)
	prevLen := r.PrevEnd.Sub(*r.PrevStart)
	if curLen != prevLen {
		t.Errorf("window lengths differ: current %v, previous %v", curLen, prevLen)
	}
	if !r.PrevEnd.Equal(*r.CurrentStart) {
		t.Errorf("windows are not contiguous: prevEnd %v, currentStart %v", r.PrevEnd, r.CurrentStart)
	}
}

func TestResolveCalendarRanges(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	lastMilli := int(999 * time.Millisecond)

	cases := []struct {
		name      string
		key       RangeKey
		wantCurS  time.Time
		wantCurE  time.Time
		wantPrevS time.Time
		wantPrevE time.Time
	}{
		{
			name:      "this_month",
			key:       RangeThisMonth,
			wantCurS:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantCurE:  now,
			wantPrevS: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantPrevE: time.Date(2024, 2, 29, 23, 59, 59, lastMilli, time.UTC),
		},
		{
			name:      "last_month",
			key:       RangeLastMonth,
			wantCurS:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantCurE:  time.Date(2024, 2, 29, 23, 59, 59, lastMilli, time.UTC),
			wantPrevS: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantPrevE: time.Date(2024, 1, 31, 23, 59, 59, lastMilli, time.UTC),
		},
		{
			name:      "this_year",
			key:       RangeThisYear,
			wantCurS:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantCurE:  now,
			wantPrevS: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			wantPrevE: time.Date(2023, 12, 31, 23, 59, 59, lastMilli, time.UTC),
		},
		{
			name:      "last_year",
			key:       RangeLastYear,
			wantCurS:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			wantCurE:  time.Date(2023, 12, 31, 23, 59, 59, lastMilli, time.UTC),
			wantPrevS: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			wantPrevE: time.Date(2022, 12, 31, 23, 59, 59, lastMilli, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resolve(tc.key, nil, now)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if !r.CurrentStart.Equal(tc.wantCurS) {
				t.Errorf("CurrentStart = %v, want %v", r.CurrentStart, tc.wantCurS)
			}
			if !r.CurrentEnd.Equal(tc.wantCurE) {
				t.Errorf("CurrentEnd = %v, want %v", r.CurrentEnd, tc.wantCurE)
			}
			if !r.PrevStart.Equal(tc.wantPrevS) {
				t.Errorf("PrevStart = %v, want %v", r.PrevStart, tc.wantPrevS)
			}
			if !r.PrevEnd.Equal(tc.wantPrevE) {
				t.Errorf("PrevEnd = %v, want %v", r.PrevEnd, tc.wantPrevE)
			}
		})
	}
}

func TestResolveUnknownKey(t *testing.T) {
	now := time.Now()
	if _, err := Resolve(RangeKey("last_decade"), nil, now); err == nil {
		t.Fatal("expected error for unknown range key")
	}
	if _, err := ParseRangeKey("last_decade"); err == nil {
		t.Fatal("expected error from ParseRangeKey for unknown key")
	}
}
