// internal/service/analytics/range.go
package analytics

import (
	"fmt"
	"time"
)

// RangeKey is the closed set of dashboard date-range selectors. Resolve is
// exhaustive over this set; an unknown key is an error rather than a
// half-bounded fallback.
type RangeKey string

const (
	RangeAllTime   RangeKey = "all_time"
	RangeLast7Days RangeKey = "last_7_days"
	RangeThisMonth RangeKey = "this_month"
	RangeLastMonth RangeKey = "last_month"
	RangeThisYear  RangeKey = "this_year"
	RangeLastYear  RangeKey = "last_year"
)

// CustomRange is an explicit date pair used with RangeAllTime. Either bound
// may be open; an open To collapses to From's day.
type CustomRange struct {
	From *time.Time
	To   *time.Time
}

// Range is the resolved current period plus the same-length prior period used
// for trend comparison. Nil bounds mean "unbounded": all four nil signals
// lifetime with no comparison, nil Prev bounds mean no prior period exists
// (custom ranges).
type Range struct {
	CurrentStart *time.Time
	CurrentEnd   *time.Time
	PrevStart    *time.Time
	PrevEnd      *time.Time
}

// Lifetime reports whether the range covers all time with no comparison.
func (r Range) Lifetime() bool {
	return r.CurrentStart == nil && r.CurrentEnd == nil
}

// HasComparison reports whether a prior period exists.
func (r Range) HasComparison() bool {
	return r.PrevStart != nil && r.PrevEnd != nil
}

// Resolve turns a range key (plus an optional custom pair for all_time) into
// concrete period bounds relative to now.
func Resolve(key RangeKey, custom *CustomRange, now time.Time) (Range, error) {
	switch key {
	case RangeAllTime:
		if custom == nil || custom.From == nil {
			return Range{}, nil
		}
		start := startOfDay(*custom.From)
		endDay := *custom.From
		if custom.To != nil {
			endDay = *custom.To
		}
		end := endOfDay(endDay)
		// Custom ranges carry no prior-period comparison.
		return Range{CurrentStart: &start, CurrentEnd: &end}, nil

	case RangeLast7Days:
		curEnd := now
		curStart := now.AddDate(0, 0, -7)
		prevEnd := curStart
		prevStart := now.AddDate(0, 0, -14)
		return Range{
			CurrentStart: &curStart, CurrentEnd: &curEnd,
			PrevStart: &prevStart, PrevEnd: &prevEnd,
		}, nil

	case RangeThisMonth:
		curStart := startOfMonth(now)
		curEnd := now
		prevStart := startOfMonth(curStart.AddDate(0, -1, 0))
		prevEnd := endOfMonth(prevStart)
		return Range{
			CurrentStart: &curStart, CurrentEnd: &curEnd,
			PrevStart: &prevStart, PrevEnd: &prevEnd,
		}, nil

	case RangeLastMonth:
		curStart := startOfMonth(startOfMonth(now).AddDate(0, -1, 0))
		curEnd := endOfMonth(curStart)
		prevStart := startOfMonth(curStart.AddDate(0, -1, 0))
		prevEnd := endOfMonth(prevStart)
		return Range{
			CurrentStart: &curStart, CurrentEnd: &curEnd,
			PrevStart: &prevStart, PrevEnd: &prevEnd,
		}, nil

	case RangeThisYear:
		curStart := startOfYear(now)
		curEnd := now
		prevStart := startOfYear(curStart.AddDate(-1, 0, 0))
		prevEnd := endOfYear(prevStart)
		return Range{
			CurrentStart: &curStart, CurrentEnd: &curEnd,
			PrevStart: &prevStart, PrevEnd: &prevEnd,
		}, nil

	case RangeLastYear:
		curStart := startOfYear(startOfYear(now).AddDate(-1, 0, 0))
		curEnd := endOfYear(curStart)
		prevStart := startOfYear(curStart.AddDate(-1, 0, 0))
		prevEnd := endOfYear(prevStart)
		return Range{
			CurrentStart: &curStart, CurrentEnd: &curEnd,
			PrevStart: &prevStart, PrevEnd: &prevEnd,
		}, nil

	default:
		return Range{}, fmt.Errorf("unknown range key %q", key)
	}
}

// ParseRangeKey validates a raw selector string.
func ParseRangeKey(s string) (RangeKey, error) {
	switch RangeKey(s) {
	case RangeAllTime, RangeLast7Days, RangeThisMonth, RangeLastMonth, RangeThisYear, RangeLastYear:
		return RangeKey(s), nil
	}
	return "", fmt.Errorf("unknown range key %q", s)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return endOfDay(startOfMonth(t).AddDate(0, 1, -1))
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func endOfYear(t time.Time) time.Time {
	return endOfDay(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
}
