// Package stats computes activity statistics over normalized watch
// entries: streaks, day counts, weekly distribution and color levels.
// Every function is pure; day bucketing always uses local calendar days.
package stats

import (
	"sort"
	"time"

	"github.com/tsky/watchgrass/model"
)

// StreakResult describes the longest run of consecutive active days.
// Start and End are nil when Length is zero.
type StreakResult struct {
	Length int
	Start  *time.Time
	End    *time.Time
}

// Contains reports whether the given local day falls inside the streak.
func (s StreakResult) Contains(day time.Time) bool {
	if s.Start == nil || s.End == nil {
		return false
	}
	return !day.Before(*s.Start) && !day.After(*s.End)
}

// GroupByDate groups entries by their local-day key (YYYY-MM-DD).
func GroupByDate(entries []model.WatchEntry) map[string][]model.WatchEntry {
	grouped := make(map[string][]model.WatchEntry)
	for _, e := range entries {
		key := e.DayKey()
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}

// uniqueDays returns the sorted set of distinct local days, at midnight.
func uniqueDays(entries []model.WatchEntry) []time.Time {
	seen := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		key := e.DayKey()
		if _, ok := seen[key]; !ok {
			seen[key] = e.Day()
		}
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// ComputeStreak finds the longest maximal run of consecutive local days
// with at least one entry. The scan works on calendar-day deltas only,
// so a streak may cross a year boundary when the input is not
// pre-filtered to a single year.
func ComputeStreak(entries []model.WatchEntry) StreakResult {
	days := uniqueDays(entries)
	if len(days) == 0 {
		return StreakResult{}
	}

	bestStart, bestLen := 0, 1
	runStart, runLen := 0, 1
	for i := 1; i < len(days); i++ {
		if isNextCalendarDay(days[i-1], days[i]) {
			runLen++
		} else {
			runStart, runLen = i, 1
		}
		if runLen > bestLen {
			bestStart, bestLen = runStart, runLen
		}
	}

	start := days[bestStart]
	end := days[bestStart+bestLen-1]
	return StreakResult{Length: bestLen, Start: &start, End: &end}
}

// isNextCalendarDay reports whether b is exactly the calendar day after
// a. Comparing dates rather than durations keeps DST transition days
// (23h or 25h long) counting as consecutive.
func isNextCalendarDay(a, b time.Time) bool {
	next := a.AddDate(0, 0, 1)
	ny, nm, nd := next.Date()
	by, bm, bd := b.Date()
	return ny == by && nm == bm && nd == bd
}

// ComputeDaysActive returns the number of distinct local days with at
// least one entry.
func ComputeDaysActive(entries []model.WatchEntry) int {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.DayKey()] = struct{}{}
	}
	return len(seen)
}

// ComputeWeeklyDistribution counts entries per day of week. The result
// is always Sunday-indexed regardless of the configured week start;
// mapping to grid rows is the layout's job.
func ComputeWeeklyDistribution(entries []model.WatchEntry) [7]int {
	var dist [7]int
	for _, e := range entries {
		dist[int(e.Date.Weekday())]++
	}
	return dist
}
