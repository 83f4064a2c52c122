// Package history converts raw Trakt history items into normalized
// watch entries and selects the target year.
package history

import (
	"log/slog"
	"sort"
	"time"

	"github.com/tsky/watchgrass/model"
	"github.com/tsky/watchgrass/trakt"
)

// Result is the outcome of one normalization pass.
type Result struct {
	Entries      []model.WatchEntry
	Year         int
	TotalCount   int
	MovieCount   int
	EpisodeCount int
	Skipped      int
}

// Normalizer converts raw events using a fixed time zone and content
// filter. Local-day bucketing depends on the zone, so one Normalizer
// must be used for a whole render pass.
type Normalizer struct {
	loc    *time.Location
	filter model.ContentFilter
	now    func() time.Time
	log    *slog.Logger
}

// NewNormalizer creates a Normalizer. A nil location means time.Local.
func NewNormalizer(loc *time.Location, filter model.ContentFilter, log *slog.Logger) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc, filter: filter, now: time.Now, log: log}
}

// Normalize converts raw items into entries for one target year. When
// targetYear is zero the most active year is selected: highest entry
// count, ties broken by preferring the current calendar year, then the
// smallest year (stable across runs).
//
// Items with unparseable dates or an unrecognized type are dropped and
// counted in Skipped, never reported as an error.
func (n *Normalizer) Normalize(items []trakt.HistoryItem, targetYear int) Result {
	byYear := map[int][]model.WatchEntry{}
	skipped := 0

	for _, item := range items {
		entry, ok := n.toEntry(item)
		if !ok {
			skipped++
			continue
		}
		if !n.filter.Keep(entry.Kind) {
			continue
		}
		y := entry.Date.Year()
		byYear[y] = append(byYear[y], entry)
	}

	year := targetYear
	if year == 0 {
		year = n.mostActiveYear(byYear)
	}

	entries := byYear[year]
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	res := Result{
		Entries:    entries,
		Year:       year,
		TotalCount: len(entries),
		Skipped:    skipped,
	}
	for _, e := range entries {
		if e.Kind == model.KindMovie {
			res.MovieCount++
		} else {
			res.EpisodeCount++
		}
	}
	if skipped > 0 {
		n.log.Warn("skipped malformed history items", "count", skipped)
	}
	return res
}

// toEntry converts one raw item, reporting ok=false for malformed input.
func (n *Normalizer) toEntry(item trakt.HistoryItem) (model.WatchEntry, bool) {
	watched, err := time.Parse(time.RFC3339, item.WatchedAt)
	if err != nil {
		return model.WatchEntry{}, false
	}
	local := watched.In(n.loc)

	switch item.Type {
	case "movie":
		if item.Movie == nil {
			return model.WatchEntry{}, false
		}
		return model.WatchEntry{
			Date:   local,
			Title:  item.Movie.Title,
			Year:   item.Movie.Year,
			Kind:   model.KindMovie,
			Rating: item.Rating,
		}, true
	case "episode":
		if item.Episode == nil || item.Show == nil {
			return model.WatchEntry{}, false
		}
		return model.WatchEntry{
			Date:         local,
			Title:        item.Show.Title,
			Year:         item.Show.Year,
			Kind:         model.KindEpisode,
			EpisodeLabel: model.FormatEpisodeLabel(item.Episode.Season, item.Episode.Number),
			Rating:       item.Rating,
		}, true
	default:
		return model.WatchEntry{}, false
	}
}

// mostActiveYear picks the year with the highest entry count. Ties
// prefer the current calendar year, then the smallest year.
func (n *Normalizer) mostActiveYear(byYear map[int][]model.WatchEntry) int {
	if len(byYear) == 0 {
		return n.now().In(n.loc).Year()
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	current := n.now().In(n.loc).Year()
	best, bestCount := years[0], len(byYear[years[0]])
	for _, y := range years[1:] {
		c := len(byYear[y])
		switch {
		case c > bestCount:
			best, bestCount = y, c
		case c == bestCount && y == current && best != current:
			best = y
		}
	}
	return best
}
