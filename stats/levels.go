package stats

import (
	"math"
	"sort"

	"github.com/tsky/watchgrass/model"
)

// MaxLevel is the highest color intensity tier; levels run 0..MaxLevel.
const MaxLevel = 4

// DayCountStats holds percentile thresholds over the distribution of
// per-day entry counts. Days without entries are not part of the
// distribution.
type DayCountStats struct {
	P25 float64
	P50 float64
	P75 float64
	P90 float64
	Max int
}

// ComputeDayCountStats derives the thresholds from grouped entries.
func ComputeDayCountStats(grouped map[string][]model.WatchEntry) DayCountStats {
	counts := make([]int, 0, len(grouped))
	maxCount := 0
	for _, day := range grouped {
		counts = append(counts, len(day))
		if len(day) > maxCount {
			maxCount = len(day)
		}
	}
	sort.Ints(counts)
	return DayCountStats{
		P25: percentile(counts, 0.25),
		P50: percentile(counts, 0.50),
		P75: percentile(counts, 0.75),
		P90: percentile(counts, 0.90),
		Max: maxCount,
	}
}

// percentile interpolates the p-th percentile of sorted counts.
func percentile(sorted []int, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return float64(sorted[0])
	}
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo])*(1-frac) + float64(sorted[hi])*frac
}

// Leveler maps a per-day count to a color level 0..MaxLevel. The two
// implementations are the percentile scheme and the linear max-count
// scheme; linear is the default.
type Leveler interface {
	Level(count int) int
}

// LinearLeveler scales counts against the maximum day count:
// ceil(count/max*4), clamped to MaxLevel.
type LinearLeveler struct {
	MaxCount int
}

// Level implements Leveler.
func (l LinearLeveler) Level(count int) int {
	if count <= 0 || l.MaxCount <= 0 {
		return 0
	}
	level := int(math.Ceil(float64(count) / float64(l.MaxCount) * MaxLevel))
	if level > MaxLevel {
		return MaxLevel
	}
	if level < 1 {
		return 1
	}
	return level
}

// PercentileLeveler buckets counts against distribution percentiles:
// level 1 at or below p25, 2 at or below p50, 3 at or below p75,
// 4 above.
type PercentileLeveler struct {
	Stats DayCountStats
}

// Level implements Leveler.
func (l PercentileLeveler) Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case float64(count) <= l.Stats.P25:
		return 1
	case float64(count) <= l.Stats.P50:
		return 2
	case float64(count) <= l.Stats.P75:
		return 3
	default:
		return MaxLevel
	}
}

// NewLeveler constructs the scheme named by s over the grouped entries.
// Unknown names fall back to the linear scheme.
func NewLeveler(scheme string, grouped map[string][]model.WatchEntry) Leveler {
	st := ComputeDayCountStats(grouped)
	if scheme == "percentile" {
		return PercentileLeveler{Stats: st}
	}
	return LinearLeveler{MaxCount: st.Max}
}
