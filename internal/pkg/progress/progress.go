package progress

import (
	"math"
	"sort"
	"time"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/areas"
)

// Status classifies an area's completion percentage for "needs attention"
// lists and chart coloring.
type Status string

const (
	StatusGood             Status = "good"
	StatusAttention        Status = "attention"
	StatusNeedsImprovement Status = "needs_improvement"
	// StatusNone marks areas without any goals in range; they are never
	// flagged for attention.
	StatusNone Status = "none"
)

// AreaStat holds completion counters for one area.
type AreaStat struct {
	Area       areas.Area `json:"area"`
	Total      int        `json:"total"`
	Completed  int        `json:"completed"`
	Percentage int        `json:"percentage"`
}

// MonthlyStat is one bucket of the completion time series, keyed by the
// goal creation month ("2006-01").
type MonthlyStat struct {
	Month      string `json:"month"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// YearRange bounds aggregation to an inclusive [Min, Max] year window. A
// nil bound is open; the zero value means "all years".
type YearRange struct {
	Min *int
	Max *int
}

// RangeFromDates derives a YearRange from a caller-supplied date range. A
// range with only a "from" bound has an open maximum.
func RangeFromDates(from, to *time.Time) YearRange {
	var r YearRange
	if from != nil {
		y := from.Year()
		r.Min = &y
	}
	if to != nil {
		y := to.Year()
		r.Max = &y
	}
	return r
}

// Contains reports whether a period year falls inside the range.
func (r YearRange) Contains(year int) bool {
	if r.Min != nil && year < *r.Min {
		return false
	}
	if r.Max != nil && year > *r.Max {
		return false
	}
	return true
}

// Options controls the goal filter applied before reduction.
type Options struct {
	Range YearRange
	// OnlyFilled excludes placeholder slots (blank goal text) from the
	// counts. Some consumers count every slot, some only real objectives.
	OnlyFilled bool
}

// Filter returns the goals that survive the range and fill filters. The
// aggregation functions below apply it themselves; it is exported for
// callers that need the surviving set (e.g. detail views).
func Filter(goals []models.Goal, opts Options) []models.Goal {
	out := make([]models.Goal, 0, len(goals))
	for _, g := range goals {
		if !opts.Range.Contains(g.PeriodYear) {
			continue
		}
		if opts.OnlyFilled && !g.IsFilled() {
			continue
		}
		out = append(out, g)
	}
	return out
}

// ComputeAreaStats reduces a plan's goal snapshot into per-area counters,
// one entry per registry area in registry order regardless of insertion
// order. Empty input yields zeroed stats, never an error.
func ComputeAreaStats(goals []models.Goal, opts Options) []AreaStat {
	totals := make(map[areas.Area]int, 7)
	completed := make(map[areas.Area]int, 7)

	for _, g := range Filter(goals, opts) {
		if !areas.IsValid(g.Area) {
			// Aggregation is keyed on the fixed 7-area set; anything else
			// means corrupted input, not a user mistake.
			panic("progress: goal with unknown area id " + string(g.Area))
		}
		totals[g.Area]++
		if g.IsCompleted {
			completed[g.Area]++
		}
	}

	stats := make([]AreaStat, 0, 7)
	for _, area := range areas.All() {
		stats = append(stats, AreaStat{
			Area:       area,
			Total:      totals[area],
			Completed:  completed[area],
			Percentage: percentage(completed[area], totals[area]),
		})
	}
	return stats
}

// Overall computes the plan-wide completion percentage by summing counters
// first and dividing once. Averaging per-area percentages would bias toward
// small areas.
func Overall(stats []AreaStat) int {
	var total, completed int
	for _, s := range stats {
		total += s.Total
		completed += s.Completed
	}
	return percentage(completed, total)
}

// Classify maps an area stat to its status. Boundaries are inclusive on the
// lower edge: exactly 70 is good, exactly 40 is attention.
func Classify(s AreaStat) Status {
	if s.Total == 0 {
		return StatusNone
	}
	switch {
	case s.Percentage >= 70:
		return StatusGood
	case s.Percentage >= 40:
		return StatusAttention
	default:
		return StatusNeedsImprovement
	}
}

// NeedsAttention returns the areas below the "good" threshold. Zero-goal
// areas are excluded regardless of percentage.
func NeedsAttention(stats []AreaStat) []AreaStat {
	out := make([]AreaStat, 0, len(stats))
	for _, s := range stats {
		switch Classify(s) {
		case StatusAttention, StatusNeedsImprovement:
			out = append(out, s)
		}
	}
	return out
}

// Best returns the area with the strictly greatest percentage; on ties the
// first in registry order wins. ok is false for an empty stats slice.
func Best(stats []AreaStat) (AreaStat, bool) {
	if len(stats) == 0 {
		return AreaStat{}, false
	}
	best := stats[0]
	for _, s := range stats[1:] {
		if s.Percentage > best.Percentage {
			best = s
		}
	}
	return best, true
}

// Worst mirrors Best for the strictly least percentage.
func Worst(stats []AreaStat) (AreaStat, bool) {
	if len(stats) == 0 {
		return AreaStat{}, false
	}
	worst := stats[0]
	for _, s := range stats[1:] {
		if s.Percentage < worst.Percentage {
			worst = s
		}
	}
	return worst, true
}

// MonthlyEvolution buckets the filtered goals by creation month and returns
// cumulative completion per month in ascending month order, so charts can
// show how the plan filled up and completed over time.
func MonthlyEvolution(goals []models.Goal, opts Options) []MonthlyStat {
	type bucket struct {
		total     int
		completed int
	}
	buckets := make(map[string]*bucket)

	for _, g := range Filter(goals, opts) {
		key := g.CreatedAt.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.total++
		if g.IsCompleted {
			b.completed++
		}
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyStat, 0, len(months))
	var runTotal, runCompleted int
	for _, m := range months {
		runTotal += buckets[m].total
		runCompleted += buckets[m].completed
		out = append(out, MonthlyStat{
			Month:      m,
			Total:      runTotal,
			Completed:  runCompleted,
			Percentage: percentage(runCompleted, runTotal),
		})
	}
	return out
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
