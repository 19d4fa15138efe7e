package domain

// DefaultRecentWindowDays is the aging window of the urgency score.
const DefaultRecentWindowDays = 7

// Scorer maps a task's priority and due date to an urgency score.
// Higher scores rank first.
type Scorer struct {
	RecentWindowDays int
}

// NewScorer creates a Scorer with the given aging window.
// A non-positive window falls back to DefaultRecentWindowDays.
func NewScorer(recentWindowDays int) Scorer {
	if recentWindowDays <= 0 {
		recentWindowDays = DefaultRecentWindowDays
	}
	return Scorer{RecentWindowDays: recentWindowDays}
}

// Score returns the priority base (1..4) plus an aging term in [0, 1] that grows as
// the due date approaches. The aging term saturates at 1 on the due date and for
// every overdue day, and is 0 for dates at least RecentWindowDays away.
// Tasks without a due date score the base value exactly.
func (s Scorer) Score(priority Priority, due *Date, today Date) float64 {
	base := float64(priority.Base())
	if due == nil {
		return base
	}

	window := s.RecentWindowDays
	if window <= 0 {
		window = DefaultRecentWindowDays
	}

	delta := today.DaysUntil(*due)
	aging := float64(window-delta) / float64(window)
	return base + clamp(aging, 0, 1)
}

// ScoreTask scores t relative to today.
func (s Scorer) ScoreTask(t Task, today Date) float64 {
	return s.Score(t.Priority, t.Due, today)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
