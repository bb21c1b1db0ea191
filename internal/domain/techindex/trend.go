package techindex

import (
	"time"

	"github.com/dalemusser/mediaindex/internal/domain/models"
)

// TrendWindow is the number of most recent records the trend chart shows.
const TrendWindow = 6

// RecentTrend turns records ordered newest-first (as the store returns them)
// into chronological month labels and index values. Only the newest
// TrendWindow records are used. Both slices are non-nil so they encode as
// JSON arrays.
func RecentTrend(newestFirst []models.OrganizationStat) (labels []string, values []int) {
	n := len(newestFirst)
	if n > TrendWindow {
		n = TrendWindow
	}

	labels = make([]string, 0, n)
	values = make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		s := newestFirst[i]
		labels = append(labels, monthLabel(s.CreatedAt))
		values = append(values, s.TechnicalIndex)
	}
	return labels, values
}

func monthLabel(t time.Time) string {
	if t.IsZero() {
		return "?"
	}
	return t.Format("Jan")
}
