// internal/app/features/dashboard/snapshot.go
package dashboard

import (
	"context"
	"errors"

	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/timeouts"
	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/mediaindex/internal/domain/techindex"
)

// snapshot is everything the dashboard shows, computed once per request and
// rendered either as HTML or JSON.
type snapshot struct {
	Found  bool
	Latest models.OrganizationStat
	Result techindex.Result

	TrendLabels []string
	TrendValues []int
	DistLabels  []string
	DistValues  []int
}

// load reads the latest record and the trend window. An empty store is not
// an error: it yields a zero snapshot with empty chart series.
func (h *Handler) load(parent context.Context) (snapshot, error) {
	ctx, cancel := timeouts.WithTimeout(parent, timeouts.Medium(), h.Log, "load dashboard")
	defer cancel()

	latest, err := h.Repo.Latest(ctx)
	found := err == nil
	if err != nil && !errors.Is(err, orgstatstore.ErrNotFound) {
		return snapshot{}, err
	}

	recent, err := h.Repo.Recent(ctx, techindex.TrendWindow)
	if err != nil {
		return snapshot{}, err
	}
	return newSnapshot(latest, found, recent), nil
}

func newSnapshot(latest models.OrganizationStat, found bool, recent []models.OrganizationStat) snapshot {
	if !found {
		latest = models.OrganizationStat{}
	}
	s := snapshot{
		Found:  found,
		Latest: latest,
		Result: techindex.Breakdown(techindex.InputFrom(latest)),
	}
	s.TrendLabels, s.TrendValues = techindex.RecentTrend(recent)
	if found {
		s.DistLabels, s.DistValues = techindex.Distribution(latest)
	} else {
		s.DistLabels, s.DistValues = []string{}, []int{}
	}
	return s
}

// index is the stored value, which is what users saw when they saved.
func (s snapshot) index() int {
	if !s.Found {
		return 0
	}
	return s.Latest.TechnicalIndex
}
