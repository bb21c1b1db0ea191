package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/mediaindex/internal/domain/techindex"
)

// Saver is the part of the stats repository fixtures need.
type Saver interface {
	Save(ctx context.Context, stat models.OrganizationStat) (models.OrganizationStat, error)
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	repo Saver
	t    *testing.T
}

// NewFixtures creates a new Fixtures instance writing through repo.
func NewFixtures(t *testing.T, repo Saver) *Fixtures {
	t.Helper()
	return &Fixtures{repo: repo, t: t}
}

// Counts are the numeric fields of a stats snapshot.
type Counts struct {
	Classrooms int
	Lectures   int
	Labs       int
	Practicals int
	Surveys    int
}

// CreateOrgStat stores a snapshot with the given counts and creation time.
// The technical index is computed the same way the settings page does.
func (f *Fixtures) CreateOrgStat(ctx context.Context, name string, c Counts, createdAt time.Time) models.OrganizationStat {
	f.t.Helper()

	stat := techindex.Apply(models.OrganizationStat{
		Name:           name,
		ClassroomCount: c.Classrooms,
		Lectures:       c.Lectures,
		Labs:           c.Labs,
		Practicals:     c.Practicals,
		SurveyCount:    c.Surveys,
		CreatedAt:      createdAt.UTC(),
	})

	saved, err := f.repo.Save(ctx, stat)
	if err != nil {
		f.t.Fatalf("failed to create test organization stat: %v", err)
	}
	return saved
}

// CreateMonthlySeries stores one snapshot per month ending at last, oldest
// first, with lecture counts 1..n so every snapshot has a distinct index.
func (f *Fixtures) CreateMonthlySeries(ctx context.Context, name string, n int, last time.Time) []models.OrganizationStat {
	f.t.Helper()

	out := make([]models.OrganizationStat, 0, n)
	for i := 0; i < n; i++ {
		at := last.AddDate(0, i-(n-1), 0)
		out = append(out, f.CreateOrgStat(ctx, name, Counts{Classrooms: 2, Lectures: i + 1}, at))
	}
	return out
}
