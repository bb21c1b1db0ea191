package orgstatstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/sqldb"
	"github.com/dalemusser/mediaindex/internal/testutil"
)

// backends returns every Repository implementation that can run here.
// The MongoDB one is skipped when no server is reachable.
func backends(t *testing.T) map[string]func(t *testing.T) orgstatstore.Repository {
	return map[string]func(t *testing.T) orgstatstore.Repository{
		"memory": func(t *testing.T) orgstatstore.Repository {
			return orgstatstore.NewMemStore()
		},
		"sqlite": func(t *testing.T) orgstatstore.Repository {
			ctx, cancel := testutil.TestContext()
			defer cancel()
			db, err := sqldb.Open(ctx, sqldb.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "stats.db"))
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(func() { _ = db.Close() })
			return orgstatstore.NewSQLStore(db)
		},
		"mongo": func(t *testing.T) orgstatstore.Repository {
			return orgstatstore.New(testutil.SetupTestDB(t))
		},
	}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, repo orgstatstore.Repository, ctx context.Context)) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()
			fn(t, repo, ctx)
		})
	}
}

func TestRepository_LatestEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo orgstatstore.Repository, ctx context.Context) {
		_, err := repo.Latest(ctx)
		if !errors.Is(err, orgstatstore.ErrNotFound) {
			t.Errorf("Latest on empty store: got %v, want ErrNotFound", err)
		}

		stats, err := repo.Recent(ctx, 6)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if stats == nil || len(stats) != 0 {
			t.Errorf("Recent on empty store: got %v, want empty non-nil slice", stats)
		}
	})
}

func TestRepository_SaveInsertsAndFolds(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo orgstatstore.Repository, ctx context.Context) {
		fx := testutil.NewFixtures(t, repo)
		saved := fx.CreateOrgStat(ctx, "Kompyuter Injiniringi", testutil.Counts{Classrooms: 1, Lectures: 10}, time.Now())

		if saved.ID.IsZero() {
			t.Fatal("expected ID to be assigned")
		}
		if saved.NameCI == "" {
			t.Error("expected NameCI to be set")
		}

		got, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("Latest failed: %v", err)
		}
		if got.ID != saved.ID {
			t.Errorf("Latest ID: got %s, want %s", got.ID.Hex(), saved.ID.Hex())
		}
		if got.Name != "Kompyuter Injiniringi" {
			t.Errorf("Name: got %q", got.Name)
		}
		if got.TechnicalIndex != 57 {
			t.Errorf("TechnicalIndex: got %d, want 57", got.TechnicalIndex)
		}
		if got.ClassroomCount != 1 || got.Lectures != 10 {
			t.Errorf("counts not persisted: %+v", got)
		}
		if !got.CreatedAt.Equal(saved.CreatedAt) {
			t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, saved.CreatedAt)
		}
	})
}

func TestRepository_SaveOverwritesByID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo orgstatstore.Repository, ctx context.Context) {
		fx := testutil.NewFixtures(t, repo)
		first := fx.CreateOrgStat(ctx, "Org", testutil.Counts{Classrooms: 1}, time.Now().Add(-time.Hour))

		first.Labs = 4
		first.TechnicalIndex = 27
		first.CreatedAt = time.Now().UTC()
		if _, err := repo.Save(ctx, first); err != nil {
			t.Fatalf("overwrite failed: %v", err)
		}

		n, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if n != 1 {
			t.Errorf("Count after overwrite: got %d, want 1", n)
		}

		got, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("Latest failed: %v", err)
		}
		if got.Labs != 4 || got.TechnicalIndex != 27 {
			t.Errorf("overwrite not applied: %+v", got)
		}
	})
}

func TestRepository_RecentNewestFirst(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo orgstatstore.Repository, ctx context.Context) {
		fx := testutil.NewFixtures(t, repo)
		last := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)
		series := fx.CreateMonthlySeries(ctx, "Org", 8, last)

		stats, err := repo.Recent(ctx, 6)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(stats) != 6 {
			t.Fatalf("Recent(6): got %d records", len(stats))
		}
		for i, s := range stats {
			want := series[len(series)-1-i]
			if s.ID != want.ID {
				t.Errorf("position %d: got %s, want %s", i, s.CreatedAt, want.CreatedAt)
			}
		}

		latest, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("Latest failed: %v", err)
		}
		if latest.ID != series[len(series)-1].ID {
			t.Errorf("Latest: got %s, want newest", latest.CreatedAt)
		}

		none, err := repo.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("Recent(0) failed: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("Recent(0): got %d records", len(none))
		}
	})
}

func TestRepository_Ping(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo orgstatstore.Repository, ctx context.Context) {
		if err := repo.Ping(ctx); err != nil {
			t.Errorf("Ping failed: %v", err)
		}
	})
}
