package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/mediaindex/internal/app/features/metrics"
	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/testutil"
	"go.uber.org/zap"
)

func scrape(t *testing.T, repo orgstatstore.Repository) *httptest.ResponseRecorder {
	t.Helper()
	h := metrics.NewHandler(repo, zap.NewNop())
	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rec
}

func TestServe_Empty(t *testing.T) {
	rec := scrape(t, orgstatstore.NewMemStore())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"# TYPE mediaindex_technical_index gauge",
		"mediaindex_technical_index 0",
		"mediaindex_records 0",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestServe_LatestRecord(t *testing.T) {
	repo := orgstatstore.NewMemStore()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, repo)

	at := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	fx.CreateOrgStat(ctx, "ATMU", testutil.Counts{Classrooms: 1, Lectures: 10}, at.AddDate(0, -1, 0))
	fx.CreateOrgStat(ctx, "ATMU", testutil.Counts{Classrooms: 2, Lectures: 5, Labs: 5, Practicals: 5, Surveys: 200}, at)

	body := scrape(t, repo).Body.String()

	for _, want := range []string{
		"mediaindex_technical_index 88",
		"mediaindex_records 2",
		"mediaindex_classrooms 2",
		"mediaindex_surveys 200",
		`mediaindex_factor{factor="room_utilization"} 0.75`,
		`mediaindex_factor{factor="survey"} 1`,
		`mediaindex_lessons{form="lab"} 5`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

type downRepo struct{ orgstatstore.Repository }

func (downRepo) Count(context.Context) (int64, error) { return 0, errors.New("down") }

func TestServe_StoreError(t *testing.T) {
	rec := scrape(t, downRepo{orgstatstore.NewMemStore()})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
