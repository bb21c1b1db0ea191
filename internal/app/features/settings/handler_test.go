package settings_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	uierrors "github.com/dalemusser/mediaindex/internal/app/features/errors"
	"github.com/dalemusser/mediaindex/internal/app/features/settings"
	_ "github.com/dalemusser/mediaindex/internal/app/features/shared/views"
	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/flash"
	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/mediaindex/internal/testutil"
	"go.uber.org/zap"
)

const testSessionKey = "0123456789abcdef0123456789abcdef"

func newTestHandler(repo orgstatstore.Repository, mode settings.Mode) *settings.Handler {
	logger := zap.NewNop()
	return settings.NewHandler(
		repo,
		settings.NewRecorder(repo, mode, logger),
		flash.New(testSessionKey, "", false, logger),
		"",
		uierrors.NewErrorLogger(logger, ""),
		logger,
	)
}

func TestHandleSettings_SavesAndRedirects(t *testing.T) {
	repo := orgstatstore.NewMemStore()
	h := newTestHandler(repo, settings.ModeOverwrite)

	req := testutil.NewFormRequest("/settings", url.Values{
		"name":            {"<b>QarDU</b>"},
		"classroom_count": {"2"},
		"lectures":        {"5"},
		"labs":            {"5"},
		"practicals":      {"5"},
		"survey_count":    {"200"},
	})
	rec := testutil.NewRecorder()
	h.HandleSettings(rec, req)

	rec.AssertRedirect(t, "/")
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected flash cookie on redirect")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Name != "QarDU" {
		t.Errorf("Name = %q, want markup stripped", latest.Name)
	}
	if latest.TechnicalIndex != 88 {
		t.Errorf("TechnicalIndex = %d, want 88", latest.TechnicalIndex)
	}
	if time.Since(latest.CreatedAt) > time.Minute {
		t.Errorf("CreatedAt not refreshed: %v", latest.CreatedAt)
	}
}

func TestHandleSettings_CoercesBadNumbers(t *testing.T) {
	repo := orgstatstore.NewMemStore()
	h := newTestHandler(repo, settings.ModeOverwrite)

	req := testutil.NewFormRequest("/settings", url.Values{
		"classroom_count": {"abc"},
		"lectures":        {"-3"},
		"labs":            {""},
		"practicals":      {"12"},
	})
	rec := testutil.NewRecorder()
	h.HandleSettings(rec, req)

	rec.AssertStatus(t, http.StatusSeeOther)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ClassroomCount != 0 || latest.Lectures != 0 || latest.Labs != 0 || latest.SurveyCount != 0 {
		t.Errorf("expected coerced zeros, got %+v", latest)
	}
	if latest.Practicals != 12 {
		t.Errorf("Practicals = %d, want 12", latest.Practicals)
	}
	// Only variety contributes: 1/3 of 20 points.
	if latest.TechnicalIndex != 7 {
		t.Errorf("TechnicalIndex = %d, want 7", latest.TechnicalIndex)
	}
	if latest.DisplayName() != models.DefaultOrgName {
		t.Errorf("DisplayName = %q", latest.DisplayName())
	}
}

func TestHandleSettings_AppendMode(t *testing.T) {
	repo := orgstatstore.NewMemStore()
	h := newTestHandler(repo, settings.ModeAppend)

	for _, n := range []string{"1", "2"} {
		rec := testutil.NewRecorder()
		h.HandleSettings(rec, testutil.NewFormRequest("/settings", url.Values{"classroom_count": {n}}))
		rec.AssertStatus(t, http.StatusSeeOther)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if n, _ := repo.Count(ctx); n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestServeSettings_Renders(t *testing.T) {
	testutil.BootTemplates(t)
	repo := orgstatstore.NewMemStore()
	h := newTestHandler(repo, settings.ModeOverwrite)

	rec := testutil.NewRecorder()
	h.ServeSettings(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `name="classroom_count"`)
	rec.AssertContains(t, `name="gorilla.csrf.Token"`)
	rec.AssertContains(t, `class="cancel" href="/"`)
}

func TestServeSettings_Prefills(t *testing.T) {
	testutil.BootTemplates(t)
	repo := orgstatstore.NewMemStore()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	testutil.NewFixtures(t, repo).CreateOrgStat(ctx, "ATMU",
		testutil.Counts{Classrooms: 4, Lectures: 13, Labs: 2, Surveys: 150}, time.Now().UTC())

	h := newTestHandler(repo, settings.ModeOverwrite)
	req := httptest.NewRequest(http.MethodGet, "/settings?return=/api/dashboard", nil)
	rec := testutil.NewRecorder()
	h.ServeSettings(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `value="ATMU"`)
	rec.AssertContains(t, `name="lectures" min="0" value="13"`)
	rec.AssertContains(t, `href="/api/dashboard"`)
}

func TestRoutes(t *testing.T) {
	repo := orgstatstore.NewMemStore()
	router := settings.Routes(newTestHandler(repo, settings.ModeOverwrite))

	req := testutil.NewFormRequest("/", url.Values{"classroom_count": {"3"}})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/")
}
