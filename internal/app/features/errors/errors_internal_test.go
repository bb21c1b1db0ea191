package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/mediaindex/internal/app/system/viewdata"
)

func TestNewPageData(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)

	data := newPageData(req, "QarDU Multimedia", http.StatusBadRequest, "Invalid form data.", "")
	if data.SiteName != "QarDU Multimedia" {
		t.Errorf("SiteName = %q, want the configured name", data.SiteName)
	}
	if data.Title != "Bad Request" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.BackURL != "/" {
		t.Errorf("BackURL = %q, want /", data.BackURL)
	}

	data = newPageData(req, "", http.StatusInternalServerError, "", "/settings")
	if data.SiteName != viewdata.DefaultSiteName {
		t.Errorf("SiteName = %q, want default", data.SiteName)
	}
}
