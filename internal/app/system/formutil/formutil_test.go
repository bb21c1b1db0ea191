package formutil_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/mediaindex/internal/app/system/formutil"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"12", 12},
		{" 7 ", 7},
		{"0", 0},
		{"3.5", 0},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		if got := formutil.Int(tt.in); got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntValue(t *testing.T) {
	form := url.Values{
		"classroom_count": {"4"},
		"lectures":        {"ten"},
	}
	req := httptest.NewRequest("POST", "/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if got := formutil.IntValue(req, "classroom_count"); got != 4 {
		t.Errorf("classroom_count = %d, want 4", got)
	}
	if got := formutil.IntValue(req, "lectures"); got != 0 {
		t.Errorf("lectures = %d, want 0", got)
	}
	if got := formutil.IntValue(req, "missing"); got != 0 {
		t.Errorf("missing = %d, want 0", got)
	}
}

func TestIntValue_IgnoresQuery(t *testing.T) {
	req := httptest.NewRequest("POST", "/settings?labs=9", strings.NewReader("labs=2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if got := formutil.IntValue(req, "labs"); got != 2 {
		t.Errorf("labs = %d, want the posted 2", got)
	}
}

func TestSetBase(t *testing.T) {
	req := httptest.NewRequest("GET", "/settings", nil)

	var b formutil.Base
	formutil.SetBase(&b, req, "QarDU Index", "Settings", "/")

	if b.Title != "Settings" {
		t.Errorf("Title = %q, want Settings", b.Title)
	}
	if b.SiteName != "QarDU Index" {
		t.Errorf("SiteName = %q, want QarDU Index", b.SiteName)
	}
	if b.CurrentPath != "/settings" {
		t.Errorf("CurrentPath = %q, want /settings", b.CurrentPath)
	}
	if b.BackURL != "/" {
		t.Errorf("BackURL = %q, want /", b.BackURL)
	}
}

func TestSetBase_BackURL(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		referer string
		want    string
	}{
		{"return param", "/settings?return=/api/dashboard", "", "/api/dashboard"},
		{"same-host referer", "/settings", "http://example.com/?tab=charts", "/?tab=charts"},
		{"foreign return ignored", "/settings?return=https://evil.example", "", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			var b formutil.Base
			formutil.SetBase(&b, req, "", "Settings", "/")
			if b.BackURL != tt.want {
				t.Errorf("BackURL = %q, want %q", b.BackURL, tt.want)
			}
		})
	}
}
