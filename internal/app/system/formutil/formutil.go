// Package formutil provides helpers for reading and re-rendering forms.
//
// Numeric fields are read fail-open: anything that is not a non-negative
// decimal integer is treated as 0 and no validation error is surfaced.
//
// Example usage:
//
//	type settingsData struct {
//		formutil.Base
//		Classrooms int
//	}
//
//	data := settingsData{Classrooms: formutil.IntValue(r, "classroom_count")}
//	formutil.SetBase(&data.Base, r, h.SiteName, "Settings", "/")
package formutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/mediaindex/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	viewdata.BaseVM

	// Where Cancel leads: ?return=, a same-host Referer, or the default.
	BackURL string
}

// SetBase populates the page and navigation fields of b from the request.
func SetBase(b *Base, r *http.Request, siteName, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(r, siteName, title)
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
}

// Int parses s as a non-negative decimal integer. Empty, non-numeric,
// negative or out-of-range input yields 0.
func Int(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IntValue reads the posted form field key from r and coerces it with Int.
// Query parameters are ignored.
func IntValue(r *http.Request, key string) int {
	return Int(r.PostFormValue(key))
}
