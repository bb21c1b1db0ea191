// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is shown in the page header when site_name is unset.
const DefaultSiteName = "Multimedia Technical Index"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, h.SiteName, "Page Title"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	CurrentPath string

	// CSRF protection; empty when the route is not wrapped by csrf.Protect.
	CSRFToken string

	// One-shot messages from the previous request.
	Flash []string
}

// NewBaseVM creates a BaseVM for a page.
func NewBaseVM(r *http.Request, siteName, title string) BaseVM {
	if siteName == "" {
		siteName = DefaultSiteName
	}
	return BaseVM{
		SiteName:    siteName,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}

// IsActive reports whether path is the current page, for nav highlighting.
func (b BaseVM) IsActive(path string) bool {
	return b.CurrentPath == path
}
