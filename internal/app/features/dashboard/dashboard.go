// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/dalemusser/mediaindex/internal/app/system/viewdata"
	"github.com/dalemusser/mediaindex/internal/domain/techindex"
	"github.com/dalemusser/waffle/pantry/templates"
)

type dashboardData struct {
	viewdata.BaseVM

	HasData           bool
	OrgName           string
	Classrooms        int
	MultimediaLessons int
	Surveys           int
	TechnicalIndex    int
	Level             string
	Summary           string

	// Chart series, already JSON-encoded for the inline script.
	TrendLabels template.JS
	TrendValues template.JS
	DistLabels  template.JS
	DistValues  template.JS
}

// ServeDashboard handles GET /.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.load(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load dashboard failed", err, "A database error occurred.", "/")
		return
	}

	data := buildDashboardData(viewdata.NewBaseVM(r, h.SiteName, "Dashboard"), snap)
	if h.Flash != nil {
		data.Flash = h.Flash.Pop(w, r)
	}

	templates.Render(w, r, "orgstats_dashboard", data)
}

func buildDashboardData(base viewdata.BaseVM, s snapshot) dashboardData {
	idx := s.index()
	return dashboardData{
		BaseVM:            base,
		HasData:           s.Found,
		OrgName:           s.Latest.DisplayName(),
		Classrooms:        s.Latest.ClassroomCount,
		MultimediaLessons: s.Latest.TotalLessons(),
		Surveys:           s.Latest.SurveyCount,
		TechnicalIndex:    idx,
		Level:             string(techindex.LevelFor(idx)),
		Summary:           techindex.Summary(idx),
		TrendLabels:       jsArray(s.TrendLabels),
		TrendValues:       jsArray(s.TrendValues),
		DistLabels:        jsArray(s.DistLabels),
		DistValues:        jsArray(s.DistValues),
	}
}

// jsArray encodes v for a <script> block. json.Marshal escapes <, > and &,
// so the result is safe to mark as template.JS.
func jsArray(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(b)
}
