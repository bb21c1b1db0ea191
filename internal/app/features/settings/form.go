// internal/app/features/settings/form.go
package settings

import (
	"errors"
	"fmt"
	"net/http"

	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/formutil"
	"github.com/dalemusser/mediaindex/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mediaindex/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Form field names.
const (
	fieldName       = "name"
	fieldClassrooms = "classroom_count"
	fieldLectures   = "lectures"
	fieldLabs       = "labs"
	fieldPracticals = "practicals"
	fieldSurveys    = "survey_count"
)

// maxFormBytes bounds the url-encoded body; the form is six short fields.
const maxFormBytes = 64 << 10

type settingsVM struct {
	formutil.Base
	Name       string
	Classrooms int
	Lectures   int
	Labs       int
	Practicals int
	Surveys    int
	Index      int
}

// ServeSettings displays the form prefilled from the latest record.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load latest stat")
	defer cancel()

	var vm settingsVM
	formutil.SetBase(&vm.Base, r, h.SiteName, "Settings", "/")

	latest, err := h.Repo.Latest(ctx)
	switch {
	case err == nil:
		vm.Name = latest.Name
		vm.Classrooms = latest.ClassroomCount
		vm.Lectures = latest.Lectures
		vm.Labs = latest.Labs
		vm.Practicals = latest.Practicals
		vm.Surveys = latest.SurveyCount
		vm.Index = latest.TechnicalIndex
	case errors.Is(err, orgstatstore.ErrNotFound):
	default:
		h.ErrLog.LogServerError(w, r, "load latest stat failed", err, "A database error occurred.", "/")
		return
	}

	if h.Flash != nil {
		vm.Flash = h.Flash.Pop(w, r)
	}
	templates.Render(w, r, "orgstats_settings", vm)
}

// HandleSettings saves the submitted counts and redirects to the dashboard.
//
// Numeric fields never fail validation: anything unparsable or negative is
// stored as 0.
func (h *Handler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/settings")
		return
	}

	sub := parseSubmission(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "save organization stat")
	defer cancel()

	saved, err := h.Recorder.Record(ctx, sub)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "record organization stat failed", err, "Failed to save settings.", "/settings")
		return
	}

	if h.Flash != nil {
		if err := h.Flash.Add(w, r, fmt.Sprintf("Settings saved. Technical index: %d %%", saved.TechnicalIndex)); err != nil {
			h.Log.Warn("flash add failed", zap.Error(err))
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseSubmission(r *http.Request) Submission {
	return Submission{
		Name:       htmlsanitize.PlainText(r.PostFormValue(fieldName)),
		Classrooms: formutil.IntValue(r, fieldClassrooms),
		Lectures:   formutil.IntValue(r, fieldLectures),
		Labs:       formutil.IntValue(r, fieldLabs),
		Practicals: formutil.IntValue(r, fieldPracticals),
		Surveys:    formutil.IntValue(r, fieldSurveys),
	}
}
