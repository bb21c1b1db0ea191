// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/mediaindex/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
	BackURL string
}

// ErrorLogger logs handler failures and renders a friendly page in their
// place. The raw error never reaches the browser.
type ErrorLogger struct {
	log      *zap.Logger
	siteName string
}

// NewErrorLogger returns an ErrorLogger writing to logger. Error pages carry
// siteName in their header like every other page.
func NewErrorLogger(logger *zap.Logger, siteName string) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger, siteName: siteName}
}

// LogServerError logs err at error level and renders a 500 page.
//
//	h.ErrLog.LogServerError(w, r, "load latest stat failed", err, "A database error occurred.", "/")
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	e.RenderError(w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Warn(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	e.RenderError(w, r, http.StatusBadRequest, userMsg, backURL)
}

// RenderError writes status and renders the error page.
func (e *ErrorLogger) RenderError(w http.ResponseWriter, r *http.Request, status int, msg, backURL string) {
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", newPageData(r, e.siteName, status, msg, backURL))
}

func newPageData(r *http.Request, siteName string, status int, msg, backURL string) pageData {
	if backURL == "" {
		backURL = "/"
	}
	return pageData{
		BaseVM:  viewdata.NewBaseVM(r, siteName, http.StatusText(status)),
		Status:  status,
		Message: msg,
		BackURL: backURL,
	}
}
