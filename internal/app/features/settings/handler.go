// internal/app/features/settings/handler.go
package settings

import (
	uierrors "github.com/dalemusser/mediaindex/internal/app/features/errors"
	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler owns the organization statistics form.
type Handler struct {
	Repo     orgstatstore.Repository
	Recorder *Recorder
	Flash    *flash.Messenger
	SiteName string
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs a Handler whose submissions are written through rec.
func NewHandler(repo orgstatstore.Repository, rec *Recorder, fl *flash.Messenger, siteName string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Repo:     repo,
		Recorder: rec,
		Flash:    fl,
		SiteName: siteName,
		Log:      logger,
		ErrLog:   errLog,
	}
}
