// internal/app/features/dashboard/handler.go
package dashboard

import (
	uierrors "github.com/dalemusser/mediaindex/internal/app/features/errors"
	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler serves the dashboard page and its JSON twin.
type Handler struct {
	Repo     orgstatstore.Repository
	Flash    *flash.Messenger
	SiteName string
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

func NewHandler(repo orgstatstore.Repository, fl *flash.Messenger, siteName string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Repo:     repo,
		Flash:    fl,
		SiteName: siteName,
		Log:      logger,
		ErrLog:   errLog,
	}
}
