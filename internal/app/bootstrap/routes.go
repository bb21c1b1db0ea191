// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/mediaindex/internal/app/features/dashboard"
	_ "github.com/dalemusser/mediaindex/internal/app/features/dashboard/views"
	errorsfeature "github.com/dalemusser/mediaindex/internal/app/features/errors"
	healthfeature "github.com/dalemusser/mediaindex/internal/app/features/health"
	metricsfeature "github.com/dalemusser/mediaindex/internal/app/features/metrics"
	settingsfeature "github.com/dalemusser/mediaindex/internal/app/features/settings"
	_ "github.com/dalemusser/mediaindex/internal/app/features/shared/views"
	"github.com/dalemusser/mediaindex/internal/app/system/flash"
	"github.com/dalemusser/mediaindex/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine and mounts
// the dashboard, settings, JSON API, metrics and health routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, secure, logger), nil
}

// newRouter assembles the routes; split from BuildHandler so it can be
// built from a hand-made DBDeps in tests.
func newRouter(appCfg AppConfig, deps DBDeps, secure bool, logger *zap.Logger) chi.Router {
	errLog := errorsfeature.NewErrorLogger(logger, appCfg.SiteName)
	messenger := flash.New(appCfg.SessionKey, appCfg.SessionName, secure, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Stats, appCfg.StoreType, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	metricsHandler := metricsfeature.NewHandler(deps.Stats, logger)
	r.Mount("/metrics", metricsfeature.Routes(metricsHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	dashboardHandler := dashboardfeature.NewHandler(deps.Stats, messenger, appCfg.SiteName, errLog, logger)
	r.Mount("/api", dashboardfeature.APIRoutes(dashboardHandler, appCfg.APIAllowedOrigins))

	recorder := settingsfeature.NewRecorder(deps.Stats, appCfg.SettingsMode, logger)
	settingsHandler := settingsfeature.NewHandler(deps.Stats, recorder, messenger, appCfg.SiteName, errLog, logger)
	r.Route("/settings", func(sr chi.Router) {
		if deps.SettingsLimiter != nil {
			sr.Use(ratelimit.Writes(deps.SettingsLimiter, appCfg.TrustProxy))
		}
		for _, mw := range csrfMiddleware(appCfg.CSRFKey, secure, errLog, logger) {
			sr.Use(mw)
		}
		sr.Mount("/", settingsfeature.Routes(settingsHandler))
	})

	r.Mount("/", dashboardfeature.Routes(dashboardHandler))

	return r
}

// csrfMiddleware protects the settings form. Outside production requests
// arrive over plain HTTP, which gorilla/csrf must be told about or it
// rejects every POST on the Referer check.
func csrfMiddleware(key string, secure bool, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) []func(http.Handler) http.Handler {
	k := []byte(key)
	if len(k) == 0 {
		logger.Warn("csrf key is empty; using a random key")
		k = securecookie.GenerateRandomKey(32)
	}
	if len(k) > 32 {
		k = k[:32]
	}

	protect := csrf.Protect(k,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			errLog.LogBadRequest(w, r, "csrf check failed", csrf.FailureReason(r),
				"Your form expired. Please reload the page and try again.", "/settings")
		})),
	)

	if secure {
		return []func(http.Handler) http.Handler{protect}
	}
	plaintext := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
	return []func(http.Handler) http.Handler{plaintext, protect}
}
