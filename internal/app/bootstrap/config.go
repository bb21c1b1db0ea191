// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/mediaindex/internal/app/features/settings"
	"github.com/dalemusser/mediaindex/internal/app/system/flash"
	"github.com/dalemusser/mediaindex/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// minSecretLen is the shortest session/CSRF key accepted in production.
const minSecretLen = 32

// appConfigKeys defines the configuration keys for mediaindex.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: store_type, mongo_uri, etc.
//   - Environment variables: MEDIAINDEX_STORE_TYPE, MEDIAINDEX_MONGO_URI, etc.
//   - Command-line flags: --store_type, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "store_type", Default: StoreMongo, Desc: "Stats backend: 'mongo', 'sqlite', 'postgres' or 'memory'"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "mediaindex", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 50, Desc: "MongoDB max connection pool size"},

	{Name: "sql_dsn", Default: "", Desc: "SQL DSN for sqlite/postgres (blank uses the driver default)"},

	{Name: "session_key", Default: "", Desc: "Flash cookie signing key (blank generates one per process in dev)"},
	{Name: "session_name", Default: flash.DefaultSessionName, Desc: "Flash cookie name"},
	{Name: "csrf_key", Default: "", Desc: "CSRF token key, 32+ chars (blank generates one per process in dev)"},

	{Name: "settings_mode", Default: string(settings.ModeOverwrite), Desc: "Settings submissions: 'overwrite' the latest record or 'append' a new one"},
	{Name: "settings_rate_limit", Default: 30, Desc: "Settings submissions per client IP per minute (0 disables)"},
	{Name: "trust_proxy", Default: false, Desc: "Identify clients by X-Forwarded-For/X-Real-IP (only behind a reverse proxy)"},
	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in the header"},
	{Name: "api_allowed_origins", Default: "", Desc: "Comma-separated origins allowed to call /api (blank allows any)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env and config files,
// environment variables (WAFFLE_* for core, MEDIAINDEX_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MEDIAINDEX", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	mode, err := settings.ParseMode(strings.ToLower(strings.TrimSpace(appValues.String("settings_mode"))))
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StoreType:         strings.ToLower(strings.TrimSpace(appValues.String("store_type"))),
		MongoURI:          appValues.String("mongo_uri"),
		MongoDatabase:     appValues.String("mongo_database"),
		MongoMaxPoolSize:  uint64(appValues.Int("mongo_max_pool_size")),
		SQLDSN:            appValues.String("sql_dsn"),
		SessionKey:        appValues.String("session_key"),
		SessionName:       appValues.String("session_name"),
		CSRFKey:           appValues.String("csrf_key"),
		SettingsMode:      mode,
		SettingsRateLimit: appValues.Int("settings_rate_limit"),
		TrustProxy:        appValues.Bool("trust_proxy"),
		SiteName:          appValues.String("site_name"),
		APIAllowedOrigins: splitList(appValues.String("api_allowed_origins")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The Mongo URI is checked only when Mongo is the backend. Production
// requires real session and CSRF keys; dev falls back to per-process
// random keys.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreType {
	case StoreMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("mongo_database is required when store_type is mongo")
		}
	case StoreSQLite, StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("unknown store_type %q (want mongo, sqlite, postgres or memory)", appCfg.StoreType)
	}

	if appCfg.SettingsRateLimit < 0 {
		return fmt.Errorf("settings_rate_limit must not be negative")
	}

	if appCfg.CSRFKey != "" && len(appCfg.CSRFKey) < minSecretLen {
		return fmt.Errorf("csrf_key must be at least %d characters", minSecretLen)
	}

	if coreCfg != nil && coreCfg.Env == "prod" {
		if len(appCfg.SessionKey) < minSecretLen {
			return fmt.Errorf("session_key must be at least %d characters in production", minSecretLen)
		}
		if appCfg.CSRFKey == "" {
			return fmt.Errorf("csrf_key is required in production")
		}
		if appCfg.StoreType == StoreMemory {
			logger.Warn("store_type=memory in production: statistics are lost on restart")
		}
	}

	return nil
}

// splitList parses a comma-separated config value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
