// internal/app/bootstrap/appconfig.go
package bootstrap

import "github.com/dalemusser/mediaindex/internal/app/features/settings"

// Store backends selectable with store_type.
const (
	StoreMongo    = "mongo"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging); everything the
// statistics dashboard itself needs lives here.
type AppConfig struct {
	// Which backend stores organization statistics.
	StoreType string

	// MongoDB connection configuration (store_type=mongo)
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64

	// SQL connection string (store_type=sqlite or postgres). Blank uses the
	// driver's default DSN.
	SQLDSN string

	// Flash-message session cookie
	SessionKey  string // Secret for signing the cookie (32+ chars in production)
	SessionName string

	// CSRF protection for the settings form (32+ chars in production)
	CSRFKey string

	// What a settings submission does to the previous record.
	SettingsMode settings.Mode

	// Settings submissions allowed per client IP per minute; 0 disables.
	SettingsRateLimit int

	// Behind a reverse proxy that sets X-Forwarded-For / X-Real-IP. Only
	// then are those headers used to identify clients for rate limiting.
	TrustProxy bool

	// Shown in the page header.
	SiteName string

	// Origins allowed to read /api cross-origin. Empty allows any.
	APIAllowedOrigins []string
}
