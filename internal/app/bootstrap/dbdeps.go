// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"database/sql"

	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app, plus the other
// long-lived resources Shutdown must release. Exactly one backend is
// populated, chosen by store_type; Stats always is.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	SQL *sql.DB

	Stats orgstatstore.Repository

	// Throttles settings submissions; nil when settings_rate_limit is 0.
	SettingsLimiter *ratelimit.Limiter
}
