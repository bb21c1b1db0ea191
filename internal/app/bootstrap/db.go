// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/indexes"
	"github.com/dalemusser/mediaindex/internal/app/system/ratelimit"
	"github.com/dalemusser/mediaindex/internal/app/system/sqldb"
	"github.com/dalemusser/mediaindex/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the backend named by store_type and wraps it in the
// stats repository. The settings rate limiter is created here too so that
// Shutdown, which only sees DBDeps, can stop it.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps, err := connectStore(ctx, appCfg, logger)
	if err != nil {
		return DBDeps{}, err
	}
	if appCfg.SettingsRateLimit > 0 {
		deps.SettingsLimiter = ratelimit.New(appCfg.SettingsRateLimit, time.Minute)
	}
	return deps, nil
}

func connectStore(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	switch appCfg.StoreType {
	case StoreMongo:
		return connectMongo(ctx, appCfg, logger)

	case StoreSQLite, StorePostgres:
		db, err := sqldb.Open(ctx, sqldb.Driver(appCfg.StoreType), appCfg.SQLDSN)
		if err != nil {
			logger.Error("SQL connect failed", zap.String("store_type", appCfg.StoreType), zap.Error(err))
			return DBDeps{}, err
		}
		logger.Info("connected to SQL store", zap.String("store_type", appCfg.StoreType))
		return DBDeps{SQL: db, Stats: orgstatstore.NewSQLStore(db)}, nil

	case StoreMemory:
		logger.Warn("using in-memory stats store; data is not persisted")
		return DBDeps{Stats: orgstatstore.NewMemStore()}, nil
	}
	return DBDeps{}, fmt.Errorf("unknown store_type %q", appCfg.StoreType)
}

func connectMongo(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().ApplyURI(appCfg.MongoURI)
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("MongoDB ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Stats:         orgstatstore.New(db),
	}, nil
}

// EnsureSchema sets up indexes or schema as needed. SQL tables are
// created by sqldb.Open; running it again here keeps the hook idempotent.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	switch {
	case deps.MongoDatabase != nil:
		if err := indexes.EnsureAll(ctx, deps.MongoDatabase, logger); err != nil {
			logger.Error("ensure indexes failed", zap.Error(err))
			return err
		}
	case deps.SQL != nil:
		if err := sqldb.EnsureSchema(ctx, deps.SQL); err != nil {
			logger.Error("ensure SQL schema failed", zap.Error(err))
			return err
		}
	}
	return nil
}
