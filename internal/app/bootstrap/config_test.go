package bootstrap

import (
	"strings"
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validCfg() AppConfig {
	return AppConfig{
		StoreType:     StoreMongo,
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "mediaindex",
	}
}

func TestValidateConfig(t *testing.T) {
	strong := strings.Repeat("k", minSecretLen)

	tests := []struct {
		name    string
		env     string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "mongo defaults", env: "dev"},
		{name: "memory store", env: "dev", mutate: func(c *AppConfig) { c.StoreType = StoreMemory; c.MongoURI = "" }},
		{name: "sqlite ignores mongo uri", env: "dev", mutate: func(c *AppConfig) { c.StoreType = StoreSQLite; c.MongoURI = "not a uri" }},
		{name: "unknown store", env: "dev", mutate: func(c *AppConfig) { c.StoreType = "redis" }, wantErr: "unknown store_type"},
		{name: "bad mongo uri", env: "dev", mutate: func(c *AppConfig) { c.MongoURI = "" }, wantErr: "invalid MongoDB URI"},
		{name: "missing database", env: "dev", mutate: func(c *AppConfig) { c.MongoDatabase = "" }, wantErr: "mongo_database"},
		{name: "negative rate limit", env: "dev", mutate: func(c *AppConfig) { c.SettingsRateLimit = -1 }, wantErr: "settings_rate_limit"},
		{name: "short csrf key", env: "dev", mutate: func(c *AppConfig) { c.CSRFKey = "short" }, wantErr: "csrf_key"},
		{name: "prod needs session key", env: "prod", mutate: func(c *AppConfig) { c.CSRFKey = strong }, wantErr: "session_key"},
		{name: "prod needs csrf key", env: "prod", mutate: func(c *AppConfig) { c.SessionKey = strong }, wantErr: "csrf_key"},
		{name: "prod with keys", env: "prod", mutate: func(c *AppConfig) { c.SessionKey = strong; c.CSRFKey = strong }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCfg()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, testLogger())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" https://a.example , ,https://b.example,")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("splitList = %v", got)
	}
	if got := splitList(""); len(got) != 0 {
		t.Errorf("splitList(\"\") = %v, want empty", got)
	}
}
