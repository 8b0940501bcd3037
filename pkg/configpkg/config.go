// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Storage modes.
const (
	StorageLocal  = "local"
	StorageRemote = "remote"
)

// Local namespace backends.
const (
	NamespaceMemory = "memory"
	NamespaceSQLite = "sqlite"
)

// Token kinds.
const (
	TokenPaseto = "paseto"
	TokenJWT    = "jwt"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	StorageMode         string        `mapstructure:"STORAGE_MODE"`
	LocalNamespace      string        `mapstructure:"LOCAL_NAMESPACE"`
	SQLitePath          string        `mapstructure:"SQLITE_PATH"`
	NamespaceQuotaBytes int           `mapstructure:"NAMESPACE_QUOTA_BYTES"`
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	TokenKind           string        `mapstructure:"TOKEN_KIND"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	GCSBucket           string        `mapstructure:"GCS_BUCKET"`
	BudgetRefreshSpec   string        `mapstructure:"BUDGET_REFRESH_SPEC"`
	Environement        string        `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
//
// A missing config file is not an error, the environment alone is enough.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("STORAGE_MODE", StorageLocal)
	v.SetDefault("LOCAL_NAMESPACE", NamespaceMemory)
	v.SetDefault("SQLITE_PATH", "pet-budget.db")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("TOKEN_KIND", TokenPaseto)
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("BUDGET_REFRESH_SPEC", "@hourly")
	v.SetDefault("GO_ENV", "production")

	// Bind every key so that AutomaticEnv works for Unmarshal without a config file.
	for _, key := range []string{
		"STORAGE_MODE", "LOCAL_NAMESPACE", "SQLITE_PATH", "NAMESPACE_QUOTA_BYTES",
		"DB_DRIVER", "DB_SOURCE", "SERVER_ADDRESS", "TOKEN_SYMMETRIC_KEY", "TOKEN_KIND",
		"ACCESS_TOKEN_DURATION", "GCS_BUCKET", "BUDGET_REFRESH_SPEC", "GO_ENV",
	} {
		if err := v.BindEnv(key); err != nil {
			return c, err
		}
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}
