package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const (
	defaultSQLiteDSN   = "catalog.db"
	defaultPostgresDSN = "host=127.0.0.1 user=postgres password=postgres dbname=catalog port=5432 sslmode=disable"
	defaultMySQLDSN    = "root:root@tcp(127.0.0.1:3306)/catalog?charset=utf8mb4&parseTime=True&loc=Local"
)

// Config holds everything the service reads from its environment.
type Config struct {
	AppPort      string
	AppEnv       string
	DBDriver     string
	DatabaseDSN  string
	AutoMigrate  bool
	SeedOnStart  bool
	JWTSecret    string
	LogLevel     string
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from defaults, an optional file named by
// CONFIG_FILE, and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("SEED_ON_START", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_SERVICE_NAME", "catalog-service")
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	driver := strings.ToLower(v.GetString("DB_DRIVER"))
	switch driver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: memory, sqlite, postgres, mysql)", driver)
	}

	dsn := v.GetString("DATABASE_DSN")
	if dsn == "" {
		dsn = defaultDSN(driver)
	}

	return &Config{
		AppPort:      v.GetString("APP_PORT"),
		AppEnv:       v.GetString("APP_ENV"),
		DBDriver:     driver,
		DatabaseDSN:  dsn,
		AutoMigrate:  v.GetBool("AUTO_MIGRATE"),
		SeedOnStart:  v.GetBool("SEED_ON_START"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
	}, nil
}

func defaultDSN(driver string) string {
	switch driver {
	case DriverPostgres:
		return defaultPostgresDSN
	case DriverMySQL:
		return defaultMySQLDSN
	case DriverSQLite:
		return defaultSQLiteDSN
	default:
		return ""
	}
}
