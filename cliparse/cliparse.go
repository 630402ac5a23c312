package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/danielhkuo/sondages/db"
)

const (
	DefaultPort      = 3000
	DefaultSQLiteURL = "file:sondages.db"
	DefaultOrigin    = "http://localhost:5173"
)

type Config struct {
	Port           int    `envconfig:"PORT"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	DatabaseType   string `envconfig:"DATABASE_TYPE"`
	AllowedOrigin  string `envconfig:"CORS_ORIGIN"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
}

// Dialect returns the parsed database type
func (c Config) Dialect() (db.Dialect, error) {
	return db.ParseDialect(c.DatabaseType)
}

// ParseFlags reads flags, then the environment (after an optional .env
// file) for anything the flags left unset, then applies defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("sondages", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", true, "Serve Prometheus metrics on /metrics")
	fs.StringVar(&envFile, "env", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		cfg.Port = env.Port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = env.DatabaseURL
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = env.DatabaseType
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = env.AllowedOrigin
	}
	metricsFlagSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "metrics" {
			metricsFlagSet = true
		}
	})
	if !metricsFlagSet {
		cfg.MetricsEnabled = env.MetricsEnabled
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = string(db.DialectSQLite)
	}
	dialect, err := cfg.Dialect()
	if err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		if dialect != db.DialectSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = DefaultOrigin
	}

	return cfg, nil
}
