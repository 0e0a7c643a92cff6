package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	JWTSecret         string
	LogLevel          string
	ShutdownTimeout   time.Duration
	SyncInterval      time.Duration
	StatusResyncDelay time.Duration
	TaskResyncDelay   time.Duration
	OverrideMaxCycles int
	SheetsHTTPTimeout time.Duration
	SheetsAcknowledge bool
	Timezone          string
	CORSOrigins       []string
	Endpoints         model.Endpoints
}

const (
	defaultRunAddress        = ":8080"
	defaultJWTSecret         = "change-me-in-production"
	defaultLogLevel          = "info"
	defaultShutdownTimeout   = 10 * time.Second
	defaultSyncInterval      = 60 * time.Second
	defaultStatusResyncDelay = 5 * time.Second
	defaultTaskResyncDelay   = 2 * time.Second
	defaultOverrideMaxCycles = 5
	defaultTimezone          = "Asia/Tashkent"
	defaultEnvFile           = ".env"
)

// Load reads an optional .env file, then parses configuration from flags and environment variables.
func Load() (*Config, error) {
	if err := loadEnvFile(getString(os.LookupEnv, "ENV_FILE", defaultEnvFile)); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SyncInterval:      getDuration(lookup, "SYNC_INTERVAL", defaultSyncInterval),
		StatusResyncDelay: getDuration(lookup, "STATUS_RESYNC_DELAY", defaultStatusResyncDelay),
		TaskResyncDelay:   getDuration(lookup, "TASK_RESYNC_DELAY", defaultTaskResyncDelay),
		OverrideMaxCycles: getInt(lookup, "OVERRIDE_MAX_CYCLES", defaultOverrideMaxCycles),
		SheetsHTTPTimeout: getDuration(lookup, "SHEETS_HTTP_TIMEOUT", 0),
		SheetsAcknowledge: getBool(lookup, "SHEETS_ACKNOWLEDGE", false),
		Timezone:          getString(lookup, "TIMEZONE", defaultTimezone),
		CORSOrigins:       splitList(getString(lookup, "CORS_ORIGINS", "")),
		Endpoints: model.Endpoints{
			Operators:    getString(lookup, "OPERATORS_URL", ""),
			Customers:    getString(lookup, "CUSTOMERS_URL", ""),
			StatusLog:    getString(lookup, "STATUS_LOG_URL", ""),
			Products:     getString(lookup, "PRODUCTS_URL", ""),
			Orders:       getString(lookup, "ORDERS_URL", ""),
			OrderHistory: getString(lookup, "ORDER_HISTORY_URL", ""),
			Tasks:        getString(lookup, "TASKS_URL", ""),
		},
	}

	fs := flag.NewFlagSet("mentorcrm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		syncIntervalStr    = cfg.SyncInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		corsOriginsStr     = strings.Join(cfg.CORSOrigins, ",")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for settings storage")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&syncIntervalStr, "sync-interval", syncIntervalStr, "Interval between full resyncs")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.OverrideMaxCycles, "override-max-cycles", cfg.OverrideMaxCycles, "Resyncs before an unmatched status override expires (0 disables)")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "Time zone for record store timestamps")
	fs.StringVar(&corsOriginsStr, "cors-origins", corsOriginsStr, "Comma separated allowed origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SyncInterval, err = time.ParseDuration(syncIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sync interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.CORSOrigins = splitList(corsOriginsStr)

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = defaultSyncInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.StatusResyncDelay < 0 {
		cfg.StatusResyncDelay = defaultStatusResyncDelay
	}

	if cfg.TaskResyncDelay < 0 {
		cfg.TaskResyncDelay = defaultTaskResyncDelay
	}

	if cfg.OverrideMaxCycles < 0 {
		cfg.OverrideMaxCycles = defaultOverrideMaxCycles
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	return cfg, nil
}

// Location resolves the configured time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
