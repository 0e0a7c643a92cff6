package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mapLookup(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, mapLookup(nil))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.JWTSecret != defaultJWTSecret {
		t.Errorf("expected default jwt secret %q, got %q", defaultJWTSecret, cfg.JWTSecret)
	}
	if cfg.SyncInterval != defaultSyncInterval {
		t.Errorf("expected default sync interval %v, got %v", defaultSyncInterval, cfg.SyncInterval)
	}
	if cfg.StatusResyncDelay != 5*time.Second || cfg.TaskResyncDelay != 2*time.Second {
		t.Errorf("unexpected resync delays %v / %v", cfg.StatusResyncDelay, cfg.TaskResyncDelay)
	}
	if cfg.OverrideMaxCycles != defaultOverrideMaxCycles {
		t.Errorf("expected default override cycles %d, got %d", defaultOverrideMaxCycles, cfg.OverrideMaxCycles)
	}
	if cfg.SheetsHTTPTimeout != 0 {
		t.Errorf("expected no sheets timeout by default, got %v", cfg.SheetsHTTPTimeout)
	}
	if cfg.DatabaseURI != "" {
		t.Errorf("expected empty database uri, got %q", cfg.DatabaseURI)
	}
}

func TestLoadEnvironmentValues(t *testing.T) {
	env := map[string]string{
		"OPERATORS_URL":       "https://sheets.local/operators",
		"ORDER_HISTORY_URL":   "https://sheets.local/history",
		"CORS_ORIGINS":        "http://a.local, http://b.local,",
		"SHEETS_ACKNOWLEDGE":  "true",
		"SHEETS_HTTP_TIMEOUT": "3s",
		"OVERRIDE_MAX_CYCLES": "0",
	}

	cfg, err := load(nil, mapLookup(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.Endpoints.Operators != env["OPERATORS_URL"] || cfg.Endpoints.OrderHistory != env["ORDER_HISTORY_URL"] {
		t.Errorf("unexpected endpoints %+v", cfg.Endpoints)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.local" {
		t.Errorf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if !cfg.SheetsAcknowledge || cfg.SheetsHTTPTimeout != 3*time.Second {
		t.Errorf("unexpected sheets options %v / %v", cfg.SheetsAcknowledge, cfg.SheetsHTTPTimeout)
	}
	if cfg.OverrideMaxCycles != 0 {
		t.Errorf("expected override expiry disabled, got %d", cfg.OverrideMaxCycles)
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	env := map[string]string{
		"SYNC_INTERVAL": "30s",
	}

	args := []string{
		"-a", ":9090",
		"-d", "postgres://override",
		"--sync-interval", "45s",
		"--shutdown-timeout", "20s",
		"--jwt-secret", "flag-secret",
		"--override-max-cycles", "9",
		"--tz", "UTC",
		"--cors-origins", "http://front.local",
	}

	cfg, err := load(args, mapLookup(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://override" {
		t.Errorf("expected database uri override, got %q", cfg.DatabaseURI)
	}
	if cfg.SyncInterval != 45*time.Second {
		t.Errorf("expected sync interval 45s, got %v", cfg.SyncInterval)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected shutdown timeout 20s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.OverrideMaxCycles != 9 {
		t.Errorf("expected override cycles 9, got %d", cfg.OverrideMaxCycles)
	}
	if cfg.JWTSecret != "flag-secret" {
		t.Errorf("expected jwt secret override, got %q", cfg.JWTSecret)
	}
	if cfg.Location().String() != "UTC" {
		t.Errorf("expected UTC location, got %s", cfg.Location())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://front.local" {
		t.Errorf("unexpected cors origins %v", cfg.CORSOrigins)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"sync interval", []string{"--sync-interval", "bad"}, "invalid sync interval"},
		{"shutdown timeout", []string{"--shutdown-timeout", "bad"}, "invalid shutdown timeout"},
		{"timezone", []string{"--tz", "Mars/Olympus"}, "invalid timezone"},
		{"unknown flag", []string{"--nope"}, "parse flags"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(tc.args, mapLookup(nil))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q error, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadNormalizesNonPositiveValues(t *testing.T) {
	env := map[string]string{
		"SYNC_INTERVAL":       "0",
		"SHUTDOWN_TIMEOUT":    "0",
		"STATUS_RESYNC_DELAY": "-1s",
		"OVERRIDE_MAX_CYCLES": "-3",
	}

	cfg, err := load(nil, mapLookup(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.SyncInterval != defaultSyncInterval {
		t.Errorf("expected default sync interval %v, got %v", defaultSyncInterval, cfg.SyncInterval)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.StatusResyncDelay != defaultStatusResyncDelay {
		t.Errorf("expected default status delay, got %v", cfg.StatusResyncDelay)
	}
	if cfg.OverrideMaxCycles != defaultOverrideMaxCycles {
		t.Errorf("expected default override cycles, got %d", cfg.OverrideMaxCycles)
	}
}

func TestLoadReadsSecretFromFile(t *testing.T) {
	dir := t.TempDir()
	secretFile := filepath.Join(dir, "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	cfg, err := load(nil, mapLookup(map[string]string{"JWT_SECRET_FILE": secretFile}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.JWTSecret != "file-secret" {
		t.Errorf("expected secret from file, got %q", cfg.JWTSecret)
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("MENTORCRM_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("MENTORCRM_TEST_VALUE", "")
	os.Unsetenv("MENTORCRM_TEST_VALUE")

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("MENTORCRM_TEST_VALUE"); got != "from-file" {
		t.Fatalf("expected value from env file, got %q", got)
	}
}
