package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

study:
  new_cards_per_day: 12
  min_session_size: 4
  max_session_size: 30
  timezone: "Europe/Warsaw"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.MaxConns != 10 || cfg.Database.MinConns != 2 {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Study.NewCardsPerDay != 12 || cfg.Study.MaxSessionSize != 30 {
		t.Errorf("study = %+v", cfg.Study)
	}
	if cfg.Study.Timezone != "Europe/Warsaw" {
		t.Errorf("timezone = %q", cfg.Study.Timezone)
	}
}

func TestLoad_EnvOnly_Defaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	// Ensure the fallback ./config.yaml does not leak into the test.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Study.NewCardsPerDay != 10 || cfg.Study.MinSessionSize != 5 || cfg.Study.MaxSessionSize != 35 {
		t.Errorf("study defaults = %+v", cfg.Study)
	}
	if cfg.Study.Timezone != "UTC" {
		t.Errorf("default timezone = %q, want UTC", cfg.Study.Timezone)
	}
	if !cfg.Database.MigrateOnStart {
		t.Error("migrate_on_start should default to true")
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("STUDY_NEW_CARDS_PER_DAY", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Study.NewCardsPerDay != 3 {
		t.Errorf("new_cards_per_day = %d, want 3 (env override)", cfg.Study.NewCardsPerDay)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without DATABASE_DSN")
	}
}

func TestLoad_ExplicitPathMissingFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when CONFIG_PATH points to a missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Study: StudyConfig{
				NewCardsPerDay: 10,
				MinSessionSize: 5,
				MaxSessionSize: 35,
				Timezone:       "UTC",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "negative new cards", mutate: func(c *Config) { c.Study.NewCardsPerDay = -1 }, wantErr: true},
		{name: "zero min session", mutate: func(c *Config) { c.Study.MinSessionSize = 0 }, wantErr: true},
		{name: "max below min", mutate: func(c *Config) { c.Study.MaxSessionSize = 4 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Study.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "zero new cards allowed", mutate: func(c *Config) { c.Study.NewCardsPerDay = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() should fail")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}
