package easydb

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	env := MapEnv(map[string]string{
		"TEST_DB_HOST":         "db.internal",
		"TEST_DB_NAME":         "inventory",
		"TEST_DB_USER":         "app",
		"TEST_DB_PASS":         "secret",
		"TEST_DB_PORT":         "3307",
		"DATABASE_ERROR_EMAIL": "ops@example.com",
	})

	cfg, err := ConfigFromEnv("TEST", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		Driver:      MySQLDriver,
		Host:        "db.internal",
		Port:        3307,
		Name:        "inventory",
		User:        "app",
		Pass:        "secret",
		NotifyEmail: "ops@example.com",
	}
	if cfg != want {
		t.Errorf("ConfigFromEnv = %+v, want %+v", cfg, want)
	}

	local := cfg.Local().WithName("reports")
	if local.Host != LocalHost || local.Name != "reports" {
		t.Errorf("Local().WithName() = %+v", local)
	}
	if cfg.Host != "db.internal" {
		t.Error("Local modified its receiver")
	}
}

func TestConfigFromEnv_Missing(t *testing.T) {
	env := MapEnv(map[string]string{"TEST_DB_HOST": "h", "TEST_DB_NAME": "n"})

	_, err := ConfigFromEnv("TEST", env)
	if !errors.Is(err, ErrMissingEnv) {
		t.Fatalf("expected error %v, got %v", ErrMissingEnv, err)
	}
	if !strings.Contains(err.Error(), "TEST_DB_USER,TEST_DB_PASS") {
		t.Errorf("error does not list every missing variable: %v", err)
	}
}

func TestConfigFromEnv_SQLite(t *testing.T) {
	env := MapEnv(map[string]string{
		"LOCAL_DB_DRIVER": "SQLite",
		"LOCAL_DB_NAME":   "/tmp/app.db",
	})
	cfg, err := ConfigFromEnv("LOCAL", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Driver != SQLiteDriver || cfg.Name != "/tmp/app.db" {
		t.Errorf("ConfigFromEnv = %+v", cfg)
	}
}

func TestConfigFromEnv_BadPort(t *testing.T) {
	env := MapEnv(map[string]string{
		"TEST_DB_HOST": "h", "TEST_DB_NAME": "n", "TEST_DB_USER": "u", "TEST_DB_PASS": "p",
		"TEST_DB_PORT": "eighty",
	})
	_, err := ConfigFromEnv("TEST", env)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected error %v, got %v", ErrInvalidConfig, err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		expectedError error
	}{
		{name: "mysql ok", cfg: Config{Driver: MySQLDriver, Host: "h", User: "u", Name: "n"}},
		{name: "sqlite ok", cfg: Config{Driver: SQLiteDriver, Name: "x.db"}},
		{name: "mysql missing host", cfg: Config{Driver: MySQLDriver, User: "u", Name: "n"}, expectedError: ErrInvalidConfig},
		{name: "missing name", cfg: Config{Driver: SQLite3Driver}, expectedError: ErrInvalidConfig},
		{name: "bad port", cfg: Config{Driver: MySQLDriver, Host: "h", User: "u", Name: "n", Port: 70000}, expectedError: ErrInvalidConfig},
		{name: "unknown driver", cfg: Config{Driver: "oracle", Name: "n"}, expectedError: ErrUnsupportedDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectedError == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{
			name:     "sqlite",
			cfg:      Config{Driver: SQLiteDriver, Name: "/data/app.db", ConnectTimeout: 2 * time.Second},
			expected: "/data/app.db?_pragma=busy_timeout(2000)&_pragma=foreign_keys(1)",
		},
		{
			name:     "sqlite3",
			cfg:      Config{Driver: SQLite3Driver, Name: "/data/app.db"},
			expected: "file:/data/app.db?_busy_timeout=5000&_foreign_keys=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.cfg.DSN()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dsn != tt.expected {
				t.Errorf("DSN mismatch:\nexpected: %q\nactual:   %q", tt.expected, dsn)
			}
		})
	}

	if _, err := (Config{Driver: "oracle"}).DSN(); !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("expected error %v, got %v", ErrUnsupportedDriver, err)
	}
}

func TestConfig_MySQLDSN(t *testing.T) {
	cfg := Config{Driver: MySQLDriver, Host: "db", User: "app", Pass: "pw", Name: "inv"}
	dsn, err := cfg.DSN()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"app:pw@tcp(db:3306)/inv?", "parseTime=true", "timeout=5s"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN %q does not contain %q", dsn, want)
		}
	}

	cfg.Port = 3307
	dsn, err = cfg.DSN()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(dsn, "tcp(db:3307)") {
		t.Errorf("DSN %q ignores the port", dsn)
	}
}

func TestConfig_StringHidesPassword(t *testing.T) {
	cfg := Config{Driver: MySQLDriver, Host: "db", User: "app", Pass: "hunter2", Name: "inv"}
	if strings.Contains(cfg.String(), "hunter2") {
		t.Errorf("String() leaks the password: %s", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.yaml")
	data := `connections:
  TEST:
    host: file-host
    name: inventory
    user: app
    pass: from-file
    connect_timeout: 3s
  LOCAL:
    driver: sqlite
    name: ./local.db
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	env := MapEnv(map[string]string{"TEST_DB_PASS": "from-env"})
	cfg, err := LoadConfigFile(path, "TEST", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Driver != MySQLDriver || cfg.Host != "file-host" || cfg.Pass != "from-env" || cfg.ConnectTimeout != 3*time.Second {
		t.Errorf("LoadConfigFile = %+v", cfg)
	}

	local, err := LoadConfigFile(path, "LOCAL", MapEnv(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Driver != SQLiteDriver {
		t.Errorf("driver = %q, want sqlite", local.Driver)
	}

	if _, err := LoadConfigFile(path, "MISSING", MapEnv(nil)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected error %v, got %v", ErrInvalidConfig, err)
	}
}

func TestPortFromEnv_BothPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.yaml")
	data := "connections:\n  TEST:\n    host: h\n    name: n\n    user: u\n    pass: p\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	env := MapEnv(map[string]string{
		"TEST_DB_HOST": "h", "TEST_DB_NAME": "n", "TEST_DB_USER": "u", "TEST_DB_PASS": "p",
		"TEST_DB_PORT": "eighty",
	})

	if _, err := ConfigFromEnv("TEST", env); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ConfigFromEnv: expected error %v, got %v", ErrInvalidConfig, err)
	}
	_, err := LoadConfigFile(path, "TEST", env)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("LoadConfigFile: expected error %v, got %v", ErrInvalidConfig, err)
	}
	if !strings.Contains(err.Error(), "name=TEST_DB_PORT") {
		t.Errorf("error does not name the variable: %v", err)
	}

	cfg, err := LoadConfigFile(path, "TEST", MapEnv(map[string]string{"TEST_DB_PORT": "3307"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 3307 {
		t.Errorf("Port = %d, want 3307", cfg.Port)
	}
}
