package easydb

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Driver names a database/sql driver registered by this package.
type Driver string

const (
	// MySQLDriver uses github.com/go-sql-driver/mysql.
	MySQLDriver Driver = "mysql"

	// SQLiteDriver uses modernc.org/sqlite, which needs no cgo.
	SQLiteDriver Driver = "sqlite"

	// SQLite3Driver uses github.com/mattn/go-sqlite3, which needs cgo.
	SQLite3Driver Driver = "sqlite3"

	DefaultDriver = MySQLDriver
)

// Environment variable suffixes appended to a prefix, e.g. TEST_DB_HOST.
const (
	EnvHost   = "_DB_HOST"
	EnvName   = "_DB_NAME"
	EnvUser   = "_DB_USER"
	EnvPass   = "_DB_PASS"
	EnvPort   = "_DB_PORT"
	EnvDriver = "_DB_DRIVER"

	// EnvNotifyEmail is shared by all prefixes.
	EnvNotifyEmail = "DATABASE_ERROR_EMAIL"
)

const (
	DefaultMySQLPort      = 3306
	DefaultConnectTimeout = 5 * time.Second
	LocalHost             = "localhost"
)

// Config holds what is needed to open one database handle.
type Config struct {
	Driver Driver `yaml:"driver"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`

	// Name is the database name, or the file path for the SQLite drivers.
	Name string `yaml:"name"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`

	// NotifyEmail receives connection failures when a Notifier is configured.
	NotifyEmail string `yaml:"notify_email"`

	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// ConfigFromEnv resolves <prefix>_DB_HOST, <prefix>_DB_NAME, <prefix>_DB_USER
// and <prefix>_DB_PASS, plus the optional <prefix>_DB_DRIVER,
// <prefix>_DB_PORT and DATABASE_ERROR_EMAIL. A nil env reads the process
// environment.
func ConfigFromEnv(prefix string, env EnvLookup) (cfg Config, err error) {
	var missing []string

	if env == nil {
		env = OSEnv
	}
	cfg = Config{Driver: DefaultDriver}
	if v, ok := env(prefix + EnvDriver); ok && v != "" {
		cfg.Driver = Driver(strings.ToLower(v))
	}

	required := []struct {
		suffix string
		field  *string
	}{
		{EnvHost, &cfg.Host},
		{EnvName, &cfg.Name},
		{EnvUser, &cfg.User},
		{EnvPass, &cfg.Pass},
	}
	for _, r := range required {
		if cfg.Driver.isFile() && r.suffix != EnvName {
			*r.field, _ = env(prefix + r.suffix)
			continue
		}
		v, ok := env(prefix + r.suffix)
		if !ok {
			missing = append(missing, prefix+r.suffix)
			continue
		}
		*r.field = v
	}
	if len(missing) > 0 {
		err = NewErr(ErrMissingEnv, "names", strings.Join(missing, ","))
		goto end
	}

	if v, ok := env(prefix + EnvPort); ok && v != "" {
		cfg.Port, err = strconv.Atoi(v)
		if err != nil {
			err = NewErr(ErrInvalidConfig, "name", prefix+EnvPort, err)
			goto end
		}
	}
	cfg.NotifyEmail, _ = env(EnvNotifyEmail)
end:
	return cfg, err
}

// Local returns a copy of cfg pointed at localhost.
func (c Config) Local() Config {
	c.Host = LocalHost
	return c
}

// WithName returns a copy of cfg using database name.
func (c Config) WithName(name string) Config {
	c.Name = name
	return c
}

func (c Config) timeout() time.Duration {
	if c.ConnectTimeout > 0 {
		return c.ConnectTimeout
	}
	return DefaultConnectTimeout
}

// Validate reports every problem with cfg in one error.
func (c Config) Validate() error {
	var errs []string

	switch c.Driver {
	case MySQLDriver:
		if c.Host == "" {
			errs = append(errs, "host is required")
		}
		if c.User == "" {
			errs = append(errs, "user is required")
		}
	case SQLiteDriver, SQLite3Driver:
	default:
		return NewErr(ErrUnsupportedDriver, "driver", c.Driver)
	}
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, "port must be between 0 and 65535")
	}
	if c.ConnectTimeout < 0 {
		errs = append(errs, "connect_timeout must not be negative")
	}

	if len(errs) > 0 {
		return NewErr(ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// String describes cfg without its password.
func (c Config) String() string {
	if c.Driver.isFile() {
		return fmt.Sprintf("%s:%s", c.Driver, c.Name)
	}
	return fmt.Sprintf("%s://%s@%s/%s", c.Driver, c.User, c.Host, c.Name)
}

func (d Driver) isFile() bool {
	return d == SQLiteDriver || d == SQLite3Driver
}

// Placeholder returns the FormatParamFunc for the driver.
func (d Driver) Placeholder() FormatParamFunc {
	return QuestionMark
}

// FileConfig is the YAML layout read by LoadConfigFile: named connection
// profiles keyed by env prefix.
//
//	connections:
//	  TEST:
//	    driver: mysql
//	    host: db.internal
//	    name: inventory
type FileConfig struct {
	Connections map[string]Config `yaml:"connections"`
}

// LoadConfigFile reads the profile named prefix from a YAML file and applies
// any <prefix>_DB_* variables found through env on top of it.
//
// The loading order is:
//  1. Default values
//  2. YAML file values
//  3. Environment variables
func LoadConfigFile(path, prefix string, env EnvLookup) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg, ok := fc.Connections[prefix]
	if !ok {
		return nil, NewErr(ErrInvalidConfig, "profile", prefix, "path", path)
	}
	if cfg.Driver == "" {
		cfg.Driver = DefaultDriver
	}
	if err := applyEnvOverrides(&cfg, prefix, env); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config, prefix string, env EnvLookup) error {
	if env == nil {
		env = OSEnv
	}
	if v, ok := env(prefix + EnvDriver); ok && v != "" {
		cfg.Driver = Driver(strings.ToLower(v))
	}
	if v, ok := env(prefix + EnvHost); ok && v != "" {
		cfg.Host = v
	}
	if v, ok := env(prefix + EnvName); ok && v != "" {
		cfg.Name = v
	}
	if v, ok := env(prefix + EnvUser); ok && v != "" {
		cfg.User = v
	}
	if v, ok := env(prefix + EnvPass); ok && v != "" {
		cfg.Pass = v
	}
	if v, ok := env(EnvNotifyEmail); ok && v != "" {
		cfg.NotifyEmail = v
	}
	if v, ok := env(prefix + EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return NewErr(ErrInvalidConfig, "name", prefix+EnvPort, err)
		}
		cfg.Port = port
	}
	return nil
}
