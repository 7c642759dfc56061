package easydb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3" // SQLite driver (cgo)
	_ "modernc.org/sqlite"          // SQLite driver (pure Go)
)

// DB wraps a sql.DB opened from a Config.
type DB struct {
	*sql.DB
	cfg Config
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	logger   *slog.Logger
	notifier Notifier
}

// WithLogger sets the logger Open reports through. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithNotifier sets the Notifier used for connection failures when the
// Config has a NotifyEmail.
func WithNotifier(n Notifier) Option {
	return func(o *openOptions) {
		o.notifier = n
	}
}

// Open validates cfg, opens a handle and verifies it with a ping bounded by
// the config's ConnectTimeout.
//
// A failed connection is mailed to cfg.NotifyEmail when a Notifier is set,
// otherwise it is logged. Either way the error is returned.
func Open(ctx context.Context, cfg Config, opts ...Option) (db *DB, err error) {
	var dsn string
	var sqlDB *sql.DB
	var pingCtx context.Context
	var cancel context.CancelFunc

	o := openOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	err = cfg.Validate()
	if err != nil {
		goto end
	}
	dsn, err = cfg.DSN()
	if err != nil {
		goto end
	}

	sqlDB, err = sql.Open(string(cfg.Driver), dsn)
	if err != nil {
		err = o.fail(ctx, cfg, err)
		goto end
	}

	pingCtx, cancel = context.WithTimeout(ctx, cfg.timeout())
	err = sqlDB.PingContext(pingCtx)
	cancel()
	if err != nil {
		sqlDB.Close() //nolint:errcheck // Best effort cleanup on error path
		err = o.fail(ctx, cfg, err)
		goto end
	}

	db = &DB{DB: sqlDB, cfg: cfg}
	o.logger.Debug("database connected", "db", cfg.String())
end:
	return db, err
}

// fail wraps cause and routes it to the notifier or the log.
func (o openOptions) fail(ctx context.Context, cfg Config, cause error) error {
	err := NewErr(ErrConnect, "db", cfg.String(), cause)
	if cfg.NotifyEmail == "" || o.notifier == nil {
		o.logger.Error("database connection failed", "db", cfg.String(), "error", cause)
		return err
	}
	n := Notification{
		To:      cfg.NotifyEmail,
		Subject: fmt.Sprintf("DB error with %s : %s", cfg.Host, cfg.Name),
		Body:    fmt.Sprintf("database: %s\nerror: %v\n", cfg.String(), cause),
	}
	if nerr := o.notifier.Notify(ctx, n); nerr != nil {
		o.logger.Error("database connection failure notification failed",
			"db", cfg.String(),
			"error", cause,
			"notify_error", nerr,
		)
	}
	return err
}

// Config returns the configuration the handle was opened with.
func (db *DB) Config() Config {
	return db.cfg
}

// Placeholder returns the FormatParamFunc for the handle's driver.
func (db *DB) Placeholder() FormatParamFunc {
	return db.cfg.Driver.Placeholder()
}

// Close closes the handle. It is safe on a nil or unopened DB.
func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
