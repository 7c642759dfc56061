package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikeschinkel/go-easydb"
)

const defaultPrefix = "LOCAL"

// connectionFlags are shared by the commands that open a database.
type connectionFlags struct {
	prefix   string
	envFile  string
	config   string
	local    bool
	db       string
	smtpAddr string
	smtpFrom string
}

var connFlags = connectionFlags{prefix: defaultPrefix}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Open a connection and verify it",
	Long: `Resolve credentials and ping the database.

Credentials come from <PREFIX>_DB_HOST, <PREFIX>_DB_NAME, <PREFIX>_DB_USER
and <PREFIX>_DB_PASS, optionally read from a .env file, or from a profile
in a YAML config file with those variables applied on top.

Examples:
  # Use TEST_DB_* from the environment
  easydb ping --prefix TEST

  # Same credentials against a local server
  easydb ping --prefix TEST --local --env-file .env

  # Use the TEST profile of a config file
  easydb ping --prefix TEST --config db.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close() //nolint:errcheck

		fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", db.Config())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
	addConnectionFlags(pingCmd)
}

func addConnectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&connFlags.prefix, "prefix", defaultPrefix, "environment variable prefix, e.g. TEST for TEST_DB_HOST")
	cmd.Flags().StringVar(&connFlags.envFile, "env-file", "", ".env file to read variables from")
	cmd.Flags().StringVar(&connFlags.config, "config", "", "YAML file of connection profiles keyed by prefix")
	cmd.Flags().BoolVar(&connFlags.local, "local", false, "connect to localhost instead of the configured host")
	cmd.Flags().StringVar(&connFlags.db, "db", "", "database name overriding the configured one")
	cmd.Flags().StringVar(&connFlags.smtpAddr, "smtp-addr", "", "SMTP relay host:port for connection failure mail")
	cmd.Flags().StringVar(&connFlags.smtpFrom, "smtp-from", "easydb@localhost", "sender of connection failure mail")
}

// resolveConfig builds the Config named by the connection flags.
func resolveConfig() (cfg easydb.Config, err error) {
	var fileCfg *easydb.Config

	env := easydb.EnvLookup(easydb.OSEnv)
	if connFlags.envFile != "" {
		env, err = easydb.LoadEnvFile(connFlags.envFile)
		if err != nil {
			goto end
		}
	}

	if connFlags.config != "" {
		fileCfg, err = easydb.LoadConfigFile(connFlags.config, connFlags.prefix, env)
		if err != nil {
			goto end
		}
		cfg = *fileCfg
	} else {
		cfg, err = easydb.ConfigFromEnv(connFlags.prefix, env)
		if err != nil {
			goto end
		}
	}

	if connFlags.local {
		cfg = cfg.Local()
	}
	if connFlags.db != "" {
		cfg = cfg.WithName(connFlags.db)
	}
end:
	return cfg, err
}

func openDB(ctx context.Context) (*easydb.DB, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []easydb.Option{easydb.WithLogger(logger)}
	if connFlags.smtpAddr != "" {
		opts = append(opts, easydb.WithNotifier(easydb.NewSMTPNotifier(connFlags.smtpAddr, connFlags.smtpFrom)))
	}
	logger.Info("connecting", "db", cfg.String())
	return easydb.Open(ctx, cfg, opts...)
}
