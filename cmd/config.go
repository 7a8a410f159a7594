package cmd

import (
	"fmt"
	"net/url"

	"github.com/inovacc/repovault/internal/application"
	"github.com/inovacc/repovault/internal/encoding"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Long: `Show the effective configuration or write a default configuration file.

Configuration is read from the INI file, then REPOVAULT_* environment
variables (for example REPOVAULT_STORAGE_BACKEND), then command-line flags.`,
	}

	cmd.AddCommand(newConfigShowCmd(a), newConfigInitCmd(a))

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg

			password := ""
			if c.Redis.Password != "" {
				password = "(set)"
			}

			items := map[string]string{
				"Backend":      c.Storage.Backend,
				"Data dir":     c.Storage.Dir,
				"Max value":    fmt.Sprintf("%d bytes", c.Storage.MaxValueBytes),
				"Redis addr":   c.Redis.Addr,
				"Redis DB":     fmt.Sprintf("%d", c.Redis.DB),
				"Redis prefix": c.Redis.Prefix,
				"Redis auth":   password,
				"Postgres DSN": redactDSN(c.Postgres.DSN),
				"Log level":    c.Log.Level,
				"Log format":   c.Log.Format,
			}

			order := []string{"Backend", "Data dir", "Max value", "Redis addr", "Redis DB", "Redis prefix", "Redis auth", "Postgres DSN", "Log level", "Log format"}

			printInfoBox(cmd.OutOrStdout(), "Configuration", items, order)

			return nil
		},
	}
}

// redactDSN hides the password of a connection URL
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}

	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}

	return u.String()
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				p, err := application.DefaultConfigPath()
				if err != nil {
					return err
				}

				path = p
			}

			if encoding.FileExists(path) && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			if err := a.cfg.Write(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
