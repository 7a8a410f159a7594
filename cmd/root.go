package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/inovacc/repovault/internal/application"
	"github.com/inovacc/repovault/internal/config"
	"github.com/inovacc/repovault/internal/medium"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

// app carries the state shared by one command tree: the resolved
// configuration and logger, filled in by the root PersistentPreRunE.
type app struct {
	configPath string
	backend    string
	dataDir    string
	logLevel   string
	logFormat  string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
	stderr io.Writer
}

// NewRootCmd builds the repovault command tree.
func NewRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}

	rootCmd := &cobra.Command{
		Use:   application.AppName,
		Short: "Keep an annotated collection of saved GitHub repositories",
		Long: `Repovault keeps a durable collection of saved GitHub repositories with
your own notes and tags, plus a few display settings and a GitHub token.

Repositories are saved from GitHub API JSON (for example the output of
'gh api repos/OWNER/REPO'). Data is stored locally in a bbolt database by
default; SQLite, plain files, Redis and PostgreSQL are also supported.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default <config dir>/repovault/repovault.ini)")
	flags.StringVar(&a.backend, "backend", "", "Storage backend: bolt, sqlite, file, redis, postgres or memory")
	flags.StringVar(&a.dataDir, "data-dir", "", "Directory for on-disk storage backends")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newSaveCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newShowCmd(a),
		newUpdateCmd(a),
		newViewCmd(a),
		newRemoveCmd(a),
		newTagsCmd(a),
		newSettingsCmd(a),
		newTokenCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configure resolves the configuration: file and environment first, then the
// persistent flags that were set explicitly.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("backend") {
		cfg.Storage.Backend = a.backend
	}

	if flags.Changed("data-dir") {
		dir, err := expandPath(a.dataDir)
		if err != nil {
			return err
		}

		cfg.Storage.Dir = dir
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	if a.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.NewLogger(a.stderr)
	slog.SetDefault(a.logger)

	a.logger.Debug("configuration loaded",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("dir", cfg.Storage.Dir))

	return nil
}

// openStore opens the configured medium. Callers must Close the store.
func (a *app) openStore() (*store.RepositoryStore, error) {
	m, err := medium.Open(a.cfg.MediumOptions())
	if err != nil {
		return nil, err
	}

	return store.New(m, store.WithLogger(a.logger)), nil
}

// withStore runs fn against a freshly opened store and closes it afterwards.
func (a *app) withStore(fn func(s *store.RepositoryStore) error) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}

	defer func() {
		if cerr := s.Close(); cerr != nil {
			a.logger.Warn("closing storage", slog.String("error", cerr.Error()))
		}
	}()

	return fn(s)
}
