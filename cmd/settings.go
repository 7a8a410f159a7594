package cmd

import (
	"fmt"
	"io"

	"github.com/inovacc/repovault/internal/model"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display settings",
		Long: `Show or change the persisted display settings.

Settings control the default sort and page size of 'list' and 'search'
and which columns are rendered.`,
	}

	cmd.AddCommand(
		newSettingsShowCmd(a),
		newSettingsSetCmd(a),
		newSettingsResetCmd(a),
	)

	return cmd
}

func newSettingsShowCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				settings := s.GetSettings()

				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), settings)
				}

				printSettings(cmd.OutOrStdout(), settings)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newSettingsSetCmd(a *app) *cobra.Command {
	var (
		sortField    model.SortField
		sortOrder    model.SortOrder
		perPage      int
		descriptions bool
		language     bool
		compact      bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		Long: `Change one or more settings. Only the flags given are changed; every
other setting keeps its current value.

Examples:
  repovault settings set --sort name --order asc
  repovault settings set --per-page 50 --compact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			var patch model.SettingsPatch

			if flags.Changed("sort") {
				patch.DefaultSortField = &sortField
			}

			if flags.Changed("order") {
				patch.DefaultSortOrder = &sortOrder
			}

			if flags.Changed("per-page") {
				patch.ResultsPerPage = &perPage
			}

			if flags.Changed("descriptions") {
				patch.ShowDescriptions = &descriptions
			}

			if flags.Changed("language") {
				patch.ShowLanguage = &language
			}

			if flags.Changed("compact") {
				patch.CompactView = &compact
			}

			if patch.Empty() {
				return fmt.Errorf("nothing to change: see 'repovault settings set --help'")
			}

			return a.withStore(func(s *store.RepositoryStore) error {
				settings, err := s.SaveSettings(patch)
				if err != nil {
					return err
				}

				printSettings(cmd.OutOrStdout(), settings)

				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.Var(newSortFieldValue(&sortField), "sort", "Default sort field: "+sortFieldNames())
	flags.Var(newSortOrderValue(&sortOrder), "order", "Default sort order: asc or desc")
	flags.IntVar(&perPage, "per-page", 0, fmt.Sprintf("Results per page (%d-%d)", model.MinResultsPerPage, model.MaxResultsPerPage))
	flags.BoolVar(&descriptions, "descriptions", true, "Show repository descriptions")
	flags.BoolVar(&language, "language", true, "Show the language column")
	flags.BoolVar(&compact, "compact", false, "Use the compact list view")

	return cmd
}

func newSettingsResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				if err := s.ResetSettings(); err != nil {
					return err
				}

				printSettings(cmd.OutOrStdout(), s.GetSettings())

				return nil
			})
		},
	}
}

func printSettings(out io.Writer, s model.Settings) {
	items := map[string]string{
		"Sort field":        string(s.DefaultSortField),
		"Sort order":        string(s.DefaultSortOrder),
		"Results per page":  fmt.Sprintf("%d", s.ResultsPerPage),
		"Show descriptions": fmt.Sprintf("%t", s.ShowDescriptions),
		"Show language":     fmt.Sprintf("%t", s.ShowLanguage),
		"Compact view":      fmt.Sprintf("%t", s.CompactView),
	}

	order := []string{"Sort field", "Sort order", "Results per page", "Show descriptions", "Show language", "Compact view"}

	printInfoBox(out, "Settings", items, order)
}
