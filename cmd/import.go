package cmd

import (
	"fmt"

	"github.com/inovacc/repovault/internal/core"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var format core.Format

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import saved repositories from an export or GitHub API JSON",
		Long: `Import repositories into the collection.

Accepted input:
  - a file written by 'repovault export' (JSON or YAML)
  - a JSON array of exported records
  - GitHub API repository JSON, one object or an array

Repositories already in the collection are matched by their GitHub id and
keep their local id and saved date. GitHub API input keeps existing notes
and tags.

Examples:
  repovault import backup.yaml
  gh api user/starred --paginate --slurp | jq 'add' | repovault import`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			if format == "" {
				format = core.FormatFromPath(name)
			}

			data, err := readInput(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			return a.withStore(func(s *store.RepositoryStore) error {
				res, err := core.Import(s, data, format)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported: %d added, %d updated, %d skipped\n",
					res.Added, res.Updated, res.Skipped)

				return nil
			})
		},
	}

	cmd.Flags().VarP(newFormatValue(&format), "format", "f", "Input format: json or yaml (default from file extension)")

	return cmd
}
