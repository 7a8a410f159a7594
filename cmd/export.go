package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/inovacc/repovault/internal/core"
	"github.com/inovacc/repovault/internal/encoding"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		output string
		format core.Format
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved repositories to JSON or YAML",
		Long: `Export every saved repository, including notes, tags and view times.

Without --output the export is written to stdout. The format defaults to
the output file extension (.yaml/.yml for YAML) and otherwise to JSON.

Examples:
  repovault export > backup.json
  repovault export --output backup.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = core.FormatFromPath(output)
			}

			return a.withStore(func(s *store.RepositoryStore) error {
				if output == "" || output == "-" {
					_, err := core.Export(cmd.OutOrStdout(), s, format, time.Now())
					return err
				}

				path, err := expandPath(output)
				if err != nil {
					return err
				}

				var buf bytes.Buffer

				n, err := core.Export(&buf, s, format, time.Now())
				if err != nil {
					return err
				}

				if err := encoding.WriteFileAtomic(path, buf.Bytes()); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d repositories to %s\n", n, path)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().VarP(newFormatValue(&format), "format", "f", "Output format: json or yaml")

	return cmd
}
