package cmd

import (
	"strings"

	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search saved repositories",
		Long: `Search saved repositories by name, description and notes.

Text matching is a case-insensitive substring match. When tags are given,
only repositories carrying every tag are returned.

Examples:
  repovault search http
  repovault search "web framework" --tag go
  repovault search "" --tag work    # tag filter only`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			return a.withStore(func(s *store.RepositoryStore) error {
				return runQuery(cmd.OutOrStdout(), s, qf, text)
			})
		},
	}

	qf.register(cmd.Flags())

	return cmd
}
