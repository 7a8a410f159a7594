package cmd

import (
	"fmt"

	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newTagsCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				tags := s.DistinctTags()
				out := cmd.OutOrStdout()

				if jsonOutput {
					return writeJSON(out, tags)
				}

				if len(tags) == 0 {
					printEmptyResult(out, "tags", "Tag a repository with: repovault update <id> --tag <tag>")
					return nil
				}

				for _, t := range tags {
					_, _ = fmt.Fprintln(out, t)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
