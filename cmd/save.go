package cmd

import (
	"fmt"

	"github.com/inovacc/repovault/internal/store"
	"github.com/inovacc/repovault/internal/upstream"
	"github.com/spf13/cobra"
)

func newSaveCmd(a *app) *cobra.Command {
	var (
		notes string
		tags  []string
	)

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save repositories from GitHub API JSON",
		Long: `Save one or more repositories to the collection.

Input is GitHub API repository JSON, either a single object or an array,
read from the given file or from stdin. Both the REST shape (full_name,
html_url, stargazers_count) and the camelCase shape (fullName, url,
starCount) are accepted.

Saving a repository that is already in the collection refreshes its
snapshot, replaces its notes and tags and keeps its id and saved date.

Examples:
  # Save straight from the GitHub CLI
  gh api repos/golang/go | repovault save --tag lang --notes "upstream"

  # Save every starred repository
  gh api user/starred --paginate | repovault save --tag starred`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			data, err := readInput(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			origins, err := upstream.DecodeList(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			return a.withStore(func(s *store.RepositoryStore) error {
				for _, origin := range origins {
					rec, err := s.Save(origin, notes, tags)
					if err != nil {
						return fmt.Errorf("failed to save %s: %w", origin.FullName, err)
					}

					_, _ = fmt.Fprintf(out, "Saved: %s (%s)\n", rec.FullName, rec.ID)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes to attach")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag to attach (repeatable or comma separated)")

	return cmd
}
