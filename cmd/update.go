package cmd

import (
	"errors"
	"fmt"

	"github.com/inovacc/repovault/internal/model"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	var (
		notes     string
		tags      []string
		clearTags bool
	)

	cmd := &cobra.Command{
		Use:   "update <id|owner/name|url>",
		Short: "Edit the notes or tags of a saved repository",
		Long: `Edit the notes or tags of a saved repository.

--tag replaces the whole tag set; duplicates are dropped.

Examples:
  repovault update 3f2a --notes "read the scheduler code"
  repovault update 3f2a --tag go,runtime
  repovault update 3f2a --clear-tags`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.RecordPatch

			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			if cmd.Flags().Changed("tag") && clearTags {
				return errors.New("--tag and --clear-tags are mutually exclusive")
			}

			if cmd.Flags().Changed("tag") {
				patch.Tags = &tags
			}

			if clearTags {
				empty := []string{}
				patch.Tags = &empty
			}

			if patch.Notes == nil && patch.Tags == nil {
				return errors.New("nothing to update: use --notes, --tag or --clear-tags")
			}

			return a.withStore(func(s *store.RepositoryStore) error {
				rec, err := resolveRecord(s, args[0])
				if err != nil {
					return err
				}

				ok, err := s.Update(rec.ID, patch)
				if err != nil {
					return fmt.Errorf("failed to update repository: %w", err)
				}

				if !ok {
					return fmt.Errorf("repository not found: %s", args[0])
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", rec.FullName)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Replace the notes")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Replace the tags (repeatable or comma separated)")
	cmd.Flags().BoolVar(&clearTags, "clear-tags", false, "Remove every tag")

	return cmd
}
