package cmd

import (
	"fmt"

	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id|owner/name|url>",
		Short: "Mark a saved repository as viewed and show it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				rec, err := resolveRecord(s, args[0])
				if err != nil {
					return err
				}

				ok, err := s.MarkViewed(rec.ID)
				if err != nil {
					return fmt.Errorf("failed to mark repository viewed: %w", err)
				}

				if !ok {
					return fmt.Errorf("repository not found: %s", args[0])
				}

				rec, _ = s.Get(rec.ID)
				printRepository(cmd.OutOrStdout(), rec)

				return nil
			})
		},
	}
}
