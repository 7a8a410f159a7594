package cmd

import (
	"fmt"

	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id|owner/name|url>",
		Aliases: []string{"rm"},
		Short:   "Remove a saved repository",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				rec, err := resolveRecord(s, args[0])
				if err != nil {
					return err
				}

				if !yes && !promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Remove %s? [y/N]: ", rec.FullName)) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}

				removed, err := s.Remove(rec.ID)
				if err != nil {
					return fmt.Errorf("failed to remove repository: %w", err)
				}

				if !removed {
					return fmt.Errorf("repository not found: %s", args[0])
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed: %s\n", rec.FullName)

				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}
