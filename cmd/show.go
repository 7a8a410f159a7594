package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/inovacc/repovault/internal/model"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id|owner/name|url>",
		Short: "Show a saved repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				rec, err := resolveRecord(s, args[0])
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), rec)
				}

				printRepository(cmd.OutOrStdout(), rec)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func printRepository(out io.Writer, r model.SavedRepository) {
	tags := strings.Join(r.Tags, ", ")
	if tags == "" {
		tags = "-"
	}

	items := map[string]string{
		"ID":          r.ID,
		"URL":         r.URL,
		"Owner":       r.Owner.Login,
		"Description": r.Description,
		"Language":    r.Language,
		"Stars":       fmt.Sprintf("%d", r.StarCount),
		"Forks":       fmt.Sprintf("%d", r.ForkCount),
		"Tags":        tags,
		"Notes":       r.Notes,
		"Saved":       formatTime(&r.SavedAt),
		"Last viewed": formatTime(r.LastViewedAt),
	}

	order := []string{"ID", "URL", "Owner", "Description", "Language", "Stars", "Forks", "Tags", "Notes", "Saved", "Last viewed"}

	printInfoBox(out, r.FullName, items, order)
}
