package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/repovault/internal/model"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved repositories",
		Long: `List saved repositories, sorted and paginated.

Sort field, order and page size default to the values in 'repovault settings'.
When sorting by lastViewedAt, repositories never viewed are always listed last.

Examples:
  repovault list
  repovault list --sort stars --order desc
  repovault list --tag go --tag cli --page 2
  repovault list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				return runQuery(cmd.OutOrStdout(), s, qf, "")
			})
		},
	}

	qf.register(cmd.Flags())

	return cmd
}

func runQuery(out io.Writer, s *store.RepositoryStore, qf queryFlags, text string) error {
	page := s.Query(qf.query(text))

	if qf.json {
		return writeJSON(out, page)
	}

	if page.Total == 0 {
		printEmptyResult(out, "saved repositories", "Save one with: repovault save <file>")
		return nil
	}

	printRepositoriesTable(out, page, s.GetSettings())

	return nil
}

func printRepositoriesTable(out io.Writer, page model.Page, settings model.Settings) {
	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Calculate column widths
	maxName := 10
	maxLang := 8

	for _, r := range page.Items {
		maxName = max(maxName, min(len(r.FullName), 40))
		maxLang = max(maxLang, min(len(r.Language), 12))
	}

	columns := []string{
		headerStyle.Render(padRight("ID", 8)),
		headerStyle.Render(padRight("REPOSITORY", maxName)),
	}

	if settings.ShowLanguage {
		columns = append(columns, headerStyle.Render(padRight("LANGUAGE", maxLang)))
	}

	columns = append(columns,
		headerStyle.Render(padRight("STARS", 7)),
		headerStyle.Render(padRight("VIEWED", 16)),
		headerStyle.Render("TAGS"),
	)

	if !settings.CompactView {
		_, _ = fmt.Fprintln(out)
	}

	_, _ = fmt.Fprintln(out, strings.Join(columns, "  "))
	_, _ = fmt.Fprintln(out, strings.Repeat("-", maxName+maxLang+50))

	// Print rows
	for _, r := range page.Items {
		row := []string{
			padRight(truncateString(r.ID, 8), 8),
			padRight(truncateString(r.FullName, maxName), maxName),
		}

		if settings.ShowLanguage {
			lang := r.Language
			if lang == "" {
				lang = "-"
			}

			row = append(row, padRight(truncateString(lang, maxLang), maxLang))
		}

		row = append(row,
			countStyle.Render(padRight(fmt.Sprintf("%d", r.StarCount), 7)),
			dimStyle.Render(padRight(formatTime(r.LastViewedAt), 16)),
			tagStyle.Render(strings.Join(r.Tags, ", ")),
		)

		_, _ = fmt.Fprintln(out, strings.Join(row, "  "))

		if settings.ShowDescriptions && r.Description != "" {
			_, _ = fmt.Fprintf(out, "          %s\n", dimStyle.Render(truncateString(r.Description, 70)))
		}

		if !settings.CompactView && r.Notes != "" {
			_, _ = fmt.Fprintf(out, "          note: %s\n", truncateString(r.Notes, 70))
		}
	}

	if !settings.CompactView {
		_, _ = fmt.Fprintln(out)
	}

	_, _ = fmt.Fprintf(out, "Page %d of %d (%d repositories)\n", page.Page, max(page.Pages, 1), page.Total)
}
