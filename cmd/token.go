package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inovacc/repovault/internal/auth"
	"github.com/inovacc/repovault/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored GitHub token",
		Long: `Manage the GitHub token kept in the store.

Clients built on repovault resolve the token in this order:
  - an explicit --token flag
  - GITHUB_TOKEN environment variable
  - GH_TOKEN environment variable
  - the token stored with 'repovault token set'`,
	}

	cmd.AddCommand(
		newTokenSetCmd(a),
		newTokenShowCmd(a),
		newTokenClearCmd(a),
		newTokenStatusCmd(a),
	)

	return cmd
}

func newTokenSetCmd(a *app) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a GitHub token",
		Long: `Store a GitHub token. The token is read from the terminal without
echoing, or from stdin with --stdin.

Examples:
  repovault token set
  gh auth token | repovault token set --stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readToken(cmd.InOrStdin(), cmd.ErrOrStderr(), fromStdin)
			if err != nil {
				return err
			}

			return a.withStore(func(s *store.RepositoryStore) error {
				if err := s.SetToken(token); err != nil {
					return err
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token stored.")

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the token from stdin")

	return cmd
}

func newTokenShowCmd(a *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored token (redacted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				token, ok := s.GetToken()
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No token stored.")
					return nil
				}

				if !reveal {
					token = auth.Redact(token)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the token in full")

	return cmd
}

func newTokenClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				if err := s.ClearToken(); err != nil {
					return err
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token cleared.")

				return nil
			})
		},
	}
}

func newTokenStatusCmd(a *app) *cobra.Command {
	var flagToken string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which token source would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *store.RepositoryStore) error {
				res, err := auth.NewGitHubResolver(flagToken, s).Resolve()
				if errors.Is(err, auth.ErrNoToken) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No token available.")
					return nil
				}

				if err != nil {
					return err
				}

				printInfoBox(cmd.OutOrStdout(), "GitHub token", map[string]string{
					"Source": string(res.Source),
					"Name":   res.Name,
					"Token":  auth.Redact(res.Token),
				}, []string{"Source", "Name", "Token"})

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&flagToken, "token", "", "Token to check ahead of the environment and store")

	return cmd
}

// readToken reads a token from the terminal without echoing, or a single
// line from in when it is not a terminal or fromStdin is set
func readToken(in io.Reader, prompt io.Writer, fromStdin bool) (string, error) {
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "GitHub token: ")

		token, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", err
		}

		return strings.TrimSpace(string(token)), nil
	}

	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return "", store.ErrEmptyToken
}
