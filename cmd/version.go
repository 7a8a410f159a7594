package cmd

import (
	"fmt"
	"runtime"

	"github.com/inovacc/repovault/internal/application"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s/%s, %s)\n",
				application.AppName, application.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())

			return nil
		},
	}
}
