package commands

import (
	"fmt"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "buildtools version %s (%s)\n", build.Version, build.Commit)
		},
	}
}
