package commands

import (
	"os"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/app"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch-reclient-cfgs",
		Short: "Fetch reclient cfgs for each toolchain from cipd",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, _ := cmd.Flags().GetString("rbe_project")
			prefix, _ := cmd.Flags().GetString("cipd_prefix")
			quiet, _ := cmd.Flags().GetBool("quiet")

			_, err := c.app.FetchReclientCfgs(cmd.Context(), app.FetchOptions{
				GlobalOptions: globalOptions(cmd),
				RBEProject:    project,
				CipdPrefix:    prefix,
				Quiet:         quiet,
			})
			return err
		},
	}
	cmd.Flags().String("rbe_project",
		domain.RBEProjectFromEnv(os.LookupEnv).OrEmpty(),
		"RBE instance project id (default: derived from $"+domain.RBEInstanceEnv+")")
	cmd.Flags().String("cipd_prefix", "",
		"cipd package name prefix (default: config value, else "+domain.DefaultCipdPrefix+")")
	cmd.Flags().Bool("quiet", false, "Only log warnings and errors")
	return cmd
}
