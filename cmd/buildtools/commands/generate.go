package commands

import (
	"github.com/gsource-mirror/chromium-src-buildtools/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-libcxx-headers",
		Short: "Generate the GN list of libc++ headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			includeDir, _ := cmd.Flags().GetString("include-dir")
			output, _ := cmd.Flags().GetString("output")
			revisionCheck, _ := cmd.Flags().GetBool("revision-check")
			check, _ := cmd.Flags().GetBool("check")

			return c.app.GenerateLibcxxHeaders(cmd.Context(), app.GenerateOptions{
				GlobalOptions: globalOptions(cmd),
				IncludeDir:    includeDir,
				Output:        output,
				RevisionCheck: revisionCheck,
				Check:         check,
			})
		},
	}
	cmd.Flags().String("include-dir", "", "libc++ include directory (default: config value)")
	cmd.Flags().String("output", "", "Generated GN file (default: config value)")
	cmd.Flags().Bool("revision-check", true, "Assert the libc++ revision in the generated file")
	cmd.Flags().Bool("check", false, "Fail if the generated file is out of date instead of writing it")
	return cmd
}
