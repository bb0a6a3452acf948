// Package commands implements the CLI commands for buildtools.
package commands

import (
	"context"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/app"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/build"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/spf13/cobra"
)

// Application is the application layer driven by the CLI.
type Application interface {
	FetchReclientCfgs(ctx context.Context, opts app.FetchOptions) (domain.FetchReport, error)
	GenerateLibcxxHeaders(ctx context.Context, opts app.GenerateOptions) error
}

// CLI represents the command line interface for buildtools.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "buildtools",
		Short:         "Chromium buildtools helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to the buildtools config file")
	rootCmd.PersistentFlags().String("src-root", "", "Chromium source root (default: config value, else the current directory)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("progress", false, "Render the recorded steps to stderr when the run ends")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// globalOptions reads the persistent flags. An explicitly passed config file must exist.
func globalOptions(cmd *cobra.Command) app.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	srcRoot, _ := cmd.Flags().GetString("src-root")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	progress, _ := cmd.Flags().GetBool("progress")

	return app.GlobalOptions{
		ConfigPath:     configPath,
		ConfigRequired: cmd.Flags().Changed("config"),
		SrcRoot:        srcRoot,
		LogJSON:        logJSON,
		Progress:       progress,
	}
}
