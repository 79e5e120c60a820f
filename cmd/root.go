package cmd

import (
	"os"

	"mcluster/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a reported error: missing configuration,
	// validation failure, unresolved image, or orchestrator failure.
	ExitCodeError = 1
)

var debugMode bool

// rootCmd represents the base command for the mcluster application.
var rootCmd = &cobra.Command{
	Use:   "mcluster",
	Short: "Configure and launch a Minecraft server cluster behind a Velocity proxy",
	Long: `mcluster drives a cluster of Minecraft game-server containers behind a
Velocity proxy from a single mcluster.yaml file. It scaffolds new projects,
validates the configuration, generates the compose definition and hands it
to podman-compose or docker-compose.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if debugMode {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application. It runs the root
// command and maps any reported error to a non-zero process exit code.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mcluster version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(newVersionCmd())
}
