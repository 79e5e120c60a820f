package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"mcluster/internal/compose"
	"mcluster/internal/config"
	"mcluster/internal/orchestrator"
	"mcluster/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

const downSubsystem = "Down"

var downQuiet bool

// downCmd stops and removes the cluster's containers and network using the
// compose file generated by a previous up.
var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop and remove the cluster",
	Long: `Locate the nearest mcluster.yaml and tear the cluster down via
podman-compose or docker-compose, using the compose definition generated by
a previous 'mcluster up'.`,
	Args: cobra.NoArgs,
	RunE: runDown,
}

func init() {
	rootCmd.AddCommand(downCmd)

	downCmd.Flags().BoolVarP(&downQuiet, "quiet", "q", false, "Suppress non-essential output")
}

func runDown(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := config.NewStore()
	configPath, projectRoot, err := locateProject(store)
	if err != nil {
		return err
	}

	cfg, err := store.Load(configPath)
	if err != nil {
		return err
	}

	composeFile := filepath.Join(projectRoot, cfg.MclusterDir, compose.FileName)
	if _, err := os.Stat(composeFile); os.IsNotExist(err) {
		logging.Warn(downSubsystem, "Compose file not found at %s; the cluster may not have been started or is already down", composeFile)
		return nil
	}

	runner := orchestrator.NewRunner(projectRoot)
	if err := withSpinner(downQuiet, " Stopping cluster...", func() error {
		return runner.Down(ctx, composeFile)
	}); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), text.FgRed.Sprint("Failed to stop the cluster"))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text.FgGreen.Sprintf("Cluster %q is down", cfg.ClusterName))
	return nil
}
