package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"mcluster/internal/compose"
	"mcluster/internal/config"
	"mcluster/internal/orchestrator"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var upQuiet bool

// upCmd generates the cluster definition from the nearest mcluster.yaml and
// brings the cluster up through the compose binary.
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Generate the cluster definition and start the cluster",
	Long: `Locate the nearest mcluster.yaml, validate it, generate the compose
definition into the internal working directory and start the cluster
detached via podman-compose or docker-compose.`,
	Args: cobra.NoArgs,
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)

	upCmd.Flags().BoolVarP(&upQuiet, "quiet", "q", false, "Suppress non-essential output")
}

func runUp(cmd *cobra.Command, args []string) error {
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

	def, err := compose.Generate(cfg)
	if err != nil {
		return err
	}
	data, err := compose.Marshal(def)
	if err != nil {
		return err
	}

	composeDir := filepath.Join(projectRoot, cfg.MclusterDir)
	if err := os.MkdirAll(composeDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", composeDir, err)
	}
	composeFile := filepath.Join(composeDir, compose.FileName)
	if err := os.WriteFile(composeFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", composeFile, err)
	}
	if !upQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Cluster definition written to %s\n", composeFile)
	}

	runner := orchestrator.NewRunner(projectRoot)
	if err := withSpinner(upQuiet, " Starting cluster...", func() error {
		return runner.Up(ctx, composeFile)
	}); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), text.FgRed.Sprint("Failed to start the cluster"))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text.FgGreen.Sprintf("Cluster %q is up", cfg.ClusterName))
	return nil
}

// locateProject finds the nearest configuration file and returns its path
// together with the project root directory that contains it.
func locateProject(store *config.Store) (configPath, projectRoot string, err error) {
	configPath, ok := store.Find(".")
	if !ok {
		return "", "", fmt.Errorf("no %s found in this directory or any parent", config.ConfigFileName)
	}
	return configPath, filepath.Dir(configPath), nil
}

// withSpinner runs fn behind a progress spinner unless quiet mode is
// enabled.
func withSpinner(quiet bool, suffix string, fn func() error) error {
	if quiet {
		return fn()
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = suffix
	s.Start()
	defer s.Stop()
	return fn()
}
