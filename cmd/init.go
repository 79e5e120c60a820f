package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"mcluster/internal/config"
	"mcluster/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

const initSubsystem = "Init"

var (
	initDirectory string
	initName      string
)

// initCmd scaffolds a new cluster project: the internal working directory,
// the servers and templates directories, and a commented default
// mcluster.yaml.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a new cluster project",
	Long: `Create the project layout for a new cluster in the target directory:
the internal working directory, the servers and templates directories, and a
fully commented default mcluster.yaml.

An existing mcluster.yaml is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initDirectory, "directory", "d", ".", "Directory to initialize the project in")
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "Project name (default: base name of the target directory)")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(initDirectory)
	if err != nil {
		return fmt.Errorf("cannot resolve target directory %s: %w", initDirectory, err)
	}

	projectName := initName
	if projectName == "" {
		projectName = filepath.Base(dir)
	}

	subdirs := []string{
		config.DefaultMclusterDir,
		config.DefaultServersDir,
		config.DefaultTemplatesDir,
	}
	for _, sub := range subdirs {
		path := filepath.Join(dir, sub)
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
		logging.Debug(initSubsystem, "Created directory %s", path)
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		logging.Warn(initSubsystem, "Configuration file already exists at %s, skipping generation", configPath)
		fmt.Fprintln(cmd.OutOrStdout(), text.FgYellow.Sprintf("Kept existing %s", config.ConfigFileName))
		return nil
	}

	store := config.NewStore()
	if _, err := store.GenerateDefault(projectName, configPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text.FgGreen.Sprintf("Initialized cluster project %q in %s", projectName, dir))
	return nil
}
