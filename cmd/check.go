package cmd

import (
	"fmt"
	"sort"

	"mcluster/internal/config"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// checkCmd validates the nearest configuration file and shows what a
// generated cluster definition would contain.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the cluster configuration",
	Long: `Locate the nearest mcluster.yaml, validate it against the schema and
print the configured services with their resolved images.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	store := config.NewStore()
	configPath, _, err := locateProject(store)
	if err != nil {
		return err
	}

	if !store.Validate(configPath) {
		// Reload to surface the typed error detail to the user.
		_, loadErr := store.Load(configPath)
		return loadErr
	}

	cfg, err := store.Load(configPath)
	if err != nil {
		return err
	}

	active, unknown := cfg.ResolveActiveServers()
	activeSet := make(map[string]bool, len(active))
	for _, name := range active {
		activeSet[name] = true
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s is valid (cluster %q, network %q)\n",
		configPath, cfg.ClusterName, cfg.ContainerEnv.Network.Name)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Service", "Runtime", "Image", "Active"})
	t.AppendRow(serviceRow(cfg.Velocity.ServiceName+" (proxy)", cfg.Velocity.JavaVersion, cfg.ContainerEnv.Images, true))

	names := make([]string, 0, len(cfg.Servers))
	for name := range cfg.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.AppendRow(serviceRow(name, cfg.Servers[name].JavaVersion, cfg.ContainerEnv.Images, activeSet[name]))
	}
	t.Render()

	for _, name := range unknown {
		fmt.Fprintln(out, text.FgYellow.Sprintf("warning: active_servers entry %q has no matching server", name))
	}
	return nil
}

func serviceRow(name, javaVersion string, images config.ImagesConfig, active bool) table.Row {
	image, ok := images[javaVersion]
	if !ok {
		image = text.FgRed.Sprintf("unresolved (%s missing from images)", javaVersion)
	}
	activeMark := ""
	if active {
		activeMark = "yes"
	}
	return table.Row{name, javaVersion, image, activeMark}
}
