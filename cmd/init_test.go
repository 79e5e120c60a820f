package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"mcluster/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInitIn(t *testing.T, dir, name string) string {
	t.Helper()
	initDirectory = dir
	initName = name
	t.Cleanup(func() {
		initDirectory = "."
		initName = ""
	})

	var out bytes.Buffer
	initCmd.SetOut(&out)
	initCmd.SetErr(&out)
	require.NoError(t, runInit(initCmd, nil))
	return out.String()
}

func TestInit_ScaffoldsProject(t *testing.T) {
	tempDir := t.TempDir()

	runInitIn(t, tempDir, "castle")

	for _, sub := range []string{config.DefaultMclusterDir, config.DefaultServersDir, config.DefaultTemplatesDir} {
		info, err := os.Stat(filepath.Join(tempDir, sub))
		require.NoError(t, err, "missing directory %s", sub)
		assert.True(t, info.IsDir())
	}

	store := config.NewStore()
	cfg, err := store.Load(filepath.Join(tempDir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "castle", cfg.ClusterName)
	assert.Equal(t, "castle_net", cfg.ContainerEnv.Network.Name)
}

func TestInit_DefaultsNameToDirectory(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "fortress")
	require.NoError(t, os.MkdirAll(tempDir, 0755))

	runInitIn(t, tempDir, "")

	store := config.NewStore()
	cfg, err := store.Load(filepath.Join(tempDir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "fortress", cfg.ClusterName)
}

func TestInit_KeepsExistingConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, config.ConfigFileName)

	existing := []byte("cluster_name: handcrafted\ncontainer_env:\n  network:\n    name: handmade_net\n")
	require.NoError(t, os.WriteFile(configPath, existing, 0644))

	runInitIn(t, tempDir, "castle")

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, existing, content)
}
