package compose

import (
	"strings"
	"testing"

	"mcluster/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func castleConfig() *config.ClusterConfig {
	return config.DefaultConfig("castle")
}

func withActive(cfg *config.ClusterConfig, names ...string) *config.ClusterConfig {
	cfg.ActiveServers = &names
	return cfg
}

func TestGenerate_CastleEndToEnd(t *testing.T) {
	def, err := Generate(castleConfig())
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, def.Version)
	assert.Equal(t, []string{"velocity", "lobby", "survival"}, def.Services.Names())

	proxy, ok := def.Services.Get("velocity")
	require.True(t, ok)
	assert.Equal(t, "castle-velocity", proxy.ContainerName)
	assert.Equal(t, []string{"25565:25565"}, proxy.Ports)
	assert.Equal(t, []string{"../servers/velocity:/app"}, proxy.Volumes)
	assert.Equal(t, []string{"castle_net"}, proxy.Networks)
	assert.Equal(t, "unless-stopped", proxy.Restart)
	assert.True(t, proxy.StdinOpen)
	assert.True(t, proxy.TTY)

	lobby, ok := def.Services.Get("lobby")
	require.True(t, ok)
	assert.Equal(t, "castle-lobby", lobby.ContainerName)
	assert.Empty(t, lobby.Ports, "backend servers publish no ports")
	assert.Equal(t, []string{"../servers/lobby:/app"}, lobby.Volumes)

	survival, ok := def.Services.Get("survival")
	require.True(t, ok)
	assert.Equal(t, "castle-survival", survival.ContainerName)

	require.Len(t, def.Networks, 1)
	network, ok := def.Networks["castle_net"]
	require.True(t, ok)
	assert.Equal(t, "bridge", network.Driver)
	assert.Equal(t, "castle_net", network.Name)
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(castleConfig())
	require.NoError(t, err)
	second, err := Generate(castleConfig())
	require.NoError(t, err)

	firstBytes, err := Marshal(first)
	require.NoError(t, err)
	secondBytes, err := Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstBytes, secondBytes)
}

func TestGenerate_AbsentActiveServersActivatesAll(t *testing.T) {
	cfg := castleConfig()
	cfg.ActiveServers = nil

	def, err := Generate(cfg)
	require.NoError(t, err)

	// All servers active, sorted for determinism, proxy first.
	assert.Equal(t, []string{"velocity", "lobby", "survival"}, def.Services.Names())
}

func TestGenerate_ActiveListOrderPreserved(t *testing.T) {
	def, err := Generate(withActive(castleConfig(), "survival", "lobby"))
	require.NoError(t, err)

	assert.Equal(t, []string{"velocity", "survival", "lobby"}, def.Services.Names())
}

func TestGenerate_EmptyActiveListYieldsProxyOnly(t *testing.T) {
	def, err := Generate(withActive(castleConfig()))
	require.NoError(t, err)

	assert.Equal(t, []string{"velocity"}, def.Services.Names())
}

func TestGenerate_UnknownActiveServerIsDropped(t *testing.T) {
	def, err := Generate(withActive(castleConfig(), "lobby", "ghost"))
	require.NoError(t, err)

	assert.Equal(t, []string{"velocity", "lobby"}, def.Services.Names())
	_, ok := def.Services.Get("ghost")
	assert.False(t, ok)
}

func TestGenerate_UnresolvedProxyImage(t *testing.T) {
	cfg := castleConfig()
	cfg.Velocity.JavaVersion = "java99"

	def, err := Generate(cfg)
	require.Error(t, err)
	assert.Nil(t, def, "no partial output on failure")

	var unresolved *UnresolvedImageError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "velocity", unresolved.Entity)
	assert.Equal(t, "java99", unresolved.JavaVersion)
}

func TestGenerate_UnresolvedServerImage(t *testing.T) {
	cfg := castleConfig()
	cfg.Servers["survival"] = config.ServerConfig{JavaVersion: "java99"}

	def, err := Generate(cfg)
	require.Error(t, err)
	assert.Nil(t, def)

	var unresolved *UnresolvedImageError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "survival", unresolved.Entity)
}

func TestGenerate_SlugsClusterName(t *testing.T) {
	cfg := castleConfig()
	cfg.ClusterName = "Castle Keep"

	def, err := Generate(cfg)
	require.NoError(t, err)

	proxy, ok := def.Services.Get("velocity")
	require.True(t, ok)
	assert.Equal(t, "castle-keep-velocity", proxy.ContainerName)
}

func TestMarshal_ServiceOrderInOutput(t *testing.T) {
	def, err := Generate(withActive(castleConfig(), "survival", "lobby"))
	require.NoError(t, err)

	data, err := Marshal(def)
	require.NoError(t, err)
	content := string(data)

	velocityIdx := strings.Index(content, "velocity:")
	survivalIdx := strings.Index(content, "survival:")
	lobbyIdx := strings.Index(content, "lobby:")
	require.GreaterOrEqual(t, velocityIdx, 0)
	require.GreaterOrEqual(t, survivalIdx, 0)
	require.GreaterOrEqual(t, lobbyIdx, 0)

	assert.Less(t, velocityIdx, survivalIdx)
	assert.Less(t, survivalIdx, lobbyIdx)

	assert.Contains(t, content, `version: "3.8"`)
	assert.Contains(t, content, "driver: bridge")
}
