package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_InStartDirectory(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore()

	expected := writeConfigFile(t, tempDir, minimalConfig)

	found, ok := store.Find(tempDir)
	require.True(t, ok)
	assert.Equal(t, expected, found)
}

func TestFind_AncestorThreeLevelsUp(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore()

	expected := writeConfigFile(t, tempDir, minimalConfig)

	start := filepath.Join(tempDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(start, 0755))

	found, ok := store.Find(start)
	require.True(t, ok)
	assert.Equal(t, expected, found)
}

func TestFind_NearestMatchWins(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore()

	writeConfigFile(t, tempDir, minimalConfig)

	nested := filepath.Join(tempDir, "sub")
	require.NoError(t, os.MkdirAll(nested, 0755))
	closer := writeConfigFile(t, nested, minimalConfig)

	found, ok := store.Find(filepath.Join(nested))
	require.True(t, ok)
	assert.Equal(t, closer, found)
}

func TestFind_Absent(t *testing.T) {
	store := NewStore()

	_, ok := store.Find(t.TempDir())
	assert.False(t, ok)
}

func TestFind_IgnoresDirectoryWithCanonicalName(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore()

	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, ConfigFileName), 0755))

	_, ok := store.Find(tempDir)
	assert.False(t, ok)
}
