package config

import (
	"os"
	"path/filepath"

	"mcluster/pkg/logging"
)

// maxSearchDepth bounds the upward walk of Find. The parent-equality check
// already terminates at the filesystem root; the bound guards against
// filesystem anomalies such as symlink cycles.
const maxSearchDepth = 50

// Find walks from startPath upward through parent directories, startPath
// included, looking for the canonical configuration file. It returns the
// path of the first match, or ok=false when nothing is found.
func (s *Store) Find(startPath string) (path string, ok bool) {
	current, err := filepath.Abs(startPath)
	if err != nil {
		logging.Debug(storeSubsystem, "Cannot resolve search start path %s: %v", startPath, err)
		return "", false
	}

	for steps := 0; ; steps++ {
		if steps > maxSearchDepth {
			logging.Warn(storeSubsystem, "Configuration file search exceeded maximum depth (%d levels)", maxSearchDepth)
			return "", false
		}

		candidate := filepath.Join(current, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			logging.Debug(storeSubsystem, "Found configuration file at %s", candidate)
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			logging.Debug(storeSubsystem, "No configuration file found after searching %d directories", steps+1)
			return "", false
		}
		current = parent
	}
}
