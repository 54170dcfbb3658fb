package utils

import (
	"fmt"
	"os"
	"path"
)

// GetDocrConfigDir returns the path to the docr configuration directory.
// The directory is located inside the user's configuration directory
// as <UserConfigDir>/.docr, unless overridden by DOCR_CONFIG_HOME.
func GetDocrConfigDir() (string, error) {
	if docrConfigHome := os.Getenv("DOCR_CONFIG_HOME"); docrConfigHome != "" {
		return docrConfigHome, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return path.Join(cfg, ".docr"), nil
}
