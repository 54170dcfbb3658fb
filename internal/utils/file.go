package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// CreateFile at path holding toCreate as indented json. An existing file is
// truncated.
func CreateFile[T any](path string, toCreate *T) error {
	b, err := json.MarshalIndent(toCreate, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode '%v': %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write '%v': %w", path, err)
	}
	return nil
}

// ReadAndUnmarshal the json file at filePath into config
func ReadAndUnmarshal[T any](filePath string, config *T) error {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read '%v': %w", filePath, err)
	}
	if err := json.Unmarshal(b, config); err != nil {
		return fmt.Errorf("failed to decode '%v': %w", filePath, err)
	}
	return nil
}
