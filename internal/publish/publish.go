// Package publish writes rendered Markdown and mirrors it into the shared
// docs directory.
package publish

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write saves rendered Markdown at path, creating parent directories.
func Write(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Sync copies a rendered file byte-for-byte into docsDir under the same
// name, creating docsDir if absent.
func Sync(srcPath, docsDir string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", srcPath, err)
	}
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", docsDir, err)
	}
	dst := filepath.Join(docsDir, filepath.Base(srcPath))
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
