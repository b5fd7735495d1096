//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory that serves as $HOME and
// working directory for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir, err := os.MkdirTemp("", "reelview-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ConfigPath is the config file the app is started with
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// LogPath is where the app writes its log
func (tf *TUITestFramework) LogPath() string {
	return filepath.Join(tf.workspace, "reelview.log")
}

// WriteFile writes a file relative to the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

const sampleCatalogTOML = `[[movies]]
name = "ALIEN"
poster = "alien"

[[movies]]
name = "HEAT"
poster = "heat"

[[movies]]
name = "ALIENS"
poster = "aliens"
`
