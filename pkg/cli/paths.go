package cli

import (
	"os"
	"path/filepath"
)

const (
	// DefaultBaseDir is the configuration directory name under $HOME.
	DefaultBaseDir = ".ollamagen"

	// DefaultConfigFile is the configuration filename.
	DefaultConfigFile = "config.yaml"
)

// Paths locates the CLI's on-disk layout.
type Paths struct {
	// HomeDir is the user's home directory.
	HomeDir string
}

// NewPaths creates a Paths rooted at the user's home directory.
func NewPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Paths{HomeDir: home}, nil
}

// BaseDir returns the base directory (~/.ollamagen).
func (p *Paths) BaseDir() string {
	return filepath.Join(p.HomeDir, DefaultBaseDir)
}

// ConfigFile returns the config file path (~/.ollamagen/config.yaml).
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.BaseDir(), DefaultConfigFile)
}

// SessionDir returns the saved-session directory (~/.ollamagen/sessions).
func (p *Paths) SessionDir() string {
	return filepath.Join(p.BaseDir(), "sessions")
}
