// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultDir is the repository used when none is given.
	DefaultDir = ".notes"
	// ConfigName is the configuration file looked up in the repository.
	ConfigName = "config.toml"
)

// Config is the note configuration, read from a TOML file like:
//
//	editor = "code --wait"
//	categories = ["Normal", "Important", "Archive"]
//
//	[aliases]
//	ls = "list --count 10"
type Config struct {
	Editor     string   `toml:"editor"`
	Categories []string `toml:"categories"`
	// Aliases maps a command name to the arguments it expands to.
	Aliases map[string]string `toml:"aliases"`
}

// DefaultCategories are used when the configuration does not list any.
var DefaultCategories = []string{"Normal", "Important", "Archive"}

// DefaultConfigPath returns the configuration file inside dir.
func DefaultConfigPath(dir string) string {
	return filepath.Join(dir, ConfigName)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	return &Config{
		Editor:     editor,
		Categories: slices.Clone(DefaultCategories),
	}
}

// LoadConfig reads the configuration at path. A missing file yields
// DefaultConfig. Keys left out of the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		log.Printf("%s: ignoring unknown key %q", path, k.String())
	}
	return cfg, nil
}

// AliasNames returns the alias names in a stable order.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Expand returns the arguments alias expands to.
func (c *Config) Expand(alias string) []string {
	return strings.Fields(c.Aliases[alias])
}
