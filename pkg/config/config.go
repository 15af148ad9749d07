// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/srcpatch/pkg/backup"
	"github.com/walteh/srcpatch/pkg/profile"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 TargetOverride relocates one target of the profile
type TargetOverride struct {
	Name  string `hcl:"name,label" json:"name" yaml:"name"`
	Path  string `hcl:"path,optional" json:"path,omitempty" yaml:"path,omitempty"`
	Match string `hcl:"match,optional" json:"match,omitempty" yaml:"match,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Project      string           `hcl:"project,optional" json:"project" yaml:"project"`
	Profile      string           `hcl:"profile,optional" json:"profile,omitempty" yaml:"profile,omitempty"`
	BackupSuffix string           `hcl:"backup_suffix,optional" json:"backup_suffix,omitempty" yaml:"backup_suffix,omitempty"`
	Strict       bool             `hcl:"strict,optional" json:"strict,omitempty" yaml:"strict,omitempty"`
	Parallel     bool             `hcl:"parallel,optional" json:"parallel,omitempty" yaml:"parallel,omitempty"`
	Targets      []TargetOverride `hcl:"target,block" json:"targets,omitempty" yaml:"targets,omitempty"`
}

// 🏭 Default returns a config with every default applied and no project
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills in empty fields
func (cfg *Config) SetDefaults() {
	if cfg.Profile == "" {
		cfg.Profile = profile.ExcelImport
	}
	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = backup.DefaultSuffix
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data, path)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// a relative project is relative to the config file, not the cwd
	if cfg.Project != "" && !filepath.IsAbs(cfg.Project) {
		cfg.Project = filepath.Join(filepath.Dir(path), cfg.Project)
	}

	cfg.SetDefaults()
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Project == "" {
		return errors.New("project is required")
	}
	if cfg.Profile == "" {
		return errors.New("profile is required")
	}
	if cfg.BackupSuffix == "" || strings.ContainsAny(cfg.BackupSuffix, `/\`) {
		return errors.Errorf("invalid backup_suffix %q", cfg.BackupSuffix)
	}

	seen := map[string]bool{}
	for _, t := range cfg.Targets {
		if t.Name == "" {
			return errors.New("target name is required")
		}
		if seen[t.Name] {
			return errors.Errorf("target %s: declared twice", t.Name)
		}
		seen[t.Name] = true
		if t.Path != "" && t.Match != "" {
			return errors.Errorf("target %s: path and match are mutually exclusive", t.Name)
		}
	}

	cfg.Project = filepath.Clean(cfg.Project)
	return nil
}

// Override returns the override for a target, if any
func (cfg *Config) Override(name string) (TargetOverride, bool) {
	for _, t := range cfg.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return TargetOverride{}, false
}
