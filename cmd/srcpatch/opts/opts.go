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

package opts

import (
	"context"
	"os"

	"github.com/walteh/srcpatch/pkg/config"
	"github.com/walteh/srcpatch/pkg/log"
	"github.com/walteh/srcpatch/pkg/patch"
	"github.com/walteh/srcpatch/pkg/profile"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFiles are looked up in the working directory when no config
// file is given
var DefaultConfigFiles = []string{"srcpatch.hcl", "srcpatch.yaml", "srcpatch.yml", "srcpatch.json"}

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// flags
	ConfigFile   string
	Debug        bool
	Project      string
	Profile      string
	BackupSuffix string

	// populated before any command runs
	Config     *config.Config
	UserLogger *log.UserLogger
}

// 🎯 LoadConfig reads the config file, if any, and lets flags override it
func (o *RootOpts) LoadConfig(ctx context.Context) error {
	path := o.ConfigFile
	if path == "" {
		for _, candidate := range DefaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(ctx, path)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if o.Project != "" {
		cfg.Project = o.Project
	}
	if o.Profile != "" {
		cfg.Profile = o.Profile
	}
	if o.BackupSuffix != "" {
		cfg.BackupSuffix = o.BackupSuffix
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}

	o.Config = cfg
	return nil
}

// 🧭 Targets builds the configured profile and resolves its files
func (o *RootOpts) Targets(ctx context.Context) (*profile.Profile, []patch.Target, error) {
	p, err := profile.Get(o.Config.Profile)
	if err != nil {
		return nil, nil, errors.Errorf("loading profile: %w", err)
	}
	targets, err := o.Config.Resolve(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	return p, targets, nil
}
