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

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/srcpatch/pkg/patch"
	"github.com/walteh/srcpatch/pkg/profile"
	"gitlab.com/tozd/go/errors"
)

// 🧭 Resolve turns the profile's targets into absolute file paths.
//
// Resolution order per target: an override path, an override match glob,
// the profile's default path, and finally the profile's own glob when the
// default path does not exist. A target that cannot be found keeps its
// default path so preflight reports it as missing.
func (cfg *Config) Resolve(ctx context.Context, p *profile.Profile) ([]patch.Target, error) {
	logger := zerolog.Ctx(ctx)

	for _, o := range cfg.Targets {
		if _, ok := p.Target(o.Name); !ok {
			return nil, errors.Errorf("target %q is not part of profile %s", o.Name, p.Name)
		}
	}

	targets := make([]patch.Target, 0, len(p.Targets))
	for _, pt := range p.Targets {
		path, err := cfg.resolvePath(pt)
		if err != nil {
			return nil, errors.Errorf("resolving target %s: %w", pt.Name, err)
		}
		logger.Debug().Str("target", pt.Name).Str("path", path).Msg("target resolved")
		targets = append(targets, patch.Target{
			Name:  pt.Name,
			Path:  path,
			Rules: pt.Rules,
		})
	}
	return targets, nil
}

func (cfg *Config) resolvePath(pt profile.Target) (string, error) {
	if o, ok := cfg.Override(pt.Name); ok {
		switch {
		case o.Path != "":
			return cfg.abs(o.Path), nil
		case o.Match != "":
			return cfg.glob(o.Match, true)
		}
	}

	def := cfg.abs(pt.Path)
	if pt.Match == "" {
		return def, nil
	}
	if _, err := os.Stat(def); err == nil {
		return def, nil
	}

	found, err := cfg.glob(pt.Match, false)
	if err != nil {
		return "", err
	}
	if found == "" {
		return def, nil
	}
	return found, nil
}

func (cfg *Config) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cfg.Project, filepath.FromSlash(path))
}

// glob finds the single file under the project matching pattern. When
// required is false an empty result is not an error.
func (cfg *Config) glob(pattern string, required bool) (string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return "", errors.Errorf("invalid glob %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(cfg.Project), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", errors.Errorf("matching %q: %w", pattern, err)
	}

	switch len(matches) {
	case 0:
		if required {
			return "", errors.Errorf("no file matches %q under %s", pattern, cfg.Project)
		}
		return "", nil
	case 1:
		return filepath.Join(cfg.Project, filepath.FromSlash(matches[0])), nil
	default:
		return "", errors.Errorf("%q matches %d files under %s: %v", pattern, len(matches), cfg.Project, matches)
	}
}
