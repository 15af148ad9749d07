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

package patch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Preflight checks that every target exists, is a regular file and can be
// rewritten. Nothing on disk is modified when it fails.
func (a *Applier) Preflight(ctx context.Context, targets []Target) error {
	if len(targets) == 0 {
		return errors.New("no targets")
	}

	seen := make(map[string]string, len(targets))
	for _, t := range targets {
		abs, err := filepath.Abs(t.Path)
		if err != nil {
			return errors.Errorf("resolving %s: %w", t.Path, err)
		}
		if other, ok := seen[abs]; ok {
			return errors.Errorf("targets %s and %s point at the same file %s", other, t.Name, abs)
		}
		seen[abs] = t.Name

		if err := checkTarget(t.Path, !a.opts.DryRun); err != nil {
			return errors.Errorf("target %s: %w", t.Name, err)
		}
		zerolog.Ctx(ctx).Debug().Str("target", t.Name).Str("path", t.Path).Msg("preflight ok")
	}
	return nil
}

func checkTarget(path string, needWrite bool) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.WithDetails(ErrTargetMissing, "path", path)
	}
	if err != nil {
		return errors.Errorf("checking %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("%s is not a regular file", path)
	}

	if !needWrite {
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return errors.WithDetails(ErrTargetNotWritable, "path", path, "cause", err.Error())
	}
	f.Close()

	// backups and the atomic rename both create files next to the target
	check, err := os.CreateTemp(filepath.Dir(path), ".srcpatch-check-*")
	if err != nil {
		return errors.WithDetails(ErrTargetNotWritable, "path", filepath.Dir(path), "cause", err.Error())
	}
	check.Close()
	os.Remove(check.Name())

	return nil
}
