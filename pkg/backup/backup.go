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

// Package backup keeps sibling copies of files before they are edited in
// place. A backup of foo.dart lives at foo.dart.backup by default and is
// overwritten on every run.
package backup

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultSuffix is appended to a target path to form its backup path
const DefaultSuffix = ".backup"

// 💾 Manager creates and restores backups
type Manager struct {
	suffix string
}

// 🏭 New creates a backup manager; an empty suffix means DefaultSuffix
func New(suffix string) *Manager {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Manager{suffix: suffix}
}

// Path returns the backup path for a target
func (m *Manager) Path(target string) string {
	return target + m.suffix
}

// 📦 Create copies target to its backup path, replacing any earlier backup.
// A missing target is an error.
func (m *Manager) Create(ctx context.Context, target string) (string, error) {
	backupPath := m.Path(target)
	if err := copyFile(target, backupPath); err != nil {
		return "", errors.Errorf("creating backup of %s: %w", target, err)
	}
	zerolog.Ctx(ctx).Debug().Str("target", target).Str("backup", backupPath).Msg("backup created")
	return backupPath, nil
}

// Exists reports whether a backup exists for target
func (m *Manager) Exists(target string) (bool, error) {
	_, err := os.Stat(m.Path(target))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking backup existence: %w", err)
}

// ♻️ Restore copies the backup over target. The backup is kept so a
// restore can be repeated.
func (m *Manager) Restore(ctx context.Context, target string) error {
	backupPath := m.Path(target)

	ok, err := m.Exists(target)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf("backup file %s does not exist", backupPath)
	}

	if err := copyFile(backupPath, target); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("target", target).Str("backup", backupPath).Msg("backup restored")
	return nil
}

// copyFile copies content, permissions and modification time from src to dst
func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return errors.Errorf("reading source file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("%s is not a regular file", src)
	}

	destination, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		return errors.Errorf("copying file: %w", err)
	}
	if err := destination.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Errorf("setting permissions: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("setting modification time: %w", err)
	}

	return nil
}
