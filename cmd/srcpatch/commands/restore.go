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

package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/srcpatch/cmd/srcpatch/opts"
	"github.com/walteh/srcpatch/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Put the backups back over the target files",
		Long: `Restore copies every <file>.backup over its target, undoing the last apply.
The backups are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, targets, err := opts.Targets(ctx)
			if err != nil {
				return errors.Errorf("resolving targets: %w", err)
			}

			app := patch.New(patch.Options{
				Profile:      p.Name,
				Project:      opts.Config.Project,
				BackupSuffix: opts.Config.BackupSuffix,
			})

			if err := app.Restore(ctx, targets); err != nil {
				return errors.Errorf("restoring backups: %w", err)
			}

			for _, t := range targets {
				opts.UserLogger.Success("Restored %s from %s", filepath.Base(t.Path), filepath.Base(app.BackupPath(t)))
			}

			return nil
		},
	}

	return cmd
}
