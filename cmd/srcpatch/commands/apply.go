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
	"github.com/spf13/cobra"
	"github.com/walteh/srcpatch/cmd/srcpatch/opts"
	"github.com/walteh/srcpatch/pkg/patch"
	"github.com/walteh/srcpatch/pkg/report"
	"gitlab.com/tozd/go/errors"
)

type applyFlags struct {
	strict   bool
	parallel bool
	dryRun   bool
	diff     bool
	asJSON   bool
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var flags applyFlags

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Back up and patch the target files",
		Long: `Apply edits the files of the selected profile in place.
It will:
1. Check that every target exists and is writable
2. Copy every target to <file>.backup
3. Apply each rule in order, skipping rules that are already applied
4. Write the changed files and print a summary

Running apply twice is safe: the second run finds every edit already present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when an edit cannot find the text it expects")
	cmd.Flags().BoolVar(&flags.parallel, "parallel", false, "patch target files concurrently")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report what would change without touching any file")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a diff of every changed file")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the report as JSON instead of the summary")

	return cmd
}

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var flags applyFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show what apply would change",
		Long: `Check runs every rule against the target files without writing anything
and prints the resulting diff. No backups are created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.dryRun = true
			flags.diff = true
			return runApply(cmd, opts, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when an edit cannot find the text it expects")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the report as JSON instead of the summary")

	return cmd
}

func runApply(cmd *cobra.Command, opts *opts.RootOpts, flags applyFlags) error {
	ctx := cmd.Context()
	u := opts.UserLogger

	if cmd.Flags().Changed("strict") {
		opts.Config.Strict = flags.strict
	}
	if cmd.Flags().Changed("parallel") {
		opts.Config.Parallel = flags.parallel
	}

	p, targets, err := opts.Targets(ctx)
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	if !flags.asJSON {
		u.Step("%s: %d files in %s", p.Description, len(targets), opts.Config.Project)
	}

	app := patch.New(patch.Options{
		Profile:      p.Name,
		Project:      opts.Config.Project,
		BackupSuffix: opts.Config.BackupSuffix,
		DryRun:       flags.dryRun,
		Diff:         flags.diff,
		Parallel:     opts.Config.Parallel,
		Strict:       opts.Config.Strict,
	})

	rep, runErr := app.Run(ctx, targets)
	if rep != nil {
		if flags.asJSON {
			if err := report.WriteJSON(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
		} else {
			report.Render(cmd.OutOrStdout(), rep)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, patch.ErrAnchorsMissing) {
			return errors.Errorf("%d edits did not find the text they expect: %w", len(rep.Misses()), runErr)
		}
		return errors.Errorf("applying profile %s: %w", p.Name, runErr)
	}

	if flags.asJSON {
		return nil
	}

	switch {
	case rep.HasMisses():
		u.Warning("%d edits did not find the text they expect, the files may be only partly patched", len(rep.Misses()))
	case flags.dryRun:
		u.Success("Check complete, nothing was written")
	default:
		u.Success("Changes completed successfully")
	}

	return nil
}
