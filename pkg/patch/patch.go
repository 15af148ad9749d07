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

	"github.com/rs/zerolog"
	"github.com/walteh/srcpatch/pkg/backup"
	"github.com/walteh/srcpatch/pkg/report"
	"github.com/walteh/srcpatch/pkg/rule"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrTargetMissing is returned when a target file does not exist
	ErrTargetMissing = errors.Base("target file does not exist")
	// ErrTargetNotWritable is returned when a target cannot be rewritten
	ErrTargetNotWritable = errors.Base("target file is not writable")
	// ErrAnchorsMissing is returned in strict mode when a rule found nothing
	ErrAnchorsMissing = errors.Base("expected text not found")
)

// 🎯 Target is a resolved file and the rules to apply to it
type Target struct {
	Name  string
	Path  string
	Rules []rule.Rule
}

// 🔧 Options configures an Applier
type Options struct {
	Profile      string // Profile name, for the report
	Project      string // Project root, for the report
	BackupSuffix string // Defaults to backup.DefaultSuffix
	DryRun       bool   // Compute results and diffs without touching disk
	Diff         bool   // Attach a diff of every changed target
	Parallel     bool   // Patch targets concurrently
	Strict       bool   // Fail when any rule cannot find its anchor
}

// 🏃 Applier runs profiles against files on disk
type Applier struct {
	opts    Options
	backups *backup.Manager
}

// 🏗️ New creates an Applier
func New(opts Options) *Applier {
	return &Applier{
		opts:    opts,
		backups: backup.New(opts.BackupSuffix),
	}
}

// 🚀 Run checks every target, backs them all up, then patches each one.
//
// Any I/O failure aborts the run. Files patched before the failure stay
// patched; their backups are the way back. The returned report is
// populated for every target that was processed.
func (a *Applier) Run(ctx context.Context, targets []Target) (*report.Report, error) {
	logger := zerolog.Ctx(ctx)

	for _, t := range targets {
		if err := rule.ValidateAll(t.Rules); err != nil {
			return nil, errors.Errorf("target %s: %w", t.Name, err)
		}
	}

	if err := a.Preflight(ctx, targets); err != nil {
		return nil, errors.Errorf("preflight: %w", err)
	}

	rep := &report.Report{
		Profile: a.opts.Profile,
		Project: a.opts.Project,
		DryRun:  a.opts.DryRun,
		Targets: make([]report.TargetReport, len(targets)),
	}
	for i, t := range targets {
		rep.Targets[i] = report.TargetReport{Name: t.Name, Path: t.Path}
	}

	if !a.opts.DryRun {
		for i, t := range targets {
			backupPath, err := a.backups.Create(ctx, t.Path)
			if err != nil {
				return rep, err
			}
			rep.Targets[i].BackupPath = backupPath
		}
	}

	process := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("patching %s: %w", targets[i].Name, err)
		}
		return a.patchTarget(ctx, targets[i], &rep.Targets[i])
	}

	if a.opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i := range targets {
			g.Go(func() error { return process(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return rep, err
		}
	} else {
		for i := range targets {
			if err := process(ctx, i); err != nil {
				return rep, err
			}
		}
	}

	c := rep.Counts()
	logger.Info().
		Int("rules", c.Total()).
		Int("applied", c.Applied).
		Int("already_present", c.AlreadyPresent).
		Int("anchor_not_found", c.AnchorNotFound).
		Bool("dry_run", a.opts.DryRun).
		Msg("patch run complete")

	if a.opts.Strict && rep.HasMisses() {
		return rep, errors.WithDetails(ErrAnchorsMissing, "misses", len(rep.Misses()))
	}

	return rep, nil
}

// 📄 patchTarget reads, edits and persists a single target
func (a *Applier) patchTarget(ctx context.Context, t Target, tr *report.TargetReport) error {
	logger := zerolog.Ctx(ctx).With().Str("target", t.Name).Logger()

	info, err := os.Stat(t.Path)
	if err != nil {
		return errors.Errorf("reading %s: %w", t.Path, err)
	}
	raw, err := os.ReadFile(t.Path)
	if err != nil {
		return errors.Errorf("reading %s: %w", t.Path, err)
	}

	original := string(raw)
	eol := rule.DetectLineEnding(original)
	before := rule.Normalize(original)

	after, results := rule.ApplyAll(before, t.Rules)
	tr.Results = results
	tr.LineEnding = lineEndingName(eol)

	for _, res := range results {
		ev := logger.Debug()
		if res.Outcome == rule.AnchorNotFound {
			ev = logger.Warn()
		}
		ev.Str("rule", res.Rule).Stringer("outcome", res.Outcome).Int("count", res.Count).Msg("rule evaluated")
	}

	if after == before {
		return nil
	}

	if a.opts.Diff || a.opts.DryRun {
		tr.Diff = Diff(before, after)
	}

	if a.opts.DryRun {
		return nil
	}

	if err := writeFileAtomic(t.Path, []byte(restoreLineEndings(original, after, eol)), info.Mode().Perm()); err != nil {
		return errors.Errorf("writing %s: %w", t.Path, err)
	}
	tr.Written = true
	logger.Debug().Str("path", t.Path).Msg("target written")

	return nil
}

// ♻️ Restore copies every target's backup back over it
func (a *Applier) Restore(ctx context.Context, targets []Target) error {
	for _, t := range targets {
		if err := a.backups.Restore(ctx, t.Path); err != nil {
			return errors.Errorf("restoring %s: %w", t.Name, err)
		}
	}
	return nil
}

// BackupPath returns where the backup of a target lives
func (a *Applier) BackupPath(t Target) string {
	return a.backups.Path(t.Path)
}

func lineEndingName(eol rule.LineEnding) string {
	if eol == rule.CRLF {
		return "crlf"
	}
	return "lf"
}
