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

package report

import (
	"github.com/walteh/srcpatch/pkg/rule"
)

// 📄 TargetReport is the outcome of patching one file
type TargetReport struct {
	Name       string        `json:"name"`
	Path       string        `json:"path"`
	BackupPath string        `json:"backup_path,omitempty"`
	Written    bool          `json:"written"`
	LineEnding string        `json:"line_ending"`
	Results    []rule.Result `json:"results"`
	Diff       string        `json:"diff,omitempty"`
}

// Changed reports whether any rule applied to this target, which for a dry
// run means the file would be written
func (t TargetReport) Changed() bool {
	for _, r := range t.Results {
		if r.Outcome == rule.Applied {
			return true
		}
	}
	return false
}

// 📊 Counts tallies rule outcomes
type Counts struct {
	Applied        int `json:"applied"`
	AlreadyPresent int `json:"already_present"`
	AnchorNotFound int `json:"anchor_not_found"`
}

// Total is the number of rules evaluated
func (c Counts) Total() int {
	return c.Applied + c.AlreadyPresent + c.AnchorNotFound
}

// 📚 Report aggregates every target of a run
type Report struct {
	Profile string         `json:"profile"`
	Project string         `json:"project"`
	DryRun  bool           `json:"dry_run"`
	Targets []TargetReport `json:"targets"`
}

// Counts tallies outcomes across all targets
func (r *Report) Counts() Counts {
	var c Counts
	for _, t := range r.Targets {
		for _, res := range t.Results {
			switch res.Outcome {
			case rule.Applied:
				c.Applied++
			case rule.AlreadyPresent:
				c.AlreadyPresent++
			case rule.AnchorNotFound:
				c.AnchorNotFound++
			}
		}
	}
	return c
}

// 🚨 Miss is a rule that did not find the text it expected
type Miss struct {
	Target string `json:"target"`
	Path   string `json:"path"`
	Rule   string `json:"rule"`
}

// Misses lists every AnchorNotFound result
func (r *Report) Misses() []Miss {
	var misses []Miss
	for _, t := range r.Targets {
		for _, res := range t.Results {
			if res.Outcome == rule.AnchorNotFound {
				misses = append(misses, Miss{Target: t.Name, Path: t.Path, Rule: res.Rule})
			}
		}
	}
	return misses
}

// HasMisses reports whether any rule could not find its anchor
func (r *Report) HasMisses() bool {
	return r.Counts().AnchorNotFound > 0
}

// Backups lists the backups created during the run
func (r *Report) Backups() []TargetReport {
	var out []TargetReport
	for _, t := range r.Targets {
		if t.BackupPath != "" {
			out = append(out, t)
		}
	}
	return out
}
