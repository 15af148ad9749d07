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
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/srcpatch/pkg/rule"
)

// 🎨 Display configuration
const (
	ruleIndent  = 4  // spaces to indent rule entries
	nameWidth   = 32 // width for rule name
	statusWidth = 18 // width for outcome text
)

// 📝 FormatResult formats a single rule result for display
func FormatResult(res rule.Result) string {
	var prefix string
	switch res.Outcome {
	case rule.Applied:
		prefix = color.GreenString("✓")
	case rule.AlreadyPresent:
		prefix = color.HiBlackString("-")
	case rule.AnchorNotFound:
		prefix = color.YellowString("⚠")
	default:
		prefix = color.RedString("?")
	}

	status := fmt.Sprintf("%-*s", statusWidth, res.Outcome.String())
	if res.Outcome == rule.AnchorNotFound {
		status = color.YellowString(status)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", ruleIndent),
		prefix,
		fmt.Sprintf("%-*s", nameWidth, res.Rule),
		status,
		color.New(color.Faint).Sprint(res.Description),
	)
}

// ColorDiff colours the added and removed lines of a plain diff
func ColorDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "+ "):
			lines[i] = color.New(color.FgGreen).Sprint(l)
		case strings.HasPrefix(l, "- "):
			lines[i] = color.New(color.FgRed).Sprint(l)
		}
	}
	return strings.Join(lines, "\n")
}

// RestoreCommand is the shell command that puts a backup back in place
func RestoreCommand(backupPath, targetPath string) string {
	if runtime.GOOS == "windows" {
		return fmt.Sprintf("copy %q %q", backupPath, targetPath)
	}
	return fmt.Sprintf("cp %q %q", backupPath, targetPath)
}

// 🖨️ Render writes the human readable summary of a run
func Render(w io.Writer, r *Report) {
	title := "Applying"
	if r.DryRun {
		title = "Checking"
	}
	fmt.Fprintf(w, "%s %s %s\n",
		color.New(color.Bold, color.FgCyan).Sprint("srcpatch"),
		color.New(color.Faint).Sprint("•"),
		fmt.Sprintf("%s profile %s", title, color.New(color.Bold).Sprint(r.Profile)))

	for _, t := range r.Targets {
		fmt.Fprintf(w, "\n%s %s %s\n",
			color.New(color.FgMagenta).Sprint("◆"),
			color.New(color.Bold).Sprint(filepath.Base(t.Path)),
			color.New(color.Faint).Sprint(t.Path))
		for _, res := range t.Results {
			fmt.Fprintln(w, FormatResult(res))
		}
		if t.Diff != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, ColorDiff(t.Diff))
		}
	}

	c := r.Counts()
	fmt.Fprintf(w, "\n%d applied, %d already present, %d not found\n", c.Applied, c.AlreadyPresent, c.AnchorNotFound)

	for _, m := range r.Misses() {
		fmt.Fprintf(w, "%s %s\n",
			color.YellowString("⚠️  expected text not found:"),
			fmt.Sprintf("%s (%s)", m.Rule, filepath.Base(m.Path)))
	}

	if r.DryRun {
		var pending []string
		for _, t := range r.Targets {
			if t.Changed() {
				pending = append(pending, t.Path)
			}
		}
		if len(pending) > 0 {
			fmt.Fprintln(w, "\nWould modify:")
			for _, p := range pending {
				fmt.Fprintf(w, "  • %s\n", filepath.Base(p))
			}
		}
		return
	}

	var written []string
	for _, t := range r.Targets {
		if t.Written {
			written = append(written, t.Path)
		}
	}
	if len(written) > 0 {
		fmt.Fprintln(w, "\nModified files:")
		for _, p := range written {
			fmt.Fprintf(w, "  • %s\n", filepath.Base(p))
		}
	}

	backups := r.Backups()
	if len(backups) == 0 {
		return
	}
	fmt.Fprintln(w, "\nBackups created:")
	for _, t := range backups {
		fmt.Fprintf(w, "  • %s\n", filepath.Base(t.BackupPath))
	}
	fmt.Fprintln(w, "\nTo undo, restore the backups:")
	for _, t := range backups {
		fmt.Fprintf(w, "  %s\n", RestoreCommand(t.BackupPath, t.Path))
	}
}
