package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/srcpatch/pkg/rule"
)

func sampleReport() *Report {
	return &Report{
		Profile: "excel-import",
		Project: "/work/app",
		Targets: []TargetReport{
			{
				Name:       "selection",
				Path:       "/work/app/lib/selection.dart",
				BackupPath: "/work/app/lib/selection.dart.backup",
				Written:    true,
				Results: []rule.Result{
					{Rule: "import-excel-helper", Description: "add import", Outcome: rule.Applied, Count: 1},
					{Rule: "import-button-comment", Description: "rename comment", Outcome: rule.AlreadyPresent},
				},
			},
			{
				Name:       "screen",
				Path:       "/work/app/lib/screen.dart",
				BackupPath: "/work/app/lib/screen.dart.backup",
				Results: []rule.Result{
					{Rule: "preloaded-products-init-state", Description: "branch initState", Outcome: rule.AnchorNotFound},
				},
			},
		},
	}
}

func TestReport_Counts(t *testing.T) {
	r := sampleReport()

	c := r.Counts()
	assert.Equal(t, Counts{Applied: 1, AlreadyPresent: 1, AnchorNotFound: 1}, c)
	assert.Equal(t, 3, c.Total())
	assert.True(t, r.HasMisses())

	misses := r.Misses()
	require.Len(t, misses, 1)
	assert.Equal(t, Miss{Target: "screen", Path: "/work/app/lib/screen.dart", Rule: "preloaded-products-init-state"}, misses[0])

	assert.True(t, r.Targets[0].Changed())
	assert.False(t, r.Targets[1].Changed())
	assert.Len(t, r.Backups(), 2)
}

func TestRender(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		dryRun      bool
		contains    []string
		notContains []string
	}{
		{
			name: "apply",
			contains: []string{
				"Applying profile excel-import",
				"✓ import-excel-helper",
				"- import-button-comment",
				"⚠ preloaded-products-init-state",
				"1 applied, 1 already present, 1 not found",
				"expected text not found: preloaded-products-init-state (screen.dart)",
				"Modified files:\n  • selection.dart\n",
				"Backups created:",
				`"/work/app/lib/selection.dart.backup" "/work/app/lib/selection.dart"`,
			},
		},
		{
			name:   "dry_run",
			dryRun: true,
			contains: []string{
				"Checking profile excel-import",
				"1 applied, 1 already present, 1 not found",
				"Would modify:\n  • selection.dart\n",
			},
			notContains: []string{"Backups created:", "Modified files:", "To undo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleReport()
			r.DryRun = tt.dryRun

			var buf bytes.Buffer
			Render(&buf, r)

			out := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRender_ColorsDiff(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	r := sampleReport()
	r.DryRun = true
	r.Targets[0].Diff = "  ctx\n+ added\n- removed"

	var buf bytes.Buffer
	Render(&buf, r)

	out := buf.String()
	assert.Contains(t, out, "\x1b[32m+ added\x1b[0m")
	assert.Contains(t, out, "\x1b[31m- removed\x1b[0m")
	assert.Contains(t, out, "\n  ctx\n")
	assert.Equal(t, "  ctx\n+ added\n- removed", r.Targets[0].Diff, "the report keeps the plain diff")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "excel-import", got["profile"])
	assert.Equal(t, map[string]any{"applied": 1.0, "already_present": 1.0, "anchor_not_found": 1.0}, got["counts"])
	assert.Equal(t, []any{map[string]any{
		"target": "screen",
		"path":   "/work/app/lib/screen.dart",
		"rule":   "preloaded-products-init-state",
	}}, got["misses"])

	targets := got["targets"].([]any)
	require.Len(t, targets, 2)
	first := targets[0].(map[string]any)
	assert.Equal(t, "/work/app/lib/selection.dart.backup", first["backup_path"])
	assert.Equal(t, true, first["written"])
	results := first["results"].([]any)
	assert.Equal(t, "applied", results[0].(map[string]any)["outcome"])
	assert.Equal(t, "already present", results[1].(map[string]any)["outcome"])
	assert.NotContains(t, first, "diff", "empty diff is omitted")
}
