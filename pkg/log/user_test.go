package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestUserLogger(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var console, diag bytes.Buffer
	ctx := WithLogger(context.Background(), &diag, true)
	u := NewUserLogger(ctx, &console)

	u.Step("backing up %d files", 2)
	u.Success("done")
	u.Warning("rule %s not applied", "x")
	u.LogValidation(false, "preflight failed", errors.New("missing file"))
	u.LogValidation(true, "preflight ok", nil)

	out := console.String()
	assert.Contains(t, out, "backing up 2 files")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "rule x not applied")
	assert.Contains(t, out, "preflight failed")
	assert.Contains(t, out, "missing file")
	assert.Contains(t, out, "preflight ok")

	logs := diag.String()
	assert.Contains(t, logs, "backing up 2 files")
	assert.Contains(t, logs, "missing file")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
