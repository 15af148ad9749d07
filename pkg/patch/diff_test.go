package patch

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	// colour stays in the renderer even when the terminal supports it
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	before := "a\nb\nc\nd\ne\nf\ng\n"
	after := "a\nb\nc\nX\nd\ne\nf\ng\n"

	got := Diff(before, after)
	assert.Equal(t, "  b\n  c\n+ X\n  d\n  e", got)

	assert.NotContains(t, got, "\x1b[", "diff text carries no escapes")
	assert.Empty(t, Diff("same\n", "same\n"))
}
