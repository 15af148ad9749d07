package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/srcpatch/pkg/rule"
)

func TestRestoreLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		original string
		after    string
		eol      rule.LineEnding
		want     string
	}{
		{
			name:     "lf_file",
			original: "a\nb\n",
			after:    "a\nX\nb\n",
			eol:      rule.LF,
			want:     "a\nX\nb\n",
		},
		{
			name:     "crlf_file",
			original: "a\r\nb\r\n",
			after:    "a\nX\nb\n",
			eol:      rule.CRLF,
			want:     "a\r\nX\r\nb\r\n",
		},
		{
			name:     "mixed_untouched_lines_kept",
			original: "// old\nline2\r\nline3\r\n",
			after:    "// new\nline2\nline3\n",
			eol:      rule.LF,
			want:     "// new\nline2\r\nline3\r\n",
		},
		{
			name:     "mixed_insert_takes_file_ending",
			original: "a\r\nb\nc\r\n",
			after:    "a\nb\nnew\nc\n",
			eol:      rule.CRLF,
			want:     "a\r\nb\nnew\r\nc\r\n",
		},
		{
			name:     "unterminated_last_line",
			original: "a\r\nlast",
			after:    "a\nlast\nmore",
			eol:      rule.CRLF,
			want:     "a\r\nlast\r\nmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := restoreLineEndings(tt.original, tt.after, tt.eol)
			assert.Equal(t, tt.want, got)
		})
	}
}
