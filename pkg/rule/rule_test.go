package rule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAfter_Apply(t *testing.T) {
	newRule := func() *InsertAfter {
		return &InsertAfter{
			RuleName: "add_import",
			Anchor:   "import 'a.dart';",
			Text:     "import 'b.dart';",
		}
	}

	tests := []struct {
		name        string
		content     string
		want        string
		wantOutcome Outcome
	}{
		{
			name:        "inserts_after_anchor_line",
			content:     "import 'a.dart';\nvoid main() {}\n",
			want:        "import 'a.dart';\nimport 'b.dart';\nvoid main() {}\n",
			wantOutcome: Applied,
		},
		{
			name:        "marker_already_present",
			content:     "import 'a.dart';\nimport 'b.dart';\n",
			want:        "import 'a.dart';\nimport 'b.dart';\n",
			wantOutcome: AlreadyPresent,
		},
		{
			name:        "anchor_missing",
			content:     "void main() {}\n",
			want:        "void main() {}\n",
			wantOutcome: AnchorNotFound,
		},
		{
			name:        "only_first_anchor_used",
			content:     "import 'a.dart';\nimport 'a.dart';\n",
			want:        "import 'a.dart';\nimport 'b.dart';\nimport 'a.dart';\n",
			wantOutcome: Applied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRule()
			require.NoError(t, r.Validate())

			got, res := r.Apply(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, "add_import", res.Rule)
			assert.LessOrEqual(t, strings.Count(got, "import 'b.dart';"), 1)
		})
	}
}

func TestInsertAfterPattern_Apply(t *testing.T) {
	r := &InsertAfterPattern{
		RuleName: "add_method",
		Pattern:  `(  void first\(\) \{[^\}]*\}\n+)`,
		Text:     "\n  void second() { print('$e ${x}'); }\n",
		Marker:   "void second()",
	}
	require.NoError(t, r.Validate())

	content := "class A {\n  void first() {\n    a();\n  }\n\n  void last() {}\n}\n"

	got, res := r.Apply(content)
	require.Equal(t, Applied, res.Outcome)
	assert.Equal(t, "class A {\n  void first() {\n    a();\n  }\n\n\n  void second() { print('$e ${x}'); }\n  void last() {}\n}\n", got)

	again, res := r.Apply(got)
	assert.Equal(t, AlreadyPresent, res.Outcome)
	assert.Equal(t, got, again)

	untouched, res := r.Apply("class B {}\n")
	assert.Equal(t, AnchorNotFound, res.Outcome)
	assert.Equal(t, "class B {}\n", untouched)
}

func TestReplace_Apply(t *testing.T) {
	r := &Replace{
		RuleName: "swap",
		Old:      "onPressed: () {\n  soon();\n},",
		New:      "onPressed: handler,",
	}
	require.NoError(t, r.Validate())

	got, res := r.Apply("Button(\nonPressed: () {\n  soon();\n},\n)")
	assert.Equal(t, Applied, res.Outcome)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "Button(\nonPressed: handler,\n)", got)
	assert.NotContains(t, got, r.Old)

	again, res := r.Apply(got)
	assert.Equal(t, AlreadyPresent, res.Outcome)
	assert.Equal(t, got, again)

	_, res = r.Apply("Button()")
	assert.Equal(t, AnchorNotFound, res.Outcome)
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name      string
		rules     []Rule
		wantError string
	}{
		{
			name: "valid_rules",
			rules: []Rule{
				&Replace{RuleName: "a", Old: "x", New: "y"},
				&InsertAfter{RuleName: "b", Anchor: "x", Text: "y"},
			},
		},
		{
			name:      "missing_name",
			rules:     []Rule{&Replace{Old: "x", New: "y"}},
			wantError: "name is required",
		},
		{
			name: "duplicate_name",
			rules: []Rule{
				&Replace{RuleName: "a", Old: "x", New: "y"},
				&Replace{RuleName: "a", Old: "z", New: "w"},
			},
			wantError: "duplicate name",
		},
		{
			name:      "bad_pattern",
			rules:     []Rule{&InsertAfterPattern{RuleName: "p", Pattern: "(", Text: "t", Marker: "m"}},
			wantError: "compiling pattern",
		},
		{
			name:      "replace_not_idempotent",
			rules:     []Rule{&Replace{RuleName: "r", Old: "foo", New: "foobar"}},
			wantError: "must not contain the old text",
		},
		{
			name:      "insert_without_anchor",
			rules:     []Rule{&InsertAfter{RuleName: "i", Text: "t"}},
			wantError: "anchor is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAll(tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestApplyAll_Idempotent(t *testing.T) {
	rules := []Rule{
		&InsertAfter{RuleName: "import", Anchor: "// imports", Text: "use b;"},
		&Replace{RuleName: "comment", Old: "// old", New: "// new"},
	}
	content := "// imports\n// old\n"

	once, results := ApplyAll(content, rules)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, Applied, res.Outcome, res.Rule)
	}

	twice, results := ApplyAll(once, rules)
	assert.Equal(t, once, twice)
	for _, res := range results {
		assert.Equal(t, AlreadyPresent, res.Outcome, res.Rule)
	}
}

func TestLineEndings(t *testing.T) {
	crlf := "a\r\nb\r\n"
	assert.Equal(t, CRLF, DetectLineEnding(crlf))
	assert.Equal(t, LF, DetectLineEnding("a\nb\n"))
	assert.Equal(t, LF, DetectLineEnding("no newline"))

	norm := Normalize(crlf)
	assert.Equal(t, "a\nb\n", norm)
	assert.Equal(t, crlf, Restore(norm, CRLF))
	assert.Equal(t, norm, Restore(norm, LF))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "applied", Applied.String())
	assert.Equal(t, "already present", AlreadyPresent.String())
	assert.Equal(t, "anchor not found", AnchorNotFound.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
