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
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/srcpatch/pkg/rule"
)

// restoreLineEndings turns the edited LF buffer back into file content.
// Lines the rules left alone keep their original bytes, including a line
// ending that differs from the rest of the file. Inserted and rewritten
// lines take eol.
func restoreLineEndings(original, after string, eol rule.LineEnding) string {
	before := rule.Normalize(original)
	if before == original {
		return rule.Restore(after, eol)
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	// Normalize only drops the \r of \r\n, so line i of before is raw[i]
	raw := strings.SplitAfter(original, "\n")

	var sb strings.Builder
	next := 0
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			for _, l := range raw[next : next+n] {
				sb.WriteString(l)
			}
			next += n
		case diffmatchpatch.DiffDelete:
			next += n
		case diffmatchpatch.DiffInsert:
			sb.WriteString(rule.Restore(d.Text, eol))
		}
	}
	return sb.String()
}

// countLines counts text's lines, the last one possibly unterminated
func countLines(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
