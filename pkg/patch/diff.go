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
)

// lines of unchanged context kept around each change
const diffContext = 2

// 📝 Diff renders a plain line-oriented diff between two buffers. Added
// lines start with "+ ", removed lines with "- " and context with two spaces.
func Diff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for i, d := range diffs {
		chunk := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for _, l := range chunk {
				sb.WriteString("+ ")
				sb.WriteString(l)
				sb.WriteByte('\n')
			}
		case diffmatchpatch.DiffDelete:
			for _, l := range chunk {
				sb.WriteString("- ")
				sb.WriteString(l)
				sb.WriteByte('\n')
			}
		case diffmatchpatch.DiffEqual:
			writeContext(&sb, chunk, i > 0, i < len(diffs)-1)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// writeContext prints the tail of an unchanged chunk when a change precedes
// it and the head when a change follows it
func writeContext(sb *strings.Builder, chunk []string, afterChange, beforeChange bool) {
	var keep []string
	switch {
	case afterChange && beforeChange && len(chunk) <= 2*diffContext:
		keep = chunk
	case afterChange && beforeChange:
		keep = append(append(keep, chunk[:diffContext]...), "...")
		keep = append(keep, chunk[len(chunk)-diffContext:]...)
	case afterChange:
		keep = chunk[:min(diffContext, len(chunk))]
	case beforeChange:
		keep = chunk[max(0, len(chunk)-diffContext):]
	}
	for _, l := range keep {
		sb.WriteString("  ")
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
