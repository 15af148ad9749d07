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

package rule

import (
	"strings"
)

// 📏 LineEnding is the newline convention of a buffer
type LineEnding string

const (
	LF   LineEnding = "\n"
	CRLF LineEnding = "\r\n"
)

// DetectLineEnding reports CRLF when the first newline in buf is preceded by
// a carriage return, LF otherwise.
func DetectLineEnding(buf string) LineEnding {
	idx := strings.IndexByte(buf, '\n')
	if idx > 0 && buf[idx-1] == '\r' {
		return CRLF
	}
	return LF
}

// Normalize converts every CRLF in buf to LF. Rules are written against LF
// text.
func Normalize(buf string) string {
	return strings.ReplaceAll(buf, "\r\n", "\n")
}

// Restore converts an LF buffer back to the given line ending
func Restore(buf string, eol LineEnding) string {
	if eol != CRLF {
		return buf
	}
	return strings.ReplaceAll(buf, "\n", "\r\n")
}
