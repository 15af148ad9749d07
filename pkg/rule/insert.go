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
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ➕ InsertAfter inserts Text on a new line right after the first
// occurrence of a literal Anchor, unless Marker is already in the buffer.
type InsertAfter struct {
	RuleName string
	Summary  string
	Anchor   string
	Text     string
	Marker   string // defaults to Text
}

func (r *InsertAfter) Name() string        { return r.RuleName }
func (r *InsertAfter) Description() string { return r.Summary }

func (r *InsertAfter) marker() string {
	if r.Marker != "" {
		return r.Marker
	}
	return r.Text
}

func (r *InsertAfter) Validate() error {
	if r.Anchor == "" {
		return errors.New("anchor is required")
	}
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

func (r *InsertAfter) Apply(buf string) (string, Result) {
	if strings.Contains(buf, r.marker()) {
		return buf, result(r, AlreadyPresent, 0)
	}
	idx := strings.Index(buf, r.Anchor)
	if idx < 0 {
		return buf, result(r, AnchorNotFound, 0)
	}
	end := idx + len(r.Anchor)
	return buf[:end] + "\n" + r.Text + buf[end:], result(r, Applied, 1)
}

// 🧲 InsertAfterPattern splices Text directly after the first match of
// Pattern, unless Marker is already in the buffer. Text is inserted
// verbatim; no $-expansion is performed on it.
type InsertAfterPattern struct {
	RuleName string
	Summary  string
	Pattern  string
	Text     string
	Marker   string // required, the pattern anchor is not a reliable guard

	re *regexp.Regexp
}

func (r *InsertAfterPattern) Name() string        { return r.RuleName }
func (r *InsertAfterPattern) Description() string { return r.Summary }

func (r *InsertAfterPattern) Validate() error {
	if r.Pattern == "" {
		return errors.New("pattern is required")
	}
	if r.Text == "" {
		return errors.New("text is required")
	}
	if r.Marker == "" {
		return errors.New("marker is required")
	}
	if _, err := r.compile(); err != nil {
		return err
	}
	return nil
}

func (r *InsertAfterPattern) compile() (*regexp.Regexp, error) {
	if r.re != nil {
		return r.re, nil
	}
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, errors.Errorf("compiling pattern: %w", err)
	}
	r.re = re
	return re, nil
}

func (r *InsertAfterPattern) Apply(buf string) (string, Result) {
	if strings.Contains(buf, r.Marker) {
		return buf, result(r, AlreadyPresent, 0)
	}
	re, err := r.compile()
	if err != nil {
		return buf, result(r, AnchorNotFound, 0)
	}
	loc := re.FindStringIndex(buf)
	if loc == nil {
		return buf, result(r, AnchorNotFound, 0)
	}
	return buf[:loc[1]] + r.Text + buf[loc[1]:], result(r, Applied, 1)
}
