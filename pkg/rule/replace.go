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

	"gitlab.com/tozd/go/errors"
)

// 🔁 Replace swaps every occurrence of the literal block Old for New.
//
// The rule counts as already applied when Marker (New by default) is in the
// buffer and Old is not.
type Replace struct {
	RuleName string
	Summary  string
	Old      string
	New      string
	Marker   string
}

func (r *Replace) Name() string        { return r.RuleName }
func (r *Replace) Description() string { return r.Summary }

func (r *Replace) marker() string {
	if r.Marker != "" {
		return r.Marker
	}
	return r.New
}

func (r *Replace) Validate() error {
	if r.Old == "" {
		return errors.New("old text is required")
	}
	if r.Old == r.New {
		return errors.New("old and new text are identical")
	}
	if strings.Contains(r.New, r.Old) {
		return errors.New("new text must not contain the old text")
	}
	if r.marker() != "" && strings.Contains(r.Old, r.marker()) {
		return errors.New("marker must not be part of the old text")
	}
	return nil
}

func (r *Replace) Apply(buf string) (string, Result) {
	count := strings.Count(buf, r.Old)
	if count == 0 {
		if m := r.marker(); m != "" && strings.Contains(buf, m) {
			return buf, result(r, AlreadyPresent, 0)
		}
		return buf, result(r, AnchorNotFound, 0)
	}
	return strings.ReplaceAll(buf, r.Old, r.New), result(r, Applied, count)
}
