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


package report

import (
	"encoding/json"
	"io"

	"gitlab.com/tozd/go/errors"
)

// 🧾 WriteJSON writes the report as indented JSON, with the outcome counts and
// misses alongside the per target results
func WriteJSON(w io.Writer, r *Report) error {
	misses := r.Misses()
	if misses == nil {
		misses = []Miss{}
	}

	doc := struct {
		*Report
		Counts Counts `json:"counts"`
		Misses []Miss `json:"misses"`
	}{
		Report: r,
		Counts: r.Counts(),
		Misses: misses,
	}

	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return errors.Errorf("encoding report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Errorf("writing report: %w", err)
	}
	return nil
}
