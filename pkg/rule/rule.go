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
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Outcome is the tagged result of applying a single rule to a buffer
type Outcome int

const (
	// Applied means the rule changed the buffer
	Applied Outcome = iota
	// AlreadyPresent means the rule's marker was found, nothing to do
	AlreadyPresent
	// AnchorNotFound means the buffer is not in the state the rule expects
	AnchorNotFound
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AlreadyPresent:
		return "already present"
	case AnchorNotFound:
		return "anchor not found"
	default:
		return "unknown"
	}
}

// MarshalText lets outcomes show up by name in structured logs
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// 📋 Result describes what a rule did to a buffer
type Result struct {
	Rule        string  `json:"rule"`        // Rule name
	Description string  `json:"description"` // Human readable summary of the edit
	Outcome     Outcome `json:"outcome"`     // What happened
	Count       int     `json:"count"`       // Number of occurrences touched
}

// 🔧 Rule is a single named edit against a text buffer.
//
// Apply must be idempotent: applying a rule to its own output reports
// AlreadyPresent and leaves the buffer untouched.
type Rule interface {
	Name() string
	Description() string
	Validate() error
	Apply(buf string) (string, Result)
}

// 🔍 ValidateAll checks every rule and rejects duplicate names
func ValidateAll(rules []Rule) error {
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		if r == nil {
			return errors.Errorf("rule %d: nil rule", i)
		}
		if r.Name() == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if seen[r.Name()] {
			return errors.Errorf("rule %d: duplicate name %q", i, r.Name())
		}
		seen[r.Name()] = true
		if err := r.Validate(); err != nil {
			return errors.Errorf("rule %q: %w", r.Name(), err)
		}
	}
	return nil
}

// 🔄 ApplyAll runs the rules in order, each one seeing the previous output
func ApplyAll(buf string, rules []Rule) (string, []Result) {
	results := make([]Result, 0, len(rules))
	for _, r := range rules {
		var res Result
		buf, res = r.Apply(buf)
		results = append(results, res)
	}
	return buf, results
}

func result(r Rule, outcome Outcome, count int) Result {
	return Result{
		Rule:        r.Name(),
		Description: r.Description(),
		Outcome:     outcome,
		Count:       count,
	}
}
