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

package profile

import (
	"sort"
	"sync"

	"github.com/walteh/srcpatch/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Target is one file a profile edits
type Target struct {
	Name  string      // Stable identifier used by config overrides
	Path  string      // Default path relative to the project root
	Match string      // Optional doublestar glob used when Path does not exist
	Rules []rule.Rule // Ordered edits
}

// 📦 Profile is a named, ordered set of targets
type Profile struct {
	Name        string
	Description string
	Targets     []Target
}

// Target returns the target with the given name
func (p *Profile) Target(name string) (*Target, bool) {
	for i := range p.Targets {
		if p.Targets[i].Name == name {
			return &p.Targets[i], true
		}
	}
	return nil, false
}

// 🔍 Validate checks target names, paths and every rule
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	if len(p.Targets) == 0 {
		return errors.Errorf("profile %s: no targets", p.Name)
	}
	seen := map[string]bool{}
	for _, t := range p.Targets {
		if t.Name == "" {
			return errors.Errorf("profile %s: target name is required", p.Name)
		}
		if seen[t.Name] {
			return errors.Errorf("profile %s: duplicate target %q", p.Name, t.Name)
		}
		seen[t.Name] = true
		if t.Path == "" {
			return errors.Errorf("profile %s: target %s: path is required", p.Name, t.Name)
		}
		if err := rule.ValidateAll(t.Rules); err != nil {
			return errors.Errorf("profile %s: target %s: %w", p.Name, t.Name, err)
		}
	}
	return nil
}

// Factory builds a fresh profile; rules may cache compiled state so every
// run gets its own copy.
type Factory func() *Profile

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// 📝 Register makes a profile available by name
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = f
}

// 🎯 Get builds the named profile
func Get(name string) (*Profile, error) {
	mu.RLock()
	f, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown profile %q (available: %v)", name, Names())
	}
	p := f()
	if err := p.Validate(); err != nil {
		return nil, errors.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

// Names lists the registered profiles
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
