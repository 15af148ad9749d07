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

// Package config loads the run configuration of srcpatch.
//
// A configuration never changes what a profile edits. It only says where the
// project lives and where each target file sits inside it:
//
//	project       = "${env.HOME}/src/costealoo"
//	profile       = "excel-import"
//	backup_suffix = ".backup"
//	strict        = true
//
//	target "database_screen" {
//		match = "lib/**/database_screen.dart"
//	}
//
// 🔄 Flow:
// 1. Pick a parser by file extension (.hcl, .yaml/.yml, .json)
// 2. Decode into Config, rejecting unknown fields
// 3. Apply defaults and validate
// 4. Resolve the profile's targets against the project root
//
// Paths are relative to the project unless absolute. A target's match glob is
// evaluated with doublestar under the project root and must match exactly one
// file.
package config
