// Copyright 2025 Omar Alwahsh
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


// Package catalog loads and normalizes tabular course data.
//
// Arbitrary row schemas are repaired into canonical core.Course records:
// missing categories and levels are defaulted, durations are extracted from
// free text, and identifiers are derived from content when absent. The
// package also computes the dataset fingerprint used for vector-cache
// keying: a content hash over normalized field values, independent of row
// order and source formatting.
package catalog
