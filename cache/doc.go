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


// Package cache resolves the embedding artifact for a course catalog.
//
// An artifact is keyed by the catalog fingerprint: a resolve against an
// unchanged catalog loads the stored vectors without touching the embedder,
// while any content change produces a new fingerprint and triggers a full
// rebuild. Rebuilds mine the abbreviation vocabulary, embed every course in
// batches over a worker pool and persist the result atomically. Corrupt
// artifacts are discarded and recomputed, never surfaced to callers.
package cache
