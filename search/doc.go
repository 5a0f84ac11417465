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


// Package search implements the query pipeline over an embedded catalog.
//
// Each search is a short synchronous run of four stages:
//   - Pre-filter: hard attribute constraints (level, category, duration)
//     applied before any scoring, so an out-of-constraint course can never
//     reach the results regardless of similarity.
//   - Similarity: cosine similarity between the expanded query embedding
//     and the pre-filtered subset only, with a relevance floor below which
//     candidates are dropped.
//   - Relevance gate: when a specific query keyword is absent from the
//     subset text and nothing scored above the floor, the search is
//     rejected with a reason naming the missing terms. An explicit empty
//     answer is preferred over a plausible-looking wrong one.
//   - Ranker: min-max rescaling of surviving scores to integer ranks 0-10.
//
// Empty and rejected searches are Outcome variants, not errors.
package search
