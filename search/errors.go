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


package search

import "errors"

var (
	// ErrCoursesRequired is returned when no catalog is provided.
	ErrCoursesRequired = errors.New("courses required")

	// ErrCacheEntryRequired is returned when no embedding artifact is provided.
	ErrCacheEntryRequired = errors.New("cache entry required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmptyQuery is returned when the query contains no searchable text.
	ErrEmptyQuery = errors.New("query is empty")
)
