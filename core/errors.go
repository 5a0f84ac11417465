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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidCourse indicates a Course failed validation.
	ErrInvalidCourse = errors.New("invalid course")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyCategory indicates the Category field is empty after normalization.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrUnassignedLevel indicates a course carries LevelAny, which is only
	// valid as a filter value.
	ErrUnassignedLevel = errors.New("course level must be concrete")

	// ErrNegativeDuration indicates a duration that is negative but not the
	// absent marker.
	ErrNegativeDuration = errors.New("duration must be non-negative or unknown")

	// ErrInvalidCacheEntry indicates a CacheEntry failed validation.
	ErrInvalidCacheEntry = errors.New("invalid cache entry")

	// ErrVectorCountMismatch indicates CourseIds and Vectors differ in length.
	ErrVectorCountMismatch = errors.New("vector count does not match course count")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// entry dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
