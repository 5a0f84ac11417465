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

import "fmt"

// ValidateCourse validates a Course according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Level must be concrete (normalization never leaves LevelAny)
//   - Category must not be empty (normalization defaults it)
//   - DurationHours must be non-negative or DurationUnknown
//
// NOT validated:
//   - Skills and Description (may legitimately be empty)
//   - CombinedText (derived during normalization)
func ValidateCourse(course *Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", ErrInvalidCourse)
	}

	if course.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrEmptyTitle)
	}

	if course.Level == LevelAny {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrUnassignedLevel)
	}

	if course.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrEmptyCategory)
	}

	if course.DurationHours < 0 && course.DurationHours != DurationUnknown {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrNegativeDuration)
	}

	return nil
}

// ValidateCacheEntry validates a CacheEntry according to domain rules.
//
// Validation rules:
//   - Fingerprint must not be empty
//   - CourseIds and Vectors must be the same length
//   - Every vector must match the entry dimension
func ValidateCacheEntry(entry *CacheEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidCacheEntry)
	}

	if entry.Fingerprint == "" {
		return fmt.Errorf("%w: fingerprint is empty", ErrInvalidCacheEntry)
	}

	if len(entry.CourseIds) != len(entry.Vectors) {
		return fmt.Errorf("%w: %w", ErrInvalidCacheEntry, ErrVectorCountMismatch)
	}

	for i, vec := range entry.Vectors {
		if len(vec) != entry.Dimension {
			return fmt.Errorf("%w: %w: vector %d has %d dimensions, want %d",
				ErrInvalidCacheEntry, ErrDimensionMismatch, i, len(vec), entry.Dimension)
		}
	}

	return nil
}
