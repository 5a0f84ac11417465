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


// Package storage defines the persistence contract for vector-cache
// artifacts.
//
// Entries are keyed solely by their dataset fingerprint. Writes must be
// atomic: a reader never observes a partially written artifact. A stored
// value that fails to deserialize is reported as ErrCacheCorrupt so the
// cache manager can fall back to recomputation instead of failing the
// caller.
package storage
