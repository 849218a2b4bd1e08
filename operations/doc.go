//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package operations wraps editing commands into repeatable units.
// Operations are created by the commander, and operations call services that
// are implemented by the editor. Undo is provided by the editor's snapshot
// history rather than by operation inverses, so performing an operation
// checkpoints the buffer before it mutates anything.
package operations
