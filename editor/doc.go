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

// Package editor implements the core text editing engine of scrawl:
// a flat byte buffer with explicit capacity management, a cursor that maps
// screen positions to buffer offsets through a line index, a bounded
// snapshot history for undo and redo, and a single-slot clipboard.
// All of this state is owned by an Editor session; the package keeps no
// global mutable state, so independent sessions can run side by side.
package editor
