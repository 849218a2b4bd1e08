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
package editor

// A History holds bounded undo and redo stacks of full-content snapshots.
// Snapshots are copies and never alias the live buffer.
//
// When the undo stack is full, the default policy evicts the oldest snapshot
// so the newest edits stay undoable. With keepOldest set, new saves are
// dropped instead, matching the original editor this design derives from.
type History struct {
	undoStack  [][]byte
	redoStack  [][]byte
	depth      int
	keepOldest bool
}

func NewHistory(depth int, keepOldest bool) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{depth: depth, keepOldest: keepOldest}
}

// SaveState records a pre-edit snapshot. It must be called before every
// mutating operation; a new edit always invalidates the redo branch, even
// when the save itself is dropped.
func (h *History) SaveState(content []byte) {
	h.redoStack = nil
	if len(h.undoStack) >= h.depth {
		if h.keepOldest {
			return
		}
		n := copy(h.undoStack, h.undoStack[1:])
		h.undoStack = h.undoStack[:n]
	}
	snapshot := make([]byte, len(content))
	copy(snapshot, content)
	h.undoStack = append(h.undoStack, snapshot)
}

// dropLast discards the most recent snapshot. Used when the edit that was
// checkpointed is rejected, so the stack does not gain a duplicate state.
func (h *History) dropLast() {
	if n := len(h.undoStack); n > 0 {
		h.undoStack = h.undoStack[:n-1]
	}
}

// Undo moves the buffer back one snapshot, saving the current content for
// redo. Reports whether anything was undone.
func (h *History) Undo(b *Buffer) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	h.redoStack = append(h.redoStack, b.Bytes())
	last := len(h.undoStack) - 1
	b.Restore(h.undoStack[last])
	h.undoStack = h.undoStack[:last]
	return true
}

// Redo is the symmetric inverse of Undo.
func (h *History) Redo(b *Buffer) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	h.undoStack = append(h.undoStack, b.Bytes())
	last := len(h.redoStack) - 1
	b.Restore(h.redoStack[last])
	h.redoStack = h.redoStack[:last]
	return true
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

func (h *History) Depth() int {
	return len(h.undoStack)
}
