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

import (
	"bytes"
	"strings"

	"github.com/tkwade/scrawl/types"
)

// The Editor is one editing session. It owns the buffer, cursor, history,
// and clipboard outright; there is no package-level mutable state, so
// independent sessions can coexist.
//
// Every mutating operation checkpoints the pre-edit content before touching
// the buffer and reindexes the cursor's line index afterwards.
type Editor struct {
	buffer    *Buffer
	cursor    *Cursor
	history   *History
	clipboard *Clipboard
	config    *Config

	fileName  string
	dirty     bool
	saved     []byte // content at the last read or write
	selection int    // selection anchor offset, -1 when none

	previous           types.Operation // last performed operation, for repeat
	previousMultiplier int
}

func NewEditor(cfg *Config) *Editor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Editor{
		buffer:    NewBuffer(cfg.MaxBufferSize),
		cursor:    NewCursor(types.Size{Rows: 24, Cols: 80}),
		history:   NewHistory(cfg.HistoryDepth, cfg.KeepOldestSnapshots),
		clipboard: NewClipboard(cfg.SystemClipboard),
		config:    cfg,
		selection: -1,
	}
}

// checkpoint saves the pre-edit content, clearing the redo branch. Callers
// must verify the edit will happen before checkpointing; a checkpoint for a
// no-op or rejected edit would throw away redo for nothing.
func (e *Editor) checkpoint() {
	e.history.SaveState(e.buffer.content[:e.buffer.length])
}

func (e *Editor) reindex() {
	e.cursor.Reindex(e.buffer.content[:e.buffer.length])
}

// Cursor and viewport

func (e *Editor) GetCursor() types.Point {
	return e.cursor.Position()
}

func (e *Editor) SetCursor(cursor types.Point) {
	e.cursor.SetPosition(cursor)
}

func (e *Editor) SetSize(size types.Size) {
	e.cursor.SetSize(size)
}

func (e *Editor) GetScroll() int {
	return e.cursor.ScrollOffset()
}

func (e *Editor) ScreenCursor() types.Point {
	return types.Point{Row: e.cursor.ScreenRow(), Col: e.cursor.ScreenCol()}
}

func (e *Editor) Scroll() {
	e.cursor.ReconcileScroll()
}

func (e *Editor) MoveCursor(direction int, multiplier int) {
	for i := 0; i < multiplier; i++ {
		switch direction {
		case types.MoveUp:
			e.cursor.Move(0, -1)
			e.cursor.KeepInLine()
		case types.MoveDown:
			e.cursor.Move(0, 1)
			e.cursor.KeepInLine()
		case types.MoveLeft:
			e.cursor.Move(-1, 0)
		case types.MoveRight:
			e.cursor.Move(1, 0)
		}
	}
	e.cursor.ReconcileScroll()
}

func (e *Editor) PageUp() {
	e.cursor.Move(0, -e.cursor.Size().Rows)
	e.cursor.KeepInLine()
	e.cursor.ReconcileScroll()
}

func (e *Editor) PageDown() {
	e.cursor.Move(0, e.cursor.Size().Rows)
	e.cursor.KeepInLine()
	e.cursor.ReconcileScroll()
}

func (e *Editor) MoveToBeginningOfLine() {
	p := e.cursor.Position()
	p.Col = 0
	e.cursor.SetPosition(p)
}

func (e *Editor) MoveToEndOfLine() {
	p := e.cursor.Position()
	start, end := e.cursor.LineRange(p.Row)
	p.Col = end - start
	e.cursor.SetPosition(p)
}

func (e *Editor) JumpToLine(row int) {
	if row > e.cursor.LineCount()-1 {
		row = e.cursor.LineCount() - 1
	}
	if row < 0 {
		row = 0
	}
	e.cursor.SetPosition(types.Point{Row: row, Col: 0})
	e.cursor.ReconcileScroll()
}

// Text mutation

func (e *Editor) InsertChar(c byte) error {
	if !e.buffer.Fits(1) {
		return ErrBufferFull
	}
	offset := e.cursor.Offset()
	e.checkpoint()
	if err := e.buffer.Insert(offset, c); err != nil {
		e.history.dropLast()
		return err
	}
	e.reindex()
	e.cursor.SetOffset(offset + 1)
	e.dirty = true
	return nil
}

func (e *Editor) InsertText(text string) error {
	if text == "" {
		return nil
	}
	if !e.buffer.Fits(len(text)) {
		return ErrBufferFull
	}
	offset := e.cursor.Offset()
	e.checkpoint()
	if err := e.buffer.InsertBytes(offset, []byte(text)); err != nil {
		e.history.dropLast()
		return err
	}
	e.reindex()
	e.cursor.SetOffset(offset + len(text))
	e.dirty = true
	return nil
}

func (e *Editor) InsertNewline() error {
	return e.InsertChar('\n')
}

func (e *Editor) InsertTab() error {
	return e.InsertText(strings.Repeat(" ", e.config.TabWidth))
}

// BackspaceChar deletes the byte before the cursor.
func (e *Editor) BackspaceChar() error {
	offset := e.cursor.Offset()
	if offset == 0 {
		return nil
	}
	e.checkpoint()
	e.buffer.DeleteAt(offset - 1)
	e.reindex()
	e.cursor.SetOffset(offset - 1)
	e.dirty = true
	return nil
}

// DeleteChar deletes the byte under the cursor.
func (e *Editor) DeleteChar() error {
	offset := e.cursor.Offset()
	if offset >= e.buffer.length {
		return nil
	}
	e.checkpoint()
	e.buffer.DeleteAt(offset)
	e.reindex()
	e.cursor.SetOffset(offset)
	e.dirty = true
	return nil
}

// Selection and clipboard

// ToggleSelection anchors a selection on the first call; the second call
// copies the range between the anchor and the cursor and clears the anchor.
func (e *Editor) ToggleSelection() {
	offset := e.cursor.Offset()
	if e.selection < 0 {
		e.selection = offset
		return
	}
	e.clipboard.Copy(e.buffer, e.selection, offset)
	e.selection = -1
}

func (e *Editor) HasSelection() bool {
	return e.selection >= 0
}

// CutSelection removes the pending selection into the clipboard. A no-op
// when no selection is anchored.
func (e *Editor) CutSelection() error {
	if e.selection < 0 {
		return nil
	}
	start, end := clampRange(e.selection, e.cursor.Offset(), e.buffer.length)
	e.selection = -1
	if start >= end {
		return nil
	}
	e.checkpoint()
	e.clipboard.Cut(e.buffer, start, end)
	e.reindex()
	e.cursor.SetOffset(start)
	e.dirty = true
	return nil
}

func (e *Editor) Paste() error {
	e.clipboard.Refresh()
	if e.clipboard.Len() == 0 {
		return nil
	}
	if !e.buffer.Fits(e.clipboard.Len()) {
		return ErrBufferFull
	}
	offset := e.cursor.Offset()
	e.checkpoint()
	if err := e.clipboard.PasteAt(e.buffer, offset); err != nil {
		e.history.dropLast()
		return err
	}
	e.reindex()
	e.cursor.SetOffset(offset + e.clipboard.Len())
	e.dirty = true
	return nil
}

func (e *Editor) PasteText() string {
	return e.clipboard.Text()
}

// History

func (e *Editor) Undo() bool {
	if !e.history.Undo(e.buffer) {
		return false
	}
	e.reindex()
	e.cursor.SetOffset(e.cursor.Offset())
	e.refreshDirty()
	return true
}

func (e *Editor) Redo() bool {
	if !e.history.Redo(e.buffer) {
		return false
	}
	e.reindex()
	e.refreshDirty()
	return true
}

// refreshDirty recomputes the dirty flag against the content at the last
// read or write, so undoing back to the saved state marks the file clean.
func (e *Editor) refreshDirty() {
	e.dirty = !bytes.Equal(e.saved, e.buffer.content[:e.buffer.length])
}

// Operations

// Perform runs a repeatable operation and remembers it for Repeat.
func (e *Editor) Perform(op types.Operation, multiplier int) error {
	err := op.Perform(e, multiplier)
	e.previous = op
	e.previousMultiplier = multiplier
	return err
}

func (e *Editor) Repeat() error {
	if e.previous == nil {
		return nil
	}
	return e.previous.Perform(e, e.previousMultiplier)
}

// Search

// PerformSearch moves the cursor to the next occurrence of text, wrapping
// at the end of the buffer.
func (e *Editor) PerformSearch(text string) {
	if text == "" || e.buffer.length == 0 {
		return
	}
	content := e.buffer.content[:e.buffer.length]
	from := e.cursor.Offset() + 1
	if from > len(content) {
		from = len(content)
	}
	i := bytes.Index(content[from:], []byte(text))
	if i >= 0 {
		e.cursor.SetOffset(from + i)
		e.cursor.ReconcileScroll()
		return
	}
	if i = bytes.Index(content, []byte(text)); i >= 0 {
		e.cursor.SetOffset(i)
		e.cursor.ReconcileScroll()
	}
}

// File I/O

func (e *Editor) ReadFile(path string) error {
	if err := openFile(path, e.buffer); err != nil {
		return err
	}
	e.fileName = path
	e.reindex()
	e.saved = e.buffer.Bytes()
	e.dirty = false
	return nil
}

func (e *Editor) WriteFile(path string) error {
	if path == "" {
		path = e.fileName
	}
	if err := saveFile(path, e.buffer); err != nil {
		return err
	}
	e.fileName = path
	e.saved = e.buffer.Bytes()
	e.dirty = false
	return nil
}

func (e *Editor) FileName() string {
	return e.fileName
}

func (e *Editor) Dirty() bool {
	return e.dirty
}

// Content access

func (e *Editor) Bytes() []byte {
	return e.buffer.Bytes()
}

func (e *Editor) Length() int {
	return e.buffer.length
}

func (e *Editor) LineCount() int {
	return e.cursor.LineCount()
}

func (e *Editor) Line(row int) string {
	start, end := e.cursor.LineRange(row)
	return string(e.buffer.content[start:end])
}

func (e *Editor) Buffer() *Buffer {
	return e.buffer
}

func (e *Editor) History() *History {
	return e.history
}

func (e *Editor) Clipboard() *Clipboard {
	return e.clipboard
}
