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
package types

// Editor modes
const (
	ModeEdit    = 0
	ModeInsert  = 1
	ModeCommand = 2
	ModeSearch  = 3
	ModeLisp    = 4
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Color is a display attribute for a single cell.
type Color uint16

const (
	ColorDefault Color = 0xff
	ColorKeyword Color = 0x70
	ColorNumber  Color = 0x83
	ColorString  Color = 0xe0
)

type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlR
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

// An Event is a terminal input event, decoupled from the display backend.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Size Size
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetScroll() int
	ScreenCursor() Point
	Scroll()

	MoveCursor(direction int, multiplier int)
	PageUp()
	PageDown()
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	JumpToLine(row int)

	InsertChar(c byte) error
	InsertText(text string) error
	InsertNewline() error
	InsertTab() error
	BackspaceChar() error
	DeleteChar() error

	ToggleSelection()
	HasSelection() bool
	CutSelection() error
	Paste() error
	PasteText() string

	Undo() bool
	Redo() bool
	PerformSearch(text string)

	Perform(op Operation, multiplier int) error
	Repeat() error

	ReadFile(path string) error
	WriteFile(path string) error
	FileName() string
	Dirty() bool

	Bytes() []byte
	Length() int
	LineCount() int
	Line(row int) string
}

// An Operation is a repeatable editor command. Undo is handled by the
// editor's snapshot history, so operations do not produce inverses.
type Operation interface {
	Perform(e Editor, multiplier int) error
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetCommand() string
	GetSearchText() string
	GetLispText() string
	GetMessage() string
}
