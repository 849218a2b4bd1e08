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
package commander

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tkwade/scrawl/operations"
	scrawl "github.com/tkwade/scrawl/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor     scrawl.Editor
	mode       int    // editor mode
	debug      bool   // debug mode displays information about events
	command    string // command as it is being typed on the command line
	searchText string // text for searches as it is being typed
	lispText   string // lisp expression as it is being typed
	message    string // status message
	multiplier string // multiplier string as it is being entered
}

func NewCommander(e scrawl.Editor) *Commander {
	bindEditor(e)
	return &Commander{editor: e, mode: scrawl.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != scrawl.ModeQuit
}

func (c *Commander) ProcessEvent(event *scrawl.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case scrawl.EventKey:
		return c.ProcessKey(event)
	case scrawl.EventResize:
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *scrawl.Event) error {
	var err error
	switch c.mode {
	case scrawl.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case scrawl.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case scrawl.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case scrawl.ModeSearch:
		err = c.ProcessKeySearchMode(event)
	case scrawl.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyEditMode(event *scrawl.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	if key != 0 {
		switch key {
		case scrawl.KeyEsc:
			break
		case scrawl.KeyPgup:
			e.PageUp()
		case scrawl.KeyPgdn:
			e.PageDown()
		case scrawl.KeyHome:
			e.MoveToBeginningOfLine()
		case scrawl.KeyEnd:
			e.MoveToEndOfLine()
		case scrawl.KeyArrowUp:
			e.MoveCursor(scrawl.MoveUp, c.Multiplier())
		case scrawl.KeyArrowDown:
			e.MoveCursor(scrawl.MoveDown, c.Multiplier())
		case scrawl.KeyArrowLeft:
			e.MoveCursor(scrawl.MoveLeft, c.Multiplier())
		case scrawl.KeyArrowRight:
			e.MoveCursor(scrawl.MoveRight, c.Multiplier())
		case scrawl.KeyDelete:
			c.perform(&operations.DeleteCharacter{})
		case scrawl.KeyCtrlR:
			if !e.Redo() {
				c.message = "nothing to redo"
			}
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers are saved when operations are created
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = scrawl.ModeCommand
			c.command = ""
		//
		// search queries go to the message bar
		//
		case '/':
			c.mode = scrawl.ModeSearch
			c.searchText = ""
		case 'n': // repeat the last search
			e.PerformSearch(c.searchText)
		//
		// lisp expressions go to the message bar
		//
		case '(':
			c.mode = scrawl.ModeLisp
			c.lispText = "("
		//
		// cursor movement
		//
		case 'h':
			e.MoveCursor(scrawl.MoveLeft, c.Multiplier())
		case 'j':
			e.MoveCursor(scrawl.MoveDown, c.Multiplier())
		case 'k':
			e.MoveCursor(scrawl.MoveUp, c.Multiplier())
		case 'l':
			e.MoveCursor(scrawl.MoveRight, c.Multiplier())
		//
		// mode changes
		//
		case 'i':
			c.mode = scrawl.ModeInsert
		//
		// "performed" operations are saved for repetition
		//
		case 'x':
			c.perform(&operations.DeleteCharacter{})
		case 'd':
			c.perform(&operations.CutSelection{})
		case 'y':
			c.perform(&operations.CopySelection{})
		case 'p':
			c.perform(&operations.Paste{})
		//
		// selection anchor
		//
		case 'v':
			e.ToggleSelection()
			if e.HasSelection() {
				c.message = "selection started"
			} else {
				c.message = "selection copied"
			}
		//
		// undo and redo
		//
		case 'u':
			if !e.Undo() {
				c.message = "nothing to undo"
			} else {
				c.message = ""
			}
		case 'R':
			if !e.Redo() {
				c.message = "nothing to redo"
			} else {
				c.message = ""
			}
		//
		// repeat
		//
		case '.':
			if err := e.Repeat(); err != nil {
				c.message = err.Error()
			}
		}
	}
	return nil
}

func (c *Commander) perform(op scrawl.Operation) {
	if err := c.editor.Perform(op, c.Multiplier()); err != nil {
		c.message = err.Error()
	} else {
		c.message = ""
	}
}

func (c *Commander) ProcessKeyInsertMode(event *scrawl.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	var err error
	if key != 0 {
		switch key {
		case scrawl.KeyEsc: // end the insert and return to edit mode
			c.mode = scrawl.ModeEdit
		case scrawl.KeyBackspace2:
			err = e.BackspaceChar()
		case scrawl.KeyTab:
			err = e.InsertTab()
		case scrawl.KeyEnter:
			err = e.InsertNewline()
		case scrawl.KeySpace:
			err = e.InsertChar(' ')
		}
	}
	if ch != 0 {
		err = e.InsertText(string(ch))
	}
	if err != nil {
		c.message = err.Error()
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *scrawl.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case scrawl.KeyEsc:
			c.mode = scrawl.ModeEdit
		case scrawl.KeyEnter:
			c.PerformCommand()
		case scrawl.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case scrawl.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeySearchMode(event *scrawl.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case scrawl.KeyEsc:
			c.mode = scrawl.ModeEdit
		case scrawl.KeyEnter:
			e.PerformSearch(c.searchText)
			c.mode = scrawl.ModeEdit
		case scrawl.KeyBackspace2:
			if len(c.searchText) > 0 {
				c.searchText = c.searchText[0 : len(c.searchText)-1]
			}
		case scrawl.KeySpace:
			c.searchText += " "
		}
	}
	if ch != 0 {
		c.searchText = c.searchText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *scrawl.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case scrawl.KeyEsc:
			c.mode = scrawl.ModeEdit
		case scrawl.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.mode = scrawl.ModeEdit
		case scrawl.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case scrawl.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) PerformCommand() {
	e := c.editor

	parts := strings.Split(c.command, " ")
	if len(parts) > 0 {
		i, err := strconv.ParseInt(parts[0], 10, 64)
		if err == nil {
			e.JumpToLine(int(i - 1))
		}
		switch parts[0] {
		case "q":
			if e.Dirty() {
				c.message = "unsaved changes (use q! or wq)"
			} else {
				c.mode = scrawl.ModeQuit
				c.command = ""
				return
			}
		case "q!":
			c.mode = scrawl.ModeQuit
			c.command = ""
			return
		case "w":
			var filename string
			if len(parts) == 2 {
				filename = parts[1]
			}
			if err := e.WriteFile(filename); err != nil {
				c.message = err.Error()
			} else {
				c.message = "saved " + e.FileName()
			}
		case "wq":
			var filename string
			if len(parts) == 2 {
				filename = parts[1]
			}
			if err := e.WriteFile(filename); err != nil {
				c.message = err.Error()
			} else {
				c.mode = scrawl.ModeQuit
				c.command = ""
				return
			}
		case "r":
			if len(parts) == 2 {
				if err := e.ReadFile(parts[1]); err != nil {
					c.message = err.Error()
				}
			}
		case "$":
			e.JumpToLine(e.LineCount() - 1)
		case "debug":
			if len(parts) == 2 {
				if parts[1] == "on" {
					c.debug = true
				} else if parts[1] == "off" {
					c.debug = false
					c.message = ""
				}
			}
		case "eval":
			c.message = c.ParseEval(string(e.Bytes()))
		}
	}
	c.command = ""
	c.mode = scrawl.ModeEdit
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	if err != nil {
		c.multiplier = ""
		return 1
	}
	c.multiplier = ""
	return int(i)
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetSearchText() string {
	return c.searchText
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessage() string {
	return c.message
}
