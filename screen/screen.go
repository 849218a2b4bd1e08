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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	scrawl "github.com/tkwade/scrawl/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size        scrawl.Size
	highlighter *Highlighter
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{highlighter: NewHighlighter()}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e scrawl.Editor, c scrawl.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize scrawl.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	// the bottom two rows are the info bar and the message bar
	editSize := screenSize
	editSize.Rows -= 2
	e.SetSize(editSize)
	e.Scroll()

	s.RenderBuffer(e, editSize)
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(e, c)

	cursor := e.ScreenCursor()
	termbox.SetCursor(cursor.Col, cursor.Row)
	termbox.Flush()
}

func (s *Screen) RenderBuffer(e scrawl.Editor, size scrawl.Size) {
	scroll := e.GetScroll()
	for i := 0; i < size.Rows; i++ {
		row := i + scroll
		if row >= e.LineCount() {
			s.SetCell(0, i, '~', scrawl.ColorDefault)
			continue
		}
		line := e.Line(row)
		colors := s.highlighter.Highlight(line)
		x := 0
		for j, ch := range line {
			if x >= size.Cols {
				break
			}
			color := scrawl.ColorDefault
			if j < len(colors) {
				color = colors[j]
			}
			s.SetCell(x, i, ch, color)
			x += runewidth.RuneWidth(ch)
		}
	}
}

func (s *Screen) SetCell(j int, i int, c rune, color scrawl.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), 0x01)
}

func (s *Screen) RenderInfoBar(e scrawl.Editor, c scrawl.Commander) {
	name := e.FileName()
	if name == "" {
		name = "[no name]"
	}
	if e.Dirty() {
		name += " *"
	}
	finalText := fmt.Sprintf(" %d/%d ", e.GetCursor().Row+1, e.LineCount())
	text := " scrawl - " + name + " "
	for len(text) < s.size.Cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(e scrawl.Editor, c scrawl.Commander) {
	var line string
	switch c.GetMode() {
	case scrawl.ModeCommand:
		line += ":" + c.GetCommand()
	case scrawl.ModeSearch:
		line += "/" + c.GetSearchText()
	case scrawl.ModeLisp:
		line += c.GetLispText()
	case scrawl.ModeInsert:
		line += "-- INSERT --"
	default:
		line += c.GetMessage()
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) GetNextEvent() *scrawl.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &scrawl.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
		Size: scrawl.Size{Rows: event.Height, Cols: event.Width},
	}
}

func key(k termbox.Key) scrawl.Key {
	switch k {
	case termbox.KeyArrowDown:
		return scrawl.KeyArrowDown
	case termbox.KeyArrowLeft:
		return scrawl.KeyArrowLeft
	case termbox.KeyArrowRight:
		return scrawl.KeyArrowRight
	case termbox.KeyArrowUp:
		return scrawl.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return scrawl.KeyBackspace2
	case termbox.KeyDelete:
		return scrawl.KeyDelete
	case termbox.KeyEnd:
		return scrawl.KeyEnd
	case termbox.KeyEnter:
		return scrawl.KeyEnter
	case termbox.KeyEsc:
		return scrawl.KeyEsc
	case termbox.KeyHome:
		return scrawl.KeyHome
	case termbox.KeyPgdn:
		return scrawl.KeyPgdn
	case termbox.KeyPgup:
		return scrawl.KeyPgup
	case termbox.KeySpace:
		return scrawl.KeySpace
	case termbox.KeyTab:
		return scrawl.KeyTab
	case termbox.KeyCtrlR:
		return scrawl.KeyCtrlR
	default:
		return scrawl.KeyUnsupported
	}
}
