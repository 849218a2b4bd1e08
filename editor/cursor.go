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
	"sort"

	"github.com/tkwade/scrawl/types"
)

// A Cursor maps the 2D editing position to and from a 1D buffer offset.
//
// The mapping goes through an explicit line index: lineStarts[i] is the byte
// offset of the first byte of line i, rebuilt from the buffer content after
// every edit. Arithmetic of the form row*width+col is deliberately not used;
// it only holds when every line is exactly the viewport width.
type Cursor struct {
	position   types.Point
	scroll     int // first visible row
	size       types.Size
	lineStarts []int
	contentLen int
}

func NewCursor(size types.Size) *Cursor {
	return &Cursor{
		size:       size,
		lineStarts: []int{0},
	}
}

// Reindex rebuilds the line index from the buffer content. Must be called
// after any buffer mutation.
func (c *Cursor) Reindex(content []byte) {
	c.lineStarts = c.lineStarts[:0]
	c.lineStarts = append(c.lineStarts, 0)
	for i, b := range content {
		if b == '\n' {
			c.lineStarts = append(c.lineStarts, i+1)
		}
	}
	c.contentLen = len(content)
	c.clamp()
}

func (c *Cursor) LineCount() int {
	return len(c.lineStarts)
}

// LineRange returns the byte range [start, end) of line row, excluding the
// trailing newline.
func (c *Cursor) LineRange(row int) (int, int) {
	if row < 0 || row >= len(c.lineStarts) {
		return 0, 0
	}
	start := c.lineStarts[row]
	if row+1 < len(c.lineStarts) {
		return start, c.lineStarts[row+1] - 1
	}
	return start, c.contentLen
}

func (c *Cursor) lineLength(row int) int {
	start, end := c.LineRange(row)
	return end - start
}

func (c *Cursor) Position() types.Point {
	return c.position
}

func (c *Cursor) SetPosition(p types.Point) {
	c.position = p
	c.clamp()
}

func (c *Cursor) SetSize(size types.Size) {
	c.size = size
}

func (c *Cursor) Size() types.Size {
	return c.size
}

// Move applies a relative cursor motion. A column moved past the viewport
// width wraps to the start of the next row; both axes clamp to valid bounds.
// The buffer is never touched.
func (c *Cursor) Move(dx, dy int) {
	c.position.Col += dx
	c.position.Row += dy

	if c.position.Col < 0 {
		c.position.Col = 0
	}
	if c.size.Cols > 0 && c.position.Col >= c.size.Cols {
		c.position.Col = 0
		c.position.Row++
	}
	c.clamp()
}

func (c *Cursor) clamp() {
	if c.position.Row < 0 {
		c.position.Row = 0
	}
	if c.position.Row > len(c.lineStarts)-1 {
		c.position.Row = len(c.lineStarts) - 1
	}
	if c.position.Col < 0 {
		c.position.Col = 0
	}
	if c.size.Cols > 0 && c.position.Col >= c.size.Cols {
		c.position.Col = c.size.Cols - 1
	}
}

// KeepInLine pulls the column back onto the text of the current row.
func (c *Cursor) KeepInLine() {
	if n := c.lineLength(c.position.Row); c.position.Col > n {
		c.position.Col = n
	}
}

// Offset converts the cursor position into a buffer offset, looking the row
// up in the line index and clamping the column to the line's length.
func (c *Cursor) Offset() int {
	row := c.position.Row
	if row > len(c.lineStarts)-1 {
		row = len(c.lineStarts) - 1
	}
	start, end := c.LineRange(row)
	col := c.position.Col
	if col > end-start {
		col = end - start
	}
	return start + col
}

// SetOffset places the cursor at the position of a buffer offset.
func (c *Cursor) SetOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > c.contentLen {
		offset = c.contentLen
	}
	// last row whose start is <= offset
	row := sort.Search(len(c.lineStarts), func(i int) bool {
		return c.lineStarts[i] > offset
	}) - 1
	c.position.Row = row
	c.position.Col = offset - c.lineStarts[row]
	if c.size.Cols > 0 && c.position.Col >= c.size.Cols {
		c.position.Col = c.size.Cols - 1
	}
}

// ReconcileScroll moves the scroll offset the minimum distance needed to
// bring the cursor row inside the visible window.
func (c *Cursor) ReconcileScroll() {
	if c.position.Row < c.scroll {
		c.scroll = c.position.Row
	}
	if c.size.Rows > 0 && c.position.Row >= c.scroll+c.size.Rows {
		c.scroll = c.position.Row - c.size.Rows + 1
	}
}

func (c *Cursor) ScrollOffset() int {
	return c.scroll
}

// ScreenRow and ScreenCol are the viewport-relative cursor coordinates.
func (c *Cursor) ScreenRow() int {
	row := c.position.Row - c.scroll
	if row < 0 {
		row = 0
	}
	if c.size.Rows > 0 && row >= c.size.Rows {
		row = c.size.Rows - 1
	}
	return row
}

func (c *Cursor) ScreenCol() int {
	col := c.position.Col
	if n := c.lineLength(c.position.Row); col > n {
		col = n
	}
	if c.size.Cols > 0 && col >= c.size.Cols {
		col = c.size.Cols - 1
	}
	return col
}
