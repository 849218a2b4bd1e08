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
	sysclip "github.com/atotto/clipboard"
)

// A Clipboard holds the single cut/copy payload. With system enabled it also
// mirrors the payload to the OS clipboard; OS clipboard failures never fail
// the editing operation.
type Clipboard struct {
	payload []byte
	system  bool
}

func NewClipboard(system bool) *Clipboard {
	return &Clipboard{system: system}
}

// Copy stores a copy of the byte range [start, end). The range is
// normalized and clamped to the buffer; an empty range is a no-op.
func (c *Clipboard) Copy(b *Buffer, start, end int) {
	start, end = clampRange(start, end, b.length)
	if start >= end {
		return
	}
	c.payload = make([]byte, end-start)
	copy(c.payload, b.content[start:end])
	if c.system {
		sysclip.WriteAll(string(c.payload))
	}
}

// Cut copies the range and then removes it from the buffer.
func (c *Clipboard) Cut(b *Buffer, start, end int) {
	c.Copy(b, start, end)
	b.DeleteRange(start, end)
}

// Refresh pulls the OS clipboard into the payload when mirroring is enabled.
// Paste callers refresh first so they can see the real payload length before
// committing to an edit.
func (c *Clipboard) Refresh() {
	if !c.system {
		return
	}
	if text, err := sysclip.ReadAll(); err == nil && text != "" {
		c.payload = []byte(text)
	}
}

// PasteAt splices the payload into the buffer at offset. Offsets outside the
// buffer clamp to its ends; an empty payload is a no-op.
func (c *Clipboard) PasteAt(b *Buffer, offset int) error {
	if len(c.payload) == 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset > b.length {
		offset = b.length
	}
	return b.InsertBytes(offset, c.payload)
}

func (c *Clipboard) Text() string {
	return string(c.payload)
}

func (c *Clipboard) SetText(text string) {
	c.payload = []byte(text)
}

func (c *Clipboard) Len() int {
	return len(c.payload)
}
