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

import "errors"

const defaultBufferCapacity = 64

var (
	// ErrOutOfRange reports a programmatic offset outside the buffer.
	ErrOutOfRange = errors.New("buffer offset out of range")
	// ErrBufferFull reports that growth would exceed the configured maximum.
	ErrBufferFull = errors.New("buffer at maximum size")
)

// A Buffer is the flat byte storage for the text being edited. It keeps an
// explicit logical length inside a larger allocation and maintains
// capacity >= length+1 after every operation, one byte always held in
// reserve for a terminating sentinel.
type Buffer struct {
	content []byte // allocation; len(content) is the capacity
	length  int    // number of valid bytes
	maxSize int    // rejection bound for growth; 0 is unbounded
}

func NewBuffer(maxSize int) *Buffer {
	capacity := defaultBufferCapacity
	if maxSize > 0 && maxSize < capacity {
		capacity = maxSize
	}
	return &Buffer{
		content: make([]byte, capacity),
		maxSize: maxSize,
	}
}

func (b *Buffer) Length() int {
	return b.length
}

func (b *Buffer) Capacity() int {
	return len(b.content)
}

// Bytes returns a copy of the logical content. Snapshots taken from it never
// alias live storage.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.length)
	copy(out, b.content[:b.length])
	return out
}

func (b *Buffer) String() string {
	return string(b.content[:b.length])
}

func (b *Buffer) ByteAt(offset int) byte {
	if offset < 0 || offset >= b.length {
		return 0
	}
	return b.content[offset]
}

// grow ensures room for a logical length of needed plus the sentinel byte,
// doubling the capacity until it fits.
func (b *Buffer) grow(needed int) error {
	if needed < len(b.content) {
		return nil
	}
	capacity := len(b.content)
	if capacity == 0 {
		capacity = defaultBufferCapacity
	}
	for capacity <= needed {
		capacity *= 2
	}
	if b.maxSize > 0 && needed >= b.maxSize {
		return ErrBufferFull
	}
	if b.maxSize > 0 && capacity > b.maxSize {
		capacity = b.maxSize
	}
	grown := make([]byte, capacity)
	copy(grown, b.content[:b.length])
	b.content = grown
	return nil
}

// Fits reports whether n more bytes fit under the configured maximum.
// Callers that checkpoint history before mutating use this to reject an
// oversized edit before the checkpoint clears the redo branch.
func (b *Buffer) Fits(n int) bool {
	return b.maxSize == 0 || b.length+n < b.maxSize
}

// Insert places c at offset, shifting the tail right by one.
func (b *Buffer) Insert(offset int, c byte) error {
	if offset < 0 || offset > b.length {
		return ErrOutOfRange
	}
	if err := b.grow(b.length + 1); err != nil {
		return err
	}
	copy(b.content[offset+1:b.length+1], b.content[offset:b.length])
	b.content[offset] = c
	b.length++
	return nil
}

// InsertBytes splices text into the buffer at offset, shifting the tail
// right by len(text).
func (b *Buffer) InsertBytes(offset int, text []byte) error {
	if offset < 0 || offset > b.length {
		return ErrOutOfRange
	}
	if len(text) == 0 {
		return nil
	}
	if err := b.grow(b.length + len(text)); err != nil {
		return err
	}
	copy(b.content[offset+len(text):b.length+len(text)], b.content[offset:b.length])
	copy(b.content[offset:], text)
	b.length += len(text)
	return nil
}

// Append copies text verbatim onto the tail.
func (b *Buffer) Append(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	if err := b.grow(b.length + len(text)); err != nil {
		return err
	}
	copy(b.content[b.length:], text)
	b.length += len(text)
	return nil
}

// DeleteAt removes the byte at offset, shifting the tail left by one.
// Offsets outside the buffer are a no-op, not an error.
func (b *Buffer) DeleteAt(offset int) {
	if offset < 0 || offset >= b.length {
		return
	}
	copy(b.content[offset:b.length-1], b.content[offset+1:b.length])
	b.length--
}

// DeleteRange removes [start, end) and returns the number of bytes removed.
// The range is normalized and clamped to the buffer.
func (b *Buffer) DeleteRange(start, end int) int {
	start, end = clampRange(start, end, b.length)
	if start >= end {
		return 0
	}
	copy(b.content[start:], b.content[end:b.length])
	b.length -= end - start
	return end - start
}

// Restore replaces the content wholesale, used by undo and redo.
func (b *Buffer) Restore(text []byte) {
	if len(text) >= len(b.content) {
		capacity := len(b.content)
		if capacity == 0 {
			capacity = defaultBufferCapacity
		}
		for capacity <= len(text) {
			capacity *= 2
		}
		b.content = make([]byte, capacity)
	}
	copy(b.content, text)
	b.length = len(text)
}

// Reset releases the storage. The buffer must not be used again without
// being restored or rebuilt.
func (b *Buffer) Reset() {
	b.content = nil
	b.length = 0
}

func clampRange(start, end, length int) (int, int) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start > length {
		start = length
	}
	return start, end
}
