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
	"errors"
	"testing"
)

func checkCapacityInvariant(t *testing.T, b *Buffer) {
	t.Helper()
	if b.Capacity() < b.Length()+1 {
		t.Errorf("capacity invariant broken: capacity=%d length=%d", b.Capacity(), b.Length())
	}
}

func TestBufferInsertAndDelete(t *testing.T) {
	b := NewBuffer(0)
	text := "Hello World"
	for i := 0; i < len(text); i++ {
		if err := b.Insert(i, text[i]); err != nil {
			t.Fatalf("Insert failed: %+v", err)
		}
		checkCapacityInvariant(t, b)
	}
	if b.String() != text {
		t.Errorf("unexpected content: %q", b.String())
	}

	// inserting in the middle shifts the tail right
	if err := b.Insert(5, ','); err != nil {
		t.Fatalf("Insert failed: %+v", err)
	}
	if b.String() != "Hello, World" {
		t.Errorf("unexpected content after middle insert: %q", b.String())
	}

	// deleting at the same offset restores the previous content
	b.DeleteAt(5)
	if b.String() != text {
		t.Errorf("insert/delete should be inverse, got %q", b.String())
	}
	checkCapacityInvariant(t, b)
}

func TestBufferInsertDeleteInverse(t *testing.T) {
	b := NewBuffer(0)
	if err := b.Append([]byte("abcdef")); err != nil {
		t.Fatalf("Append failed: %+v", err)
	}
	before := b.Bytes()
	for p := 0; p <= b.Length(); p++ {
		if err := b.Insert(p, 'X'); err != nil {
			t.Fatalf("Insert at %d failed: %+v", p, err)
		}
		b.DeleteAt(p)
		if !bytes.Equal(b.Bytes(), before) {
			t.Errorf("insert/delete at %d did not restore content: %q", p, b.String())
		}
	}
}

func TestBufferInsertOutOfRange(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("abc"))
	if err := b.Insert(4, 'X'); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %+v", err)
	}
	if err := b.Insert(-1, 'X'); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %+v", err)
	}
	if b.String() != "abc" {
		t.Errorf("rejected insert must not change content: %q", b.String())
	}
}

func TestBufferDeleteOutOfRangeIsNoop(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("abc"))
	b.DeleteAt(3)
	b.DeleteAt(-1)
	if b.String() != "abc" {
		t.Errorf("out-of-range delete must be a no-op: %q", b.String())
	}
}

func TestBufferGrowthDoubles(t *testing.T) {
	b := NewBuffer(0)
	start := b.Capacity()
	payload := make([]byte, start) // forces exactly one doubling
	for i := range payload {
		payload[i] = 'a'
	}
	if err := b.Append(payload); err != nil {
		t.Fatalf("Append failed: %+v", err)
	}
	if b.Capacity() != start*2 {
		t.Errorf("expected capacity %d after growth, got %d", start*2, b.Capacity())
	}
	checkCapacityInvariant(t, b)
}

func TestBufferCapacityInvariantUnderMixedOps(t *testing.T) {
	b := NewBuffer(0)
	for i := 0; i < 1000; i++ {
		switch i % 3 {
		case 0:
			b.Insert(b.Length()/2, byte('a'+i%26))
		case 1:
			b.Append([]byte("xyz"))
		case 2:
			b.DeleteAt(0)
		}
		checkCapacityInvariant(t, b)
	}
}

func TestBufferMaxSize(t *testing.T) {
	b := NewBuffer(8)
	if err := b.Append([]byte("1234567")); err != nil {
		t.Fatalf("Append within bounds failed: %+v", err)
	}
	if err := b.Insert(0, 'X'); !errors.Is(err, ErrBufferFull) {
		t.Errorf("expected ErrBufferFull, got %+v", err)
	}
	if b.String() != "1234567" {
		t.Errorf("rejected growth must preserve prior state: %q", b.String())
	}
	checkCapacityInvariant(t, b)
}

func TestBufferInsertBytesAndDeleteRange(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("Hello"))
	if err := b.InsertBytes(5, []byte(" World")); err != nil {
		t.Fatalf("InsertBytes failed: %+v", err)
	}
	if b.String() != "Hello World" {
		t.Errorf("unexpected content: %q", b.String())
	}
	if n := b.DeleteRange(5, 11); n != 6 {
		t.Errorf("expected 6 bytes removed, got %d", n)
	}
	if b.String() != "Hello" {
		t.Errorf("unexpected content after DeleteRange: %q", b.String())
	}

	// ranges are normalized and clamped
	if n := b.DeleteRange(100, 3); n != 2 {
		t.Errorf("expected clamped removal of 2 bytes, got %d", n)
	}
	if b.String() != "Hel" {
		t.Errorf("unexpected content after clamped DeleteRange: %q", b.String())
	}
}

func TestBufferRestore(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("short"))
	long := bytes.Repeat([]byte("ab"), 100)
	b.Restore(long)
	if !bytes.Equal(b.Bytes(), long) {
		t.Errorf("Restore did not replace content")
	}
	checkCapacityInvariant(t, b)
	b.Restore([]byte("x"))
	if b.String() != "x" {
		t.Errorf("Restore to shorter content failed: %q", b.String())
	}
}

func TestBufferResetAndRestore(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("data"))
	b.Reset()
	if b.Length() != 0 {
		t.Errorf("Reset must empty the buffer")
	}
	b.Restore([]byte("again"))
	if b.String() != "again" {
		t.Errorf("Restore after Reset failed: %q", b.String())
	}
	checkCapacityInvariant(t, b)
}
