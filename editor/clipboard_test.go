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

import "testing"

func TestClipboardCutPaste(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("Hello World"))
	c := NewClipboard(false)

	c.Cut(b, 5, 11)
	if b.String() != "Hello" {
		t.Errorf("unexpected content after cut: %q", b.String())
	}
	if c.Text() != " World" {
		t.Errorf("unexpected clipboard payload: %q", c.Text())
	}

	if err := c.PasteAt(b, 5); err != nil {
		t.Fatalf("paste failed: %+v", err)
	}
	if b.String() != "Hello World" {
		t.Errorf("cut then paste must restore the content: %q", b.String())
	}
}

func TestClipboardCopyNormalizesRange(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("abcdef"))
	c := NewClipboard(false)

	c.Copy(b, 4, 2) // reversed
	if c.Text() != "cd" {
		t.Errorf("expected normalized copy %q, got %q", "cd", c.Text())
	}

	c.Copy(b, 3, 100) // clamped
	if c.Text() != "def" {
		t.Errorf("expected clamped copy %q, got %q", "def", c.Text())
	}

	c.Copy(b, 2, 2) // empty range leaves the payload alone
	if c.Text() != "def" {
		t.Errorf("empty-range copy must be a no-op, payload is %q", c.Text())
	}
}

func TestClipboardPasteEmptyPayload(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("abc"))
	c := NewClipboard(false)
	if err := c.PasteAt(b, 1); err != nil {
		t.Fatalf("paste failed: %+v", err)
	}
	if b.String() != "abc" {
		t.Errorf("pasting an empty payload must be a no-op: %q", b.String())
	}
}

func TestClipboardPasteClampsOffset(t *testing.T) {
	b := NewBuffer(0)
	b.Append([]byte("abc"))
	c := NewClipboard(false)
	c.SetText("XY")
	if err := c.PasteAt(b, 100); err != nil {
		t.Fatalf("paste failed: %+v", err)
	}
	if b.String() != "abcXY" {
		t.Errorf("out-of-range paste offsets clamp to the end: %q", b.String())
	}
	if err := c.PasteAt(b, -4); err != nil {
		t.Fatalf("paste failed: %+v", err)
	}
	if b.String() != "XYabcXY" {
		t.Errorf("negative paste offsets clamp to the start: %q", b.String())
	}
}

func TestClipboardPasteRespectsMaxSize(t *testing.T) {
	b := NewBuffer(4)
	b.Append([]byte("abc"))
	c := NewClipboard(false)
	c.SetText("long payload")
	if err := c.PasteAt(b, 0); err != ErrBufferFull {
		t.Errorf("expected ErrBufferFull, got %+v", err)
	}
	if b.String() != "abc" {
		t.Errorf("rejected paste must preserve prior state: %q", b.String())
	}
}
