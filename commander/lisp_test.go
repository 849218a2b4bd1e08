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
	"strings"
	"testing"

	scrawl "github.com/tkwade/scrawl/types"
)

func TestLispEval(t *testing.T) {
	_, c := setup(t)
	if result := c.ParseEval("(+ 1 2)"); result != "3" {
		t.Errorf("unexpected result: %q", result)
	}
}

func TestLispMode(t *testing.T) {
	_, c := setup(t)
	typeText(c, "(+ 1 2)")
	if c.GetMode() != scrawl.ModeLisp {
		t.Fatalf("expected lisp mode, got %d", c.GetMode())
	}
	if c.GetLispText() != "(+ 1 2)" {
		t.Errorf("unexpected pending expression: %q", c.GetLispText())
	}
	typeKeys(c, scrawl.KeyEnter)
	if c.GetMode() != scrawl.ModeEdit {
		t.Errorf("evaluation must return to edit mode")
	}
	if c.GetMessage() != "3" {
		t.Errorf("unexpected message: %q", c.GetMessage())
	}
}

func TestLispEditorPrimitives(t *testing.T) {
	e, c := setup(t)
	if result := c.ParseEval(`(insert-text "hi")`); strings.HasPrefix(result, "ERR") {
		t.Fatalf("insert-text failed: %s", result)
	}
	if string(e.Bytes()) != "hi" {
		t.Errorf("unexpected content: %q", e.Bytes())
	}
	if result := c.ParseEval("(buffer-length)"); result != "2" {
		t.Errorf("unexpected buffer-length: %q", result)
	}
	if result := c.ParseEval("(line-count)"); result != "1" {
		t.Errorf("unexpected line-count: %q", result)
	}
}
