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
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/steelseries/golisp"
	scrawl "github.com/tkwade/scrawl/types"
)

// The lisp primitives operate on whichever editor was most recently bound.
// golisp keeps one global symbol table, so this glue is process-wide; the
// editing core itself carries no such state.
var (
	lispEditor scrawl.Editor
	lispSetup  sync.Once
)

func bindEditor(e scrawl.Editor) {
	lispEditor = e
	lispSetup.Do(func() {
		golisp.MakePrimitiveFunction("buffer-length", "0", BufferLengthImpl)
		golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
		golisp.MakePrimitiveFunction("cursor-row", "0", CursorRowImpl)
		golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	})
}

func BufferLengthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor bound")
	}
	return golisp.IntegerWithValue(int64(lispEditor.Length())), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor bound")
	}
	return golisp.IntegerWithValue(int64(lispEditor.LineCount())), nil
}

func CursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor bound")
	}
	return golisp.IntegerWithValue(int64(lispEditor.GetCursor().Row)), nil
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor bound")
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-text requires a string argument")
	}
	if err := lispEditor.InsertText(golisp.StringValue(val)); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(lispEditor.Length())), nil
}

// ParseEval evaluates a lisp expression and returns a printable result.
func (c *Commander) ParseEval(expression string) string {
	value, err := golisp.ParseAndEval(expression)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates a script file, used by the --eval option.
func (c *Commander) ParseEvalFile(path string) string {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return c.ParseEval(string(buf))
}
