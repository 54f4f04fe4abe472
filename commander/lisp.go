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
	"log"
	"sync"

	"github.com/steelseries/golisp"

	"github.com/timburks/kilt/syntax"
	kilt "github.com/timburks/kilt/types"
)

// golisp primitives are global, so the commander that is evaluating
// is recorded here for the duration of ParseEval.
var (
	evalMutex sync.Mutex
	evaluator *Commander
)

func init() {
	golisp.MakePrimitiveFunction("goto-line", "1", GotoLineImpl)
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("save", "0", SaveImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("current-line", "0", CurrentLineImpl)
	golisp.MakePrimitiveFunction("file-name", "0", FileNameImpl)
	golisp.MakePrimitiveFunction("find", "1", FindImpl)
}

func number(d *golisp.Data) (int, bool) {
	if golisp.IntegerP(d) {
		return int(golisp.IntegerValue(d)), true
	}
	if golisp.FloatP(d) {
		return int(golisp.FloatValue(d)), true
	}
	return 0, false
}

func GotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, ok := number(golisp.Car(args))
	if !ok {
		return nil, errors.New("goto-line requires a number argument")
	}
	evaluator.editor.GotoLine(n)
	return golisp.IntegerWithValue(int64(evaluator.editor.GetCursor().Row + 1)), nil
}

func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	evaluator.editor.InsertText(golisp.StringValue(val))
	return val, nil
}

func SaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if err := evaluator.save(); err != nil {
		return nil, err
	}
	_, data := evaluator.editor.Buffer.Bytes()
	return golisp.IntegerWithValue(int64(len(data))), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.IntegerWithValue(int64(evaluator.editor.Buffer.GetRowCount())), nil
}

func CurrentLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.IntegerWithValue(int64(evaluator.editor.GetCursor().Row + 1)), nil
}

func FileNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(evaluator.editor.Buffer.GetFileName()), nil
}

// FindImpl moves the cursor to the next occurrence of a string and
// returns its line number, or false.
func FindImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("find requires a string argument")
	}
	e := evaluator.editor
	line, rx, ok := e.Buffer.Find([]byte(golisp.StringValue(val)), e.GetCursor().Row, true)
	if !ok {
		return golisp.BooleanWithValue(false), nil
	}
	e.SetCursor(kilt.Point{Row: line, Col: e.Buffer.GetRow(line).RawColumn(rx)})
	return golisp.IntegerWithValue(int64(line + 1)), nil
}

// ParseEval evaluates a lisp expression against the editor and returns
// the printed result.
func (c *Commander) ParseEval(command string) (string, error) {
	evalMutex.Lock()
	defer evalMutex.Unlock()
	evaluator = c
	defer func() { evaluator = nil }()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	log.Printf("SEXPR %+v", value)
	return golisp.String(value), nil
}

func (c *Commander) startEval() {
	c.lispText = ""
	c.mode = kilt.ModeEval
}

// ProcessKeyEvalMode edits the expression and evaluates it on Enter.
func (c *Commander) ProcessKeyEvalMode(event kilt.Event) {
	e := c.editor
	switch event := event.(type) {
	case kilt.KeyEvent:
		switch event.Key {
		case kilt.KeyEscape:
			c.mode = kilt.ModeEdit
			e.SetMessage("")
		case kilt.KeyDelete:
			c.shrinkLispText()
		}
	case kilt.ByteEvent:
		switch b := event.Byte; {
		case b == kilt.Enter:
			c.mode = kilt.ModeEdit
			result, err := c.ParseEval(c.lispText)
			if err != nil {
				e.SetMessage("Eval error: %s", err)
			} else {
				e.SetMessage("%s", result)
			}
		case b == kilt.Backspace || b == kilt.CtrlH:
			c.shrinkLispText()
		case syntax.IsPrint(b):
			c.lispText += string(rune(b))
		}
	}
}

func (c *Commander) shrinkLispText() {
	if len(c.lispText) > 0 {
		c.lispText = c.lispText[:len(c.lispText)-1]
	}
}
