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
	"github.com/timburks/kilt/syntax"
	kilt "github.com/timburks/kilt/types"
)

// maxQuery is the longest search query.
const maxQuery = 256

// A finder holds the state of an incremental search.
type finder struct {
	query     []byte
	lastMatch int // row of the current match or -1
	direction int // 1 to search forward, -1 backward, 0 to stay
	cursor    kilt.Point
	offset    kilt.Size
}

func (c *Commander) startFind() {
	c.find = finder{
		query:     make([]byte, 0, maxQuery),
		lastMatch: -1,
		cursor:    c.editor.GetCursor(),
		offset:    c.editor.Viewport.GetOffset(),
	}
	c.mode = kilt.ModeFind
}

// ProcessKeyFindMode edits the query and moves between matches.
func (c *Commander) ProcessKeyFindMode(event kilt.Event) {
	e := c.editor
	f := &c.find
	f.direction = 0
	switch event := event.(type) {
	case kilt.KeyEvent:
		switch event.Key {
		case kilt.KeyEscape:
			e.Buffer.ClearMatch()
			e.SetCursor(f.cursor)
			e.Viewport.SetOffset(f.offset)
			e.SetMessage("")
			c.mode = kilt.ModeEdit
			return
		case kilt.KeyDelete:
			f.shrink()
		case kilt.KeyArrowRight, kilt.KeyArrowDown:
			f.direction = 1
		case kilt.KeyArrowLeft, kilt.KeyArrowUp:
			f.direction = -1
		}
	case kilt.ByteEvent:
		switch b := event.Byte; {
		case b == kilt.Enter:
			e.Buffer.ClearMatch()
			e.SetMessage("")
			c.mode = kilt.ModeEdit
			return
		case b == kilt.Backspace || b == kilt.CtrlH:
			f.shrink()
		case syntax.IsPrint(b):
			if len(f.query) < maxQuery {
				f.query = append(f.query, b)
			}
			f.lastMatch = -1
		}
	}
	if f.lastMatch == -1 {
		f.direction = 1
	}
	if f.direction == 0 {
		return
	}
	e.Buffer.ClearMatch()
	line, rx, ok := e.Buffer.Find(f.query, f.lastMatch, f.direction > 0)
	if !ok {
		return
	}
	f.lastMatch = line
	e.Buffer.MarkMatch(line, rx, len(f.query))
	// show the matching row at the top of the screen
	e.SetCursor(kilt.Point{Row: line, Col: e.Buffer.GetRow(line).RawColumn(rx)})
	e.Viewport.SetOffset(kilt.Size{Rows: line, Cols: 0})
}

func (f *finder) shrink() {
	if len(f.query) > 0 {
		f.query = f.query[:len(f.query)-1]
	}
	f.lastMatch = -1
}
