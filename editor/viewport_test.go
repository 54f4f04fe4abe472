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
	"strings"
	"testing"

	kilt "github.com/timburks/kilt/types"
)

func viewport(lines ...string) *Viewport {
	b := NewBuffer()
	for i, text := range lines {
		b.InsertRow(i, []byte(text))
	}
	v := NewViewport(b)
	v.SetSize(kilt.Size{Rows: 3, Cols: 10})
	return v
}

func TestMoveRightWraps(t *testing.T) {
	v := viewport("hello", "x")
	for i := 0; i < 5; i++ {
		v.Move(kilt.MoveRight)
	}
	if cursor := v.GetCursor(); cursor.Row != 0 || cursor.Col != 5 {
		t.Errorf("Unexpected cursor at end of line: %+v", cursor)
	}
	v.Move(kilt.MoveRight)
	if cursor := v.GetCursor(); cursor.Row != 1 || cursor.Col != 0 {
		t.Errorf("Cursor did not wrap to the next line: %+v", cursor)
	}
	v.Move(kilt.MoveLeft)
	if cursor := v.GetCursor(); cursor.Row != 0 || cursor.Col != 5 {
		t.Errorf("Cursor did not wrap to the previous line: %+v", cursor)
	}
}

func TestMoveDownStops(t *testing.T) {
	v := viewport("a", "b", "c")
	for i := 0; i < 10; i++ {
		v.Move(kilt.MoveDown)
	}
	if cursor := v.GetCursor(); cursor.Row != 3 || cursor.Col != 0 {
		t.Errorf("Unexpected cursor after moving past the end: %+v", cursor)
	}
	for i := 0; i < 10; i++ {
		v.Move(kilt.MoveUp)
	}
	if cursor := v.GetCursor(); cursor.Row != 0 {
		t.Errorf("Unexpected cursor after moving past the top: %+v", cursor)
	}
}

func TestColumnClamp(t *testing.T) {
	v := viewport("a long line", "short")
	v.MoveToEndOfLine()
	v.Move(kilt.MoveDown)
	if cursor := v.GetCursor(); cursor.Col != 5 {
		t.Errorf("Column was not clamped to the shorter line: %+v", cursor)
	}
	v.SetCursor(kilt.Point{Row: 7, Col: 99})
	if cursor := v.GetCursor(); cursor.Row != 2 || cursor.Col != 0 {
		t.Errorf("SetCursor did not clamp: %+v", cursor)
	}
}

func TestVerticalScroll(t *testing.T) {
	v := viewport("1", "2", "3", "4", "5", "6")
	for i := 0; i < 4; i++ {
		v.Move(kilt.MoveDown)
	}
	if offset := v.GetOffset(); offset.Rows != 2 {
		t.Errorf("Unexpected row offset after scrolling down: %d", offset.Rows)
	}
	if screen := v.ScreenCursor(); screen.Row != 2 {
		t.Errorf("Cursor is not on the last screen row: %+v", screen)
	}
	for i := 0; i < 4; i++ {
		v.Move(kilt.MoveUp)
	}
	if offset := v.GetOffset(); offset.Rows != 0 {
		t.Errorf("Unexpected row offset after scrolling up: %d", offset.Rows)
	}
}

func TestHorizontalScroll(t *testing.T) {
	v := viewport(strings.Repeat("x", 25), "\tab")
	v.MoveToEndOfLine()
	if offset := v.GetOffset(); offset.Cols != 16 {
		t.Errorf("Unexpected column offset: %d", offset.Cols)
	}
	if screen := v.ScreenCursor(); screen.Col != 9 {
		t.Errorf("Unexpected screen column: %d", screen.Col)
	}
	v.Move(kilt.MoveRight)
	if offset := v.GetOffset(); offset.Cols != 0 {
		t.Errorf("Column offset not restored at the next line: %d", offset.Cols)
	}
	v.Move(kilt.MoveRight)
	if rx := v.RenderColumn(); rx != 8 {
		t.Errorf("Unexpected render column after a tab: %d", rx)
	}
	v.Move(kilt.MoveLeft)
	v.Move(kilt.MoveLeft)
	if offset := v.GetOffset(); offset.Cols != 16 {
		t.Errorf("Column offset not pulled back to the previous line end: %d", offset.Cols)
	}
}

func TestPaging(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	v := viewport(lines...)
	v.PageDown()
	if cursor := v.GetCursor(); cursor.Row != 5 {
		t.Errorf("Unexpected cursor after page down: %+v", cursor)
	}
	v.PageDown()
	if cursor := v.GetCursor(); cursor.Row != 8 {
		t.Errorf("Unexpected cursor after second page down: %+v", cursor)
	}
	v.PageUp()
	if cursor := v.GetCursor(); cursor.Row != 3 {
		t.Errorf("Unexpected cursor after page up: %+v", cursor)
	}
	if offset := v.GetOffset(); offset.Rows != 3 {
		t.Errorf("Unexpected offset after page up: %+v", offset)
	}
}

func TestEmptyBuffer(t *testing.T) {
	v := viewport()
	v.Move(kilt.MoveRight)
	v.Move(kilt.MoveDown)
	v.Move(kilt.MoveDown)
	if cursor := v.GetCursor(); cursor.Row != 0 || cursor.Col != 0 {
		t.Errorf("Cursor moved in an empty buffer: %+v", cursor)
	}
}
