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
	kilt "github.com/timburks/kilt/types"
)

// A Viewport is the visible part of a buffer. The cursor is kept in raw
// buffer coordinates: Row is the line, which may equal the row count,
// and Col the byte offset in that line. The offset is the first visible
// line and rendered column.
type Viewport struct {
	buffer *Buffer
	size   kilt.Size  // rows and columns available for text
	cursor kilt.Point // cursor position
	offset kilt.Size  // display offset
}

func NewViewport(b *Buffer) *Viewport {
	return &Viewport{
		buffer: b,
		size:   kilt.Size{Rows: 1, Cols: 1},
	}
}

// SetSize sets the text area and scrolls to keep the cursor visible.
func (v *Viewport) SetSize(s kilt.Size) {
	if s.Rows < 1 {
		s.Rows = 1
	}
	if s.Cols < 1 {
		s.Cols = 1
	}
	v.size = s
	v.Scroll()
}

func (v *Viewport) GetCursor() kilt.Point {
	return v.cursor
}

// SetCursor moves the cursor, clamping it to the buffer.
func (v *Viewport) SetCursor(p kilt.Point) {
	v.cursor = p
	v.clamp()
	v.Scroll()
}

func (v *Viewport) GetOffset() kilt.Size {
	return v.offset
}

// SetOffset restores a saved display offset.
func (v *Viewport) SetOffset(offset kilt.Size) {
	v.offset = offset
	v.Scroll()
}

// RenderColumn returns the rendered column of the cursor.
func (v *Viewport) RenderColumn() int {
	if row := v.buffer.GetRow(v.cursor.Row); row != nil {
		return row.RenderColumn(v.cursor.Col)
	}
	return 0
}

// ScreenCursor returns the cursor position relative to the viewport.
func (v *Viewport) ScreenCursor() kilt.Point {
	return kilt.Point{
		Row: v.cursor.Row - v.offset.Rows,
		Col: v.RenderColumn() - v.offset.Cols,
	}
}

func (v *Viewport) clamp() {
	rows := v.buffer.GetRowCount()
	if v.cursor.Row > rows {
		v.cursor.Row = rows
	}
	if v.cursor.Row < 0 {
		v.cursor.Row = 0
	}
	if v.cursor.Col < 0 {
		v.cursor.Col = 0
	}
	if length := v.buffer.GetRowLength(v.cursor.Row); v.cursor.Col > length {
		v.cursor.Col = length
	}
}

// Move moves the cursor one step in a direction.
func (v *Viewport) Move(direction int) {
	b := v.buffer
	switch direction {
	case kilt.MoveLeft:
		if v.cursor.Col > 0 {
			v.cursor.Col--
		} else if v.cursor.Row > 0 {
			v.cursor.Row--
			v.cursor.Col = b.GetRowLength(v.cursor.Row)
		}
	case kilt.MoveRight:
		if row := b.GetRow(v.cursor.Row); row != nil {
			if v.cursor.Col < row.Length() {
				v.cursor.Col++
			} else {
				v.cursor.Row++
				v.cursor.Col = 0
			}
		}
	case kilt.MoveUp:
		if v.cursor.Row > 0 {
			v.cursor.Row--
		}
	case kilt.MoveDown:
		if v.cursor.Row < b.GetRowCount() {
			v.cursor.Row++
		}
	}
	v.clamp()
	v.Scroll()
}

// PageUp moves the cursor to the top of the viewport and then up a screenful.
func (v *Viewport) PageUp() {
	v.cursor.Row = v.offset.Rows
	for i := 0; i < v.size.Rows; i++ {
		v.Move(kilt.MoveUp)
	}
}

// PageDown moves the cursor to the bottom of the viewport and then down a screenful.
func (v *Viewport) PageDown() {
	v.cursor.Row = v.offset.Rows + v.size.Rows - 1
	v.clamp()
	for i := 0; i < v.size.Rows; i++ {
		v.Move(kilt.MoveDown)
	}
}

func (v *Viewport) MoveToStartOfLine() {
	v.cursor.Col = 0
	v.Scroll()
}

func (v *Viewport) MoveToEndOfLine() {
	v.cursor.Col = v.buffer.GetRowLength(v.cursor.Row)
	v.Scroll()
}

// Scroll recomputes the display offset to keep the cursor onscreen.
func (v *Viewport) Scroll() {
	if v.cursor.Row < v.offset.Rows {
		// scroll up
		v.offset.Rows = v.cursor.Row
	}
	if v.cursor.Row-v.offset.Rows >= v.size.Rows {
		// scroll down
		v.offset.Rows = v.cursor.Row - v.size.Rows + 1
	}
	rx := v.RenderColumn()
	if rx < v.offset.Cols {
		// scroll left
		v.offset.Cols = rx
	}
	if rx-v.offset.Cols >= v.size.Cols {
		// scroll right
		v.offset.Cols = rx - v.size.Cols + 1
	}
	if v.offset.Rows < 0 {
		v.offset.Rows = 0
	}
	if v.offset.Cols < 0 {
		v.offset.Cols = 0
	}
}
