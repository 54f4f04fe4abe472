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

package screen

import (
	"fmt"

	"github.com/timburks/kilt/editor"
	kilt "github.com/timburks/kilt/types"
)

// Version is shown in the banner of an empty buffer.
const Version = "0.1.0"

// A Line is one row of the text area. Lines past the end of the buffer
// have no tags and are drawn as they are.
type Line struct {
	Text []byte
	Tags []kilt.Highlight
}

// A Frame is everything drawn in one refresh.
type Frame struct {
	Size    kilt.Size
	Lines   []Line
	Status  string     // exactly Size.Cols bytes wide, drawn reversed
	Message string     // at most Size.Cols bytes
	Cursor  kilt.Point // screen position, 0-based
}

// Build composes the frame for an editor on a screen of a given size.
// The two bottom rows are used for the status bar and the message.
func Build(e *editor.Editor, size kilt.Size, message string) *Frame {
	b := e.Buffer
	v := e.Viewport
	offset := v.GetOffset()
	textRows := size.Rows - 2
	if textRows < 0 {
		textRows = 0
	}
	f := &Frame{
		Size:  size,
		Lines: make([]Line, 0, textRows),
	}
	for y := 0; y < textRows; y++ {
		i := offset.Rows + y
		row := b.GetRow(i)
		if row == nil {
			if b.GetRowCount() == 0 && y == textRows/3 {
				f.Lines = append(f.Lines, Line{Text: []byte(banner(size.Cols))})
			} else {
				f.Lines = append(f.Lines, Line{Text: []byte("~")})
			}
			continue
		}
		start := offset.Cols
		if start > len(row.Render) {
			start = len(row.Render)
		}
		end := start + size.Cols
		if end > len(row.Render) {
			end = len(row.Render)
		}
		f.Lines = append(f.Lines, Line{Text: row.Render[start:end], Tags: row.Tags[start:end]})
	}
	f.Status = sanitize(statusLine(e, size.Cols))
	if len(message) > size.Cols {
		message = message[:size.Cols]
	}
	f.Message = sanitize(message)
	f.Cursor = v.ScreenCursor()
	return f
}

// sanitize replaces the bytes of s that cannot be drawn, as in file
// names and eval results.
func sanitize(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = printable(c)
	}
	return string(b)
}

func banner(cols int) string {
	welcome := fmt.Sprintf("Kilt editor -- version %s", Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	text := ""
	if padding > 0 {
		text = "~"
		padding--
	}
	for ; padding > 0; padding-- {
		text += " "
	}
	return text + welcome
}

// Compute the text to display on the status bar.
func statusLine(e *editor.Editor, cols int) string {
	b := e.Buffer
	name := b.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if b.Dirty() > 0 {
		modified = "(modified)"
	}
	text := fmt.Sprintf("%.20s - %d lines %s", name, b.GetRowCount(), modified)
	finalText := fmt.Sprintf("%d/%d", e.GetCursor().Row+1, b.GetRowCount())
	if len(text) > cols {
		text = text[:cols]
	}
	for len(text) < cols {
		if cols-len(text) == len(finalText) {
			text += finalText
			break
		}
		text += " "
	}
	return text
}
