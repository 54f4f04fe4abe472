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
	"fmt"
	"log"
	"time"

	kilt "github.com/timburks/kilt/types"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Buffer      *Buffer   // the buffer being edited
	Viewport    *Viewport // the visible part of the buffer
	message     string    // status message
	messageTime time.Time // time the status message was set
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.Viewport = NewViewport(e.Buffer)
	return e
}

func (e *Editor) ReadFile(path string) error {
	if err := e.Buffer.Open(path); err != nil {
		return err
	}
	e.Viewport.SetCursor(kilt.Point{})
	log.Printf("opened %s (%d lines)", path, e.Buffer.GetRowCount())
	return nil
}

// WriteFile saves the buffer to its file and reports the outcome as
// the status message.
func (e *Editor) WriteFile() error {
	n, err := e.Buffer.Save(e.Buffer.GetFileName())
	if err != nil {
		e.SetMessage("Can't save! I/O error: %s", err)
		log.Printf("save %s: %s", e.Buffer.GetFileName(), err)
		return err
	}
	e.SetMessage("%d bytes written on disk", n)
	log.Printf("saved %s (%d bytes)", e.Buffer.GetFileName(), n)
	return nil
}

func (e *Editor) SetMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = time.Now()
}

// Message returns the status message if it is younger than timeout.
func (e *Editor) Message(now time.Time, timeout time.Duration) string {
	if e.message == "" || now.Sub(e.messageTime) >= timeout {
		return ""
	}
	return e.message
}

func (e *Editor) GetCursor() kilt.Point {
	return e.Viewport.GetCursor()
}

func (e *Editor) SetCursor(cursor kilt.Point) {
	e.Viewport.SetCursor(cursor)
}

func (e *Editor) MoveCursor(direction int) {
	e.Viewport.Move(direction)
}

// InsertChar inserts c at the cursor and moves past it.
func (e *Editor) InsertChar(c byte) {
	cursor := e.GetCursor()
	e.Buffer.InsertChar(cursor.Row, cursor.Col, c)
	e.SetCursor(kilt.Point{Row: cursor.Row, Col: cursor.Col + 1})
}

// InsertNewline splits the line at the cursor and moves to the start of
// the new line.
func (e *Editor) InsertNewline() {
	cursor := e.GetCursor()
	if cursor.Row > e.Buffer.GetRowCount() {
		return
	}
	e.Buffer.SplitLine(cursor.Row, cursor.Col)
	e.SetCursor(kilt.Point{Row: cursor.Row + 1, Col: 0})
}

// DeleteChar deletes the character before the cursor.
func (e *Editor) DeleteChar() {
	cursor := e.GetCursor()
	e.SetCursor(e.Buffer.DeleteChar(cursor.Row, cursor.Col))
}

// InsertText inserts text at the cursor. Newlines split lines.
func (e *Editor) InsertText(text string) {
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\n':
			e.InsertNewline()
		case '\r':
		default:
			e.InsertChar(c)
		}
	}
}

// CurrentLine returns the raw text of the line holding the cursor.
func (e *Editor) CurrentLine() string {
	if row := e.Buffer.GetRow(e.GetCursor().Row); row != nil {
		return string(row.Raw)
	}
	return ""
}

// GotoLine moves the cursor to the start of a 1-based line number.
func (e *Editor) GotoLine(n int) {
	e.SetCursor(kilt.Point{Row: n - 1, Col: 0})
}

func (e *Editor) PageUp() {
	e.Viewport.PageUp()
}

func (e *Editor) PageDown() {
	e.Viewport.PageDown()
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Viewport.MoveToStartOfLine()
}

func (e *Editor) MoveToEndOfLine() {
	e.Viewport.MoveToEndOfLine()
}

// SetSize sets the size of the text area.
func (e *Editor) SetSize(s kilt.Size) {
	e.Viewport.SetSize(s)
}
