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
	"bytes"
	"fmt"
	"io"

	"github.com/timburks/kilt/input"
	"github.com/timburks/kilt/syntax"
	kilt "github.com/timburks/kilt/types"
)

// A Display draws frames and delivers input events.
type Display interface {
	Size() (kilt.Size, error)
	Draw(*Frame) error
	NextEvent() kilt.Event
	Close() error
}

// Color returns the SGR foreground color of a highlight category.
func Color(h kilt.Highlight) int {
	switch h {
	case kilt.HighlightComment, kilt.HighlightBlockComment:
		return 36 // cyan
	case kilt.HighlightKeyword1:
		return 33 // yellow
	case kilt.HighlightKeyword2:
		return 32 // green
	case kilt.HighlightString:
		return 35 // magenta
	case kilt.HighlightNumber:
		return 31 // red
	case kilt.HighlightMatch:
		return 34 // blue
	default:
		return 37 // white
	}
}

// printable returns c, or its placeholder when c cannot be drawn.
func printable(c byte) byte {
	if syntax.IsPrint(c) {
		return c
	}
	return syntax.Placeholder(c)
}

// Encode writes the VT100 byte stream that draws a frame.
// A color is only emitted when it changes. Bytes that cannot be drawn
// are written as reversed placeholders whatever their tag.
func Encode(w *bytes.Buffer, f *Frame) {
	w.WriteString("\x1b[?25l") // hide cursor
	w.WriteString("\x1b[H")    // go home
	for _, line := range f.Lines {
		if line.Tags == nil {
			for _, c := range line.Text {
				w.WriteByte(printable(c))
			}
			w.WriteString("\x1b[0K\r\n")
			continue
		}
		current := -1
		for j, c := range line.Text {
			tag := line.Tags[j]
			switch {
			case tag == kilt.HighlightNonPrint || !syntax.IsPrint(c):
				w.WriteString("\x1b[7m")
				w.WriteByte(printable(c))
				w.WriteString("\x1b[0m")
				if current != -1 {
					fmt.Fprintf(w, "\x1b[%dm", current)
				}
			case tag == kilt.HighlightNormal:
				if current != -1 {
					w.WriteString("\x1b[39m")
					current = -1
				}
				w.WriteByte(c)
			default:
				if color := Color(tag); color != current {
					fmt.Fprintf(w, "\x1b[%dm", color)
					current = color
				}
				w.WriteByte(c)
			}
		}
		w.WriteString("\x1b[39m")
		w.WriteString("\x1b[0K")
		w.WriteString("\r\n")
	}
	w.WriteString("\x1b[0K")
	w.WriteString("\x1b[7m")
	w.WriteString(f.Status)
	w.WriteString("\x1b[0m\r\n")
	w.WriteString("\x1b[0K")
	w.WriteString(f.Message)
	fmt.Fprintf(w, "\x1b[%d;%dH", f.Cursor.Row+1, f.Cursor.Col+1)
	w.WriteString("\x1b[?25h") // show cursor
}

// A Terminal is a terminal in raw mode.
type Terminal interface {
	io.ReadWriter
	input.Resizer
	Restore() error
}

// VT100 draws on a terminal with escape sequences and decodes its input.
type VT100 struct {
	term   Terminal
	reader *input.Reader
	buf    bytes.Buffer
}

func NewVT100(term Terminal) *VT100 {
	return &VT100{
		term:   term,
		reader: input.NewReader(term, term),
	}
}

func (s *VT100) Size() (kilt.Size, error) {
	return s.term.Size()
}

// Draw writes the frame with a single write.
func (s *VT100) Draw(f *Frame) error {
	s.buf.Reset()
	Encode(&s.buf, f)
	_, err := s.term.Write(s.buf.Bytes())
	return err
}

func (s *VT100) NextEvent() kilt.Event {
	return s.reader.Next()
}

// Close clears the screen and restores the terminal.
func (s *VT100) Close() error {
	s.term.Write([]byte("\x1b[2J\x1b[H"))
	return s.term.Restore()
}
