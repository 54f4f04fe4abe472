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
	"log"
	"time"
	"unicode/utf8"

	"github.com/nsf/termbox-go"

	"github.com/timburks/kilt/input"
	"github.com/timburks/kilt/syntax"
	kilt "github.com/timburks/kilt/types"
)

// Termbox draws frames with termbox and converts its events.
type Termbox struct {
	events  chan termbox.Event
	done    chan struct{}
	pending []kilt.Event
	timeout time.Duration
}

func NewTermbox() (*Termbox, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil, err
	}
	termbox.SetOutputMode(termbox.OutputNormal)
	s := &Termbox{
		events:  make(chan termbox.Event),
		done:    make(chan struct{}),
		timeout: 100 * time.Millisecond,
	}
	go s.pump(termbox.PollEvent)
	return s, nil
}

// pump forwards polled events until an interrupt arrives. Once done is
// closed events are dropped, but polling goes on: termbox.Interrupt
// only returns when a poll receives it.
func (s *Termbox) pump(poll func() termbox.Event) {
	defer close(s.events)
	for {
		event := poll()
		if event.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- event:
		case <-s.done:
		}
	}
}

func (s *Termbox) Size() (kilt.Size, error) {
	cols, rows := termbox.Size()
	return kilt.Size{Rows: rows, Cols: cols}, nil
}

func attribute(h kilt.Highlight) termbox.Attribute {
	switch h {
	case kilt.HighlightComment, kilt.HighlightBlockComment:
		return termbox.ColorCyan
	case kilt.HighlightKeyword1:
		return termbox.ColorYellow
	case kilt.HighlightKeyword2:
		return termbox.ColorGreen
	case kilt.HighlightString:
		return termbox.ColorMagenta
	case kilt.HighlightNumber:
		return termbox.ColorRed
	case kilt.HighlightMatch:
		return termbox.ColorBlue
	default:
		return termbox.ColorWhite
	}
}

func (s *Termbox) Draw(f *Frame) error {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	for i, line := range f.Lines {
		for j, c := range line.Text {
			fg := termbox.ColorWhite
			if line.Tags != nil {
				fg = attribute(line.Tags[j])
			}
			if !syntax.IsPrint(c) || line.Tags != nil && line.Tags[j] == kilt.HighlightNonPrint {
				fg = termbox.ColorWhite | termbox.AttrReverse
			}
			ch := rune(printable(c))
			termbox.SetCell(j, i, ch, fg, termbox.ColorBlack)
		}
	}
	statusRow := len(f.Lines)
	for x, ch := range []byte(f.Status) {
		termbox.SetCell(x, statusRow, rune(ch), termbox.ColorBlack, termbox.ColorWhite)
	}
	for x, ch := range []byte(f.Message) {
		termbox.SetCell(x, statusRow+1, rune(ch), termbox.ColorWhite, termbox.ColorBlack)
	}
	termbox.SetCursor(f.Cursor.Col, f.Cursor.Row)
	return termbox.Flush()
}

// NextEvent waits a short time for a termbox event.
func (s *Termbox) NextEvent() kilt.Event {
	for len(s.pending) == 0 {
		select {
		case event, ok := <-s.events:
			if !ok {
				return kilt.ErrorEvent{Err: input.ErrTimeout}
			}
			if event.Type == termbox.EventResize {
				termbox.Flush()
			}
			s.pending = convert(event)
		case <-time.After(s.timeout):
			return kilt.ErrorEvent{Err: input.ErrTimeout}
		}
	}
	event := s.pending[0]
	s.pending = s.pending[1:]
	return event
}

func (s *Termbox) Close() error {
	close(s.done)
	termbox.Interrupt()
	termbox.Close()
	return nil
}

// convert maps a termbox event to the events produced by a raw terminal.
func convert(event termbox.Event) []kilt.Event {
	switch event.Type {
	case termbox.EventResize:
		return []kilt.Event{kilt.ResizeEvent{Size: kilt.Size{Rows: event.Height, Cols: event.Width}}}
	case termbox.EventError:
		return []kilt.Event{kilt.ErrorEvent{Err: event.Err}}
	case termbox.EventKey:
	default:
		return nil
	}
	if event.Ch != 0 {
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, event.Ch)
		events := make([]kilt.Event, 0, n)
		for _, b := range buf[:n] {
			events = append(events, kilt.ByteEvent{Byte: b})
		}
		return events
	}
	switch event.Key {
	case termbox.KeyArrowDown:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyArrowDown}}
	case termbox.KeyArrowLeft:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyArrowLeft}}
	case termbox.KeyArrowRight:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyArrowRight}}
	case termbox.KeyArrowUp:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyArrowUp}}
	case termbox.KeyHome:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyHome}}
	case termbox.KeyEnd:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyEnd}}
	case termbox.KeyPgup:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyPageUp}}
	case termbox.KeyPgdn:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyPageDown}}
	case termbox.KeyDelete:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyDelete}}
	case termbox.KeyEsc:
		return []kilt.Event{kilt.KeyEvent{Key: kilt.KeyEscape}}
	case termbox.KeySpace:
		return []kilt.Event{kilt.ByteEvent{Byte: ' '}}
	}
	// the remaining keys are control bytes
	if event.Key <= termbox.KeyCtrlUnderscore || event.Key == termbox.KeyBackspace2 {
		return []kilt.Event{kilt.ByteEvent{Byte: byte(event.Key)}}
	}
	return nil
}
