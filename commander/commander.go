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
	"log"
	"time"

	"github.com/timburks/kilt/config"
	"github.com/timburks/kilt/editor"
	"github.com/timburks/kilt/input"
	"github.com/timburks/kilt/screen"
	kilt "github.com/timburks/kilt/types"
)

// HelpMessage is shown when the editor starts.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-E = eval"

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor    *editor.Editor
	config    *config.Config
	clipboard Clipboard
	watcher   *Watcher
	mode      int       // editor mode
	debug     bool      // debug mode logs every event
	quitTimes int       // confirmations still needed to quit a dirty buffer
	size      kilt.Size // screen size
	find      finder    // search in progress
	lispText  string    // lisp command as it is being typed
	now       func() time.Time
}

func NewCommander(e *editor.Editor, cfg *config.Config) *Commander {
	return &Commander{
		editor:    e,
		config:    cfg,
		clipboard: SystemClipboard{},
		mode:      kilt.ModeEdit,
		quitTimes: cfg.QuitTimes,
		now:       time.Now,
	}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) SetClipboard(clipboard Clipboard) {
	c.clipboard = clipboard
}

// SetWatcher attaches a watcher for the edited file.
func (c *Commander) SetWatcher(w *Watcher) {
	c.watcher = w
}

func (c *Commander) IsRunning() bool {
	return c.mode != kilt.ModeQuit
}

// GetMessage returns the prompt of the current mode, or the status
// message if it has not expired.
func (c *Commander) GetMessage() string {
	switch c.mode {
	case kilt.ModeFind:
		return fmt.Sprintf("Search: %s (Use ESC/Arrows/Enter)", c.find.query)
	case kilt.ModeEval:
		return "Eval: " + c.lispText
	default:
		return c.editor.Message(c.now(), c.config.MessageTimeout())
	}
}

// Frame composes what the screen should show.
func (c *Commander) Frame() *screen.Frame {
	return screen.Build(c.editor, c.size, c.GetMessage())
}

// ProcessResize adapts the editor to a new screen size.
func (c *Commander) ProcessResize(size kilt.Size) {
	c.size = size
	c.editor.SetSize(kilt.Size{Rows: size.Rows - 2, Cols: size.Cols})
}

// ProcessEvent handles one event. Errors other than read timeouts are
// returned and end the main loop.
func (c *Commander) ProcessEvent(event kilt.Event) error {
	if c.debug {
		log.Printf("event=%#v", event)
	}
	switch event := event.(type) {
	case kilt.ByteEvent, kilt.KeyEvent:
		c.ProcessKey(event)
	case kilt.ResizeEvent:
		log.Printf("resize to %dx%d", event.Size.Cols, event.Size.Rows)
		c.ProcessResize(event.Size)
	case kilt.ErrorEvent:
		if errors.Is(event.Err, input.ErrTimeout) {
			return nil
		}
		return event.Err
	}
	return nil
}

func (c *Commander) ProcessKey(event kilt.Event) {
	switch c.mode {
	case kilt.ModeEdit:
		c.ProcessKeyEditMode(event)
	case kilt.ModeFind:
		c.ProcessKeyFindMode(event)
	case kilt.ModeEval:
		c.ProcessKeyEvalMode(event)
	}
}

func (c *Commander) ProcessKeyEditMode(event kilt.Event) {
	e := c.editor
	switch event := event.(type) {
	case kilt.KeyEvent:
		switch event.Key {
		case kilt.KeyArrowUp:
			e.MoveCursor(kilt.MoveUp)
		case kilt.KeyArrowDown:
			e.MoveCursor(kilt.MoveDown)
		case kilt.KeyArrowLeft:
			e.MoveCursor(kilt.MoveLeft)
		case kilt.KeyArrowRight:
			e.MoveCursor(kilt.MoveRight)
		case kilt.KeyPageUp:
			e.PageUp()
		case kilt.KeyPageDown:
			e.PageDown()
		case kilt.KeyHome:
			e.MoveToBeginningOfLine()
		case kilt.KeyEnd:
			e.MoveToEndOfLine()
		case kilt.KeyDelete:
			e.DeleteChar()
		case kilt.KeyEscape:
		}
	case kilt.ByteEvent:
		switch event.Byte {
		case kilt.Enter:
			e.InsertNewline()
		case kilt.CtrlC:
		case kilt.CtrlL:
		case kilt.CtrlQ, kilt.CtrlX:
			if e.Buffer.Dirty() > 0 && c.quitTimes > 0 {
				e.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", c.quitTimes)
				c.quitTimes--
				return
			}
			c.mode = kilt.ModeQuit
			return
		case kilt.CtrlS:
			c.save()
		case kilt.CtrlF, kilt.CtrlG:
			c.startFind()
		case kilt.CtrlE:
			c.startEval()
		case kilt.CtrlK:
			c.copyLine()
		case kilt.CtrlV:
			c.paste()
		case kilt.Backspace, kilt.CtrlH:
			e.DeleteChar()
		default:
			e.InsertChar(event.Byte)
		}
	}
	c.quitTimes = c.config.QuitTimes
}

func (c *Commander) save() error {
	if c.watcher != nil {
		c.watcher.Saved()
	}
	return c.editor.WriteFile()
}

// Run is the main loop. It draws a frame, then waits for and handles
// one event, until the user quits or an error occurs.
func (c *Commander) Run(display screen.Display) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == editor.ErrLineTooLong {
				err = editor.ErrLineTooLong
				return
			}
			panic(r)
		}
	}()
	size, err := display.Size()
	if err != nil {
		return fmt.Errorf("get screen size: %w", err)
	}
	c.ProcessResize(size)
	for c.IsRunning() {
		if c.watcher != nil {
			if notice := c.watcher.Pending(); notice != "" {
				log.Printf("%s: %s", c.editor.Buffer.GetFileName(), notice)
				c.editor.SetMessage("%s", notice)
			}
		}
		if err := display.Draw(c.Frame()); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		if err := c.ProcessEvent(display.NextEvent()); err != nil {
			return err
		}
	}
	return nil
}
