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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/timburks/kilt/config"
	"github.com/timburks/kilt/editor"
	"github.com/timburks/kilt/input"
	"github.com/timburks/kilt/screen"
	"github.com/timburks/kilt/syntax"
	kilt "github.com/timburks/kilt/types"
)

var errScriptDone = errors.New("script done")

// scriptedDisplay replays events and records the frames it draws.
type scriptedDisplay struct {
	events []kilt.Event
	frames []*screen.Frame
	closed bool
}

func (d *scriptedDisplay) Size() (kilt.Size, error) {
	return kilt.Size{Rows: 8, Cols: 40}, nil
}

func (d *scriptedDisplay) Draw(f *screen.Frame) error {
	d.frames = append(d.frames, f)
	return nil
}

func (d *scriptedDisplay) NextEvent() kilt.Event {
	if len(d.events) == 0 {
		return kilt.ErrorEvent{Err: errScriptDone}
	}
	event := d.events[0]
	d.events = d.events[1:]
	return event
}

func (d *scriptedDisplay) Close() error {
	d.closed = true
	return nil
}

func (d *scriptedDisplay) lastFrame() *screen.Frame {
	return d.frames[len(d.frames)-1]
}

type memoryClipboard struct {
	text string
	err  error
}

func (m *memoryClipboard) ReadAll() (string, error) { return m.text, m.err }
func (m *memoryClipboard) WriteAll(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func setup(t *testing.T) (*Commander, string) {
	data, err := os.ReadFile("testdata/hello.c")
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	path := filepath.Join(t.TempDir(), "hello.c")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	e := editor.NewEditor()
	e.Buffer.SetRules(syntax.Select(path, nil))
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	c := NewCommander(e, config.Default())
	c.SetClipboard(&memoryClipboard{})
	c.ProcessResize(kilt.Size{Rows: 8, Cols: 40})
	return c, path
}

func typeText(text string) []kilt.Event {
	events := make([]kilt.Event, 0, len(text))
	for i := 0; i < len(text); i++ {
		events = append(events, kilt.ByteEvent{Byte: text[i]})
	}
	return events
}

func keys(k ...kilt.Key) []kilt.Event {
	events := make([]kilt.Event, 0, len(k))
	for _, key := range k {
		events = append(events, kilt.KeyEvent{Key: key})
	}
	return events
}

func run(c *Commander, events ...[]kilt.Event) (*scriptedDisplay, error) {
	d := &scriptedDisplay{}
	for _, e := range events {
		d.events = append(d.events, e...)
	}
	return d, c.Run(d)
}

func TestEditAndSave(t *testing.T) {
	c, path := setup(t)
	_, err := run(c,
		keys(kilt.KeyArrowDown, kilt.KeyArrowDown, kilt.KeyEnd),
		typeText("\r\tputs(\"bye\");"),
		typeText(string([]byte{kilt.CtrlS, kilt.CtrlQ})),
	)
	if err != nil {
		t.Errorf("Unexpected error: %+v", err)
	}
	if c.IsRunning() {
		t.Errorf("Editor did not quit")
	}
	data, _ := os.ReadFile(path)
	lines := strings.Split(string(data), "\n")
	if lines[3] != "\tputs(\"bye\");" || lines[4] != "\treturn 0;" {
		t.Errorf("Unexpected file contents: %q", data)
	}
}

func TestHelpAndSaveMessages(t *testing.T) {
	c, _ := setup(t)
	c.editor.SetMessage(HelpMessage)
	d, _ := run(c, typeText("x"))
	if d.frames[0].Message != HelpMessage {
		t.Errorf("Unexpected first message: '%s'", d.frames[0].Message)
	}
	if !strings.Contains(d.lastFrame().Status, "(modified)") {
		t.Errorf("Unexpected status: '%s'", d.lastFrame().Status)
	}
	d, _ = run(c, typeText(string([]byte{kilt.CtrlS})))
	if d.lastFrame().Message != "68 bytes written on disk" {
		t.Errorf("Unexpected message after save: '%s'", d.lastFrame().Message)
	}
}

func TestMessageExpires(t *testing.T) {
	c, _ := setup(t)
	c.editor.SetMessage(HelpMessage)
	c.now = func() time.Time { return time.Now().Add(10 * time.Second) }
	if message := c.GetMessage(); message != "" {
		t.Errorf("Expired message shown: '%s'", message)
	}
}

func TestQuitConfirmation(t *testing.T) {
	c, _ := setup(t)
	quit := kilt.ByteEvent{Byte: kilt.CtrlQ}
	d, _ := run(c, typeText("x"), []kilt.Event{quit})
	if !c.IsRunning() {
		t.Fatalf("Dirty buffer quit without confirmation")
	}
	expected := "WARNING!!! File has unsaved changes. Press Ctrl-Q 3 more times to quit."
	if d.lastFrame().Message != expected {
		t.Errorf("Unexpected warning: '%s'", d.lastFrame().Message)
	}
	// another key resets the count
	run(c, []kilt.Event{quit, kilt.KeyEvent{Key: kilt.KeyArrowLeft}, quit, quit})
	if !c.IsRunning() {
		t.Fatalf("Quit count was not reset")
	}
	run(c, []kilt.Event{quit, quit, quit, quit})
	if c.IsRunning() {
		t.Errorf("Editor did not quit after confirmation")
	}
}

func TestCtrlXQuitsCleanBuffer(t *testing.T) {
	c, _ := setup(t)
	run(c, typeText(string([]byte{kilt.CtrlX})))
	if c.IsRunning() {
		t.Errorf("Ctrl-X did not quit a clean buffer")
	}
}

func TestFind(t *testing.T) {
	c, _ := setup(t)
	d, _ := run(c, typeText(string([]byte{kilt.CtrlF})+"hello"))
	if c.GetMode() != kilt.ModeFind {
		t.Fatalf("Not in find mode")
	}
	if d.lastFrame().Message != "Search: hello (Use ESC/Arrows/Enter)" {
		t.Errorf("Unexpected prompt: '%s'", d.lastFrame().Message)
	}
	cursor := c.editor.GetCursor()
	if cursor.Row != 1 || cursor.Col != 8 {
		t.Errorf("Unexpected cursor on first match: %+v", cursor)
	}
	row := c.editor.Buffer.GetRow(1)
	if row.Tags[row.RenderColumn(8)] != kilt.HighlightMatch {
		t.Errorf("Match is not highlighted")
	}
	run(c, keys(kilt.KeyArrowDown))
	if cursor := c.editor.GetCursor(); cursor.Row != 2 || cursor.Col != 9 {
		t.Errorf("Unexpected cursor on second match: %+v", cursor)
	}
	if row.Tags[row.RenderColumn(8)] != kilt.HighlightBlockComment {
		t.Errorf("Previous match was not restored")
	}
	run(c, typeText("\r"))
	if c.GetMode() != kilt.ModeEdit {
		t.Errorf("Enter did not leave find mode")
	}
	if cursor := c.editor.GetCursor(); cursor.Row != 2 {
		t.Errorf("Enter did not keep the match: %+v", cursor)
	}
}

func TestFindEscapeRestores(t *testing.T) {
	c, _ := setup(t)
	run(c, keys(kilt.KeyArrowDown, kilt.KeyArrowDown, kilt.KeyArrowDown))
	run(c, typeText(string([]byte{kilt.CtrlG})+"int"), keys(kilt.KeyEscape))
	if c.GetMode() != kilt.ModeEdit {
		t.Errorf("Escape did not leave find mode")
	}
	if cursor := c.editor.GetCursor(); cursor.Row != 3 || cursor.Col != 0 {
		t.Errorf("Escape did not restore the cursor: %+v", cursor)
	}
	for _, tag := range c.editor.Buffer.GetRow(0).Tags {
		if tag == kilt.HighlightMatch {
			t.Errorf("Match highlight left behind")
		}
	}
}

func TestEval(t *testing.T) {
	c, _ := setup(t)
	d, _ := run(c, typeText(string([]byte{kilt.CtrlE})+"(line-count)"))
	if d.lastFrame().Message != "Eval: (line-count)" {
		t.Errorf("Unexpected prompt: '%s'", d.lastFrame().Message)
	}
	d, _ = run(c, typeText("\r"))
	if d.lastFrame().Message != "5" {
		t.Errorf("Unexpected result: '%s'", d.lastFrame().Message)
	}
	result, err := c.ParseEval("(goto-line 4)")
	if err != nil || result != "4" || c.editor.GetCursor().Row != 3 {
		t.Errorf("Unexpected goto-line result: '%s' %v", result, err)
	}
	if result, _ := c.ParseEval("(current-line)"); result != "4" {
		t.Errorf("Unexpected current-line: '%s'", result)
	}
	if result, _ := c.ParseEval("(find \"}\")"); result != "5" {
		t.Errorf("Unexpected find result: '%s'", result)
	}
	c.ParseEval("(insert \"// end\")")
	if text := string(c.editor.Buffer.GetRow(4).Raw); text != "// end}" {
		t.Errorf("Unexpected inserted text: '%s'", text)
	}
	if _, err := c.ParseEval("(goto-line \"x\")"); err == nil {
		t.Errorf("Bad argument was accepted")
	}
	d, _ = run(c, typeText(string([]byte{kilt.CtrlE})+"(goto-line)\r"))
	if !strings.HasPrefix(d.lastFrame().Message, "Eval error: ") {
		t.Errorf("Unexpected error message: '%s'", d.lastFrame().Message)
	}
}

func TestClipboard(t *testing.T) {
	c, _ := setup(t)
	clip := &memoryClipboard{}
	c.SetClipboard(clip)
	run(c, keys(kilt.KeyArrowDown, kilt.KeyArrowDown, kilt.KeyArrowDown), typeText(string([]byte{kilt.CtrlK})))
	if clip.text != "\treturn 0;" {
		t.Errorf("Unexpected clipboard text: '%s'", clip.text)
	}
	clip.text = "a\nb"
	run(c, keys(kilt.KeyHome), typeText(string([]byte{kilt.CtrlV})))
	if text := string(c.editor.Buffer.GetRow(3).Raw); text != "a" {
		t.Errorf("Unexpected first pasted line: '%s'", text)
	}
	if text := string(c.editor.Buffer.GetRow(4).Raw); text != "b\treturn 0;" {
		t.Errorf("Unexpected second pasted line: '%s'", text)
	}
	clip.err = errors.New("no clipboard")
	d, _ := run(c, typeText(string([]byte{kilt.CtrlV})))
	if d.lastFrame().Message != "Can't paste: no clipboard" {
		t.Errorf("Unexpected message: '%s'", d.lastFrame().Message)
	}
}

func TestIdleAndResize(t *testing.T) {
	c, _ := setup(t)
	d, err := run(c, []kilt.Event{
		kilt.ErrorEvent{Err: input.ErrTimeout},
		kilt.ResizeEvent{Size: kilt.Size{Rows: 12, Cols: 50}},
	})
	if !errors.Is(err, errScriptDone) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if len(d.lastFrame().Lines) != 10 || len(d.lastFrame().Status) != 50 {
		t.Errorf("Frame not resized: %d lines, status of %d", len(d.lastFrame().Lines), len(d.lastFrame().Status))
	}
}

func TestLineTooLongIsFatal(t *testing.T) {
	c, _ := setup(t)
	d := &panickingDisplay{}
	if err := c.Run(d); !errors.Is(err, editor.ErrLineTooLong) {
		t.Errorf("Unexpected error: %v", err)
	}
}

type panickingDisplay struct {
	scriptedDisplay
}

func (d *panickingDisplay) NextEvent() kilt.Event {
	panic(editor.ErrLineTooLong)
}
