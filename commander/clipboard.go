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
	"log"

	"github.com/atotto/clipboard"
)

// A Clipboard holds text copied from the editor.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard is the clipboard of the desktop session.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// copyLine puts the line holding the cursor on the clipboard.
func (c *Commander) copyLine() {
	e := c.editor
	if e.Buffer.GetRow(e.GetCursor().Row) == nil {
		return
	}
	line := e.CurrentLine()
	if err := c.clipboard.WriteAll(line); err != nil {
		e.SetMessage("Can't copy: %s", err)
		log.Printf("clipboard write: %s", err)
		return
	}
	e.SetMessage("Copied %d bytes", len(line))
}

// paste inserts the clipboard text at the cursor.
func (c *Commander) paste() {
	e := c.editor
	text, err := c.clipboard.ReadAll()
	if err != nil {
		e.SetMessage("Can't paste: %s", err)
		log.Printf("clipboard read: %s", err)
		return
	}
	e.InsertText(text)
}
