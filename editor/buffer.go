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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/timburks/kilt/syntax"
	kilt "github.com/timburks/kilt/types"
)

// A Buffer holds the rows of the file being edited.
type Buffer struct {
	rows     []*Row
	fileName string
	rules    *syntax.Rules
	dirty    int

	// saved tags of the row holding a search match
	matchLine int
	matchTags []kilt.Highlight
}

func NewBuffer() *Buffer {
	return &Buffer{
		rows:      make([]*Row, 0),
		matchLine: -1,
	}
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRow returns the row at index i or nil if there is none.
func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if row := b.GetRow(i); row != nil {
		return row.Length()
	}
	return 0
}

// Dirty reports the number of changes made since the last load or save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

// SetRules changes the syntax rules and rescans every row.
func (b *Buffer) SetRules(rules *syntax.Rules) {
	b.rules = rules
	open := false
	for _, row := range b.rows {
		row.highlight(rules, open)
		open = row.OpenComment
	}
}

// rehighlight scans the row at index at and then every following row
// whose block comment seed no longer matches the state left by the row
// above it. Rows are processed from a FIFO work-list in buffer order.
// It returns the number of rows scanned.
func (b *Buffer) rehighlight(at int) int {
	scanned := 0
	queue := []int{at}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if i < 0 || i >= len(b.rows) {
			continue
		}
		row := b.rows[i]
		row.highlight(b.rules, i > 0 && b.rows[i-1].OpenComment)
		scanned++
		if i+1 < len(b.rows) && b.rows[i+1].seed != row.OpenComment {
			queue = append(queue, i+1)
		}
	}
	return scanned
}

// updateRow rebuilds the rendering of a row after its raw text changed.
func (b *Buffer) updateRow(at int) int {
	b.rows[at].update()
	return b.rehighlight(at)
}

func (b *Buffer) renumber(from int) {
	for i := from; i < len(b.rows); i++ {
		b.rows[i].index = i
	}
}

// InsertRow inserts a row holding text at index at.
func (b *Buffer) InsertRow(at int, text []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = newRow(at, text)
	b.renumber(at + 1)
	b.rehighlight(at)
	b.dirty++
}

// DeleteRow removes the row at index at.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.renumber(at)
	b.rehighlight(at)
	b.dirty++
}

// InsertChar inserts c at a position, adding empty rows below the end of
// the buffer and spaces past the end of the row as needed.
func (b *Buffer) InsertChar(line, col int, c byte) {
	if line < 0 || col < 0 {
		return
	}
	for line >= len(b.rows) {
		b.InsertRow(len(b.rows), nil)
	}
	b.rows[line].insertChar(col, c)
	b.rehighlight(line)
	b.dirty++
}

// DeleteChar deletes the character before a position and returns the
// position of the cursor after the deletion. At the start of a row the
// row is joined to the one above it.
func (b *Buffer) DeleteChar(line, col int) kilt.Point {
	cursor := kilt.Point{Row: line, Col: col}
	if line < 0 || line >= len(b.rows) || (line == 0 && col <= 0) {
		return cursor
	}
	row := b.rows[line]
	if col > row.Length() {
		col = row.Length()
	}
	if col == 0 {
		previous := b.rows[line-1]
		cursor = kilt.Point{Row: line - 1, Col: previous.Length()}
		previous.appendBytes(row.Raw)
		b.DeleteRow(line)
		b.rehighlight(line - 1)
		return cursor
	}
	row.deleteChar(col - 1)
	b.rehighlight(line)
	b.dirty++
	return kilt.Point{Row: line, Col: col - 1}
}

// SplitLine breaks a row in two at col. At the end of the buffer it
// appends an empty row.
func (b *Buffer) SplitLine(line, col int) {
	if line == len(b.rows) {
		b.InsertRow(line, nil)
		return
	}
	row := b.GetRow(line)
	if row == nil {
		return
	}
	if col > row.Length() {
		col = row.Length()
	}
	if col <= 0 {
		b.InsertRow(line, nil)
		return
	}
	b.InsertRow(line+1, row.Raw[col:])
	row.truncate(col)
	b.rehighlight(line)
}

// Bytes joins the rows with newlines, including one after the last row.
func (b *Buffer) Bytes() (int, []byte) {
	size := 0
	for _, row := range b.rows {
		size += row.Length() + 1
	}
	data := make([]byte, 0, size)
	for _, row := range b.rows {
		data = append(data, row.Raw...)
		data = append(data, '\n')
	}
	return len(data), data
}

// Load replaces the contents of the buffer with the lines read from r.
// A line too long to render fails with ErrLineTooLong and leaves the
// buffer unchanged.
func (b *Buffer) Load(r io.Reader) (err error) {
	defer func() {
		if v := recover(); v != nil {
			if v != ErrLineTooLong {
				panic(v)
			}
			err = ErrLineTooLong
		}
	}()
	rows := make([]*Row, 0)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimSuffix(line, []byte{'\n'})
			line = bytes.TrimSuffix(line, []byte{'\r'})
			rows = append(rows, newRow(len(rows), line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	b.rows = rows
	b.ClearMatch()
	b.SetRules(b.rules)
	b.dirty = 0
	return nil
}

// Open loads a file into the buffer. A file that does not exist yet
// leaves the buffer empty and is not an error.
func (b *Buffer) Open(filename string) error {
	b.fileName = filename
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		b.rows = make([]*Row, 0)
		b.dirty = 0
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()
	if err := b.Load(f); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	return nil
}

// Save truncates the file and writes the buffer to it in a single write.
// It returns the number of bytes written.
func (b *Buffer) Save(filename string) (int, error) {
	length, data := b.Bytes()
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	if err := f.Truncate(int64(length)); err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if err != nil {
		return n, err
	}
	if n != length {
		return n, io.ErrShortWrite
	}
	b.dirty = 0
	return n, nil
}
