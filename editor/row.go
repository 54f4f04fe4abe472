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
	"errors"
	"math"

	"github.com/timburks/kilt/syntax"
	kilt "github.com/timburks/kilt/types"
)

// TabStop is the width of a tab in rendered columns.
const TabStop = 8

// maxRender is the largest rendered row we are willing to build.
var maxRender = math.MaxInt32

// ErrLineTooLong is raised (as a panic value) when a row would render
// to more bytes than maxRender. It is fatal.
var ErrLineTooLong = errors.New("line too long to render")

// A row of text in the editor
type Row struct {
	index       int
	Raw         []byte
	Render      []byte // tab expanded, non-printable bytes replaced
	expanded    []byte // tab expanded only
	Tags        []kilt.Highlight
	OpenComment bool // the row ends inside a block comment
	seed        bool // block comment state the row was last scanned with
}

func newRow(index int, text []byte) *Row {
	r := &Row{index: index}
	r.Raw = append(make([]byte, 0, len(text)), text...)
	r.update()
	return r
}

// Index returns the position of the row in its buffer.
func (r *Row) Index() int {
	return r.index
}

func (r *Row) Length() int {
	return len(r.Raw)
}

// update rebuilds the rendered text. Tabs are expanded to the next
// multiple of TabStop and every byte that cannot be drawn is replaced
// by its placeholder. Tags are reset and must be recomputed with
// highlight.
func (r *Row) update() {
	tabs := 0
	for _, c := range r.Raw {
		if c == '\t' {
			tabs++
		}
	}
	if uint64(len(r.Raw))+uint64(tabs)*(TabStop-1) > uint64(maxRender) {
		panic(ErrLineTooLong)
	}
	expanded := make([]byte, 0, len(r.Raw)+tabs*(TabStop-1))
	for _, c := range r.Raw {
		if c == '\t' {
			expanded = append(expanded, ' ')
			for len(expanded)%TabStop != 0 {
				expanded = append(expanded, ' ')
			}
		} else {
			expanded = append(expanded, c)
		}
	}
	r.expanded = expanded
	r.Render = expanded
	r.Tags = make([]kilt.Highlight, len(expanded))
	copied := false
	for i, c := range expanded {
		if syntax.IsPrint(c) {
			continue
		}
		if !copied {
			r.Render = append([]byte(nil), expanded...)
			copied = true
		}
		r.Render[i] = syntax.Placeholder(c)
		r.Tags[i] = kilt.HighlightNonPrint
	}
}

// highlight recomputes the tags of the row given the block comment state
// of the previous row. Substituted bytes keep the non-printable tag
// whatever surrounds them.
func (r *Row) highlight(rules *syntax.Rules, open bool) {
	r.seed = open
	r.OpenComment = syntax.Highlight(rules, r.expanded, r.Tags, open)
	for i, c := range r.expanded {
		if !syntax.IsPrint(c) {
			r.Tags[i] = kilt.HighlightNonPrint
		}
	}
}

func (r *Row) insertChar(col int, c byte) {
	if col > len(r.Raw) {
		for len(r.Raw) < col {
			r.Raw = append(r.Raw, ' ')
		}
		r.Raw = append(r.Raw, c)
	} else {
		r.Raw = append(r.Raw, 0)
		copy(r.Raw[col+1:], r.Raw[col:])
		r.Raw[col] = c
	}
	r.update()
}

func (r *Row) deleteChar(col int) {
	if col < 0 || col >= len(r.Raw) {
		return
	}
	r.Raw = append(r.Raw[:col], r.Raw[col+1:]...)
	r.update()
}

func (r *Row) appendBytes(text []byte) {
	r.Raw = append(r.Raw, text...)
	r.update()
}

func (r *Row) truncate(col int) {
	if col < len(r.Raw) {
		r.Raw = r.Raw[:col]
		r.update()
	}
}

// RenderColumn converts a raw column into a rendered column.
func (r *Row) RenderColumn(col int) int {
	rx := 0
	for j := 0; j < col && j < len(r.Raw); j++ {
		if r.Raw[j] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	if col > len(r.Raw) {
		rx += col - len(r.Raw)
	}
	return rx
}

// RawColumn converts a rendered column into the raw column that produced it.
func (r *Row) RawColumn(rx int) int {
	cur := 0
	for col, c := range r.Raw {
		if c == '\t' {
			cur += (TabStop - 1) - (cur % TabStop)
		}
		cur++
		if cur > rx {
			return col
		}
	}
	return len(r.Raw)
}
