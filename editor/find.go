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
	"bytes"

	kilt "github.com/timburks/kilt/types"
)

// Find searches the rendered rows for query, starting with the row after
// (or before, when forward is false) line and wrapping around the buffer.
// A line of -1 starts the search at the first row. It returns the row of
// the match and its rendered column.
func (b *Buffer) Find(query []byte, line int, forward bool) (int, int, bool) {
	if len(query) == 0 || len(b.rows) == 0 {
		return 0, 0, false
	}
	current := line
	for i := 0; i < len(b.rows); i++ {
		if forward {
			current++
		} else {
			current--
		}
		if current < 0 {
			current = len(b.rows) - 1
		} else if current >= len(b.rows) {
			current = 0
		}
		if rx := bytes.Index(b.rows[current].expanded, query); rx >= 0 {
			return current, rx, true
		}
	}
	return 0, 0, false
}

// MarkMatch tags n rendered bytes of a row as a search match. The
// previous tags of the row are kept until ClearMatch.
func (b *Buffer) MarkMatch(line, rx, n int) {
	b.ClearMatch()
	row := b.GetRow(line)
	if row == nil || rx < 0 || rx >= len(row.Tags) {
		return
	}
	b.matchLine = line
	b.matchTags = append([]kilt.Highlight(nil), row.Tags...)
	for i := rx; i < rx+n && i < len(row.Tags); i++ {
		row.Tags[i] = kilt.HighlightMatch
	}
}

// ClearMatch restores the tags of the row holding the current match.
func (b *Buffer) ClearMatch() {
	if b.matchTags != nil {
		if row := b.GetRow(b.matchLine); row != nil && len(row.Tags) == len(b.matchTags) {
			copy(row.Tags, b.matchTags)
		}
	}
	b.matchLine = -1
	b.matchTags = nil
}
