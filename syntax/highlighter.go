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

package syntax

import (
	"bytes"
	"strings"

	kilt "github.com/timburks/kilt/types"
)

const separators = ",.()+-/*=~%[];"

// IsSeparator reports whether c ends a word.
func IsSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

// IsPrint reports whether c can be drawn as is. Only printable ASCII
// qualifies, so every byte of a row takes exactly one column.
func IsPrint(c byte) bool {
	return c >= 32 && c < 127
}

// Placeholder returns the byte drawn in place of a non-printable byte:
// '@'+c for control bytes up to 26, '?' for the rest.
func Placeholder(c byte) byte {
	if c <= 26 {
		return '@' + c
	}
	return '?'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Highlight fills tags with the category of each byte of render and
// returns true if the row ends inside an unterminated block comment.
// open is the block comment state left by the previous row.
// len(tags) must equal len(render). A nil rules value only marks
// non-printable bytes.
func Highlight(r *Rules, render []byte, tags []kilt.Highlight, open bool) bool {
	for i, c := range render {
		if IsPrint(c) {
			tags[i] = kilt.HighlightNormal
		} else {
			tags[i] = kilt.HighlightNonPrint
		}
	}
	if r == nil {
		return false
	}

	lineComment := []byte(r.LineComment)
	blockStart := []byte(r.BlockStart)
	blockEnd := []byte(r.BlockEnd)

	prevSep := true
	var inString byte
	inComment := open

	i := 0
	for i < len(render) {
		c := render[i]

		// line comments run to the end of the row
		if prevSep && inString == 0 && !inComment && len(lineComment) > 0 &&
			bytes.HasPrefix(render[i:], lineComment) {
			for j := i; j < len(render); j++ {
				tags[j] = kilt.HighlightComment
			}
			return false
		}

		if inComment {
			if len(blockEnd) > 0 && bytes.HasPrefix(render[i:], blockEnd) {
				for j := 0; j < len(blockEnd); j++ {
					tags[i+j] = kilt.HighlightBlockComment
				}
				i += len(blockEnd)
				inComment = false
				prevSep = true
				continue
			}
			tags[i] = kilt.HighlightBlockComment
			i++
			prevSep = false
			continue
		} else if inString == 0 && len(blockStart) > 0 && bytes.HasPrefix(render[i:], blockStart) {
			for j := 0; j < len(blockStart); j++ {
				tags[i+j] = kilt.HighlightBlockComment
			}
			i += len(blockStart)
			inComment = true
			prevSep = false
			continue
		}

		if r.Flags&HighlightStrings != 0 {
			if inString != 0 {
				tags[i] = kilt.HighlightString
				if c == '\\' && i+1 < len(render) {
					tags[i+1] = kilt.HighlightString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				tags[i] = kilt.HighlightString
				i++
				prevSep = false
				continue
			}
		}

		if !IsPrint(c) {
			tags[i] = kilt.HighlightNonPrint
			i++
			prevSep = false
			continue
		}

		if r.Flags&HighlightNumbers != 0 {
			afterNumber := i > 0 && tags[i-1] == kilt.HighlightNumber
			if (isDigit(c) && (prevSep || afterNumber)) || (c == '.' && afterNumber) {
				tags[i] = kilt.HighlightNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, class := matchKeyword(r.Keywords, render[i:]); n > 0 {
				for j := 0; j < n; j++ {
					tags[i+j] = class
				}
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}
	return inComment
}

// matchKeyword returns the length and class of the first keyword that
// starts text and is followed by a separator or the end of text.
func matchKeyword(keywords []string, text []byte) (int, kilt.Highlight) {
	for _, keyword := range keywords {
		class := kilt.HighlightKeyword1
		if n := len(keyword); n > 0 && keyword[n-1] == Keyword2Marker {
			keyword = keyword[:n-1]
			class = kilt.HighlightKeyword2
		}
		n := len(keyword)
		if n == 0 || n > len(text) || string(text[:n]) != keyword {
			continue
		}
		if n == len(text) || IsSeparator(text[n]) {
			return n, class
		}
	}
	return 0, kilt.HighlightNormal
}
