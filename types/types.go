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
package types

// Editor modes
const (
	ModeEdit = 0
	ModeFind = 1
	ModeEval = 2
	ModeQuit = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Point is a position in a buffer or on the screen.
// Row is the line, Col the column.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Highlight is the category of a single rendered byte.
type Highlight uint8

const (
	HighlightNormal Highlight = iota
	HighlightNonPrint
	HighlightComment
	HighlightBlockComment
	HighlightKeyword1
	HighlightKeyword2
	HighlightString
	HighlightNumber
	HighlightMatch
)

func (h Highlight) String() string {
	switch h {
	case HighlightNormal:
		return "normal"
	case HighlightNonPrint:
		return "nonprint"
	case HighlightComment:
		return "comment"
	case HighlightBlockComment:
		return "block-comment"
	case HighlightKeyword1:
		return "keyword1"
	case HighlightKeyword2:
		return "keyword2"
	case HighlightString:
		return "string"
	case HighlightNumber:
		return "number"
	case HighlightMatch:
		return "match"
	default:
		return "unknown"
	}
}
