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
	"testing"

	kilt "github.com/timburks/kilt/types"
)

func scan(t *testing.T, r *Rules, text string, open bool) ([]kilt.Highlight, bool) {
	t.Helper()
	tags := make([]kilt.Highlight, len(text))
	return tags, Highlight(r, []byte(text), tags, open)
}

func expectTags(t *testing.T, text string, tags []kilt.Highlight, from, to int, h kilt.Highlight) {
	t.Helper()
	for i := from; i < to; i++ {
		if tags[i] != h {
			t.Errorf("Unexpected tag at %d of '%s': got %s, expected %s", i, text, tags[i], h)
		}
	}
}

func TestSelect(t *testing.T) {
	if r := Select("main.c", nil); r == nil || r.Name != "c" {
		t.Errorf("Unexpected rules for main.c: %v", r)
	}
	if r := Select("editor/buffer.go", nil); r == nil || r.Name != "go" {
		t.Errorf("Unexpected rules for buffer.go: %v", r)
	}
	if r := Select("notes.txt", nil); r != nil {
		t.Errorf("Unexpected rules for notes.txt: %s", r.Name)
	}
	if r := Select("", nil); r != nil {
		t.Errorf("Unexpected rules for an empty name: %s", r.Name)
	}
	extra := []Rules{{Name: "mine", FileMatch: []string{".c"}}}
	if r := Select("main.c", extra); r == nil || r.Name != "mine" {
		t.Errorf("Configured rules were not preferred: %v", r)
	}
}

func TestSelectSubstringPattern(t *testing.T) {
	extra := []Rules{{Name: "make", FileMatch: []string{"Makefile"}}}
	if r := Select("src/Makefile.am", extra); r == nil || r.Name != "make" {
		t.Errorf("Substring pattern did not match: %v", r)
	}
	r := Rules{FileMatch: []string{".c"}}
	if r.Matches("file.cpp.bak") {
		t.Errorf("Dot pattern matched inside a name")
	}
}

func TestSelectLexerFallback(t *testing.T) {
	if DetectLanguage("setup.zsh") != "Bash" {
		t.Errorf("Unexpected lexer for setup.zsh: '%s'", DetectLanguage("setup.zsh"))
	}
	if r := Select("setup.zsh", nil); r == nil || r.Name != "shell" {
		t.Errorf("Unexpected rules for setup.zsh: %v", r)
	}
}

func TestSeparators(t *testing.T) {
	for _, c := range []byte(" \t\x00,.()+-/*=~%[];") {
		if !IsSeparator(c) {
			t.Errorf("Expected %q to be a separator", c)
		}
	}
	for _, c := range []byte("aZ0_{}<>\"") {
		if IsSeparator(c) {
			t.Errorf("Expected %q not to be a separator", c)
		}
	}
}

func TestPrintable(t *testing.T) {
	for _, c := range []byte(" az~09") {
		if !IsPrint(c) {
			t.Errorf("Expected %q to be printable", c)
		}
	}
	for _, c := range []byte{0, 7, 27, 31, 127, 0x80, 0xc3, 0xff} {
		if IsPrint(c) {
			t.Errorf("Expected %#x not to be printable", c)
		}
	}
	if Placeholder(1) != 'A' || Placeholder(26) != 'Z' || Placeholder(27) != '?' || Placeholder(0xe9) != '?' {
		t.Errorf("Unexpected placeholders")
	}
}

func TestNoRules(t *testing.T) {
	text := "int x;\x01"
	tags, open := scan(t, nil, text, true)
	if open {
		t.Errorf("Rows without rules cannot end inside a comment")
	}
	expectTags(t, text, tags, 0, 6, kilt.HighlightNormal)
	expectTags(t, text, tags, 6, 7, kilt.HighlightNonPrint)
}

func TestKeywords(t *testing.T) {
	c := Select("x.c", nil)
	text := "int intx if(y) return;"
	tags, _ := scan(t, c, text, false)
	expectTags(t, text, tags, 0, 3, kilt.HighlightKeyword2)
	expectTags(t, text, tags, 3, 9, kilt.HighlightNormal)
	expectTags(t, text, tags, 9, 11, kilt.HighlightKeyword1)
	expectTags(t, text, tags, 11, 15, kilt.HighlightNormal)
	expectTags(t, text, tags, 15, 21, kilt.HighlightKeyword1)
	expectTags(t, text, tags, 21, 22, kilt.HighlightNormal)
}

func TestKeywordNeedsBoundary(t *testing.T) {
	c := Select("x.c", nil)
	text := "xint"
	tags, _ := scan(t, c, text, false)
	expectTags(t, text, tags, 0, 4, kilt.HighlightNormal)
}

func TestStringsAndNumbers(t *testing.T) {
	c := Select("x.c", nil)
	text := `x = "a\"b" + 'c' + 3.14 + x2;`
	tags, _ := scan(t, c, text, false)
	expectTags(t, text, tags, 0, 4, kilt.HighlightNormal)
	expectTags(t, text, tags, 4, 10, kilt.HighlightString)
	expectTags(t, text, tags, 13, 16, kilt.HighlightString)
	expectTags(t, text, tags, 19, 23, kilt.HighlightNumber)
	// digits inside a word are not numbers
	expectTags(t, text, tags, 26, 28, kilt.HighlightNormal)
}

func TestLineComment(t *testing.T) {
	c := Select("x.c", nil)
	text := `a = "//"; // done`
	tags, open := scan(t, c, text, false)
	if open {
		t.Errorf("Line comment left a block comment open")
	}
	expectTags(t, text, tags, 4, 8, kilt.HighlightString)
	expectTags(t, text, tags, 8, 10, kilt.HighlightNormal)
	expectTags(t, text, tags, 10, len(text), kilt.HighlightComment)
}

func TestBlockComment(t *testing.T) {
	c := Select("x.c", nil)
	text := "a /* b */ c /* d"
	tags, open := scan(t, c, text, false)
	if !open {
		t.Errorf("Expected the row to end inside a block comment")
	}
	expectTags(t, text, tags, 0, 2, kilt.HighlightNormal)
	expectTags(t, text, tags, 2, 9, kilt.HighlightBlockComment)
	expectTags(t, text, tags, 9, 12, kilt.HighlightNormal)
	expectTags(t, text, tags, 12, len(text), kilt.HighlightBlockComment)

	text = "still */ int"
	tags, open = scan(t, c, text, true)
	if open {
		t.Errorf("Expected the block comment to be closed")
	}
	expectTags(t, text, tags, 0, 8, kilt.HighlightBlockComment)
	expectTags(t, text, tags, 9, 12, kilt.HighlightKeyword2)
}

func TestNoBlockComments(t *testing.T) {
	sh := Select("x.sh", nil)
	text := "echo /* # note"
	tags, open := scan(t, sh, text, false)
	if open {
		t.Errorf("Shell rules have no block comments")
	}
	expectTags(t, text, tags, 8, len(text), kilt.HighlightComment)
}
