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
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Flags select the optional literal scanners of a rule set.
type Flags int

const (
	HighlightStrings Flags = 1 << 0
	HighlightNumbers Flags = 1 << 1
)

// Keyword2Marker is the suffix that moves a keyword into the second keyword class.
const Keyword2Marker = '|'

// Rules describe how one language is highlighted.
type Rules struct {
	Name        string   `json:"name"`
	FileMatch   []string `json:"filematch"`
	Lexers      []string `json:"lexers,omitempty"` // chroma lexer names served by these rules
	Keywords    []string `json:"keywords"`
	LineComment string   `json:"line_comment"`
	BlockStart  string   `json:"block_comment_start"`
	BlockEnd    string   `json:"block_comment_end"`
	Flags       Flags    `json:"flags"`
}

// Matches reports whether a filename selects these rules.
// A pattern that starts with a dot must match the end of the name,
// any other pattern may appear anywhere in it.
func (r *Rules) Matches(filename string) bool {
	for _, pattern := range r.FileMatch {
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, ".") {
			if strings.HasSuffix(filename, pattern) {
				return true
			}
		} else if strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

func (r *Rules) servesLexer(name string) bool {
	for _, l := range r.Lexers {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}

// Select returns the rules for a filename, or nil if no rules apply.
// Rules in extra are consulted before the built-in database. When no
// filename pattern matches, chroma's lexer registry is asked to name
// the language and the rules serving that lexer are used.
func Select(filename string, extra []Rules) *Rules {
	if filename == "" {
		return nil
	}
	for i := range extra {
		if extra[i].Matches(filename) {
			return &extra[i]
		}
	}
	for i := range Database {
		if Database[i].Matches(filename) {
			return &Database[i]
		}
	}
	name := DetectLanguage(filename)
	if name == "" {
		return nil
	}
	for i := range extra {
		if extra[i].servesLexer(name) {
			return &extra[i]
		}
	}
	for i := range Database {
		if Database[i].servesLexer(name) {
			return &Database[i]
		}
	}
	return nil
}

// DetectLanguage returns the name of the chroma lexer matching a filename.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return ""
	}
	config := lexer.Config()
	if config == nil {
		return ""
	}
	return config.Name
}
