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

// The built-in syntax database.
// A keyword with a trailing '|' is highlighted in the second keyword class.
var Database = []Rules{
	{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
		Lexers:    []string{"C", "C++", "Objective-C"},
		Keywords: []string{
			// C keywords
			"auto", "break", "case", "continue", "default", "do", "else", "enum",
			"extern", "for", "goto", "if", "register", "return", "sizeof", "static",
			"struct", "switch", "typedef", "union", "volatile", "while", "NULL",
			// C++ keywords
			"alignas", "alignof", "and", "and_eq", "asm", "bitand", "bitor", "class",
			"compl", "constexpr", "const_cast", "deltype", "delete", "dynamic_cast",
			"explicit", "export", "false", "friend", "inline", "mutable", "namespace",
			"new", "noexcept", "not", "not_eq", "nullptr", "operator", "or", "or_eq",
			"private", "protected", "public", "reinterpret_cast", "static_assert",
			"static_cast", "template", "this", "thread_local", "throw", "true", "try",
			"typeid", "typename", "virtual", "xor", "xor_eq",
			// C types
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|", "short|", "auto|", "const|", "bool|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightStrings | HighlightNumbers,
	},
	{
		Name:      "go",
		FileMatch: []string{".go"},
		Lexers:    []string{"Go"},
		Keywords: []string{
			"break", "default", "func", "interface", "select", "case", "defer", "go",
			"map", "struct", "chan", "else", "goto", "package", "switch", "const",
			"fallthrough", "if", "range", "type", "continue", "for", "import", "return",
			"var", "true", "false", "nil", "iota",
			"bool|", "byte|", "complex64|", "complex128|", "error|", "float32|", "float64|",
			"int|", "int8|", "int16|", "int32|", "int64|", "rune|", "string|",
			"uint|", "uint8|", "uint16|", "uint32|", "uint64|", "uintptr|", "any|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightStrings | HighlightNumbers,
	},
	{
		Name:      "python",
		FileMatch: []string{".py"},
		Lexers:    []string{"Python", "Python 2"},
		Keywords: []string{
			"and", "as", "assert", "break", "class", "continue", "def", "del", "elif",
			"else", "except", "finally", "for", "from", "global", "if", "import", "in",
			"is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield", "None", "True", "False",
			"int|", "float|", "str|", "bool|", "list|", "dict|", "tuple|", "set|",
			"bytes|", "object|",
		},
		LineComment: "#",
		Flags:       HighlightStrings | HighlightNumbers,
	},
	{
		Name:      "javascript",
		FileMatch: []string{".js", ".mjs", ".ts"},
		Lexers:    []string{"JavaScript", "TypeScript"},
		Keywords: []string{
			"break", "case", "catch", "class", "const", "continue", "debugger", "default",
			"delete", "do", "else", "export", "extends", "finally", "for", "function",
			"if", "import", "in", "instanceof", "new", "return", "super", "switch",
			"this", "throw", "try", "typeof", "var", "void", "while", "with", "yield",
			"let", "await", "async", "true", "false", "null", "undefined",
			"Number|", "String|", "Boolean|", "Object|", "Array|", "Promise|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightStrings | HighlightNumbers,
	},
	{
		Name:      "shell",
		FileMatch: []string{".sh", ".bash"},
		Lexers:    []string{"Bash"},
		Keywords: []string{
			"if", "then", "else", "elif", "fi", "case", "esac", "for", "while", "until",
			"do", "done", "function", "in", "return", "select",
			"local|", "export|", "readonly|", "echo|", "exit|", "shift|",
		},
		LineComment: "#",
		Flags:       HighlightStrings | HighlightNumbers,
	},
}
