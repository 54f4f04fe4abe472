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

// Control bytes that arrive unchanged from a terminal in raw mode.
const (
	CtrlC     byte = 3
	CtrlE     byte = 5
	CtrlF     byte = 6
	CtrlG     byte = 7
	CtrlH     byte = 8
	CtrlK     byte = 11
	CtrlL     byte = 12
	Enter     byte = 13
	CtrlQ     byte = 17
	CtrlS     byte = 19
	CtrlV     byte = 22
	CtrlX     byte = 24
	Esc       byte = 27
	Backspace byte = 127
)

// A Key is a logical key decoded from a multi-byte terminal sequence.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "esc"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyDelete:
		return "delete"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	default:
		return "none"
	}
}
