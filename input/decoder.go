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

package input

import (
	kilt "github.com/timburks/kilt/types"
)

// A Decoder turns a stream of input bytes into events. Escape sequences
// for the arrow, home, end, delete and paging keys are collected into
// key events; every other byte is passed through.
type Decoder struct {
	seq [4]byte
	pos int
}

func (d *Decoder) Reset() {
	d.pos = 0
}

func key(k kilt.Key) (kilt.Event, bool) {
	return kilt.KeyEvent{Key: k}, true
}

// Push feeds one byte to the decoder. It returns an event when the byte
// completes one. Unknown sequences are dropped.
func (d *Decoder) Push(b byte) (kilt.Event, bool) {
	switch d.pos {
	case 0:
		if b == kilt.Esc {
			d.seq[0] = b
			d.pos = 1
			return nil, false
		}
		return kilt.ByteEvent{Byte: b}, true
	case 1:
		switch b {
		case '[', 'O':
			d.seq[1] = b
			d.pos = 2
			return nil, false
		case kilt.Esc:
			// the first escape stood alone
			return key(kilt.KeyEscape)
		}
		d.Reset()
		return nil, false
	case 2:
		d.seq[2] = b
		d.pos = 3
		switch b {
		case 'A':
			d.Reset()
			return key(kilt.KeyArrowUp)
		case 'B':
			d.Reset()
			return key(kilt.KeyArrowDown)
		case 'C':
			d.Reset()
			return key(kilt.KeyArrowRight)
		case 'D':
			d.Reset()
			return key(kilt.KeyArrowLeft)
		case 'H':
			d.Reset()
			return key(kilt.KeyHome)
		case 'F':
			d.Reset()
			return key(kilt.KeyEnd)
		}
		if b >= '0' && b <= '9' {
			return nil, false
		}
		d.Reset()
		return nil, false
	default:
		d.seq[3] = b
		digit := d.seq[2]
		d.Reset()
		if b != '~' {
			return nil, false
		}
		switch digit {
		case '1', '7':
			return key(kilt.KeyHome)
		case '3':
			return key(kilt.KeyDelete)
		case '4', '8':
			return key(kilt.KeyEnd)
		case '5':
			return key(kilt.KeyPageUp)
		case '6':
			return key(kilt.KeyPageDown)
		}
		return nil, false
	}
}

// Expire is called when the read timeout passes without input. A lone
// escape becomes the escape key; a partial sequence is dropped.
func (d *Decoder) Expire() (kilt.Event, bool) {
	pos := d.pos
	d.Reset()
	if pos == 1 {
		return key(kilt.KeyEscape)
	}
	return nil, false
}
