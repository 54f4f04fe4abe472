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
	"errors"
	"fmt"
	"io"

	kilt "github.com/timburks/kilt/types"
)

// ErrTimeout is carried by the ErrorEvent returned when no input
// arrived within the read timeout.
var ErrTimeout = errors.New("input timeout")

// A Resizer reports (and clears) a pending terminal resize.
type Resizer interface {
	Resized() bool
	Size() (kilt.Size, error)
}

// A Reader reads events from a terminal in raw mode. Reads on the
// underlying reader are expected to return after a short timeout with
// no data when nothing was typed.
type Reader struct {
	in      io.Reader
	resizer Resizer
	decoder Decoder
	buf     [1]byte
}

func NewReader(in io.Reader, resizer Resizer) *Reader {
	return &Reader{in: in, resizer: resizer}
}

// Next returns the next event. A pending resize is reported before any
// input is read.
func (r *Reader) Next() kilt.Event {
	for {
		if r.resizer != nil && r.resizer.Resized() {
			size, err := r.resizer.Size()
			if err != nil {
				return kilt.ErrorEvent{Err: err}
			}
			return kilt.ResizeEvent{Size: size}
		}
		n, err := r.in.Read(r.buf[:])
		if n == 1 {
			if event, ok := r.decoder.Push(r.buf[0]); ok {
				return event
			}
			continue
		}
		// a raw mode read that times out returns no data, which os.File reports as EOF
		if err != nil && err != io.EOF {
			r.decoder.Reset()
			return kilt.ErrorEvent{Err: fmt.Errorf("read input: %w", err)}
		}
		if event, ok := r.decoder.Expire(); ok {
			return event
		}
		return kilt.ErrorEvent{Err: ErrTimeout}
	}
}
