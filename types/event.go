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

// An Event is one of ByteEvent, KeyEvent, ResizeEvent or ErrorEvent.
// The main loop switches over the concrete type.
type Event interface {
	event()
}

// A ByteEvent passes a single input byte through unchanged.
type ByteEvent struct {
	Byte byte
}

// A KeyEvent carries a key decoded from an escape sequence.
type KeyEvent struct {
	Key Key
}

// A ResizeEvent reports the new terminal size.
type ResizeEvent struct {
	Size Size
}

// An ErrorEvent reports a failed or timed-out read.
type ErrorEvent struct {
	Err error
}

func (ByteEvent) event()   {}
func (KeyEvent) event()    {}
func (ResizeEvent) event() {}
func (ErrorEvent) event()  {}
