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

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// Package terminal puts the controlling terminal into raw mode and
// reports its size.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	kilt "github.com/timburks/kilt/types"
)

// ErrNotTerminal is returned when standard input or output is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// A Terminal is a terminal in raw mode. Reads return after a tenth of a
// second when no input is available.
type Terminal struct {
	in       *os.File
	out      *os.File
	original *unix.Termios
	resized  atomic.Bool
	signals  chan os.Signal
}

// Open switches the terminal attached to in and out into raw mode and
// starts watching for window size changes.
func Open(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}
	original, err := unix.IoctlGetTermios(int(in.Fd()), ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}
	raw := *original
	// input modes: no break, no CR to NL, no parity check, no strip char,
	// no start/stop output control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// output modes: disable post processing
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	// local modes: echo off, canonical off, no extended functions,
	// no signal chars
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// return each byte, or nothing after 100 ms
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(int(in.Fd()), ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}
	t := &Terminal{
		in:       in,
		out:      out,
		original: original,
		signals:  make(chan os.Signal, 1),
	}
	signal.Notify(t.signals, syscall.SIGWINCH)
	go func() {
		for range t.signals {
			// the main loop picks this up at its next read
			t.resized.Store(true)
		}
	}()
	return t, nil
}

func (t *Terminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Resized reports whether the window size changed since the last call.
func (t *Terminal) Resized() bool {
	return t.resized.Swap(false)
}

// Size returns the number of rows and columns of the terminal.
func (t *Terminal) Size() (kilt.Size, error) {
	return Size(t.out)
}

// Restore leaves raw mode and stops watching for size changes.
func (t *Terminal) Restore() error {
	signal.Stop(t.signals)
	close(t.signals)
	return unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, t.original)
}

// Size returns the window size of the terminal attached to f.
func Size(f *os.File) (kilt.Size, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return kilt.Size{}, fmt.Errorf("get window size: %w", err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return kilt.Size{}, fmt.Errorf("get window size: empty window")
	}
	return kilt.Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}
