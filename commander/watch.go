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

package commander

import (
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// grace is how long events for the file are ignored after we saved it.
const grace = time.Second

// A Watcher notices changes made to the edited file by other programs.
// Its goroutine only sets flags; the main loop reads them with Pending.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	savedAt atomic.Int64
	changed atomic.Bool
	removed atomic.Bool
}

// Watch starts watching the directory that holds path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}
	w := &Watcher{watcher: watcher, path: abs}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	// Debounce: collect events and act after a quiet period
	debounceTimer := time.NewTimer(100 * time.Millisecond)
	debounceTimer.Stop()
	var pending fsnotify.Op
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			pending |= event.Op
			debounceTimer.Reset(100 * time.Millisecond)
		case <-debounceTimer.C:
			if pending.Has(fsnotify.Remove) || pending.Has(fsnotify.Rename) {
				if _, err := os.Stat(w.path); err != nil {
					w.removed.Store(true)
					pending = 0
					continue
				}
			}
			if pending.Has(fsnotify.Write) || pending.Has(fsnotify.Create) || pending.Has(fsnotify.Rename) {
				if time.Since(time.Unix(0, w.savedAt.Load())) > grace {
					w.changed.Store(true)
				}
			}
			pending = 0
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch %s: %s", w.path, err)
		}
	}
}

// Saved records that the editor has just written the file.
func (w *Watcher) Saved() {
	w.savedAt.Store(time.Now().UnixNano())
}

// Pending returns a notice about changes seen since the last call, or "".
func (w *Watcher) Pending() string {
	if w.removed.Swap(false) {
		w.changed.Store(false)
		return "File was removed from disk"
	}
	if w.changed.Swap(false) {
		return "File changed on disk"
	}
	return ""
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
