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

package terminal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRequiresTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatalf("Create failed: %+v", err)
	}
	defer f.Close()
	if _, err := Open(f, f); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Unexpected error for a regular file: %v", err)
	}
	if _, err := Size(f); err == nil {
		t.Errorf("Size of a regular file did not fail")
	}
}
