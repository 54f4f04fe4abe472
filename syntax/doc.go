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

// Package syntax implements the highlighting rules of kilt.
// A Rules value describes one language: the filename patterns that
// select it, its keywords, its comment markers and which literals
// are highlighted. Highlight scans a single rendered row; the
// propagation of block comment state across rows is done by the
// buffer that owns the rows.
package syntax
