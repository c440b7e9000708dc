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
package editor

// Option is a functional option for configuring an Editor.
type Option func(*Editor)

// WithTapeSize sets the tape's fixed capacity.
func WithTapeSize(size int) Option {
	return func(e *Editor) {
		if size > 0 {
			e.size = size
		}
	}
}

// WithHistoryLimit sets the maximum depth of the undo and redo stacks.
func WithHistoryLimit(limit int) Option {
	return func(e *Editor) {
		if limit > 0 {
			e.limit = limit
		}
	}
}

// WithBlank sets the blank filler symbol.
func WithBlank(blank rune) Option {
	return func(e *Editor) {
		if blank != 0 {
			e.blank = blank
		}
	}
}
