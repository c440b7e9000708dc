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

// A Snapshot is an immutable point-in-time copy of the editor state:
// tape contents, head position, and write mode. Snapshots never alias
// the live tape.
type Snapshot struct {
	tape Tape
	head int
	mode int
}

// history is a bounded stack of snapshots. When a push exceeds the
// limit, the oldest entry is dropped from the front.
type history struct {
	entries []Snapshot
	limit   int
}

func (h *history) push(s Snapshot) {
	h.entries = append(h.entries, s)
	if h.limit > 0 && len(h.entries) > h.limit {
		excess := len(h.entries) - h.limit
		h.entries = h.entries[excess:]
	}
}

func (h *history) pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	last := len(h.entries) - 1
	s := h.entries[last]
	h.entries = h.entries[:last]
	return s, true
}

func (h *history) clear() {
	h.entries = nil
}

func (h *history) depth() int {
	return len(h.entries)
}
