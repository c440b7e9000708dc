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

// A Tape is a fixed-length sequence of symbol slots. Slots hold either a
// content symbol or the blank filler. The length never changes; every
// mutation replaces slot contents in place.
type Tape struct {
	slots []rune
	blank rune
}

func NewTape(size int, blank rune) Tape {
	t := Tape{slots: make([]rune, size), blank: blank}
	for i := range t.slots {
		t.slots[i] = blank
	}
	return t
}

func (t *Tape) Size() int {
	return len(t.slots)
}

func (t *Tape) Blank() rune {
	return t.blank
}

func (t *Tape) Get(i int) rune {
	return t.slots[i]
}

func (t *Tape) Set(i int, c rune) {
	t.slots[i] = c
}

// InsertAt shifts the slots from i to the end of the tape right by one
// position and writes c at i. The final slot's content is discarded.
func (t *Tape) InsertAt(i int, c rune) {
	copy(t.slots[i+1:], t.slots[i:len(t.slots)-1])
	t.slots[i] = c
}

// Clear sets every slot to blank.
func (t *Tape) Clear() {
	for i := range t.slots {
		t.slots[i] = t.blank
	}
}

// LoadString writes s into the tape starting at slot 0 and pads the rest
// with blanks. Content past the tape's capacity is truncated. It returns
// the number of symbols written.
func (t *Tape) LoadString(s string) int {
	runes := []rune(s)
	if len(runes) > len(t.slots) {
		runes = runes[:len(t.slots)]
	}
	copy(t.slots, runes)
	for i := len(runes); i < len(t.slots); i++ {
		t.slots[i] = t.blank
	}
	return len(runes)
}

// LastContent returns the index of the last non-blank slot, or -1 if the
// tape is all blanks.
func (t *Tape) LastContent() int {
	for i := len(t.slots) - 1; i >= 0; i-- {
		if t.slots[i] != t.blank {
			return i
		}
	}
	return -1
}

// StringTo returns the slot contents up to (but not including) end.
func (t *Tape) StringTo(end int) string {
	if end > len(t.slots) {
		end = len(t.slots)
	}
	return string(t.slots[:end])
}

// Clone returns an independently-owned copy of the tape. Mutating the
// original never affects the clone.
func (t *Tape) Clone() Tape {
	slots := make([]rune, len(t.slots))
	copy(slots, t.slots)
	return Tape{slots: slots, blank: t.blank}
}
