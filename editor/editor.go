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

import (
	"fmt"
	"os"
	"strings"

	tott "tott/types"
)

const (
	DefaultTapeSize     = 300
	DefaultHistoryLimit = 300
	DefaultBlank        = '_'
)

// The Editor manages the editing of text on a fixed-length tape.
// Every mutating operation checkpoints the current state before it
// touches the tape, so a snapshot never includes a partial edit.
type Editor struct {
	tape     Tape
	head     int
	mode     int
	undo     history
	redo     history
	size     int
	limit    int
	blank    rune
	fileName string
}

func NewEditor(options ...Option) *Editor {
	e := &Editor{
		mode:  tott.ModeInsert,
		size:  DefaultTapeSize,
		limit: DefaultHistoryLimit,
		blank: DefaultBlank,
	}
	for _, option := range options {
		option(e)
	}
	e.tape = NewTape(e.size, e.blank)
	e.undo.limit = e.limit
	e.redo.limit = e.limit
	return e
}

func (e *Editor) snapshot() Snapshot {
	return Snapshot{tape: e.tape.Clone(), head: e.head, mode: e.mode}
}

func (e *Editor) restore(s Snapshot) {
	e.tape = s.tape
	e.head = s.head
	e.mode = s.mode
}

// checkpoint pushes a snapshot of the current state onto the undo stack.
// Called before every mutation of tape contents; never for movement.
func (e *Editor) checkpoint() {
	e.undo.push(e.snapshot())
}

// visibleLength is the end-of-content boundary: one past the last
// non-blank slot, but never less than one past the head.
func (e *Editor) visibleLength() int {
	last := e.tape.LastContent()
	if last+1 > e.head {
		return last + 1
	}
	return e.head + 1
}

// TypeText writes the given symbols at the head, one at a time. In insert
// mode each symbol shifts the remainder of the tape right, discarding the
// final slot; in overwrite mode it replaces the slot directly. The head
// advances after each symbol but never past the last slot: typing past
// capacity keeps writing at the last valid slot.
func (e *Editor) TypeText(text string) {
	if text == "" {
		return
	}
	e.checkpoint()
	for _, c := range text {
		if e.mode == tott.ModeInsert {
			e.tape.InsertAt(e.head, c)
		} else {
			e.tape.Set(e.head, c)
		}
		if e.head < e.tape.Size()-1 {
			e.head++
		}
	}
	e.redo.clear()
}

// Backspace moves the head left one slot, blanks it, and returns the
// symbol that was there. With the head at slot 0 there is nothing to the
// left; the editor is left untouched and ErrNothingToDelete is returned.
func (e *Editor) Backspace() (rune, error) {
	if e.head == 0 {
		return 0, ErrNothingToDelete
	}
	e.checkpoint()
	e.head--
	deleted := e.tape.Get(e.head)
	e.tape.Set(e.head, e.blank)
	e.redo.clear()
	return deleted, nil
}

// Movement repositions the head only. It is not an undoable edit: no
// checkpoint, and the redo stack is left alone.

func (e *Editor) MoveLeft() {
	if e.head > 0 {
		e.head--
	}
}

func (e *Editor) MoveRight() {
	if e.head < e.tape.Size()-1 {
		e.head++
	}
}

func (e *Editor) MoveStart() {
	e.head = 0
}

// MoveEnd places the head on the last slot of the visible tape. If the
// head already sits past all content, the visible length includes the
// head itself and the head stays put.
func (e *Editor) MoveEnd() {
	e.head = e.visibleLength() - 1
}

func (e *Editor) ToggleMode() {
	if e.mode == tott.ModeInsert {
		e.mode = tott.ModeOverwrite
	} else {
		e.mode = tott.ModeInsert
	}
}

// Undo pushes the current state onto the redo stack and restores the most
// recent snapshot from the undo stack.
func (e *Editor) Undo() error {
	s, ok := e.undo.pop()
	if !ok {
		return ErrNothingToUndo
	}
	e.redo.push(e.snapshot())
	e.restore(s)
	return nil
}

// Redo is the inverse of Undo.
func (e *Editor) Redo() error {
	s, ok := e.redo.pop()
	if !ok {
		return ErrNothingToRedo
	}
	e.undo.push(e.snapshot())
	e.restore(s)
	return nil
}

// ClearAll blanks every slot and returns the head to slot 0. Like
// ReplaceText and LoadText it checkpoints without clearing the redo
// stack; only typing and backspace invalidate redo.
func (e *Editor) ClearAll() {
	e.checkpoint()
	e.tape.Clear()
	e.head = 0
}

// ReplaceText substitutes all non-overlapping occurrences of old with new
// in the derived text and writes the result back from slot 0, padding
// with blanks. The head is not repositioned and may be left past the new
// content. An empty old pattern is a no-op.
func (e *Editor) ReplaceText(old, new string) {
	if old == "" {
		return
	}
	e.checkpoint()
	text := strings.Replace(e.GetText(), old, new, -1)
	e.tape.LoadString(text)
}

// GetText returns the tape truncated at the visible length with trailing
// blanks stripped. It never mutates the editor.
func (e *Editor) GetText() string {
	s := e.tape.StringTo(e.visibleLength())
	return strings.TrimRight(s, string(e.blank))
}

// WordCount returns the number of whitespace-delimited words in the
// derived text along with its length in symbols.
func (e *Editor) WordCount() (int, int) {
	text := e.GetText()
	return len(strings.Fields(text)), len([]rune(text))
}

func (e *Editor) VisibleLength() int {
	return e.visibleLength()
}

func (e *Editor) GetHead() int {
	return e.head
}

func (e *Editor) GetMode() int {
	return e.mode
}

func (e *Editor) GetTapeSize() int {
	return e.tape.Size()
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) SetFileName(name string) {
	e.fileName = name
}

// LoadText checkpoints and replaces the tape with the given content,
// blank-padded to the tape's capacity. Content longer than the tape is
// truncated; the fixed tape never grows. The head lands one past the
// loaded content, clamped to the last slot.
func (e *Editor) LoadText(text string) {
	e.checkpoint()
	written := e.tape.LoadString(text)
	e.head = written
	if e.head > e.tape.Size()-1 {
		e.head = e.tape.Size() - 1
	}
}

// ReadFile loads the contents of a file into the tape.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return err
	}
	e.LoadText(string(b))
	e.fileName = path
	return nil
}

// WriteFile writes the derived text verbatim to a file. Head position,
// mode, and history do not survive a save.
func (e *Editor) WriteFile(path string) error {
	return os.WriteFile(path, []byte(e.GetText()), 0644)
}
