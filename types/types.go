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

// Tape write modes
const (
	ModeInsert    = 0
	ModeOverwrite = 1
)

// WriteModeName returns the display name of a tape write mode.
func WriteModeName(mode int) string {
	switch mode {
	case ModeInsert:
		return "insert"
	case ModeOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Commander modes
const (
	ModeEdit    = 0
	ModeCommand = 1
	ModeLisp    = 2
	ModeQuit    = 9999
)

// Event types
const (
	EventKey = iota
	EventResize
	EventOther
)

type Key int

const (
	KeyUnsupported Key = iota
	KeyEsc
	KeyEnter
	KeyBackspace2
	KeySpace
	KeyTab
	KeyHome
	KeyEnd
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyCtrlA
	KeyCtrlE
	KeyCtrlT
	KeyCtrlY
	KeyCtrlZ
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Size struct {
	Rows int
	Cols int
}

// The Editor owns the tape, the head, the write mode, and the undo and
// redo history. The commander and the screen drive it through this
// interface and never touch tape slots directly.
type Editor interface {
	TypeText(text string)
	Backspace() (rune, error)

	MoveLeft()
	MoveRight()
	MoveStart()
	MoveEnd()

	ToggleMode()
	Undo() error
	Redo() error

	ClearAll()
	ReplaceText(old, new string)

	GetText() string
	WordCount() (words int, chars int)
	VisibleLength() int
	DisplayLines() (tape string, caret string)

	GetHead() int
	GetMode() int
	GetTapeSize() int

	LoadText(text string)
	ReadFile(path string) error
	WriteFile(path string) error
	GetFileName() string
	SetFileName(name string)
}

// The Commander converts user input into commands for the Editor.
type Commander interface {
	ProcessEvent(event *Event) error
	IsRunning() bool
	GetMode() int
	SetMode(mode int)
	GetMessageBarText(length int) string
}
